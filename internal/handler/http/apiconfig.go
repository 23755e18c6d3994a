package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/vitalis-care/vitalis-backend-go/internal/domain/apiconfig"
	"github.com/vitalis-care/vitalis-backend-go/internal/domain/auth"
	"github.com/vitalis-care/vitalis-backend-go/internal/handler/http/response"
)

type ConfigHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Save(w http.ResponseWriter, r *http.Request)
}

type ConfigHandlerImpl struct {
	configService apiconfig.ConfigService
}

func NewConfigHandler(configService apiconfig.ConfigService) ConfigHandler {
	return &ConfigHandlerImpl{configService: configService}
}

// Get implements ConfigHandler.
func (c *ConfigHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	cfg, err := c.configService.Get(r.Context(), principal.EmpresaID)
	if err != nil {
		slog.Error("Get configuracao error", "empresa_id", principal.EmpresaID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"config": cfg,
	})
}

// Save implements ConfigHandler.
func (c *ConfigHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var saveReq apiconfig.SaveConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&saveReq); err != nil {
		slog.Error("Save configuracao decode error", "error", err)
		response.BadRequest(w, "Dados inválidos", "Formato de requisição inválido")
		return
	}

	if err := saveReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	cfg, err := c.configService.Save(r.Context(), principal.EmpresaID, saveReq)
	if err != nil {
		slog.Error("Save configuracao error", "empresa_id", principal.EmpresaID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"message": "Configurações salvas com sucesso",
		"config":  cfg,
	})
}
