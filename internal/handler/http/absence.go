package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/vitalis-care/vitalis-backend-go/internal/domain/absence"
	"github.com/vitalis-care/vitalis-backend-go/internal/domain/auth"
	"github.com/vitalis-care/vitalis-backend-go/internal/handler/http/response"
)

type AbsenceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
	Sync(w http.ResponseWriter, r *http.Request)
}

type AbsenceHandlerImpl struct {
	absenceService absence.AbsenceService
}

func NewAbsenceHandler(absenceService absence.AbsenceService) AbsenceHandler {
	return &AbsenceHandlerImpl{absenceService: absenceService}
}

// queryDate parses an optional yyyy-mm-dd query parameter. Malformed values
// are ignored rather than rejected, matching the listing's loose contract.
func queryDate(r *http.Request, name string) *time.Time {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil
	}
	return &t
}

func queryInt(r *http.Request, name string) int {
	n, _ := strconv.Atoi(r.URL.Query().Get(name))
	return n
}

// List implements AbsenceHandler.
func (a *AbsenceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter := absence.ListFilter{
		DataInicio: queryDate(r, "dataInicio"),
		DataFim:    queryDate(r, "dataFim"),
		Setor:      r.URL.Query().Get("setor"),
		CID:        r.URL.Query().Get("cid"),
		Limit:      queryInt(r, "limit"),
		Offset:     queryInt(r, "offset"),
	}

	registros, err := a.absenceService.List(r.Context(), principal.EmpresaID, filter)
	if err != nil {
		slog.Error("List absenteismo error", "empresa_id", principal.EmpresaID, "error", err)
		response.HandleError(w, err)
		return
	}

	if registros == nil {
		registros = []absence.Absenteismo{}
	}
	response.Success(w, map[string]interface{}{
		"registros": registros,
	})
}

// Stats implements AbsenceHandler.
func (a *AbsenceHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter := absence.StatsFilter{
		DataInicio: queryDate(r, "dataInicio"),
		DataFim:    queryDate(r, "dataFim"),
	}

	stats, err := a.absenceService.GetStats(r.Context(), principal, filter)
	if err != nil {
		slog.Error("Absenteismo stats error", "empresa_id", principal.EmpresaID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// Sync implements AbsenceHandler.
func (a *AbsenceHandlerImpl) Sync(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var syncReq absence.SyncRequest
	if err := json.NewDecoder(r.Body).Decode(&syncReq); err != nil {
		slog.Error("Sync absenteismo decode error", "error", err)
		response.BadRequest(w, "Dados inválidos", "Formato de requisição inválido")
		return
	}

	result, err := a.absenceService.Sync(r.Context(), principal, syncReq)
	if err != nil {
		slog.Error("Sync absenteismo error", "empresa_id", principal.EmpresaID, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Absenteismo synced",
		"empresa_id", principal.EmpresaID,
		"total", result.TotalRegistros,
		"atualizados", result.RegistrosAtualizados,
		"log_id", result.LogID)
	response.Success(w, map[string]interface{}{
		"message":              "Sincronização de absenteísmo realizada com sucesso",
		"totalRegistros":       result.TotalRegistros,
		"registrosAtualizados": result.RegistrosAtualizados,
		"logId":                result.LogID,
	})
}
