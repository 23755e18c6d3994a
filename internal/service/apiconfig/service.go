package apiconfig

import (
	"context"
	"errors"

	"github.com/vitalis-care/vitalis-backend-go/internal/domain/apiconfig"
)

type ConfigServiceImpl struct {
	apiconfig.ConfigRepository
}

func NewConfigService(configRepository apiconfig.ConfigRepository) apiconfig.ConfigService {
	return &ConfigServiceImpl{ConfigRepository: configRepository}
}

// Get implements apiconfig.ConfigService. An empresa with no stored row gets
// the editable default instead of a 404, so the settings screen always has
// something to render.
func (c *ConfigServiceImpl) Get(ctx context.Context, empresaID int64) (apiconfig.ConfigAPI, error) {
	cfg, err := c.ConfigRepository.GetByEmpresa(ctx, empresaID)
	if err != nil {
		if errors.Is(err, apiconfig.ErrConfigNotFound) {
			return apiconfig.ConfigAPI{EmpresaID: empresaID, FlagAtivo: true}, nil
		}
		return apiconfig.ConfigAPI{}, err
	}
	return cfg, nil
}

// Save implements apiconfig.ConfigService.
func (c *ConfigServiceImpl) Save(ctx context.Context, empresaID int64, req apiconfig.SaveConfigRequest) (apiconfig.ConfigAPI, error) {
	return c.ConfigRepository.Save(ctx, apiconfig.ConfigAPI{
		EmpresaID:         empresaID,
		ChaveFuncionario:  req.ChaveFuncionario,
		CodigoFuncionario: req.CodigoFuncionario,
		FlagAtivo:         req.FlagAtivo,
		FlagInativo:       req.FlagInativo,
		FlagPendente:      req.FlagPendente,
		FlagFerias:        req.FlagFerias,
		FlagAfastado:      req.FlagAfastado,
		ChaveAbsenteismo:  req.ChaveAbsenteismo,
		CodigoAbsenteismo: req.CodigoAbsenteismo,
	})
}
