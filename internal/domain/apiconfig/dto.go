package apiconfig

import (
	"context"

	"github.com/vitalis-care/vitalis-backend-go/internal/pkg/validator"
)

type SaveConfigRequest struct {
	ChaveFuncionario  string `json:"chave_funcionario"`
	CodigoFuncionario string `json:"codigo_funcionario"`
	FlagAtivo         bool   `json:"flag_ativo"`
	FlagInativo       bool   `json:"flag_inativo"`
	FlagPendente      bool   `json:"flag_pendente"`
	FlagFerias        bool   `json:"flag_ferias"`
	FlagAfastado      bool   `json:"flag_afastado"`
	ChaveAbsenteismo  string `json:"chave_absenteismo"`
	CodigoAbsenteismo string `json:"codigo_absenteismo"`
}

func (r *SaveConfigRequest) Validate() error {
	var errs validator.ValidationErrors

	required := map[string]string{
		"chave_funcionario":  r.ChaveFuncionario,
		"codigo_funcionario": r.CodigoFuncionario,
		"chave_absenteismo":  r.ChaveAbsenteismo,
		"codigo_absenteismo": r.CodigoAbsenteismo,
	}
	for field, value := range required {
		if validator.IsEmpty(value) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " é obrigatório",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ConfigService interface {
	Get(ctx context.Context, empresaID int64) (ConfigAPI, error)
	Save(ctx context.Context, empresaID int64, req SaveConfigRequest) (ConfigAPI, error)
}
