package apiconfig

import "time"

// ConfigAPI holds one empresa's SOC feed credentials: one key/code pair per
// feed, plus the employee-status inclusion flags sent to the employee feed.
type ConfigAPI struct {
	ID                int64     `json:"id,omitempty"`
	EmpresaID         int64     `json:"empresa_id"`
	ChaveFuncionario  string    `json:"chave_funcionario"`
	CodigoFuncionario string    `json:"codigo_funcionario"`
	FlagAtivo         bool      `json:"flag_ativo"`
	FlagInativo       bool      `json:"flag_inativo"`
	FlagPendente      bool      `json:"flag_pendente"`
	FlagFerias        bool      `json:"flag_ferias"`
	FlagAfastado      bool      `json:"flag_afastado"`
	ChaveAbsenteismo  string    `json:"chave_absenteismo"`
	CodigoAbsenteismo string    `json:"codigo_absenteismo"`
	CreatedAt         time.Time `json:"created_at,omitempty"`
	UpdatedAt         time.Time `json:"updated_at,omitempty"`
}

// HasEmployeeFeed reports whether the employee feed credentials are set.
func (c ConfigAPI) HasEmployeeFeed() bool {
	return c.ChaveFuncionario != "" && c.CodigoFuncionario != ""
}

// HasAbsenceFeed reports whether the absenteeism feed credentials are set.
func (c ConfigAPI) HasAbsenceFeed() bool {
	return c.ChaveAbsenteismo != "" && c.CodigoAbsenteismo != ""
}
