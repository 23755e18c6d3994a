package absence

import "time"

// Absenteismo is one medical-leave/certificate entry. The funcionario link is
// resolved best-effort by matricula at insert time and may stay null. Rows
// are append-only: each sync inserts what the feed returned.
type Absenteismo struct {
	ID                 int64      `json:"id"`
	Unidade            *string    `json:"unidade"`
	Setor              *string    `json:"setor"`
	MatriculaFunc      *string    `json:"matricula_func"`
	DtNascimento       *time.Time `json:"dt_nascimento"`
	Sexo               *int       `json:"sexo"`
	TipoAtestado       *int       `json:"tipo_atestado"`
	DtInicioAtestado   *time.Time `json:"dt_inicio_atestado"`
	DtFimAtestado      *time.Time `json:"dt_fim_atestado"`
	HoraInicioAtestado *string    `json:"hora_inicio_atestado"`
	HoraFimAtestado    *string    `json:"hora_fim_atestado"`
	DiasAfastados      *int       `json:"dias_afastados"`
	HorasAfastado      *string    `json:"horas_afastado"`
	CIDPrincipal       *string    `json:"cid_principal"`
	DescricaoCID       *string    `json:"descricao_cid"`
	GrupoPatologico    *string    `json:"grupo_patologico"`
	TipoLicenca        *string    `json:"tipo_licenca"`
	EmpresaID          int64      `json:"empresa_id"`
	FuncionarioID      *int64     `json:"funcionario_id"`
	NomeFuncionario    *string    `json:"nome_funcionario,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}
