package employee

import "time"

// Funcionario mirrors the SOC employee feed. The natural key within a tenant
// is (codigo, empresa_id); matricula_funcionario is the join key used by
// absenteeism records.
type Funcionario struct {
	ID                   int64      `json:"id"`
	Codigo               string     `json:"codigo"`
	Nome                 string     `json:"nome"`
	EmpresaID            int64      `json:"empresa_id"`
	CodigoEmpresa        *string    `json:"codigoempresa"`
	NomeEmpresa          *string    `json:"nomeempresa"`
	CodigoUnidade        *string    `json:"codigounidade"`
	NomeUnidade          *string    `json:"nomeunidade"`
	CodigoSetor          *string    `json:"codigosetor"`
	NomeSetor            *string    `json:"nomesetor"`
	CodigoCargo          *string    `json:"codigocargo"`
	NomeCargo            *string    `json:"nomecargo"`
	CBOCargo             *string    `json:"cbocargo"`
	CCusto               *string    `json:"ccusto"`
	NomeCentroCusto      *string    `json:"nomecentrocusto"`
	MatriculaFuncionario *string    `json:"matriculafuncionario"`
	CPF                  *string    `json:"cpf"`
	RG                   *string    `json:"rg"`
	UFRG                 *string    `json:"ufrg"`
	OrgaoEmissorRG       *string    `json:"orgaoemissorrg"`
	Situacao             *string    `json:"situacao"`
	Sexo                 *int       `json:"sexo"`
	PIS                  *string    `json:"pis"`
	CTPS                 *string    `json:"ctps"`
	SerieCTPS            *string    `json:"seriectps"`
	EstadoCivil          *int       `json:"estadocivil"`
	TipoContratacao      *int       `json:"tipocontatacao"`
	DataNascimento       *time.Time `json:"data_nascimento"`
	DataAdmissao         *time.Time `json:"data_admissao"`
	DataDemissao         *time.Time `json:"data_demissao"`
	Endereco             *string    `json:"endereco"`
	NumeroEndereco       *string    `json:"numero_endereco"`
	Bairro               *string    `json:"bairro"`
	Cidade               *string    `json:"cidade"`
	UF                   *string    `json:"uf"`
	CEP                  *string    `json:"cep"`
	TelefoneResidencial  *string    `json:"telefoneresidencial"`
	TelefoneCelular      *string    `json:"telefonecelular"`
	Email                *string    `json:"email"`
	Deficiente           *int       `json:"deficiente"`
	Deficiencia          *string    `json:"deficiencia"`
	NomeMaeFuncionario   *string    `json:"nm_mae_funcionario"`
	DataUltAlteracao     *time.Time `json:"dataultalteracao"`
	MatriculaRH          *string    `json:"matricularh"`
	Cor                  *int       `json:"cor"`
	Escolaridade         *int       `json:"escolaridade"`
	Naturalidade         *string    `json:"naturalidade"`
	Ramal                *string    `json:"ramal"`
	RegimeRevezamento    *int       `json:"regimerevezamento"`
	RegimeTrabalho       *string    `json:"regimetrabalho"`
	TelComercial         *string    `json:"telcomercial"`
	TurnoTrabalho        *int       `json:"turnotrabalho"`
	RHUnidade            *string    `json:"rhunidade"`
	RHSetor              *string    `json:"rhsetor"`
	RHCargo              *string    `json:"rhcargo"`
	RHCentroCustoUnidade *string    `json:"rhcentrocustounidade"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}
