package soc

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Int tolerates the feed's loose typing: numbers, numeric strings, empty
// strings and null all decode without error.
type Int struct {
	Value int
	Valid bool
}

func (i *Int) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*i = Int{}
		return nil
	}
	s := string(data)
	if data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*i = Int{}
			return nil
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*i = Int{Value: n, Valid: true}
	return nil
}

// Ptr returns the value as a nullable pointer for persistence.
func (i Int) Ptr() *int {
	if !i.Valid {
		return nil
	}
	v := i.Value
	return &v
}

// Date accepts the date formats observed in feed payloads. Empty strings and
// null decode to the zero Date.
type Date struct {
	Value time.Time
	Valid bool
}

var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	time.RFC3339,
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		if string(bytes.TrimSpace(data)) == "null" {
			*d = Date{}
			return nil
		}
		return err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		*d = Date{}
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			*d = Date{Value: t, Valid: true}
			return nil
		}
	}
	// Unparseable dates become null rather than failing the row.
	*d = Date{}
	return nil
}

func (d Date) Ptr() *time.Time {
	if !d.Valid {
		return nil
	}
	v := d.Value
	return &v
}

// EmployeeRecord is one row of the SOC employee feed.
type EmployeeRecord struct {
	Codigo               string `json:"CODIGO"`
	Nome                 string `json:"NOME"`
	CodigoEmpresa        string `json:"CODIGOEMPRESA"`
	NomeEmpresa          string `json:"NOMEEMPRESA"`
	CodigoUnidade        string `json:"CODIGOUNIDADE"`
	NomeUnidade          string `json:"NOMEUNIDADE"`
	CodigoSetor          string `json:"CODIGOSETOR"`
	NomeSetor            string `json:"NOMESETOR"`
	CodigoCargo          string `json:"CODIGOCARGO"`
	NomeCargo            string `json:"NOMECARGO"`
	CBOCargo             string `json:"CBOCARGO"`
	CCusto               string `json:"CCUSTO"`
	NomeCentroCusto      string `json:"NOMECENTROCUSTO"`
	MatriculaFuncionario string `json:"MATRICULAFUNCIONARIO"`
	CPF                  string `json:"CPF"`
	RG                   string `json:"RG"`
	UFRG                 string `json:"UFRG"`
	OrgaoEmissorRG       string `json:"ORGAOEMISSORRG"`
	Situacao             string `json:"SITUACAO"`
	Sexo                 Int    `json:"SEXO"`
	PIS                  string `json:"PIS"`
	CTPS                 string `json:"CTPS"`
	SerieCTPS            string `json:"SERIECTPS"`
	EstadoCivil          Int    `json:"ESTADOCIVIL"`
	TipoContratacao      Int    `json:"TIPOCONTATACAO"`
	DataNascimento       Date   `json:"DATA_NASCIMENTO"`
	DataAdmissao         Date   `json:"DATA_ADMISSAO"`
	DataDemissao         Date   `json:"DATA_DEMISSAO"`
	Endereco             string `json:"ENDERECO"`
	NumeroEndereco       string `json:"NUMERO_ENDERECO"`
	Bairro               string `json:"BAIRRO"`
	Cidade               string `json:"CIDADE"`
	UF                   string `json:"UF"`
	CEP                  string `json:"CEP"`
	TelefoneResidencial  string `json:"TELEFONERESIDENCIAL"`
	TelefoneCelular      string `json:"TELEFONECELULAR"`
	Email                string `json:"EMAIL"`
	Deficiente           Int    `json:"DEFICIENTE"`
	Deficiencia          string `json:"DEFICIENCIA"`
	NomeMaeFuncionario   string `json:"NM_MAE_FUNCIONARIO"`
	DataUltAlteracao     Date   `json:"DATAULTALTERACAO"`
	MatriculaRH          string `json:"MATRICULARH"`
	Cor                  Int    `json:"COR"`
	Escolaridade         Int    `json:"ESCOLARIDADE"`
	Naturalidade         string `json:"NATURALIDADE"`
	Ramal                string `json:"RAMAL"`
	RegimeRevezamento    Int    `json:"REGIMEREVEZAMENTO"`
	RegimeTrabalho       string `json:"REGIMETRABALHO"`
	TelComercial         string `json:"TELCOMERCIAL"`
	TurnoTrabalho        Int    `json:"TURNOTRABALHO"`
	RHUnidade            string `json:"RHUNIDADE"`
	RHSetor              string `json:"RHSETOR"`
	RHCargo              string `json:"RHCARGO"`
	RHCentroCustoUnidade string `json:"RHCENTROCUSTOUNIDADE"`
}

// AbsenceRecord is one row of the SOC absenteeism feed.
type AbsenceRecord struct {
	Unidade            string `json:"UNIDADE"`
	Setor              string `json:"SETOR"`
	MatriculaFunc      string `json:"MATRICULA_FUNC"`
	DtNascimento       Date   `json:"DT_NASCIMENTO"`
	Sexo               Int    `json:"SEXO"`
	TipoAtestado       Int    `json:"TIPO_ATESTADO"`
	DtInicioAtestado   Date   `json:"DT_INICIO_ATESTADO"`
	DtFimAtestado      Date   `json:"DT_FIM_ATESTADO"`
	HoraInicioAtestado string `json:"HORA_INICIO_ATESTADO"`
	HoraFimAtestado    string `json:"HORA_FIM_ATESTADO"`
	DiasAfastados      Int    `json:"DIAS_AFASTADOS"`
	HorasAfastado      string `json:"HORAS_AFASTADO"`
	CIDPrincipal       string `json:"CID_PRINCIPAL"`
	DescricaoCID       string `json:"DESCRICAO_CID"`
	GrupoPatologico    string `json:"GRUPO_PATOLOGICO"`
	TipoLicenca        string `json:"TIPO_LICENCA"`
}

// EmployeeParams is the parameter blob for the employee feed. The status
// flags are either "Sim" or empty, matching what the feed expects.
type EmployeeParams struct {
	Empresa   string `json:"empresa"`
	Codigo    string `json:"codigo"`
	Chave     string `json:"chave"`
	TipoSaida string `json:"tipoSaida"`
	Ativo     string `json:"ativo"`
	Inativo   string `json:"inativo"`
	Afastado  string `json:"afastado"`
	Pendente  string `json:"pendente"`
	Ferias    string `json:"ferias"`
}

// AbsenceParams is the parameter blob for the absenteeism feed. Dates are
// formatted dd/mm/yyyy.
type AbsenceParams struct {
	Empresa         string `json:"empresa"`
	Codigo          string `json:"codigo"`
	Chave           string `json:"chave"`
	TipoSaida       string `json:"tipoSaida"`
	EmpresaTrabalho string `json:"empresaTrabalho"`
	DataInicio      string `json:"dataInicio"`
	DataFim         string `json:"dataFim"`
}

// Flag converts an inclusion flag to the feed's "Sim"/"" convention.
func Flag(b bool) string {
	if b {
		return "Sim"
	}
	return ""
}

// Str maps a feed string to a nullable column value: blank stays null.
func Str(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
