package employee

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/vitalis-care/vitalis-backend-go/internal/domain/apiconfig"
	"github.com/vitalis-care/vitalis-backend-go/internal/domain/auth"
	"github.com/vitalis-care/vitalis-backend-go/internal/domain/company"
	"github.com/vitalis-care/vitalis-backend-go/internal/domain/employee"
	"github.com/vitalis-care/vitalis-backend-go/internal/domain/synclog"
	"github.com/vitalis-care/vitalis-backend-go/internal/pkg/soc"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	company.CompanyRepository
	apiconfig.ConfigRepository
	synclog.SyncLogRepository
	socClient *soc.Client
}

func NewEmployeeService(
	employeeRepository employee.EmployeeRepository,
	companyRepository company.CompanyRepository,
	configRepository apiconfig.ConfigRepository,
	syncLogRepository synclog.SyncLogRepository,
	socClient *soc.Client,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepository,
		CompanyRepository:  companyRepository,
		ConfigRepository:   configRepository,
		SyncLogRepository:  syncLogRepository,
		socClient:          socClient,
	}
}

// List implements employee.EmployeeService.
func (e *EmployeeServiceImpl) List(ctx context.Context, empresaID int64) ([]employee.Funcionario, error) {
	return e.EmployeeRepository.ListByEmpresa(ctx, empresaID)
}

// Get implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Get(ctx context.Context, id int64, empresaID int64) (employee.Funcionario, error) {
	return e.EmployeeRepository.GetByID(ctx, id, empresaID)
}

// Sync implements employee.EmployeeService. The import is best-effort: a row
// that fails to decode or persist is logged and skipped, never aborting the
// run. The sync log row is created before the feed call and always closed.
func (e *EmployeeServiceImpl) Sync(ctx context.Context, principal auth.Principal) (employee.SyncResult, error) {
	if principal.EmpresaID == 0 {
		return employee.SyncResult{}, auth.ErrCompanyRequired
	}
	empresaID := principal.EmpresaID

	cfg, err := e.ConfigRepository.GetByEmpresa(ctx, empresaID)
	if err != nil {
		if errors.Is(err, apiconfig.ErrConfigNotFound) {
			return employee.SyncResult{}, apiconfig.ErrEmployeeFeedNotConfigured
		}
		return employee.SyncResult{}, fmt.Errorf("failed to get configuracao: %w", err)
	}
	if !cfg.HasEmployeeFeed() {
		return employee.SyncResult{}, apiconfig.ErrEmployeeFeedNotConfigured
	}

	log, err := e.SyncLogRepository.Create(ctx, synclog.TipoFuncionarios, empresaID, principal.UserID,
		"Iniciando sincronização de funcionários")
	if err != nil {
		return employee.SyncResult{}, fmt.Errorf("failed to create sync log: %w", err)
	}

	params := soc.EmployeeParams{
		Empresa:   strings.TrimSpace(cfg.CodigoFuncionario),
		Codigo:    strings.TrimSpace(cfg.CodigoFuncionario),
		Chave:     strings.TrimSpace(cfg.ChaveFuncionario),
		TipoSaida: "json",
		Ativo:     soc.Flag(cfg.FlagAtivo),
		Inativo:   soc.Flag(cfg.FlagInativo),
		Afastado:  soc.Flag(cfg.FlagAfastado),
		Pendente:  soc.Flag(cfg.FlagPendente),
		Ferias:    soc.Flag(cfg.FlagFerias),
	}

	body, err := e.socClient.ExportData(ctx, params)
	if err != nil {
		e.finishLog(ctx, log.ID, synclog.Outcome{
			Status:       synclog.StatusErro,
			Detalhes:     "Erro na chamada à API SOC",
			MensagemErro: errMessage(err),
		})
		return employee.SyncResult{}, fmt.Errorf("failed to call SOC API: %w", err)
	}

	rows, err := soc.DecodeArray(body)
	if err != nil {
		e.finishLog(ctx, log.ID, synclog.Outcome{
			Status:       synclog.StatusErro,
			Detalhes:     "Resposta da API inválida ou vazia",
			MensagemErro: errMessage(err),
		})
		return employee.SyncResult{}, employee.ErrInvalidFeedResponse
	}

	if err := e.ensureEmpresa(ctx, empresaID, params.Empresa, rows); err != nil {
		slog.Warn("Failed to provision empresa", "empresa_id", empresaID, "error", err)
	}

	updated := 0
	for _, raw := range rows {
		var rec soc.EmployeeRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			slog.Error("Failed to decode funcionario row", "empresa_id", empresaID, "error", err)
			continue
		}

		if _, _, err := e.EmployeeRepository.Upsert(ctx, recordToFuncionario(rec, empresaID)); err != nil {
			slog.Error("Failed to persist funcionario", "codigo", rec.Codigo, "empresa_id", empresaID, "error", err)
			continue
		}
		updated++
	}

	e.finishLog(ctx, log.ID, synclog.Outcome{
		Status:            synclog.StatusConcluido,
		Detalhes:          fmt.Sprintf("Sincronização concluída. Processados %d funcionários.", len(rows)),
		RegistrosAfetados: updated,
	})

	return employee.SyncResult{
		TotalRegistros:       len(rows),
		RegistrosAtualizados: updated,
		LogID:                log.ID,
	}, nil
}

// unknownEmpresaNome is the placeholder used when the feed carries no
// company name; a later sync that does carry one replaces it.
const unknownEmpresaNome = "Empresa não identificada"

// ensureEmpresa provisions the empresa row from the first feed row when the
// user's empresa does not exist yet, and upgrades a placeholder name once
// the feed reveals the real one.
func (e *EmployeeServiceImpl) ensureEmpresa(ctx context.Context, empresaID int64, codigo string, rows []json.RawMessage) error {
	nome := feedEmpresaNome(rows)

	emp, err := e.CompanyRepository.GetByID(ctx, empresaID)
	if err == nil {
		if emp.Nome == unknownEmpresaNome && nome != "" {
			_, err = e.CompanyRepository.UpdateNome(ctx, emp.ID, nome)
			return err
		}
		return nil
	}
	if !errors.Is(err, company.ErrCompanyNotFound) {
		return err
	}

	if nome == "" {
		nome = unknownEmpresaNome
	}
	_, err = e.CompanyRepository.Create(ctx, company.Empresa{Codigo: codigo, Nome: nome})
	return err
}

func feedEmpresaNome(rows []json.RawMessage) string {
	if len(rows) == 0 {
		return ""
	}
	var first soc.EmployeeRecord
	if err := json.Unmarshal(rows[0], &first); err != nil {
		return ""
	}
	return strings.TrimSpace(first.NomeEmpresa)
}

func (e *EmployeeServiceImpl) finishLog(ctx context.Context, id int64, outcome synclog.Outcome) {
	if _, err := e.SyncLogRepository.Finish(ctx, id, outcome); err != nil {
		slog.Warn("Failed to finish sync log", "log_id", id, "error", err)
	}
}

func errMessage(err error) *string {
	msg := err.Error()
	return &msg
}

func recordToFuncionario(rec soc.EmployeeRecord, empresaID int64) employee.Funcionario {
	return employee.Funcionario{
		Codigo:               rec.Codigo,
		Nome:                 rec.Nome,
		EmpresaID:            empresaID,
		CodigoEmpresa:        soc.Str(rec.CodigoEmpresa),
		NomeEmpresa:          soc.Str(rec.NomeEmpresa),
		CodigoUnidade:        soc.Str(rec.CodigoUnidade),
		NomeUnidade:          soc.Str(rec.NomeUnidade),
		CodigoSetor:          soc.Str(rec.CodigoSetor),
		NomeSetor:            soc.Str(rec.NomeSetor),
		CodigoCargo:          soc.Str(rec.CodigoCargo),
		NomeCargo:            soc.Str(rec.NomeCargo),
		CBOCargo:             soc.Str(rec.CBOCargo),
		CCusto:               soc.Str(rec.CCusto),
		NomeCentroCusto:      soc.Str(rec.NomeCentroCusto),
		MatriculaFuncionario: soc.Str(rec.MatriculaFuncionario),
		CPF:                  soc.Str(rec.CPF),
		RG:                   soc.Str(rec.RG),
		UFRG:                 soc.Str(rec.UFRG),
		OrgaoEmissorRG:       soc.Str(rec.OrgaoEmissorRG),
		Situacao:             soc.Str(rec.Situacao),
		Sexo:                 rec.Sexo.Ptr(),
		PIS:                  soc.Str(rec.PIS),
		CTPS:                 soc.Str(rec.CTPS),
		SerieCTPS:            soc.Str(rec.SerieCTPS),
		EstadoCivil:          rec.EstadoCivil.Ptr(),
		TipoContratacao:      rec.TipoContratacao.Ptr(),
		DataNascimento:       rec.DataNascimento.Ptr(),
		DataAdmissao:         rec.DataAdmissao.Ptr(),
		DataDemissao:         rec.DataDemissao.Ptr(),
		Endereco:             soc.Str(rec.Endereco),
		NumeroEndereco:       soc.Str(rec.NumeroEndereco),
		Bairro:               soc.Str(rec.Bairro),
		Cidade:               soc.Str(rec.Cidade),
		UF:                   soc.Str(rec.UF),
		CEP:                  soc.Str(rec.CEP),
		TelefoneResidencial:  soc.Str(rec.TelefoneResidencial),
		TelefoneCelular:      soc.Str(rec.TelefoneCelular),
		Email:                soc.Str(rec.Email),
		Deficiente:           rec.Deficiente.Ptr(),
		Deficiencia:          soc.Str(rec.Deficiencia),
		NomeMaeFuncionario:   soc.Str(rec.NomeMaeFuncionario),
		DataUltAlteracao:     rec.DataUltAlteracao.Ptr(),
		MatriculaRH:          soc.Str(rec.MatriculaRH),
		Cor:                  rec.Cor.Ptr(),
		Escolaridade:         rec.Escolaridade.Ptr(),
		Naturalidade:         soc.Str(rec.Naturalidade),
		Ramal:                soc.Str(rec.Ramal),
		RegimeRevezamento:    rec.RegimeRevezamento.Ptr(),
		RegimeTrabalho:       soc.Str(rec.RegimeTrabalho),
		TelComercial:         soc.Str(rec.TelComercial),
		TurnoTrabalho:        rec.TurnoTrabalho.Ptr(),
		RHUnidade:            soc.Str(rec.RHUnidade),
		RHSetor:              soc.Str(rec.RHSetor),
		RHCargo:              soc.Str(rec.RHCargo),
		RHCentroCustoUnidade: soc.Str(rec.RHCentroCustoUnidade),
	}
}
