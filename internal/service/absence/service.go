package absence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/vitalis-care/vitalis-backend-go/internal/domain/absence"
	"github.com/vitalis-care/vitalis-backend-go/internal/domain/apiconfig"
	"github.com/vitalis-care/vitalis-backend-go/internal/domain/auth"
	"github.com/vitalis-care/vitalis-backend-go/internal/domain/employee"
	"github.com/vitalis-care/vitalis-backend-go/internal/domain/synclog"
	"github.com/vitalis-care/vitalis-backend-go/internal/pkg/soc"
	"golang.org/x/sync/errgroup"
)

// topListLimit caps the ranking queries; non-premium responses are trimmed
// further down to freeTopListLimit.
const (
	topListLimit     = 10
	freeTopListLimit = 5

	hoursPerDay          = 8
	workingHoursPerMonth = 220
)

type AbsenceServiceImpl struct {
	absence.AbsenceRepository
	employee.EmployeeRepository
	apiconfig.ConfigRepository
	synclog.SyncLogRepository
	socClient   *soc.Client
	minimumWage float64
}

func NewAbsenceService(
	absenceRepository absence.AbsenceRepository,
	employeeRepository employee.EmployeeRepository,
	configRepository apiconfig.ConfigRepository,
	syncLogRepository synclog.SyncLogRepository,
	socClient *soc.Client,
	minimumWage float64,
) absence.AbsenceService {
	return &AbsenceServiceImpl{
		AbsenceRepository:  absenceRepository,
		EmployeeRepository: employeeRepository,
		ConfigRepository:   configRepository,
		SyncLogRepository:  syncLogRepository,
		socClient:          socClient,
		minimumWage:        minimumWage,
	}
}

// List implements absence.AbsenceService.
func (a *AbsenceServiceImpl) List(ctx context.Context, empresaID int64, filter absence.ListFilter) ([]absence.Absenteismo, error) {
	if filter.Limit <= 0 {
		filter.Limit = 100
	}
	return a.AbsenceRepository.ListByEmpresa(ctx, empresaID, filter)
}

// GetStats implements absence.AbsenceService. The aggregates are independent
// queries, so they run concurrently. The premium policy is applied here: free
// accounts get no financial loss and at most five entries per ranking.
func (a *AbsenceServiceImpl) GetStats(ctx context.Context, principal auth.Principal, filter absence.StatsFilter) (absence.Stats, error) {
	if principal.EmpresaID == 0 {
		return absence.Stats{}, auth.ErrCompanyRequired
	}
	empresaID := principal.EmpresaID

	var (
		totalRegistros int64
		totals         absence.Totals
		topCids        []absence.CIDCount
		topSetores     []absence.SetorCount
		evolucao       []absence.MonthBucket
		headcount      int64
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		totalRegistros, err = a.AbsenceRepository.CountRecords(gCtx, empresaID, filter)
		return err
	})
	g.Go(func() (err error) {
		totals, err = a.AbsenceRepository.GetTotals(gCtx, empresaID, filter)
		return err
	})
	g.Go(func() (err error) {
		topCids, err = a.AbsenceRepository.TopCIDs(gCtx, empresaID, filter, topListLimit)
		return err
	})
	g.Go(func() (err error) {
		topSetores, err = a.AbsenceRepository.TopSetores(gCtx, empresaID, filter, topListLimit)
		return err
	})
	g.Go(func() (err error) {
		evolucao, err = a.AbsenceRepository.MonthlyEvolution(gCtx, empresaID, filter)
		return err
	})
	g.Go(func() (err error) {
		headcount, err = a.EmployeeRepository.CountActive(gCtx, empresaID)
		return err
	})

	if err := g.Wait(); err != nil {
		return absence.Stats{}, fmt.Errorf("failed to compute absenteismo stats: %w", err)
	}

	totalHoras := float64(totals.TotalDiasAfastados) * hoursPerDay

	var taxa float64
	if headcount > 0 {
		taxa = round2(totalHoras / (float64(headcount) * workingHoursPerMonth) * 100)
	}

	stats := absence.Stats{
		IsPremium:                  principal.IsPremium,
		TaxaAbsenteismo:            taxa,
		TotalRegistros:             totalRegistros,
		TotalDiasAfastados:         totals.TotalDiasAfastados,
		TotalFuncionariosAfastados: totals.TotalFuncionariosAfastados,
		TotalFuncionarios:          headcount,
		TopCids:                    topCids,
		TopSetores:                 topSetores,
		EvolucaoMensal:             evolucao,
	}

	if principal.IsPremium {
		prejuizo := round2(totalHoras * (a.minimumWage / workingHoursPerMonth))
		stats.PrejuizoFinanceiro = &prejuizo
	} else {
		if len(stats.TopCids) > freeTopListLimit {
			stats.TopCids = stats.TopCids[:freeTopListLimit]
		}
		if len(stats.TopSetores) > freeTopListLimit {
			stats.TopSetores = stats.TopSetores[:freeTopListLimit]
		}
	}

	return stats, nil
}

// Sync implements absence.AbsenceService. The date window is validated before
// anything is written or called. Rows are append-only; the funcionario link
// is resolved by matricula and left null when no match exists.
func (a *AbsenceServiceImpl) Sync(ctx context.Context, principal auth.Principal, req absence.SyncRequest) (employee.SyncResult, error) {
	if principal.EmpresaID == 0 {
		return employee.SyncResult{}, auth.ErrCompanyRequired
	}
	empresaID := principal.EmpresaID

	inicio, fim, err := req.ParseRange()
	if err != nil {
		return employee.SyncResult{}, err
	}

	cfg, err := a.ConfigRepository.GetByEmpresa(ctx, empresaID)
	if err != nil {
		if errors.Is(err, apiconfig.ErrConfigNotFound) {
			return employee.SyncResult{}, apiconfig.ErrAbsenceFeedNotConfigured
		}
		return employee.SyncResult{}, fmt.Errorf("failed to get configuracao: %w", err)
	}
	if !cfg.HasAbsenceFeed() {
		return employee.SyncResult{}, apiconfig.ErrAbsenceFeedNotConfigured
	}

	log, err := a.SyncLogRepository.Create(ctx, synclog.TipoAbsenteismo, empresaID, principal.UserID,
		fmt.Sprintf("Iniciando sincronização de absenteísmo para o período de %s a %s", req.DataInicio, req.DataFim))
	if err != nil {
		return employee.SyncResult{}, fmt.Errorf("failed to create sync log: %w", err)
	}

	params := soc.AbsenceParams{
		Empresa:    strings.TrimSpace(cfg.CodigoAbsenteismo),
		Codigo:     strings.TrimSpace(cfg.CodigoAbsenteismo),
		Chave:      strings.TrimSpace(cfg.ChaveAbsenteismo),
		TipoSaida:  "json",
		DataInicio: soc.FormatDate(inicio),
		DataFim:    soc.FormatDate(fim),
	}

	body, err := a.socClient.ExportData(ctx, params)
	if err != nil {
		a.finishLog(ctx, log.ID, synclog.Outcome{
			Status:       synclog.StatusErro,
			Detalhes:     "Erro na chamada à API SOC",
			MensagemErro: errMessage(err),
		})
		return employee.SyncResult{}, fmt.Errorf("failed to call SOC API: %w", err)
	}

	rows, err := soc.DecodeArray(body)
	if err != nil {
		a.finishLog(ctx, log.ID, synclog.Outcome{
			Status:       synclog.StatusErro,
			Detalhes:     "Resposta da API inválida ou vazia",
			MensagemErro: errMessage(err),
		})
		return employee.SyncResult{}, employee.ErrInvalidFeedResponse
	}

	updated := 0
	for _, raw := range rows {
		var rec soc.AbsenceRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			slog.Error("Failed to decode absenteismo row", "empresa_id", empresaID, "error", err)
			continue
		}

		registro := recordToAbsenteismo(rec, empresaID)
		registro.FuncionarioID = a.resolveFuncionario(ctx, rec.MatriculaFunc, empresaID)

		if _, err := a.AbsenceRepository.Create(ctx, registro); err != nil {
			slog.Error("Failed to persist absenteismo", "matricula", rec.MatriculaFunc, "empresa_id", empresaID, "error", err)
			continue
		}
		updated++
	}

	a.finishLog(ctx, log.ID, synclog.Outcome{
		Status:            synclog.StatusConcluido,
		Detalhes:          fmt.Sprintf("Sincronização concluída. Processados %d registros de absenteísmo.", len(rows)),
		RegistrosAfetados: updated,
	})

	return employee.SyncResult{
		TotalRegistros:       len(rows),
		RegistrosAtualizados: updated,
		LogID:                log.ID,
	}, nil
}

func (a *AbsenceServiceImpl) resolveFuncionario(ctx context.Context, matricula string, empresaID int64) *int64 {
	if strings.TrimSpace(matricula) == "" {
		return nil
	}
	funcionario, err := a.EmployeeRepository.GetByMatricula(ctx, matricula, empresaID)
	if err != nil {
		if !errors.Is(err, employee.ErrEmployeeNotFound) {
			slog.Warn("Failed to resolve funcionario by matricula", "matricula", matricula, "error", err)
		}
		return nil
	}
	return &funcionario.ID
}

func (a *AbsenceServiceImpl) finishLog(ctx context.Context, id int64, outcome synclog.Outcome) {
	if _, err := a.SyncLogRepository.Finish(ctx, id, outcome); err != nil {
		slog.Warn("Failed to finish sync log", "log_id", id, "error", err)
	}
}

func errMessage(err error) *string {
	msg := err.Error()
	return &msg
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func recordToAbsenteismo(rec soc.AbsenceRecord, empresaID int64) absence.Absenteismo {
	return absence.Absenteismo{
		Unidade:            soc.Str(rec.Unidade),
		Setor:              soc.Str(rec.Setor),
		MatriculaFunc:      soc.Str(rec.MatriculaFunc),
		DtNascimento:       rec.DtNascimento.Ptr(),
		Sexo:               rec.Sexo.Ptr(),
		TipoAtestado:       rec.TipoAtestado.Ptr(),
		DtInicioAtestado:   rec.DtInicioAtestado.Ptr(),
		DtFimAtestado:      rec.DtFimAtestado.Ptr(),
		HoraInicioAtestado: soc.Str(rec.HoraInicioAtestado),
		HoraFimAtestado:    soc.Str(rec.HoraFimAtestado),
		DiasAfastados:      rec.DiasAfastados.Ptr(),
		HorasAfastado:      soc.Str(rec.HorasAfastado),
		CIDPrincipal:       soc.Str(rec.CIDPrincipal),
		DescricaoCID:       soc.Str(rec.DescricaoCID),
		GrupoPatologico:    soc.Str(rec.GrupoPatologico),
		TipoLicenca:        soc.Str(rec.TipoLicenca),
		EmpresaID:          empresaID,
	}
}
