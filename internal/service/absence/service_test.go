package absence

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitalis-care/vitalis-backend-go/internal/config"
	"github.com/vitalis-care/vitalis-backend-go/internal/domain/absence"
	"github.com/vitalis-care/vitalis-backend-go/internal/domain/apiconfig"
	"github.com/vitalis-care/vitalis-backend-go/internal/domain/auth"
	"github.com/vitalis-care/vitalis-backend-go/internal/domain/employee"
	"github.com/vitalis-care/vitalis-backend-go/internal/domain/synclog"
	"github.com/vitalis-care/vitalis-backend-go/internal/pkg/soc"
)

type fakeAbsenceRepo struct {
	records []absence.Absenteismo

	countRecords int64
	totals       absence.Totals
	topCids      []absence.CIDCount
	topSetores   []absence.SetorCount
	evolucao     []absence.MonthBucket
}

func (f *fakeAbsenceRepo) ListByEmpresa(ctx context.Context, empresaID int64, filter absence.ListFilter) ([]absence.Absenteismo, error) {
	return f.records, nil
}

func (f *fakeAbsenceRepo) Create(ctx context.Context, registro absence.Absenteismo) (absence.Absenteismo, error) {
	registro.ID = int64(len(f.records) + 1)
	f.records = append(f.records, registro)
	return registro, nil
}

func (f *fakeAbsenceRepo) CountRecords(ctx context.Context, empresaID int64, filter absence.StatsFilter) (int64, error) {
	return f.countRecords, nil
}

func (f *fakeAbsenceRepo) GetTotals(ctx context.Context, empresaID int64, filter absence.StatsFilter) (absence.Totals, error) {
	return f.totals, nil
}

func (f *fakeAbsenceRepo) TopCIDs(ctx context.Context, empresaID int64, filter absence.StatsFilter, limit int) ([]absence.CIDCount, error) {
	if len(f.topCids) > limit {
		return f.topCids[:limit], nil
	}
	return f.topCids, nil
}

func (f *fakeAbsenceRepo) TopSetores(ctx context.Context, empresaID int64, filter absence.StatsFilter, limit int) ([]absence.SetorCount, error) {
	if len(f.topSetores) > limit {
		return f.topSetores[:limit], nil
	}
	return f.topSetores, nil
}

func (f *fakeAbsenceRepo) MonthlyEvolution(ctx context.Context, empresaID int64, filter absence.StatsFilter) ([]absence.MonthBucket, error) {
	return f.evolucao, nil
}

type fakeEmployeeRepo struct {
	byMatricula map[string]employee.Funcionario
	active      int64
}

func (f *fakeEmployeeRepo) ListByEmpresa(ctx context.Context, empresaID int64) ([]employee.Funcionario, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id int64, empresaID int64) (employee.Funcionario, error) {
	return employee.Funcionario{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByMatricula(ctx context.Context, matricula string, empresaID int64) (employee.Funcionario, error) {
	fn, ok := f.byMatricula[matricula]
	if !ok {
		return employee.Funcionario{}, employee.ErrEmployeeNotFound
	}
	return fn, nil
}

func (f *fakeEmployeeRepo) Upsert(ctx context.Context, funcionario employee.Funcionario) (employee.Funcionario, bool, error) {
	return funcionario, true, nil
}

func (f *fakeEmployeeRepo) CountActive(ctx context.Context, empresaID int64) (int64, error) {
	return f.active, nil
}

type fakeConfigRepo struct {
	cfg apiconfig.ConfigAPI
	err error
}

func (f *fakeConfigRepo) GetByEmpresa(ctx context.Context, empresaID int64) (apiconfig.ConfigAPI, error) {
	if f.err != nil {
		return apiconfig.ConfigAPI{}, f.err
	}
	return f.cfg, nil
}

func (f *fakeConfigRepo) Save(ctx context.Context, config apiconfig.ConfigAPI) (apiconfig.ConfigAPI, error) {
	f.cfg = config
	return config, nil
}

type fakeSyncLogRepo struct {
	logs     []synclog.SyncLog
	outcomes map[int64]synclog.Outcome
}

func newFakeSyncLogRepo() *fakeSyncLogRepo {
	return &fakeSyncLogRepo{outcomes: map[int64]synclog.Outcome{}}
}

func (f *fakeSyncLogRepo) Create(ctx context.Context, tipo string, empresaID, usuarioID int64, detalhes string) (synclog.SyncLog, error) {
	log := synclog.SyncLog{
		ID:         int64(len(f.logs) + 1),
		Tipo:       tipo,
		EmpresaID:  empresaID,
		Status:     synclog.StatusEmAndamento,
		Detalhes:   &detalhes,
		DataInicio: time.Now(),
		UsuarioID:  usuarioID,
	}
	f.logs = append(f.logs, log)
	return log, nil
}

func (f *fakeSyncLogRepo) Finish(ctx context.Context, id int64, outcome synclog.Outcome) (synclog.SyncLog, error) {
	f.outcomes[id] = outcome
	for i := range f.logs {
		if f.logs[i].ID == id {
			f.logs[i].Status = outcome.Status
			f.logs[i].RegistrosAfetados = outcome.RegistrosAfetados
			return f.logs[i], nil
		}
	}
	return synclog.SyncLog{}, synclog.ErrLogNotFound
}

func (f *fakeSyncLogRepo) ListByEmpresa(ctx context.Context, empresaID int64, limit int) ([]synclog.SyncLog, error) {
	return f.logs, nil
}

func (f *fakeSyncLogRepo) GetByID(ctx context.Context, id int64) (synclog.SyncLog, error) {
	for _, log := range f.logs {
		if log.ID == id {
			return log, nil
		}
	}
	return synclog.SyncLog{}, synclog.ErrLogNotFound
}

const testMinimumWage = 1412

var testConfig = apiconfig.ConfigAPI{
	EmpresaID:         1,
	ChaveFuncionario:  "chave-func",
	CodigoFuncionario: "999",
	ChaveAbsenteismo:  "chave-abs",
	CodigoAbsenteismo: "999",
}

func premiumPrincipal() auth.Principal {
	return auth.Principal{UserID: 10, EmpresaID: 1, IsPremium: true}
}

func freePrincipal() auth.Principal {
	return auth.Principal{UserID: 10, EmpresaID: 1}
}

func cidRanking(n int) []absence.CIDCount {
	out := make([]absence.CIDCount, n)
	for i := range out {
		cid := "J11"
		out[i] = absence.CIDCount{CIDPrincipal: &cid, Total: int64(n - i)}
	}
	return out
}

func setorRanking(n int) []absence.SetorCount {
	out := make([]absence.SetorCount, n)
	for i := range out {
		setor := "PRODUÇÃO"
		out[i] = absence.SetorCount{Setor: &setor, TotalRegistros: int64(n - i), TotalDias: int64(2 * (n - i))}
	}
	return out
}

func TestGetStatsPremium(t *testing.T) {
	absenceRepo := &fakeAbsenceRepo{
		countRecords: 57,
		totals:       absence.Totals{TotalDiasAfastados: 110, TotalFuncionariosAfastados: 12},
		topCids:      cidRanking(7),
		topSetores:   setorRanking(6),
		evolucao:     []absence.MonthBucket{{Mes: "2026-07", TotalRegistros: 30, TotalDias: 60}},
	}
	employeeRepo := &fakeEmployeeRepo{active: 10}
	service := NewAbsenceService(absenceRepo, employeeRepo, &fakeConfigRepo{cfg: testConfig}, newFakeSyncLogRepo(), nil, testMinimumWage)

	stats, err := service.GetStats(context.Background(), premiumPrincipal(), absence.StatsFilter{})
	require.NoError(t, err)

	assert.True(t, stats.IsPremium)
	// 110 days * 8h over 10 funcionarios * 220h/month.
	assert.Equal(t, 40.0, stats.TaxaAbsenteismo)
	require.NotNil(t, stats.PrejuizoFinanceiro)
	// 880h * (1412 / 220).
	assert.Equal(t, 5648.0, *stats.PrejuizoFinanceiro)
	assert.Equal(t, int64(57), stats.TotalRegistros)
	assert.Equal(t, int64(110), stats.TotalDiasAfastados)
	assert.Equal(t, int64(12), stats.TotalFuncionariosAfastados)
	assert.Equal(t, int64(10), stats.TotalFuncionarios)
	assert.Len(t, stats.TopCids, 7)
	assert.Len(t, stats.TopSetores, 6)
	assert.Len(t, stats.EvolucaoMensal, 1)
}

func TestGetStatsFreeAccount(t *testing.T) {
	absenceRepo := &fakeAbsenceRepo{
		totals:     absence.Totals{TotalDiasAfastados: 110},
		topCids:    cidRanking(7),
		topSetores: setorRanking(6),
	}
	service := NewAbsenceService(absenceRepo, &fakeEmployeeRepo{active: 10}, &fakeConfigRepo{cfg: testConfig}, newFakeSyncLogRepo(), nil, testMinimumWage)

	stats, err := service.GetStats(context.Background(), freePrincipal(), absence.StatsFilter{})
	require.NoError(t, err)

	assert.False(t, stats.IsPremium)
	assert.Nil(t, stats.PrejuizoFinanceiro)
	assert.Len(t, stats.TopCids, 5)
	assert.Len(t, stats.TopSetores, 5)
	// The rate itself is not premium-gated.
	assert.Equal(t, 40.0, stats.TaxaAbsenteismo)
}

func TestGetStatsZeroHeadcount(t *testing.T) {
	absenceRepo := &fakeAbsenceRepo{totals: absence.Totals{TotalDiasAfastados: 110}}
	service := NewAbsenceService(absenceRepo, &fakeEmployeeRepo{}, &fakeConfigRepo{cfg: testConfig}, newFakeSyncLogRepo(), nil, testMinimumWage)

	stats, err := service.GetStats(context.Background(), premiumPrincipal(), absence.StatsFilter{})
	require.NoError(t, err)

	assert.Zero(t, stats.TaxaAbsenteismo)
}

func TestGetStatsRequiresCompany(t *testing.T) {
	service := NewAbsenceService(&fakeAbsenceRepo{}, &fakeEmployeeRepo{}, &fakeConfigRepo{cfg: testConfig}, newFakeSyncLogRepo(), nil, testMinimumWage)

	_, err := service.GetStats(context.Background(), auth.Principal{UserID: 10}, absence.StatsFilter{})
	assert.ErrorIs(t, err, auth.ErrCompanyRequired)
}

func newFeedServer(t *testing.T, payload string) (*httptest.Server, *int) {
	t.Helper()
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(payload))
	}))
	t.Cleanup(server.Close)
	return server, &calls
}

func testSOCClient(baseURL string) *soc.Client {
	return soc.NewClient(config.SOCConfig{BaseURL: baseURL, Timeout: 5 * time.Second})
}

func TestSyncResolvesFuncionario(t *testing.T) {
	server, _ := newFeedServer(t, `[
		{"MATRICULA_FUNC":"M-1","DT_INICIO_ATESTADO":"2026-07-01","DT_FIM_ATESTADO":"2026-07-05","DIAS_AFASTADOS":"5","CID_PRINCIPAL":"J11"},
		{"MATRICULA_FUNC":"M-9","DIAS_AFASTADOS":2}
	]`)

	matricula := "M-1"
	employeeRepo := &fakeEmployeeRepo{byMatricula: map[string]employee.Funcionario{
		"M-1": {ID: 7, EmpresaID: 1, MatriculaFuncionario: &matricula},
	}}
	absenceRepo := &fakeAbsenceRepo{}
	logRepo := newFakeSyncLogRepo()
	service := NewAbsenceService(absenceRepo, employeeRepo, &fakeConfigRepo{cfg: testConfig}, logRepo, testSOCClient(server.URL), testMinimumWage)

	result, err := service.Sync(context.Background(), premiumPrincipal(), absence.SyncRequest{
		DataInicio: "2026-07-01",
		DataFim:    "2026-07-20",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.TotalRegistros)
	assert.Equal(t, 2, result.RegistrosAtualizados)

	require.Len(t, absenceRepo.records, 2)
	first := absenceRepo.records[0]
	require.NotNil(t, first.FuncionarioID)
	assert.Equal(t, int64(7), *first.FuncionarioID)
	require.NotNil(t, first.DiasAfastados)
	assert.Equal(t, 5, *first.DiasAfastados)
	require.NotNil(t, first.CIDPrincipal)
	assert.Equal(t, "J11", *first.CIDPrincipal)

	// Unknown matricula stays unlinked but is still imported.
	assert.Nil(t, absenceRepo.records[1].FuncionarioID)

	outcome := logRepo.outcomes[result.LogID]
	assert.Equal(t, synclog.StatusConcluido, outcome.Status)
	assert.Equal(t, 2, outcome.RegistrosAfetados)
}

func TestSyncValidatesRangeFirst(t *testing.T) {
	server, calls := newFeedServer(t, `[]`)
	logRepo := newFakeSyncLogRepo()
	service := NewAbsenceService(&fakeAbsenceRepo{}, &fakeEmployeeRepo{}, &fakeConfigRepo{cfg: testConfig}, logRepo, testSOCClient(server.URL), testMinimumWage)

	_, err := service.Sync(context.Background(), premiumPrincipal(), absence.SyncRequest{
		DataInicio: "2026-06-01",
		DataFim:    "2026-07-15",
	})
	assert.ErrorIs(t, err, absence.ErrDateRangeTooWide)

	_, err = service.Sync(context.Background(), premiumPrincipal(), absence.SyncRequest{DataInicio: "2026-06-01"})
	assert.ErrorIs(t, err, absence.ErrDateRangeRequired)

	// Rejected before any log row or feed call.
	assert.Empty(t, logRepo.logs)
	assert.Equal(t, 0, *calls)
}

func TestSyncRequiresConfiguredFeed(t *testing.T) {
	server, _ := newFeedServer(t, `[]`)
	cfg := testConfig
	cfg.ChaveAbsenteismo = ""
	service := NewAbsenceService(&fakeAbsenceRepo{}, &fakeEmployeeRepo{}, &fakeConfigRepo{cfg: cfg}, newFakeSyncLogRepo(), testSOCClient(server.URL), testMinimumWage)

	_, err := service.Sync(context.Background(), premiumPrincipal(), absence.SyncRequest{
		DataInicio: "2026-07-01",
		DataFim:    "2026-07-20",
	})
	assert.ErrorIs(t, err, apiconfig.ErrAbsenceFeedNotConfigured)
}
