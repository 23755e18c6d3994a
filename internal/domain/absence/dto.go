package absence

import (
	"context"
	"time"

	"github.com/vitalis-care/vitalis-backend-go/internal/domain/auth"
	"github.com/vitalis-care/vitalis-backend-go/internal/domain/employee"
	"github.com/vitalis-care/vitalis-backend-go/internal/pkg/soc"
)

// Stats is the absenteeism statistics payload. PrejuizoFinanceiro is nil for
// non-premium callers and their top lists are truncated to five entries; the
// visibility policy is applied in the service, never in the handler.
type Stats struct {
	IsPremium                  bool          `json:"isPremium"`
	TaxaAbsenteismo            float64       `json:"taxaAbsenteismo"`
	PrejuizoFinanceiro         *float64      `json:"prejuizoFinanceiro,omitempty"`
	TotalRegistros             int64         `json:"totalRegistros"`
	TotalDiasAfastados         int64         `json:"totalDiasAfastados"`
	TotalFuncionariosAfastados int64         `json:"totalFuncionariosAfastados"`
	TotalFuncionarios          int64         `json:"totalFuncionarios"`
	TopCids                    []CIDCount    `json:"topCids"`
	TopSetores                 []SetorCount  `json:"topSetores"`
	EvolucaoMensal             []MonthBucket `json:"evolucaoMensal"`
}

type SyncRequest struct {
	DataInicio string `json:"dataInicio"`
	DataFim    string `json:"dataFim"`
}

// ParseRange validates the requested window: both dates present, parseable,
// and spanning at most 30 calendar days.
func (r *SyncRequest) ParseRange() (time.Time, time.Time, error) {
	if r.DataInicio == "" || r.DataFim == "" {
		return time.Time{}, time.Time{}, ErrDateRangeRequired
	}
	inicio, err := time.Parse("2006-01-02", r.DataInicio)
	if err != nil {
		return time.Time{}, time.Time{}, ErrDateRangeRequired
	}
	fim, err := time.Parse("2006-01-02", r.DataFim)
	if err != nil {
		return time.Time{}, time.Time{}, ErrDateRangeRequired
	}
	if soc.DiffDays(inicio, fim) > 30 {
		return time.Time{}, time.Time{}, ErrDateRangeTooWide
	}
	return inicio, fim, nil
}

type AbsenceService interface {
	List(ctx context.Context, empresaID int64, filter ListFilter) ([]Absenteismo, error)
	GetStats(ctx context.Context, principal auth.Principal, filter StatsFilter) (Stats, error)
	Sync(ctx context.Context, principal auth.Principal, req SyncRequest) (employee.SyncResult, error)
}
