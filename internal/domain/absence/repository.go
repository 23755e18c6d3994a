package absence

import (
	"context"
	"time"
)

// ListFilter narrows absenteeism listings. The date bounds apply
// independently: DataInicio to dt_inicio_atestado, DataFim to
// dt_fim_atestado. This is a plain range filter, not an overlap test.
type ListFilter struct {
	DataInicio *time.Time
	DataFim    *time.Time
	Setor      string
	CID        string
	Limit      int
	Offset     int
}

// StatsFilter bounds the aggregate queries the same way ListFilter bounds
// listings.
type StatsFilter struct {
	DataInicio *time.Time
	DataFim    *time.Time
}

// Totals carries the two scalar aggregates computed in one query.
type Totals struct {
	TotalDiasAfastados         int64
	TotalFuncionariosAfastados int64
}

// CIDCount is one entry of the top-CID ranking.
type CIDCount struct {
	CIDPrincipal *string `json:"cid_principal"`
	DescricaoCID *string `json:"descricao_cid"`
	Total        int64   `json:"total"`
}

// SetorCount is one entry of the top-sector ranking, ordered by total
// absence days.
type SetorCount struct {
	Setor          *string `json:"setor"`
	TotalRegistros int64   `json:"total_registros"`
	TotalDias      int64   `json:"total_dias"`
}

// MonthBucket is one month of the chronological evolution series. Mes is
// rendered as "YYYY-MM".
type MonthBucket struct {
	Mes            string `json:"mes"`
	TotalRegistros int64  `json:"total_registros"`
	TotalDias      int64  `json:"total_dias"`
}

type AbsenceRepository interface {
	ListByEmpresa(ctx context.Context, empresaID int64, filter ListFilter) ([]Absenteismo, error)
	Create(ctx context.Context, registro Absenteismo) (Absenteismo, error)

	CountRecords(ctx context.Context, empresaID int64, filter StatsFilter) (int64, error)
	GetTotals(ctx context.Context, empresaID int64, filter StatsFilter) (Totals, error)
	TopCIDs(ctx context.Context, empresaID int64, filter StatsFilter, limit int) ([]CIDCount, error)
	TopSetores(ctx context.Context, empresaID int64, filter StatsFilter, limit int) ([]SetorCount, error)
	MonthlyEvolution(ctx context.Context, empresaID int64, filter StatsFilter) ([]MonthBucket, error)
}
