package employee

import (
	"context"

	"github.com/vitalis-care/vitalis-backend-go/internal/domain/auth"
)

// SyncResult summarizes one sync invocation: how many rows the feed
// returned, how many were persisted, and the log row tracking the run.
type SyncResult struct {
	TotalRegistros       int   `json:"totalRegistros"`
	RegistrosAtualizados int   `json:"registrosAtualizados"`
	LogID                int64 `json:"logId"`
}

type EmployeeService interface {
	List(ctx context.Context, empresaID int64) ([]Funcionario, error)
	Get(ctx context.Context, id int64, empresaID int64) (Funcionario, error)
	Sync(ctx context.Context, principal auth.Principal) (SyncResult, error)
}
