package synclog

import "context"

type SyncLogService interface {
	List(ctx context.Context, empresaID int64, limit int) ([]SyncLog, error)
	// Get returns the log entry, rejecting logs that belong to another
	// empresa with ErrLogForbidden.
	Get(ctx context.Context, id int64, empresaID int64) (SyncLog, error)
}
