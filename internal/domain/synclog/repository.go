package synclog

import "context"

// Outcome closes a log entry. Status must be concluido or erro; the
// repository stamps data_fim.
type Outcome struct {
	Status            string
	Detalhes          string
	MensagemErro      *string
	RegistrosAfetados int
}

type SyncLogRepository interface {
	Create(ctx context.Context, tipo string, empresaID, usuarioID int64, detalhes string) (SyncLog, error)
	Finish(ctx context.Context, id int64, outcome Outcome) (SyncLog, error)
	ListByEmpresa(ctx context.Context, empresaID int64, limit int) ([]SyncLog, error)
	GetByID(ctx context.Context, id int64) (SyncLog, error)
}
