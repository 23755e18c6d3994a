package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vitalis-care/vitalis-backend-go/internal/domain/synclog"
	"github.com/vitalis-care/vitalis-backend-go/internal/pkg/database"
)

type syncLogRepositoryImpl struct {
	db *database.DB
}

func NewSyncLogRepository(db *database.DB) synclog.SyncLogRepository {
	return &syncLogRepositoryImpl{db: db}
}

const syncLogColumns = `id, tipo, empresa_id, status, detalhes, data_inicio,
	data_fim, registros_afetados, mensagem_erro, usuario_id`

func scanSyncLog(row pgx.Row) (synclog.SyncLog, error) {
	var l synclog.SyncLog
	err := row.Scan(
		&l.ID, &l.Tipo, &l.EmpresaID, &l.Status, &l.Detalhes, &l.DataInicio,
		&l.DataFim, &l.RegistrosAfetados, &l.MensagemErro, &l.UsuarioID,
	)
	return l, err
}

// Create implements synclog.SyncLogRepository. New logs start em_andamento
// with data_inicio stamped server-side.
func (r *syncLogRepositoryImpl) Create(ctx context.Context, tipo string, empresaID, usuarioID int64, detalhes string) (synclog.SyncLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO logs_sincronizacao (tipo, empresa_id, status, detalhes, data_inicio, usuario_id)
		VALUES ($1, $2, $3, $4, NOW(), $5)
		RETURNING ` + syncLogColumns

	l, err := scanSyncLog(q.QueryRow(ctx, query, tipo, empresaID, synclog.StatusEmAndamento, detalhes, usuarioID))
	if err != nil {
		return synclog.SyncLog{}, fmt.Errorf("failed to create sync log: %w", err)
	}
	return l, nil
}

// Finish implements synclog.SyncLogRepository.
func (r *syncLogRepositoryImpl) Finish(ctx context.Context, id int64, outcome synclog.Outcome) (synclog.SyncLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE logs_sincronizacao
		SET status = $1, detalhes = $2, mensagem_erro = $3,
			registros_afetados = $4, data_fim = NOW()
		WHERE id = $5
		RETURNING ` + syncLogColumns

	l, err := scanSyncLog(q.QueryRow(ctx, query,
		outcome.Status, outcome.Detalhes, outcome.MensagemErro, outcome.RegistrosAfetados, id,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return synclog.SyncLog{}, synclog.ErrLogNotFound
		}
		return synclog.SyncLog{}, fmt.Errorf("failed to finish sync log: %w", err)
	}
	return l, nil
}

// ListByEmpresa implements synclog.SyncLogRepository.
func (r *syncLogRepositoryImpl) ListByEmpresa(ctx context.Context, empresaID int64, limit int) ([]synclog.SyncLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + syncLogColumns + `
		FROM logs_sincronizacao
		WHERE empresa_id = $1
		ORDER BY data_inicio DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, empresaID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sync logs: %w", err)
	}
	defer rows.Close()

	var logs []synclog.SyncLog
	for rows.Next() {
		l, err := scanSyncLog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sync log: %w", err)
		}
		logs = append(logs, l)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return logs, nil
}

// GetByID implements synclog.SyncLogRepository.
func (r *syncLogRepositoryImpl) GetByID(ctx context.Context, id int64) (synclog.SyncLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + syncLogColumns + ` FROM logs_sincronizacao WHERE id = $1`

	l, err := scanSyncLog(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return synclog.SyncLog{}, synclog.ErrLogNotFound
		}
		return synclog.SyncLog{}, fmt.Errorf("failed to get sync log: %w", err)
	}
	return l, nil
}
