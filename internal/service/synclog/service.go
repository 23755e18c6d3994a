package synclog

import (
	"context"

	"github.com/vitalis-care/vitalis-backend-go/internal/domain/synclog"
)

type SyncLogServiceImpl struct {
	synclog.SyncLogRepository
}

func NewSyncLogService(syncLogRepository synclog.SyncLogRepository) synclog.SyncLogService {
	return &SyncLogServiceImpl{SyncLogRepository: syncLogRepository}
}

// List implements synclog.SyncLogService.
func (s *SyncLogServiceImpl) List(ctx context.Context, empresaID int64, limit int) ([]synclog.SyncLog, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.SyncLogRepository.ListByEmpresa(ctx, empresaID, limit)
}

// Get implements synclog.SyncLogService.
func (s *SyncLogServiceImpl) Get(ctx context.Context, id int64, empresaID int64) (synclog.SyncLog, error) {
	log, err := s.SyncLogRepository.GetByID(ctx, id)
	if err != nil {
		return synclog.SyncLog{}, err
	}
	if log.EmpresaID != empresaID {
		return synclog.SyncLog{}, synclog.ErrLogForbidden
	}
	return log, nil
}
