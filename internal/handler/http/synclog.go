package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/vitalis-care/vitalis-backend-go/internal/domain/auth"
	"github.com/vitalis-care/vitalis-backend-go/internal/domain/synclog"
	"github.com/vitalis-care/vitalis-backend-go/internal/handler/http/response"
)

type SyncLogHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type SyncLogHandlerImpl struct {
	syncLogService synclog.SyncLogService
}

func NewSyncLogHandler(syncLogService synclog.SyncLogService) SyncLogHandler {
	return &SyncLogHandlerImpl{syncLogService: syncLogService}
}

// List implements SyncLogHandler.
func (s *SyncLogHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	logs, err := s.syncLogService.List(r.Context(), principal.EmpresaID, limit)
	if err != nil {
		slog.Error("List sync logs error", "empresa_id", principal.EmpresaID, "error", err)
		response.HandleError(w, err)
		return
	}

	if logs == nil {
		logs = []synclog.SyncLog{}
	}
	response.Success(w, map[string]interface{}{
		"logs": logs,
	})
}

// Get implements SyncLogHandler.
func (s *SyncLogHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.HandleError(w, synclog.ErrLogNotFound)
		return
	}

	log, err := s.syncLogService.Get(r.Context(), id, principal.EmpresaID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"log": log,
	})
}
