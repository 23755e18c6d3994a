package synclog

import "errors"

var (
	ErrLogNotFound  = errors.New("log de sincronização não encontrado")
	ErrLogForbidden = errors.New("você não tem permissão para acessar este log")
)
