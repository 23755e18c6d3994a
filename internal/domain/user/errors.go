package user

import "errors"

var (
	ErrUserNotFound           = errors.New("usuário não existe ou foi removido")
	ErrAdminPrivilegeRequired = errors.New("permissão de administrador necessária")
	ErrPremiumRequired        = errors.New("plano premium necessário para acessar este recurso")
)
