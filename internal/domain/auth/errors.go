package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("email ou senha incorretos")
	ErrInvalidToken       = errors.New("token inválido ou expirado")
	ErrEmailInUse         = errors.New("este email já está em uso")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrCompanyRequired    = errors.New("usuário não está vinculado a uma empresa")
)
