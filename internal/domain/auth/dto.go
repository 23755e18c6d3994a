package auth

import (
	"context"

	"github.com/vitalis-care/vitalis-backend-go/internal/domain/user"
	"github.com/vitalis-care/vitalis-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email é obrigatório",
		})
	}
	if validator.IsEmpty(r.Senha) {
		errs = append(errs, validator.ValidationError{
			Field:   "senha",
			Message: "senha é obrigatória",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RegisterRequest struct {
	Nome      string  `json:"nome"`
	Email     string  `json:"email"`
	Senha     string  `json:"senha"`
	Cargo     *string `json:"cargo"`
	EmpresaID *int64  `json:"empresa_id"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Nome) {
		errs = append(errs, validator.ValidationError{
			Field:   "nome",
			Message: "nome é obrigatório",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email é obrigatório",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email inválido",
		})
	} else if !validator.IsBusinessEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "apenas emails corporativos são permitidos",
		})
	}

	if validator.IsEmpty(r.Senha) {
		errs = append(errs, validator.ValidationError{
			Field:   "senha",
			Message: "senha é obrigatória",
		})
	} else if !validator.IsStrongPassword(r.Senha) {
		errs = append(errs, validator.ValidationError{
			Field:   "senha",
			Message: "a senha deve ter no mínimo 8 caracteres, incluindo letras maiúsculas, minúsculas, números e símbolos",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// TokenResponse carries the authenticated user and the signed JWT, matching
// the login/register wire contract.
type TokenResponse struct {
	User  user.User `json:"user"`
	Token string    `json:"token"`
}

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Register(ctx context.Context, req RegisterRequest) (TokenResponse, error)
	Profile(ctx context.Context, userID int64) (user.User, error)
}
