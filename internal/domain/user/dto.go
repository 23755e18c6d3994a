package user

import (
	"context"

	"github.com/vitalis-care/vitalis-backend-go/internal/pkg/validator"
)

type UpdateProfileRequest struct {
	Nome  *string `json:"nome"`
	Email *string `json:"email"`
	Senha *string `json:"senha"`
	Cargo *string `json:"cargo"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil {
		if !validator.IsValidEmail(*r.Email) {
			errs = append(errs, validator.ValidationError{
				Field:   "email",
				Message: "email inválido",
			})
		} else if !validator.IsBusinessEmail(*r.Email) {
			errs = append(errs, validator.ValidationError{
				Field:   "email",
				Message: "apenas emails corporativos são permitidos",
			})
		}
	}

	if r.Senha != nil && !validator.IsStrongPassword(*r.Senha) {
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

type UpdateSubscriptionRequest struct {
	IsPremium *bool `json:"is_premium"`
}

func (r *UpdateSubscriptionRequest) Validate() error {
	if r.IsPremium == nil {
		return validator.ValidationErrors{{
			Field:   "is_premium",
			Message: "status premium não informado",
		}}
	}
	return nil
}

type UserService interface {
	UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) (User, error)
	UpdateSubscription(ctx context.Context, userID int64, isPremium bool) (User, error)
}
