package response

import (
	"errors"
	"net/http"

	"github.com/vitalis-care/vitalis-backend-go/internal/domain/absence"
	"github.com/vitalis-care/vitalis-backend-go/internal/domain/apiconfig"
	"github.com/vitalis-care/vitalis-backend-go/internal/domain/auth"
	"github.com/vitalis-care/vitalis-backend-go/internal/domain/company"
	"github.com/vitalis-care/vitalis-backend-go/internal/domain/employee"
	"github.com/vitalis-care/vitalis-backend-go/internal/domain/synclog"
	"github.com/vitalis-care/vitalis-backend-go/internal/domain/user"
	"github.com/vitalis-care/vitalis-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrEmailInUse):
		Conflict(w, err.Error())
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, auth.ErrCompanyRequired):
		BadRequest(w, "Dados inválidos", err.Error())

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, err.Error())
	case errors.Is(err, user.ErrPremiumRequired):
		Forbidden(w, err.Error())

	// Company and employee domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, employee.ErrInvalidFeedResponse):
		BadRequest(w, "Resposta inválida", err.Error())

	// Absenteeism domain errors
	case errors.Is(err, absence.ErrDateRangeRequired):
		BadRequest(w, "Dados inválidos", err.Error())
	case errors.Is(err, absence.ErrDateRangeTooWide):
		BadRequest(w, "Intervalo inválido", err.Error())

	// Feed configuration errors
	case errors.Is(err, apiconfig.ErrConfigNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, apiconfig.ErrEmployeeFeedNotConfigured):
		BadRequest(w, "Configuração inválida", err.Error())
	case errors.Is(err, apiconfig.ErrAbsenceFeedNotConfigured):
		BadRequest(w, "Configuração inválida", err.Error())

	// Sync log domain errors
	case errors.Is(err, synclog.ErrLogNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, synclog.ErrLogForbidden):
		Forbidden(w, err.Error())

	// Default
	default:
		InternalServerError(w, "Ocorreu um erro inesperado")
	}
}
