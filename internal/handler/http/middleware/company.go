package middleware

import (
	"net/http"

	"github.com/vitalis-care/vitalis-backend-go/internal/domain/auth"
	"github.com/vitalis-care/vitalis-backend-go/internal/handler/http/response"
)

// CompanyRequired rejects callers whose account is not linked to an empresa.
// Tenant-scoped routes have nothing to operate on without one.
func CompanyRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, err := auth.PrincipalFromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		if principal.EmpresaID == 0 {
			response.HandleError(w, auth.ErrCompanyRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
