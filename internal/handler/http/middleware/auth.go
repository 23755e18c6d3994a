package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/vitalis-care/vitalis-backend-go/internal/domain/auth"
	"github.com/vitalis-care/vitalis-backend-go/internal/handler/http/response"
	"github.com/vitalis-care/vitalis-backend-go/internal/pkg/jwt"
)

// AuthRequired verifies the bearer token and resolves it into an
// auth.Principal, stored once in the request context. Everything downstream
// reads the principal, never raw claims.
func AuthRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			principal, err := jwtService.PrincipalFromToken(token)
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), principal)))
		}
		return http.HandlerFunc(hfn)
	}
}
