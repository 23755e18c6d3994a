package auth

import "context"

// Principal is the authenticated caller, decoded once from the JWT by the
// auth middleware and passed explicitly from handlers into services.
type Principal struct {
	UserID    int64
	Nome      string
	Email     string
	EmpresaID int64 // 0 when the user has no company yet
	IsAdmin   bool
	IsPremium bool
}

type principalKey struct{}

// WithPrincipal returns a context carrying the authenticated principal.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the authenticated principal, or ErrInvalidToken
// when the request was not authenticated.
func PrincipalFromContext(ctx context.Context) (Principal, error) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	if !ok {
		return Principal{}, ErrInvalidToken
	}
	return p, nil
}
