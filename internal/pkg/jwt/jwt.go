package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/vitalis-care/vitalis-backend-go/internal/domain/auth"
	"github.com/vitalis-care/vitalis-backend-go/internal/domain/user"
)

type Service interface {
	GenerateToken(u user.User) (token string, expiresAt int64, err error)
	// PrincipalFromToken rebuilds the request principal from a decoded
	// token. It fails when any identity claim is missing or mistyped.
	PrincipalFromToken(token jwt.Token) (auth.Principal, error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey      string
	expirationTime string
	tokenAuth      *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, expirationTime string) Service {
	return &JWTService{
		secretKey:      secretKey,
		expirationTime: expirationTime,
		tokenAuth:      jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateToken(u user.User) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.expirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"user_id":    u.ID,
		"nome":       u.Nome,
		"email":      u.Email,
		"empresa_id": j.returnValueOrNil(u.EmpresaID),
		"is_admin":   u.IsAdmin,
		"is_premium": u.IsPremium,
		"exp":        expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) PrincipalFromToken(token jwt.Token) (auth.Principal, error) {
	var p auth.Principal

	userID, ok := claimInt64(token, "user_id")
	if !ok {
		return auth.Principal{}, auth.ErrInvalidToken
	}
	p.UserID = userID

	if nome, ok := token.Get("nome"); ok {
		p.Nome, _ = nome.(string)
	}
	email, ok := token.Get("email")
	if !ok {
		return auth.Principal{}, auth.ErrInvalidToken
	}
	p.Email, _ = email.(string)

	if empresaID, ok := claimInt64(token, "empresa_id"); ok {
		p.EmpresaID = empresaID
	}
	if isAdmin, ok := token.Get("is_admin"); ok {
		p.IsAdmin, _ = isAdmin.(bool)
	}
	if isPremium, ok := token.Get("is_premium"); ok {
		p.IsPremium, _ = isPremium.(bool)
	}

	return p, nil
}

func (j *JWTService) returnValueOrNil(value *int64) interface{} {
	if value == nil {
		return nil
	}
	return *value
}

// claimInt64 reads a numeric claim. jwx decodes JSON numbers as float64.
func claimInt64(token jwt.Token, name string) (int64, bool) {
	raw, ok := token.Get(name)
	if !ok || raw == nil {
		return 0, false
	}
	switch v := raw.(type) {
	case int64:
		return v, true
	case float64:
		return int64(v), true
	default:
		return 0, false
	}
}
