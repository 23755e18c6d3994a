package user

import "time"

// User is an account holder. An account belongs to at most one empresa and
// carries the admin and premium flags used for authorization.
type User struct {
	ID          int64      `json:"id"`
	Nome        string     `json:"nome"`
	Email       string     `json:"email"`
	SenhaHash   string     `json:"-"`
	Cargo       *string    `json:"cargo"`
	EmpresaID   *int64     `json:"empresa_id"`
	IsAdmin     bool       `json:"is_admin"`
	IsPremium   bool       `json:"is_premium"`
	UltimoLogin *time.Time `json:"ultimo_login,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
