package user

import "context"

// ProfileUpdate is the allow-listed set of profile fields a user may change.
// Only non-nil fields are written; the column list is fixed in the
// repository, never derived from request keys.
type ProfileUpdate struct {
	Nome      *string
	Email     *string
	SenhaHash *string
	Cargo     *string
}

type UserRepository interface {
	Create(ctx context.Context, newUser User) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	UpdateProfile(ctx context.Context, id int64, update ProfileUpdate) (User, error)
	UpdatePremium(ctx context.Context, id int64, isPremium bool) (User, error)
	TouchLastLogin(ctx context.Context, id int64) error
}
