package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vitalis-care/vitalis-backend-go/internal/domain/user"
	"github.com/vitalis-care/vitalis-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

const userColumns = `id, nome, email, senha, cargo, empresa_id, is_admin, is_premium, ultimo_login, created_at, updated_at`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Nome, &u.Email, &u.SenhaHash, &u.Cargo, &u.EmpresaID,
		&u.IsAdmin, &u.IsPremium, &u.UltimoLogin, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO usuarios (nome, email, senha, cargo, empresa_id, is_admin, is_premium)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + userColumns

	created, err := scanUser(q.QueryRow(ctx, query,
		newUser.Nome, newUser.Email, newUser.SenhaHash, newUser.Cargo,
		newUser.EmpresaID, newUser.IsAdmin, newUser.IsPremium,
	))
	if err != nil {
		return user.User{}, fmt.Errorf("failed to create usuario: %w", err)
	}
	return created, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id int64) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM usuarios WHERE id = $1`

	u, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get usuario by id: %w", err)
	}
	return u, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM usuarios WHERE email = $1`

	u, err := scanUser(q.QueryRow(ctx, query, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get usuario by email: %w", err)
	}
	return u, nil
}

// UpdateProfile implements user.UserRepository. The column list is fixed:
// COALESCE keeps the current value for fields the caller did not set.
func (r *userRepositoryImpl) UpdateProfile(ctx context.Context, id int64, update user.ProfileUpdate) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE usuarios
		SET nome = COALESCE($1, nome),
		    email = COALESCE($2, email),
		    senha = COALESCE($3, senha),
		    cargo = COALESCE($4, cargo)
		WHERE id = $5
		RETURNING ` + userColumns

	u, err := scanUser(q.QueryRow(ctx, query,
		update.Nome, update.Email, update.SenhaHash, update.Cargo, id,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to update usuario profile: %w", err)
	}
	return u, nil
}

// UpdatePremium implements user.UserRepository.
func (r *userRepositoryImpl) UpdatePremium(ctx context.Context, id int64, isPremium bool) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE usuarios
		SET is_premium = $1
		WHERE id = $2
		RETURNING ` + userColumns

	u, err := scanUser(q.QueryRow(ctx, query, isPremium, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to update usuario premium flag: %w", err)
	}
	return u, nil
}

// TouchLastLogin implements user.UserRepository.
func (r *userRepositoryImpl) TouchLastLogin(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `UPDATE usuarios SET ultimo_login = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to touch ultimo_login: %w", err)
	}
	return nil
}
