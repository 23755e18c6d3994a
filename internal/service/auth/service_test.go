package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitalis-care/vitalis-backend-go/internal/domain/auth"
	"github.com/vitalis-care/vitalis-backend-go/internal/domain/user"
	"github.com/vitalis-care/vitalis-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	byEmail     map[string]user.User
	lastLoginID int64
	touchErr    error
}

func newFakeUserRepo(users ...user.User) *fakeUserRepo {
	repo := &fakeUserRepo{byEmail: map[string]user.User{}}
	for _, u := range users {
		repo.byEmail[u.Email] = u
	}
	return repo
}

func (f *fakeUserRepo) Create(ctx context.Context, newUser user.User) (user.User, error) {
	newUser.ID = int64(len(f.byEmail) + 1)
	newUser.CreatedAt = time.Now()
	f.byEmail[newUser.Email] = newUser
	return newUser, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (user.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) UpdateProfile(ctx context.Context, id int64, update user.ProfileUpdate) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) UpdatePremium(ctx context.Context, id int64, isPremium bool) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) TouchLastLogin(ctx context.Context, id int64) error {
	f.lastLoginID = id
	return f.touchErr
}

func testJWTService(t *testing.T) jwt.Service {
	t.Helper()
	return jwt.NewJWTService("test-secret-key-with-enough-length", "1h")
}

func hashOf(t *testing.T, senha string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLogin(t *testing.T) {
	empresaID := int64(1)
	repo := newFakeUserRepo(user.User{
		ID:        7,
		Nome:      "Maria Silva",
		Email:     "maria@vitalis.com.br",
		SenhaHash: hashOf(t, "Senha@123"),
		EmpresaID: &empresaID,
	})
	service := NewAuthService(repo, testJWTService(t))

	resp, err := service.Login(context.Background(), auth.LoginRequest{
		Email: "maria@vitalis.com.br",
		Senha: "Senha@123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, int64(7), resp.User.ID)
	assert.Equal(t, int64(7), repo.lastLoginID)
}

func TestLoginInvalidCredentials(t *testing.T) {
	repo := newFakeUserRepo(user.User{
		ID:        7,
		Email:     "maria@vitalis.com.br",
		SenhaHash: hashOf(t, "Senha@123"),
	})
	service := NewAuthService(repo, testJWTService(t))

	_, err := service.Login(context.Background(), auth.LoginRequest{
		Email: "maria@vitalis.com.br",
		Senha: "senha-errada",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	// Unknown email surfaces the same error as a wrong password.
	_, err = service.Login(context.Background(), auth.LoginRequest{
		Email: "ninguem@vitalis.com.br",
		Senha: "Senha@123",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginSurvivesTouchFailure(t *testing.T) {
	repo := newFakeUserRepo(user.User{
		ID:        7,
		Email:     "maria@vitalis.com.br",
		SenhaHash: hashOf(t, "Senha@123"),
	})
	repo.touchErr = assert.AnError
	service := NewAuthService(repo, testJWTService(t))

	resp, err := service.Login(context.Background(), auth.LoginRequest{
		Email: "maria@vitalis.com.br",
		Senha: "Senha@123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestRegister(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewAuthService(repo, testJWTService(t))

	cargo := "Analista de RH"
	resp, err := service.Register(context.Background(), auth.RegisterRequest{
		Nome:  "João Souza",
		Email: "joao@vitalis.com.br",
		Senha: "Senha@123",
		Cargo: &cargo,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "João Souza", resp.User.Nome)

	stored, err := repo.GetByEmail(context.Background(), "joao@vitalis.com.br")
	require.NoError(t, err)
	assert.NotEqual(t, "Senha@123", stored.SenhaHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.SenhaHash), []byte("Senha@123")))
}

func TestRegisterEmailInUse(t *testing.T) {
	repo := newFakeUserRepo(user.User{ID: 7, Email: "maria@vitalis.com.br"})
	service := NewAuthService(repo, testJWTService(t))

	_, err := service.Register(context.Background(), auth.RegisterRequest{
		Nome:  "Maria Silva",
		Email: "maria@vitalis.com.br",
		Senha: "Senha@123",
	})
	assert.ErrorIs(t, err, auth.ErrEmailInUse)
}

func TestProfile(t *testing.T) {
	repo := newFakeUserRepo(user.User{ID: 7, Email: "maria@vitalis.com.br", Nome: "Maria Silva"})
	service := NewAuthService(repo, testJWTService(t))

	u, err := service.Profile(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", u.Nome)

	_, err = service.Profile(context.Background(), 99)
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}
