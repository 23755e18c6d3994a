package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/vitalis-care/vitalis-backend-go/internal/domain/auth"
	"github.com/vitalis-care/vitalis-backend-go/internal/domain/user"
	"github.com/vitalis-care/vitalis-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwt.Service
}

func NewAuthService(userRepository user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepository,
		Service:        jwtService,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.SenhaHash), []byte(req.Senha)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	// Login proceeds even when the timestamp update fails.
	if err := a.UserRepository.TouchLastLogin(ctx, userData.ID); err != nil {
		slog.Warn("Failed to update ultimo_login", "user_id", userData.ID, "error", err)
	}

	token, _, err := a.Service.GenerateToken(userData)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create token: %w", err)
	}

	return auth.TokenResponse{User: userData, Token: token}, nil
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
	_, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err == nil {
		return auth.TokenResponse{}, auth.ErrEmailInUse
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return auth.TokenResponse{}, fmt.Errorf("failed to check email: %w", err)
	}

	senhaHash, err := a.hashPassword(req.Senha)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser, err := a.UserRepository.Create(ctx, user.User{
		Nome:      req.Nome,
		Email:     req.Email,
		SenhaHash: senhaHash,
		Cargo:     req.Cargo,
		EmpresaID: req.EmpresaID,
	})
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	token, _, err := a.Service.GenerateToken(newUser)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create token: %w", err)
	}

	return auth.TokenResponse{User: newUser, Token: token}, nil
}

// Profile implements auth.AuthService.
func (a *AuthServiceImpl) Profile(ctx context.Context, userID int64) (user.User, error) {
	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.User{}, auth.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return userData, nil
}
