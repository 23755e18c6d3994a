package user

import (
	"context"
	"fmt"

	"github.com/vitalis-care/vitalis-backend-go/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	user.UserRepository
}

func NewUserService(userRepository user.UserRepository) user.UserService {
	return &UserServiceImpl{UserRepository: userRepository}
}

// UpdateProfile implements user.UserService.
func (u *UserServiceImpl) UpdateProfile(ctx context.Context, userID int64, req user.UpdateProfileRequest) (user.User, error) {
	update := user.ProfileUpdate{
		Nome:  req.Nome,
		Email: req.Email,
		Cargo: req.Cargo,
	}

	if req.Senha != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Senha), bcrypt.DefaultCost)
		if err != nil {
			return user.User{}, fmt.Errorf("failed to hash password: %w", err)
		}
		hashed := string(hash)
		update.SenhaHash = &hashed
	}

	updated, err := u.UserRepository.UpdateProfile(ctx, userID, update)
	if err != nil {
		return user.User{}, err
	}
	return updated, nil
}

// UpdateSubscription implements user.UserService.
func (u *UserServiceImpl) UpdateSubscription(ctx context.Context, userID int64, isPremium bool) (user.User, error) {
	updated, err := u.UserRepository.UpdatePremium(ctx, userID, isPremium)
	if err != nil {
		return user.User{}, err
	}
	return updated, nil
}
