// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/debt-manager/backend/internal/application/adapter"
	"github.com/debt-manager/backend/internal/domain/entity"
	domainerror "github.com/debt-manager/backend/internal/domain/error"
)

// LoginUserInput represents the input for user login.
type LoginUserInput struct {
	Email    string
	Password string
}

// LoginUserOutput represents the output of user login.
type LoginUserOutput struct {
	AccessToken string
	User        *entity.User
}

// LoginUserUseCase handles user login logic.
type LoginUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute performs the user login. An unknown email and a wrong password
// produce the same invalid-credentials error so the response does not
// reveal which accounts exist.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	user, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeInvalidCredentials,
				"invalid email or password",
				domainerror.ErrInvalidCredentials,
			)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := uc.passwordService.VerifyPassword(user.PasswordHash, input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid email or password",
			domainerror.ErrInvalidCredentials,
		)
	}

	accessToken, err := uc.tokenService.GenerateToken(ctx, user.ID, user.Email, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &LoginUserOutput{
		AccessToken: accessToken,
		User:        user,
	}, nil
}
