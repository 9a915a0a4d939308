// Package user contains user management use cases.
package user

import (
	"context"
	"fmt"

	"github.com/debt-manager/backend/internal/application/adapter"
	"github.com/debt-manager/backend/internal/domain/entity"
	domainerror "github.com/debt-manager/backend/internal/domain/error"
)

// UpdateUserInput represents the input for updating a user. Nil fields
// are left unchanged.
type UpdateUserInput struct {
	ID       string
	Username *string
	Email    *string
	Name     *string
	Password *string
}

// UpdateUserOutput represents the output of updating a user.
type UpdateUserOutput struct {
	User *entity.User
}

// UpdateUserUseCase handles user update logic. The existence check runs
// before any mutation so callers get a clean not-found result instead of
// a server error; the small window between check and write is accepted.
type UpdateUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewUpdateUserUseCase creates a new UpdateUserUseCase instance.
func NewUpdateUserUseCase(userRepo adapter.UserRepository, passwordService adapter.PasswordService) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// Execute performs the user update.
func (uc *UpdateUserUseCase) Execute(ctx context.Context, input UpdateUserInput) (*UpdateUserOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Email != nil && *input.Email != user.Email {
		exists, err := uc.userRepo.ExistsByEmail(ctx, *input.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to check email existence: %w", err)
		}
		if exists {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeEmailExists,
				"a user with this email already exists",
				domainerror.ErrEmailAlreadyExists,
			)
		}
		user.Email = *input.Email
	}

	if input.Username != nil && *input.Username != user.Username {
		exists, err := uc.userRepo.ExistsByUsername(ctx, *input.Username)
		if err != nil {
			return nil, fmt.Errorf("failed to check username existence: %w", err)
		}
		if exists {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeUsernameExists,
				"a user with this username already exists",
				domainerror.ErrUsernameAlreadyExists,
			)
		}
		user.Username = *input.Username
	}

	if input.Name != nil {
		user.Name = *input.Name
	}

	if input.Password != nil {
		if err := uc.passwordService.ValidatePasswordStrength(*input.Password); err != nil {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeWeakPassword,
				"password does not meet minimum requirements",
				domainerror.ErrWeakPassword,
			)
		}
		hash, err := uc.passwordService.HashPassword(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	updated, err := uc.userRepo.Update(ctx, input.ID, user)
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	if !updated {
		return nil, domainerror.ErrUserNotFound
	}

	return &UpdateUserOutput{User: user}, nil
}
