// Package user contains user management use cases.
package user

import (
	"context"

	"github.com/debt-manager/backend/internal/application/adapter"
	"github.com/debt-manager/backend/internal/domain/entity"
)

// GetUserInput represents the input for retrieving a user.
type GetUserInput struct {
	ID string
}

// GetUserOutput represents the output of retrieving a user.
type GetUserOutput struct {
	User *entity.User
}

// GetUserUseCase handles user retrieval logic.
type GetUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewGetUserUseCase creates a new GetUserUseCase instance.
func NewGetUserUseCase(userRepo adapter.UserRepository) *GetUserUseCase {
	return &GetUserUseCase{userRepo: userRepo}
}

// Execute retrieves a user by ID.
func (uc *GetUserUseCase) Execute(ctx context.Context, input GetUserInput) (*GetUserOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &GetUserOutput{User: user}, nil
}
