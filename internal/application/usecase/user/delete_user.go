// Package user contains user management use cases.
package user

import (
	"context"
	"fmt"

	"github.com/debt-manager/backend/internal/application/adapter"
)

// DeleteUserInput represents the input for deleting a user.
type DeleteUserInput struct {
	ID string
}

// DeleteUserUseCase handles user deletion logic.
type DeleteUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewDeleteUserUseCase creates a new DeleteUserUseCase instance.
func NewDeleteUserUseCase(userRepo adapter.UserRepository) *DeleteUserUseCase {
	return &DeleteUserUseCase{userRepo: userRepo}
}

// Execute deletes a user. The existence check runs first so an absent ID
// surfaces as not-found before any mutation is attempted.
func (uc *DeleteUserUseCase) Execute(ctx context.Context, input DeleteUserInput) error {
	if _, err := uc.userRepo.FindByID(ctx, input.ID); err != nil {
		return err
	}

	if err := uc.userRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
