// Package debt contains debt management use cases.
package debt

import (
	"context"
	"fmt"

	"github.com/debt-manager/backend/internal/application/adapter"
)

// DeleteDebtInput represents the input for deleting a debt.
type DeleteDebtInput struct {
	ID string
}

// DeleteDebtUseCase handles debt deletion logic.
type DeleteDebtUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewDeleteDebtUseCase creates a new DeleteDebtUseCase instance.
func NewDeleteDebtUseCase(debtRepo adapter.DebtRepository) *DeleteDebtUseCase {
	return &DeleteDebtUseCase{debtRepo: debtRepo}
}

// Execute deletes a debt. The existence check runs first so an absent ID
// surfaces as not-found before any mutation is attempted.
func (uc *DeleteDebtUseCase) Execute(ctx context.Context, input DeleteDebtInput) error {
	if _, err := uc.debtRepo.FindByID(ctx, input.ID); err != nil {
		return err
	}

	if err := uc.debtRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete debt: %w", err)
	}
	return nil
}
