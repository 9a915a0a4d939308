// Package debt contains debt management use cases.
package debt

import (
	"context"
	"fmt"

	"github.com/debt-manager/backend/internal/application/adapter"
	"github.com/debt-manager/backend/internal/domain/entity"
)

// GetDebtInput represents the input for retrieving a debt.
type GetDebtInput struct {
	ID string
}

// GetDebtOutput represents the output of retrieving a debt.
type GetDebtOutput struct {
	Debt   *entity.Debt
	Status *entity.Status
}

// GetDebtUseCase handles debt retrieval logic.
type GetDebtUseCase struct {
	debtRepo   adapter.DebtRepository
	statusRepo adapter.StatusRepository
}

// NewGetDebtUseCase creates a new GetDebtUseCase instance.
func NewGetDebtUseCase(debtRepo adapter.DebtRepository, statusRepo adapter.StatusRepository) *GetDebtUseCase {
	return &GetDebtUseCase{
		debtRepo:   debtRepo,
		statusRepo: statusRepo,
	}
}

// Execute retrieves a debt and its resolved status by ID.
func (uc *GetDebtUseCase) Execute(ctx context.Context, input GetDebtInput) (*GetDebtOutput, error) {
	debt, err := uc.debtRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	status, err := uc.statusRepo.FindByID(ctx, debt.StatusID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve status: %w", err)
	}

	return &GetDebtOutput{
		Debt:   debt,
		Status: status,
	}, nil
}
