// Package debt contains debt management use cases.
package debt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/debt-manager/backend/internal/application/adapter"
	"github.com/debt-manager/backend/internal/domain/entity"
	domainerror "github.com/debt-manager/backend/internal/domain/error"
)

// UpdateDebtInput represents the input for updating a debt. Nil fields
// are left unchanged.
type UpdateDebtInput struct {
	ID           string
	Description  *string
	Amount       *decimal.Decimal
	DebtorName   *string
	CreditorName *string
	DueDate      *time.Time
	ClosingDate  *time.Time
	Notes        *string
	Status       *entity.StatusName
}

// UpdateDebtOutput represents the output of updating a debt.
type UpdateDebtOutput struct {
	Debt   *entity.Debt
	Status *entity.Status
}

// UpdateDebtUseCase handles debt update logic. The existence check runs
// before any mutation; absence surfaces as not-found, never as a write
// fault.
type UpdateDebtUseCase struct {
	debtRepo   adapter.DebtRepository
	statusRepo adapter.StatusRepository
}

// NewUpdateDebtUseCase creates a new UpdateDebtUseCase instance.
func NewUpdateDebtUseCase(debtRepo adapter.DebtRepository, statusRepo adapter.StatusRepository) *UpdateDebtUseCase {
	return &UpdateDebtUseCase{
		debtRepo:   debtRepo,
		statusRepo: statusRepo,
	}
}

// Execute performs the debt update.
func (uc *UpdateDebtUseCase) Execute(ctx context.Context, input UpdateDebtInput) (*UpdateDebtOutput, error) {
	debt, err := uc.debtRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Amount != nil {
		if input.Amount.IsNegative() {
			return nil, domainerror.NewDebtError(
				domainerror.ErrCodeNegativeAmount,
				"amount must not be negative",
				domainerror.ErrNegativeAmount,
			)
		}
		debt.Amount = *input.Amount
	}

	if input.Description != nil && *input.Description != debt.Description {
		exists, err := uc.debtRepo.ExistsByDescription(ctx, *input.Description)
		if err != nil {
			return nil, fmt.Errorf("failed to check debt existence: %w", err)
		}
		if exists {
			return nil, domainerror.NewDebtError(
				domainerror.ErrCodeDebtDescriptionExists,
				"a debt with this description already exists",
				domainerror.ErrDebtDescriptionExists,
			)
		}
		debt.Description = *input.Description
	}

	if input.DebtorName != nil {
		debt.DebtorName = *input.DebtorName
	}
	if input.CreditorName != nil {
		debt.CreditorName = *input.CreditorName
	}
	if input.DueDate != nil {
		debt.DueDate = input.DueDate
	}
	if input.ClosingDate != nil {
		debt.ClosingDate = input.ClosingDate
	}
	if input.Notes != nil {
		debt.Notes = input.Notes
	}

	if input.Status != nil {
		if !entity.IsValidStatusName(*input.Status) {
			return nil, domainerror.NewDebtError(
				domainerror.ErrCodeInvalidStatus,
				"status must be 'Pending', 'Paid', or 'Overdue'",
				domainerror.ErrInvalidStatus,
			)
		}
		status, err := uc.statusRepo.FindByName(ctx, *input.Status)
		if err != nil {
			if errors.Is(err, domainerror.ErrStatusNotFound) {
				return nil, domainerror.NewDebtError(
					domainerror.ErrCodeInvalidStatus,
					"status is not registered",
					domainerror.ErrInvalidStatus,
				)
			}
			return nil, fmt.Errorf("failed to resolve status: %w", err)
		}
		debt.StatusID = status.ID
	}

	updated, err := uc.debtRepo.Update(ctx, input.ID, debt)
	if err != nil {
		return nil, fmt.Errorf("failed to update debt: %w", err)
	}
	if !updated {
		return nil, domainerror.ErrDebtNotFound
	}

	status, err := uc.statusRepo.FindByID(ctx, debt.StatusID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve status: %w", err)
	}

	return &UpdateDebtOutput{
		Debt:   debt,
		Status: status,
	}, nil
}
