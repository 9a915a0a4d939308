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

// CreateDebtInput represents the input for debt creation.
type CreateDebtInput struct {
	UserID       string
	Description  string
	Amount       decimal.Decimal
	DebtorName   string
	CreditorName string
	DueDate      *time.Time
	Notes        *string
	Status       entity.StatusName
}

// CreateDebtOutput represents the output of debt creation.
type CreateDebtOutput struct {
	Debt   *entity.Debt
	Status *entity.Status
}

// CreateDebtUseCase handles debt creation logic. The description is a
// soft-unique key: a match found by the lookup terminates the operation
// in a conflict error before any insert is issued.
type CreateDebtUseCase struct {
	debtRepo   adapter.DebtRepository
	statusRepo adapter.StatusRepository
}

// NewCreateDebtUseCase creates a new CreateDebtUseCase instance.
func NewCreateDebtUseCase(debtRepo adapter.DebtRepository, statusRepo adapter.StatusRepository) *CreateDebtUseCase {
	return &CreateDebtUseCase{
		debtRepo:   debtRepo,
		statusRepo: statusRepo,
	}
}

// Execute performs the debt creation.
func (uc *CreateDebtUseCase) Execute(ctx context.Context, input CreateDebtInput) (*CreateDebtOutput, error) {
	if input.Amount.IsNegative() {
		return nil, domainerror.NewDebtError(
			domainerror.ErrCodeNegativeAmount,
			"amount must not be negative",
			domainerror.ErrNegativeAmount,
		)
	}

	if !entity.IsValidStatusName(input.Status) {
		return nil, domainerror.NewDebtError(
			domainerror.ErrCodeInvalidStatus,
			"status must be 'Pending', 'Paid', or 'Overdue'",
			domainerror.ErrInvalidStatus,
		)
	}

	exists, err := uc.debtRepo.ExistsByDescription(ctx, input.Description)
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

	status, err := uc.statusRepo.FindByName(ctx, input.Status)
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

	debt := entity.NewDebt(
		input.UserID,
		input.Description,
		input.Amount,
		input.DebtorName,
		input.CreditorName,
		status.ID,
	)
	debt.DueDate = input.DueDate
	debt.Notes = input.Notes

	id, err := uc.debtRepo.Create(ctx, debt)
	if err != nil {
		return nil, fmt.Errorf("failed to create debt: %w", err)
	}
	debt.ID = id

	return &CreateDebtOutput{
		Debt:   debt,
		Status: status,
	}, nil
}
