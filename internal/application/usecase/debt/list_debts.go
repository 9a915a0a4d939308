// Package debt contains debt management use cases.
package debt

import (
	"context"
	"fmt"

	"github.com/debt-manager/backend/internal/application/adapter"
	"github.com/debt-manager/backend/internal/domain/entity"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

// ListDebtsInput represents the input for listing debts.
type ListDebtsInput struct {
	Page     int
	PageSize int
}

// ListDebtsOutput represents the output of listing debts.
type ListDebtsOutput struct {
	Debts    []*entity.DebtWithStatus
	PageInfo adapter.PageInfo
}

// ListDebtsUseCase handles paginated debt listing.
type ListDebtsUseCase struct {
	debtRepo   adapter.DebtRepository
	statusRepo adapter.StatusRepository
}

// NewListDebtsUseCase creates a new ListDebtsUseCase instance.
func NewListDebtsUseCase(debtRepo adapter.DebtRepository, statusRepo adapter.StatusRepository) *ListDebtsUseCase {
	return &ListDebtsUseCase{
		debtRepo:   debtRepo,
		statusRepo: statusRepo,
	}
}

// Execute lists debts with pagination, resolving each debt's status from
// the enumerated status table. Missing paging parameters fall back to
// page 1 with 10 records per page.
func (uc *ListDebtsUseCase) Execute(ctx context.Context, input ListDebtsInput) (*ListDebtsOutput, error) {
	p := adapter.Pagination{
		Page:     input.Page,
		PageSize: input.PageSize,
	}
	if p.Page == 0 {
		p.Page = defaultPage
	}
	if p.PageSize == 0 {
		p.PageSize = defaultPageSize
	}

	result, err := uc.debtRepo.List(ctx, p)
	if err != nil {
		return nil, err
	}

	statuses, err := uc.statusRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list statuses: %w", err)
	}
	statusByID := make(map[string]*entity.Status, len(statuses))
	for _, s := range statuses {
		statusByID[s.ID] = s
	}

	debts := make([]*entity.DebtWithStatus, len(result.Debts))
	for i, d := range result.Debts {
		debts[i] = &entity.DebtWithStatus{
			Debt:   d,
			Status: statusByID[d.StatusID],
		}
	}

	return &ListDebtsOutput{
		Debts:    debts,
		PageInfo: result.PageInfo,
	}, nil
}
