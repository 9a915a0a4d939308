// Package adapter defines interfaces for external dependencies (repositories, services).
package adapter

import (
	"context"

	"github.com/debt-manager/backend/internal/domain/entity"
)

// DebtListResult holds a page of debts together with paging metadata.
type DebtListResult struct {
	Debts    []*entity.Debt
	PageInfo PageInfo
}

// DebtRepository defines the interface for debt data access.
type DebtRepository interface {
	// Create persists a new debt and returns the generated identifier.
	Create(ctx context.Context, debt *entity.Debt) (string, error)

	// FindByID retrieves a debt by ID. Returns domain ErrDebtNotFound when
	// no debt matches.
	FindByID(ctx context.Context, id string) (*entity.Debt, error)

	// FindByDescription retrieves a debt by its description via a single
	// parameterized lookup. Used to enforce the soft-unique description
	// before creation.
	FindByDescription(ctx context.Context, description string) (*entity.Debt, error)

	// ExistsByDescription checks if a debt with the given description exists.
	ExistsByDescription(ctx context.Context, description string) (bool, error)

	// Update applies the debt's writable columns to the row with the given
	// ID. Returns false, without error, when no row matched.
	Update(ctx context.Context, id string, debt *entity.Debt) (bool, error)

	// Delete removes a debt by ID. Deleting an absent row is not an error.
	Delete(ctx context.Context, id string) error

	// List returns a page of debts ordered by ID.
	List(ctx context.Context, p Pagination) (*DebtListResult, error)
}

// StatusRepository defines the interface for status lookups.
type StatusRepository interface {
	// FindByID retrieves a status by ID.
	FindByID(ctx context.Context, id string) (*entity.Status, error)

	// FindByName retrieves a status by its unique name.
	FindByName(ctx context.Context, name entity.StatusName) (*entity.Status, error)

	// List returns all statuses.
	List(ctx context.Context) ([]*entity.Status, error)

	// Seed inserts any missing enumerated status values.
	Seed(ctx context.Context) error
}
