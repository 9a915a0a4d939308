// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/debt-manager/backend/internal/application/adapter"
	"github.com/debt-manager/backend/internal/domain/entity"
	domainerror "github.com/debt-manager/backend/internal/domain/error"
	"github.com/debt-manager/backend/internal/integration/persistence/model"
)

// debtRepository implements the adapter.DebtRepository interface on top
// of the generic entity store, adding the description lookup used for the
// soft-unique create check.
type debtRepository struct {
	db    *gorm.DB
	store *EntityStore
}

// NewDebtRepository creates a new debt repository instance.
func NewDebtRepository(db *gorm.DB, idGen adapter.IDGenerator) adapter.DebtRepository {
	return &debtRepository{
		db:    db,
		store: NewEntityStore(db, model.DebtSchema, idGen),
	}
}

// Create persists a new debt and returns the generated identifier.
func (r *debtRepository) Create(ctx context.Context, debt *entity.Debt) (string, error) {
	return r.store.Insert(ctx, model.DebtToRow(debt))
}

// FindByID retrieves a debt by ID.
func (r *debtRepository) FindByID(ctx context.Context, id string) (*entity.Debt, error) {
	row, err := r.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return nil, domainerror.ErrDebtNotFound
		}
		return nil, err
	}
	return model.DebtFromRow(row)
}

// FindByDescription retrieves a debt by its description.
func (r *debtRepository) FindByDescription(ctx context.Context, description string) (*entity.Debt, error) {
	var debtModel model.DebtModel
	result := r.db.WithContext(ctx).Where("description = ?", description).First(&debtModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrDebtNotFound
		}
		return nil, domainerror.NewDataAccessError("find debt", result.Error)
	}
	return debtModel.ToEntity(), nil
}

// ExistsByDescription checks if a debt with the given description exists.
func (r *debtRepository) ExistsByDescription(ctx context.Context, description string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.DebtModel{}).
		Where("description = ?", description).
		Count(&count)
	if result.Error != nil {
		return false, domainerror.NewDataAccessError("count debts", result.Error)
	}
	return count > 0, nil
}

// Update applies the debt's writable columns to an existing row.
func (r *debtRepository) Update(ctx context.Context, id string, debt *entity.Debt) (bool, error) {
	return r.store.Update(ctx, id, model.DebtToRow(debt))
}

// Delete removes a debt from the database.
func (r *debtRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, id)
}

// List returns a page of debts ordered by ID.
func (r *debtRepository) List(ctx context.Context, p adapter.Pagination) (*adapter.DebtListResult, error) {
	page, err := r.store.List(ctx, p.Page, p.PageSize)
	if err != nil {
		return nil, err
	}

	debts := make([]*entity.Debt, len(page.Records))
	for i, row := range page.Records {
		debt, err := model.DebtFromRow(row)
		if err != nil {
			return nil, domainerror.NewDataAccessError("map debt row", err)
		}
		debts[i] = debt
	}

	return &adapter.DebtListResult{
		Debts: debts,
		PageInfo: adapter.PageInfo{
			Page:         page.Page,
			PageSize:     page.PageSize,
			TotalPages:   page.TotalPages,
			TotalRecords: page.TotalRecords,
		},
	}, nil
}
