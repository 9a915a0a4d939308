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

// statusRepository implements the adapter.StatusRepository interface.
type statusRepository struct {
	db    *gorm.DB
	idGen adapter.IDGenerator
}

// NewStatusRepository creates a new status repository instance.
func NewStatusRepository(db *gorm.DB, idGen adapter.IDGenerator) adapter.StatusRepository {
	return &statusRepository{
		db:    db,
		idGen: idGen,
	}
}

// FindByID retrieves a status by ID.
func (r *statusRepository) FindByID(ctx context.Context, id string) (*entity.Status, error) {
	var statusModel model.StatusModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&statusModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrStatusNotFound
		}
		return nil, domainerror.NewDataAccessError("find status", result.Error)
	}
	return statusModel.ToEntity(), nil
}

// FindByName retrieves a status by its unique name.
func (r *statusRepository) FindByName(ctx context.Context, name entity.StatusName) (*entity.Status, error) {
	var statusModel model.StatusModel
	result := r.db.WithContext(ctx).Where("name = ?", string(name)).First(&statusModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrStatusNotFound
		}
		return nil, domainerror.NewDataAccessError("find status", result.Error)
	}
	return statusModel.ToEntity(), nil
}

// List returns all statuses ordered by name.
func (r *statusRepository) List(ctx context.Context) ([]*entity.Status, error) {
	var statusModels []model.StatusModel
	result := r.db.WithContext(ctx).Order("name ASC").Find(&statusModels)
	if result.Error != nil {
		return nil, domainerror.NewDataAccessError("list statuses", result.Error)
	}

	statuses := make([]*entity.Status, len(statusModels))
	for i, sm := range statusModels {
		statuses[i] = sm.ToEntity()
	}
	return statuses, nil
}

// Seed inserts any enumerated status values missing from the table.
func (r *statusRepository) Seed(ctx context.Context) error {
	for _, name := range entity.AllStatusNames() {
		var count int64
		result := r.db.WithContext(ctx).Model(&model.StatusModel{}).
			Where("name = ?", string(name)).
			Count(&count)
		if result.Error != nil {
			return domainerror.NewDataAccessError("count statuses", result.Error)
		}
		if count > 0 {
			continue
		}

		statusModel := &model.StatusModel{
			ID:   r.idGen.NewID(),
			Name: string(name),
		}
		if err := r.db.WithContext(ctx).Create(statusModel).Error; err != nil {
			return domainerror.NewPersistenceError("seed status", err)
		}
	}
	return nil
}
