// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/debt-manager/backend/internal/application/adapter"
	domainerror "github.com/debt-manager/backend/internal/domain/error"
	"github.com/debt-manager/backend/internal/integration/persistence/model"
)

// Page holds one page of generic records together with paging metadata.
type Page struct {
	Records      []model.Row
	Page         int
	PageSize     int
	TotalPages   int
	TotalRecords int64
}

// EntityStore performs CRUD operations against a single entity's table,
// driven entirely by its schema descriptor. Table and column identifiers
// come from the descriptor; every caller-supplied value is bound as a
// statement parameter. The store holds no entity state: each call is one
// scoped unit of work against the database, and mutating operations run
// inside a transaction that rolls back on any fault.
type EntityStore struct {
	db     *gorm.DB
	schema model.Schema
	idGen  adapter.IDGenerator
}

// NewEntityStore creates an entity store for the given schema.
func NewEntityStore(db *gorm.DB, schema model.Schema, idGen adapter.IDGenerator) *EntityStore {
	return &EntityStore{
		db:     db,
		schema: schema,
		idGen:  idGen,
	}
}

// Schema returns the store's schema descriptor.
func (s *EntityStore) Schema() model.Schema {
	return s.schema
}

// List returns one page of records ordered by primary key ascending,
// together with the total record and page counts. A page below 1 is
// clamped to 1; a page size below 1 is a validation error. Read faults
// surface as DataAccessError; partial results are never returned.
func (s *EntityStore) List(ctx context.Context, page, pageSize int) (*Page, error) {
	if pageSize < 1 {
		return nil, domainerror.NewValidationError("page size must be greater than zero")
	}
	if page < 1 {
		page = 1
	}

	var total int64
	if err := s.db.WithContext(ctx).Table(s.schema.Table).Count(&total).Error; err != nil {
		return nil, domainerror.NewDataAccessError("count "+s.schema.Table, err)
	}

	offset := (page - 1) * pageSize
	var rows []map[string]interface{}
	err := s.db.WithContext(ctx).
		Table(s.schema.Table).
		Select(s.schema.SelectColumns()).
		Order(s.schema.PrimaryKey + " ASC").
		Offset(offset).
		Limit(pageSize).
		Find(&rows).Error
	if err != nil {
		return nil, domainerror.NewDataAccessError("list "+s.schema.Table, err)
	}

	records := make([]model.Row, len(rows))
	for i, r := range rows {
		records[i] = model.Row(r)
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return &Page{
		Records:      records,
		Page:         page,
		PageSize:     pageSize,
		TotalPages:   totalPages,
		TotalRecords: total,
	}, nil
}

// GetByID returns the record with the given primary key as a flat
// column-to-value mapping. Absence is reported as ErrRecordNotFound; a
// malformed identifier is a validation error, not a missing record.
func (s *EntityStore) GetByID(ctx context.Context, id string) (model.Row, error) {
	if err := s.validateID(id); err != nil {
		return nil, err
	}

	var rows []map[string]interface{}
	err := s.db.WithContext(ctx).
		Table(s.schema.Table).
		Select(s.schema.SelectColumns()).
		Where(s.schema.PrimaryKey+" = ?", id).
		Limit(1).
		Find(&rows).Error
	if err != nil {
		return nil, domainerror.NewDataAccessError("get "+s.schema.Table, err)
	}
	if len(rows) == 0 {
		return nil, domainerror.ErrRecordNotFound
	}
	return model.Row(rows[0]), nil
}

// Insert writes the writable-column subset of values as a new record and
// returns the generated identifier. The insert runs in a transaction; on
// any constraint violation or write fault it rolls back and surfaces a
// PersistenceError, so no partial insert survives.
func (s *EntityStore) Insert(ctx context.Context, values model.Row) (string, error) {
	record := s.schema.FilterWritable(values)
	id := s.idGen.NewID()
	record[s.schema.PrimaryKey] = id

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Table(s.schema.Table).Create(map[string]interface{}(record)).Error
	})
	if err != nil {
		return "", domainerror.NewPersistenceError("insert "+s.schema.Table, err)
	}
	return id, nil
}

// Update applies the writable-column subset of values to the record with
// the given primary key. It returns false, without error, when no row
// matched; an update carrying no writable columns is a validation error.
func (s *EntityStore) Update(ctx context.Context, id string, values model.Row) (bool, error) {
	if err := s.validateID(id); err != nil {
		return false, err
	}

	record := s.schema.FilterWritable(values)
	if len(record) == 0 {
		return false, domainerror.NewValidationError("no writable columns present in update")
	}

	var affected int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Table(s.schema.Table).
			Where(s.schema.PrimaryKey+" = ?", id).
			Updates(map[string]interface{}(record))
		affected = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return false, domainerror.NewPersistenceError("update "+s.schema.Table, err)
	}
	return affected > 0, nil
}

// Delete removes the record with the given primary key. Deleting an
// absent record is not an error, so the operation is idempotent.
func (s *EntityStore) Delete(ctx context.Context, id string) error {
	if err := s.validateID(id); err != nil {
		return err
	}

	err := s.db.WithContext(ctx).
		Exec("DELETE FROM "+s.schema.Table+" WHERE "+s.schema.PrimaryKey+" = ?", id).Error
	if err != nil {
		return domainerror.NewPersistenceError("delete "+s.schema.Table, err)
	}
	return nil
}

// validateID rejects identifiers that are not well-formed UUIDs before
// they reach the database.
func (s *EntityStore) validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domainerror.NewValidationError("malformed identifier: " + id)
	}
	return nil
}
