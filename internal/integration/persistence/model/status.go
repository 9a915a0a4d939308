// Package model defines database models and schema descriptors for the persistence layer.
package model

import (
	"github.com/debt-manager/backend/internal/domain/entity"
)

// StatusSchema is the static schema descriptor for the status table.
var StatusSchema = Schema{
	Table:      "status",
	PrimaryKey: "id",
	Columns:    []string{"name"},
}

// StatusModel represents the status table in the database.
type StatusModel struct {
	ID   string `gorm:"type:uuid;primaryKey;column:id"`
	Name string `gorm:"type:varchar(50);uniqueIndex;not null"`
}

// TableName returns the table name for the StatusModel.
func (StatusModel) TableName() string {
	return StatusSchema.Table
}

// ToEntity converts a StatusModel to a domain Status entity.
func (m *StatusModel) ToEntity() *entity.Status {
	return &entity.Status{
		ID:   m.ID,
		Name: entity.StatusName(m.Name),
	}
}

// StatusFromEntity creates a StatusModel from a domain Status entity.
func StatusFromEntity(status *entity.Status) *StatusModel {
	return &StatusModel{
		ID:   status.ID,
		Name: string(status.Name),
	}
}
