// Package model defines database models and schema descriptors for the persistence layer.
package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/debt-manager/backend/internal/domain/entity"
)

// DebtSchema is the static schema descriptor for the debts table.
var DebtSchema = Schema{
	Table:      "debts",
	PrimaryKey: "id",
	Columns: []string{
		"user_id",
		"description",
		"amount",
		"debtor_name",
		"creditor_name",
		"due_date",
		"closing_date",
		"status_id",
		"notes",
	},
}

// DebtModel represents the debts table in the database.
type DebtModel struct {
	ID           string          `gorm:"type:uuid;primaryKey;column:id"`
	UserID       string          `gorm:"type:uuid;index;not null"`
	Description  string          `gorm:"type:varchar(255);not null"`
	Amount       decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	DebtorName   string          `gorm:"type:varchar(100);not null"`
	CreditorName string          `gorm:"type:varchar(100);not null"`
	DueDate      *time.Time      `gorm:"type:date"`
	ClosingDate  *time.Time      `gorm:"type:date"`
	StatusID     string          `gorm:"type:uuid;not null"`
	Notes        *string         `gorm:"type:text"`
}

// TableName returns the table name for the DebtModel.
func (DebtModel) TableName() string {
	return DebtSchema.Table
}

// ToEntity converts a DebtModel to a domain Debt entity.
func (m *DebtModel) ToEntity() *entity.Debt {
	return &entity.Debt{
		ID:           m.ID,
		UserID:       m.UserID,
		Description:  m.Description,
		Amount:       m.Amount,
		DebtorName:   m.DebtorName,
		CreditorName: m.CreditorName,
		DueDate:      m.DueDate,
		ClosingDate:  m.ClosingDate,
		StatusID:     m.StatusID,
		Notes:        m.Notes,
	}
}

// DebtToRow converts a domain Debt entity to a writable column mapping.
func DebtToRow(debt *entity.Debt) Row {
	return Row{
		"user_id":       debt.UserID,
		"description":   debt.Description,
		"amount":        debt.Amount,
		"debtor_name":   debt.DebtorName,
		"creditor_name": debt.CreditorName,
		"due_date":      debt.DueDate,
		"closing_date":  debt.ClosingDate,
		"status_id":     debt.StatusID,
		"notes":         debt.Notes,
	}
}

// DebtFromRow converts a scanned row to a domain Debt entity.
func DebtFromRow(r Row) (*entity.Debt, error) {
	amount, err := rowDecimal(r, "amount")
	if err != nil {
		return nil, fmt.Errorf("debt row: %w", err)
	}
	dueDate, err := rowNullTime(r, "due_date")
	if err != nil {
		return nil, fmt.Errorf("debt row: %w", err)
	}
	closingDate, err := rowNullTime(r, "closing_date")
	if err != nil {
		return nil, fmt.Errorf("debt row: %w", err)
	}

	return &entity.Debt{
		ID:           rowString(r, DebtSchema.PrimaryKey),
		UserID:       rowString(r, "user_id"),
		Description:  rowString(r, "description"),
		Amount:       amount,
		DebtorName:   rowString(r, "debtor_name"),
		CreditorName: rowString(r, "creditor_name"),
		DueDate:      dueDate,
		ClosingDate:  closingDate,
		StatusID:     rowString(r, "status_id"),
		Notes:        rowNullString(r, "notes"),
	}, nil
}
