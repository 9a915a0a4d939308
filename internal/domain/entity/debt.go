// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Debt represents a tracked debt between two parties.
//
// Description acts as a soft-unique key: the create path refuses a new
// debt whose description matches an existing one. Amount is a non-negative
// decimal. DueDate, ClosingDate and Notes are optional.
type Debt struct {
	ID           string
	UserID       string
	Description  string
	Amount       decimal.Decimal
	DebtorName   string
	CreditorName string
	DueDate      *time.Time
	ClosingDate  *time.Time
	StatusID     string
	Notes        *string
}

// NewDebt creates a new Debt entity. The ID is left empty and is assigned
// by the repository when the debt is persisted.
func NewDebt(userID, description string, amount decimal.Decimal, debtorName, creditorName, statusID string) *Debt {
	return &Debt{
		UserID:       userID,
		Description:  description,
		Amount:       amount,
		DebtorName:   debtorName,
		CreditorName: creditorName,
		StatusID:     statusID,
	}
}

// DebtWithStatus pairs a debt with its resolved status value.
type DebtWithStatus struct {
	Debt   *Debt
	Status *Status
}
