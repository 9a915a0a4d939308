// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/debt-manager/backend/internal/domain/entity"
)

// CreateDebtRequest represents the request body for debt creation.
type CreateDebtRequest struct {
	Description  string          `json:"description" binding:"required,min=1,max=255"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	DebtorName   string          `json:"debtor_name" binding:"required,min=1,max=100"`
	CreditorName string          `json:"creditor_name" binding:"required,min=1,max=100"`
	DueDate      *time.Time      `json:"due_date"`
	Notes        *string         `json:"notes"`
	Status       string          `json:"status" binding:"required"`
}

// UpdateDebtRequest represents the request body for updating a debt.
// Absent fields are left unchanged.
type UpdateDebtRequest struct {
	Description  *string          `json:"description" binding:"omitempty,min=1,max=255"`
	Amount       *decimal.Decimal `json:"amount"`
	DebtorName   *string          `json:"debtor_name" binding:"omitempty,min=1,max=100"`
	CreditorName *string          `json:"creditor_name" binding:"omitempty,min=1,max=100"`
	DueDate      *time.Time       `json:"due_date"`
	ClosingDate  *time.Time       `json:"closing_date"`
	Notes        *string          `json:"notes"`
	Status       *string          `json:"status"`
}

// DebtResponse represents the debt data in API responses.
type DebtResponse struct {
	ID           string          `json:"id"`
	UserID       string          `json:"user_id"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	DebtorName   string          `json:"debtor_name"`
	CreditorName string          `json:"creditor_name"`
	DueDate      *time.Time      `json:"due_date,omitempty"`
	ClosingDate  *time.Time      `json:"closing_date,omitempty"`
	Status       string          `json:"status"`
	Notes        *string         `json:"notes,omitempty"`
}

// DebtListResponse represents a paginated list of debts.
type DebtListResponse struct {
	Records    []DebtResponse     `json:"records"`
	Pagination PaginationResponse `json:"pagination"`
}

// ToDebtResponse converts a domain Debt entity and its resolved status to
// a DebtResponse DTO.
func ToDebtResponse(debt *entity.Debt, status *entity.Status) DebtResponse {
	statusName := ""
	if status != nil {
		statusName = string(status.Name)
	}
	return DebtResponse{
		ID:           debt.ID,
		UserID:       debt.UserID,
		Description:  debt.Description,
		Amount:       debt.Amount,
		DebtorName:   debt.DebtorName,
		CreditorName: debt.CreditorName,
		DueDate:      debt.DueDate,
		ClosingDate:  debt.ClosingDate,
		Status:       statusName,
		Notes:        debt.Notes,
	}
}
