// Package error defines domain-specific errors for the Debt Manager application.
package error

import "errors"

// Debt domain errors.
var (
	// ErrDebtNotFound is returned when a debt is not found in the system.
	ErrDebtNotFound = errors.New("debt not found")

	// ErrDebtDescriptionExists is returned when creating a debt whose
	// description matches an existing record. Description is a soft-unique
	// key enforced before the insert is attempted.
	ErrDebtDescriptionExists = errors.New("debt with this description already exists")

	// ErrInvalidStatus is returned when the supplied status name does not
	// reference a known Status value.
	ErrInvalidStatus = errors.New("invalid debt status")

	// ErrNegativeAmount is returned when the debt amount is negative.
	ErrNegativeAmount = errors.New("debt amount must not be negative")

	// ErrStatusNotFound is returned when a status lookup matches no row.
	ErrStatusNotFound = errors.New("status not found")
)

// DebtErrorCode defines error codes for debt errors.
// Format: DEBT-XXYYYY where XX is category and YYYY is specific error.
type DebtErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeDebtDescriptionExists DebtErrorCode = "DEBT-010001"
	ErrCodeInvalidStatus         DebtErrorCode = "DEBT-010002"
	ErrCodeNegativeAmount        DebtErrorCode = "DEBT-010003"
	ErrCodeDebtMissingFields     DebtErrorCode = "DEBT-010004"

	// Lookup errors (02XXXX)
	ErrCodeDebtNotFound DebtErrorCode = "DEBT-020001"

	// Server errors (99XXXX)
	ErrCodeDebtInternal DebtErrorCode = "DEBT-990001"
)

// DebtError represents a debt error with code and message.
type DebtError struct {
	Code    DebtErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DebtError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DebtError) Unwrap() error {
	return e.Err
}

// NewDebtError creates a new DebtError with the given code and message.
func NewDebtError(code DebtErrorCode, message string, err error) *DebtError {
	return &DebtError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
