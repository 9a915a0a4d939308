// Package error defines domain-specific errors for the Debt Manager application.
package error

import "errors"

// Data access boundary errors.
//
// Every database fault crossing the persistence boundary is wrapped as
// either a DataAccessError (read path) or a PersistenceError (write path)
// with the original cause attached. Callers above the persistence layer
// never see raw driver errors.
var (
	// ErrRecordNotFound is returned when a lookup matches no row. Absence
	// is a normal result, not a fault; callers branch on it with errors.Is.
	ErrRecordNotFound = errors.New("record not found")
)

// ValidationError indicates malformed caller input: a bad identifier
// format, a non-positive page size, or an update with no writable columns.
type ValidationError struct {
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// DataAccessError indicates a read-path database fault.
type DataAccessError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *DataAccessError) Error() string {
	return "data access failed: " + e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *DataAccessError) Unwrap() error {
	return e.Err
}

// NewDataAccessError wraps a read-path fault with the failed operation.
func NewDataAccessError(op string, err error) *DataAccessError {
	return &DataAccessError{Op: op, Err: err}
}

// PersistenceError indicates a write-path database fault. The enclosing
// unit of work has been rolled back; no partial write survives.
type PersistenceError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *PersistenceError) Error() string {
	return "persistence failed: " + e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NewPersistenceError wraps a write-path fault with the failed operation.
func NewPersistenceError(op string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Err: err}
}
