// Package entity defines the core business entities for the domain layer.
package entity

// StatusName is the enumerated classification of a debt.
type StatusName string

const (
	StatusPending StatusName = "Pending"
	StatusPaid    StatusName = "Paid"
	StatusOverdue StatusName = "Overdue"
)

// Status represents one of the enumerated debt classifications.
type Status struct {
	ID   string
	Name StatusName
}

// IsValidStatusName reports whether name is one of the known status values.
func IsValidStatusName(name StatusName) bool {
	return name == StatusPending || name == StatusPaid || name == StatusOverdue
}

// AllStatusNames returns the full set of status values, in seed order.
func AllStatusNames() []StatusName {
	return []StatusName{StatusPending, StatusPaid, StatusOverdue}
}
