// Package adapter defines interfaces for external dependencies (repositories, services).
package adapter

import (
	"context"

	"github.com/debt-manager/backend/internal/domain/entity"
)

// UserListResult holds a page of users together with paging metadata.
type UserListResult struct {
	Users    []*entity.User
	PageInfo PageInfo
}

// UserRepository defines the interface for user data access.
type UserRepository interface {
	// Create persists a new user and returns the generated identifier.
	Create(ctx context.Context, user *entity.User) (string, error)

	// FindByID retrieves a user by ID. Returns domain ErrUserNotFound when
	// no user matches.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmail retrieves a user by email address via a single
	// parameterized lookup.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByUsername retrieves a user by username via a single
	// parameterized lookup.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// ExistsByEmail checks if a user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ExistsByUsername checks if a user with the given username exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// Update applies the user's writable columns to the row with the given
	// ID. Returns false, without error, when no row matched.
	Update(ctx context.Context, id string, user *entity.User) (bool, error)

	// Delete removes a user by ID. Deleting an absent row is not an error.
	Delete(ctx context.Context, id string) error

	// List returns a page of users ordered by ID.
	List(ctx context.Context, p Pagination) (*UserListResult, error)
}
