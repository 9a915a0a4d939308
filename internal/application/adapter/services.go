// Package adapter defines interfaces for external dependencies (repositories, services).
package adapter

import (
	"context"
	"time"
)

// PasswordService defines the interface for password hashing operations.
type PasswordService interface {
	// HashPassword hashes a plain text password.
	HashPassword(password string) (string, error)

	// VerifyPassword compares a plain text password with a hashed password.
	// Returns an error if they don't match.
	VerifyPassword(hashedPassword, password string) error

	// ValidatePasswordStrength validates if a password meets minimum requirements.
	ValidatePasswordStrength(password string) error
}

// TokenClaims represents the validated claims of an access token.
type TokenClaims struct {
	UserID    string
	Email     string
	Username  string
	ExpiresAt time.Time
}

// TokenService defines the interface for access token operations.
type TokenService interface {
	// GenerateToken creates a signed access token for the given user.
	GenerateToken(ctx context.Context, userID, email, username string) (string, error)

	// ValidateToken validates an access token and returns its claims.
	ValidateToken(ctx context.Context, token string) (*TokenClaims, error)
}
