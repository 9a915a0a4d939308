// Package entity defines the core business entities for the domain layer.
package entity

// User represents a registered account in the Debt Manager system.
//
// The ID is an opaque identifier assigned by the persistence layer on
// creation. Username and Email are unique across all users. PasswordHash
// holds the bcrypt hash of the credential; the plaintext is never stored
// and the hash is never exposed through the API.
type User struct {
	ID           string
	Username     string
	Email        string
	Name         string
	PasswordHash string
}

// NewUser creates a new User entity. The ID is left empty and is assigned
// by the repository when the user is persisted.
func NewUser(username, email, name, passwordHash string) *User {
	return &User{
		Username:     username,
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
	}
}
