// Package model defines database models and schema descriptors for the persistence layer.
package model

import (
	"github.com/debt-manager/backend/internal/domain/entity"
)

// UserSchema is the static schema descriptor for the users table. It is
// the only source of user table/column identifiers in the persistence layer.
var UserSchema = Schema{
	Table:      "users",
	PrimaryKey: "id",
	Columns:    []string{"username", "email", "name", "password_hash"},
}

// UserModel represents the users table in the database.
type UserModel struct {
	ID           string `gorm:"type:uuid;primaryKey;column:id"`
	Username     string `gorm:"type:varchar(50);uniqueIndex;not null"`
	Email        string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Name         string `gorm:"type:varchar(100);not null"`
	PasswordHash string `gorm:"type:text;not null"`
}

// TableName returns the table name for the UserModel.
func (UserModel) TableName() string {
	return UserSchema.Table
}

// ToEntity converts a UserModel to a domain User entity.
func (m *UserModel) ToEntity() *entity.User {
	return &entity.User{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
	}
}

// UserToRow converts a domain User entity to a writable column mapping.
func UserToRow(user *entity.User) Row {
	return Row{
		"username":      user.Username,
		"email":         user.Email,
		"name":          user.Name,
		"password_hash": user.PasswordHash,
	}
}

// UserFromRow converts a scanned row to a domain User entity.
func UserFromRow(r Row) *entity.User {
	return &entity.User{
		ID:           rowString(r, UserSchema.PrimaryKey),
		Username:     rowString(r, "username"),
		Email:        rowString(r, "email"),
		Name:         rowString(r, "name"),
		PasswordHash: rowString(r, "password_hash"),
	}
}
