// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/debt-manager/backend/internal/domain/entity"
)

// UpdateUserRequest represents the request body for updating a user.
// Absent fields are left unchanged.
type UpdateUserRequest struct {
	Username *string `json:"username" binding:"omitempty,min=1,max=50"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Name     *string `json:"name" binding:"omitempty,min=1,max=100"`
	Password *string `json:"password" binding:"omitempty,min=8"`
}

// UserResponse represents the user data in API responses. The credential
// hash is never included.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
}

// UserListResponse represents a paginated list of users.
type UserListResponse struct {
	Records    []UserResponse     `json:"records"`
	Pagination PaginationResponse `json:"pagination"`
}

// ToUserResponse converts a domain User entity to a UserResponse DTO.
func ToUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Name:     user.Name,
	}
}
