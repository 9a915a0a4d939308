// Package user contains user management use cases.
package user

import (
	"context"

	"github.com/debt-manager/backend/internal/application/adapter"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

// ListUsersInput represents the input for listing users.
type ListUsersInput struct {
	Page     int
	PageSize int
}

// ListUsersOutput represents the output of listing users.
type ListUsersOutput struct {
	Result *adapter.UserListResult
}

// ListUsersUseCase handles paginated user listing.
type ListUsersUseCase struct {
	userRepo adapter.UserRepository
}

// NewListUsersUseCase creates a new ListUsersUseCase instance.
func NewListUsersUseCase(userRepo adapter.UserRepository) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo}
}

// Execute lists users with pagination. Missing paging parameters fall
// back to page 1 with 10 records per page.
func (uc *ListUsersUseCase) Execute(ctx context.Context, input ListUsersInput) (*ListUsersOutput, error) {
	p := adapter.Pagination{
		Page:     input.Page,
		PageSize: input.PageSize,
	}
	if p.Page == 0 {
		p.Page = defaultPage
	}
	if p.PageSize == 0 {
		p.PageSize = defaultPageSize
	}

	result, err := uc.userRepo.List(ctx, p)
	if err != nil {
		return nil, err
	}
	return &ListUsersOutput{Result: result}, nil
}
