// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/debt-manager/backend/internal/application/adapter"
	"github.com/debt-manager/backend/internal/domain/entity"
	domainerror "github.com/debt-manager/backend/internal/domain/error"
)

// mockUserRepository is an in-memory UserRepository for use case tests.
type mockUserRepository struct {
	users       map[string]*entity.User
	nextID      int
	createCalls int
	failWith    error
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[string]*entity.User)}
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) (string, error) {
	if m.failWith != nil {
		return "", m.failWith
	}
	m.createCalls++
	m.nextID++
	id := fmt.Sprintf("user-%d", m.nextID)
	stored := *user
	stored.ID = id
	m.users[id] = &stored
	return id, nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	if user, ok := m.users[id]; ok {
		return user, nil
	}
	return nil, domainerror.ErrUserNotFound
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, user := range m.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.failWith != nil {
		return false, m.failWith
	}
	_, err := m.FindByEmail(ctx, email)
	if errors.Is(err, domainerror.ErrUserNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := m.FindByUsername(ctx, username)
	if errors.Is(err, domainerror.ErrUserNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (m *mockUserRepository) Update(ctx context.Context, id string, user *entity.User) (bool, error) {
	if _, ok := m.users[id]; !ok {
		return false, nil
	}
	stored := *user
	stored.ID = id
	m.users[id] = &stored
	return true, nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id string) error {
	delete(m.users, id)
	return nil
}

func (m *mockUserRepository) List(ctx context.Context, p adapter.Pagination) (*adapter.UserListResult, error) {
	users := make([]*entity.User, 0, len(m.users))
	for _, user := range m.users {
		users = append(users, user)
	}
	return &adapter.UserListResult{
		Users: users,
		PageInfo: adapter.PageInfo{
			Page:         p.Page,
			PageSize:     p.PageSize,
			TotalPages:   1,
			TotalRecords: int64(len(users)),
		},
	}, nil
}

// mockPasswordService verifies by plain comparison against "hash:" prefixed values.
type mockPasswordService struct {
	weak bool
}

func (m *mockPasswordService) HashPassword(password string) (string, error) {
	return "hash:" + password, nil
}

func (m *mockPasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hash:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

func (m *mockPasswordService) ValidatePasswordStrength(password string) error {
	if m.weak || len(password) < 8 {
		return errors.New("password too weak")
	}
	return nil
}

// mockTokenService issues deterministic tokens.
type mockTokenService struct {
	err error
}

func (m *mockTokenService) GenerateToken(ctx context.Context, userID, email, username string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return "token-for-" + userID, nil
}

func (m *mockTokenService) ValidateToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not implemented")
}
