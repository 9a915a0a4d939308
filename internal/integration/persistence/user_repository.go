// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/debt-manager/backend/internal/application/adapter"
	"github.com/debt-manager/backend/internal/domain/entity"
	domainerror "github.com/debt-manager/backend/internal/domain/error"
	"github.com/debt-manager/backend/internal/integration/persistence/model"
)

// userRepository implements the adapter.UserRepository interface. The
// generic CRUD path goes through the entity store; the natural-key
// lookups are single parameterized queries. The repository holds no user
// state of its own: every read and write goes to the database.
type userRepository struct {
	db    *gorm.DB
	store *EntityStore
}

// NewUserRepository creates a new user repository instance.
func NewUserRepository(db *gorm.DB, idGen adapter.IDGenerator) adapter.UserRepository {
	return &userRepository{
		db:    db,
		store: NewEntityStore(db, model.UserSchema, idGen),
	}
}

// Create persists a new user and returns the generated identifier.
func (r *userRepository) Create(ctx context.Context, user *entity.User) (string, error) {
	return r.store.Insert(ctx, model.UserToRow(user))
}

// FindByID retrieves a user by ID.
func (r *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	row, err := r.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return nil, domainerror.ErrUserNotFound
		}
		return nil, err
	}
	return model.UserFromRow(row), nil
}

// FindByEmail retrieves a user by their email address.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

// FindByUsername retrieves a user by their username.
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.findOne(ctx, "username = ?", username)
}

// ExistsByEmail checks if a user with the given email exists.
func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email = ?", email)
}

// ExistsByUsername checks if a user with the given username exists.
func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "username = ?", username)
}

// Update applies the user's writable columns to an existing row.
func (r *userRepository) Update(ctx context.Context, id string, user *entity.User) (bool, error) {
	return r.store.Update(ctx, id, model.UserToRow(user))
}

// Delete removes a user from the database.
func (r *userRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, id)
}

// List returns a page of users ordered by ID.
func (r *userRepository) List(ctx context.Context, p adapter.Pagination) (*adapter.UserListResult, error) {
	page, err := r.store.List(ctx, p.Page, p.PageSize)
	if err != nil {
		return nil, err
	}

	users := make([]*entity.User, len(page.Records))
	for i, row := range page.Records {
		users[i] = model.UserFromRow(row)
	}

	return &adapter.UserListResult{
		Users: users,
		PageInfo: adapter.PageInfo{
			Page:         page.Page,
			PageSize:     page.PageSize,
			TotalPages:   page.TotalPages,
			TotalRecords: page.TotalRecords,
		},
	}, nil
}

func (r *userRepository) findOne(ctx context.Context, query string, arg interface{}) (*entity.User, error) {
	var userModel model.UserModel
	result := r.db.WithContext(ctx).Where(query, arg).First(&userModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrUserNotFound
		}
		return nil, domainerror.NewDataAccessError("find user", result.Error)
	}
	return userModel.ToEntity(), nil
}

func (r *userRepository) exists(ctx context.Context, query string, arg interface{}) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.UserModel{}).Where(query, arg).Count(&count)
	if result.Error != nil {
		return false, domainerror.NewDataAccessError("count users", result.Error)
	}
	return count > 0, nil
}
