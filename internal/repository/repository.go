package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	apperrors "todogql/internal/errors"
	"todogql/internal/model"
)

// UserRepository defines credential persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
}

// TodoRepository defines to-do persistence operations.
type TodoRepository interface {
	Create(ctx context.Context, todo *model.Todo) error
	Update(ctx context.Context, todo *model.Todo) error
	Delete(ctx context.Context, id string) (*model.Todo, error)
	FindByID(ctx context.Context, id string) (*model.Todo, error)
	List(ctx context.Context) ([]model.Todo, error)
	ListByUser(ctx context.Context, userID string) ([]model.Todo, error)
}

var (
	errUserNotFound  = apperrors.NotFound("User not found")
	errTodoNotFound  = apperrors.NotFound("Todo not found")
	errEmailConflict = apperrors.Conflict("User with this email already exists")
)

// now is replaced in tests that need stable timestamps.
var now = func() time.Time { return time.Now().UTC() }

// prepareUserCreate assigns identity and timestamps, then validates.
func prepareUserCreate(u *model.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.ApplyDefaults()
	u.CreatedAt = now()
	u.UpdatedAt = u.CreatedAt
	return u.Validate()
}

func prepareUserUpdate(u *model.User) error {
	u.ApplyDefaults()
	u.UpdatedAt = now()
	return u.Validate()
}

func prepareTodoCreate(t *model.Todo) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	t.ApplyDefaults()
	t.CreatedAt = now()
	t.UpdatedAt = t.CreatedAt
	return t.Validate()
}

func prepareTodoUpdate(t *model.Todo) error {
	t.ApplyDefaults()
	t.UpdatedAt = now()
	return t.Validate()
}
