package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "todogql/internal/errors"
	"todogql/internal/model"
)

// user_id is left out: the owner is fixed at creation.
var todoColumns = []string{"title", "description", "status", "updated_at"}

type todoRepository struct {
	db *gorm.DB
}

// NewTodoRepository builds a GORM-backed repository.
func NewTodoRepository(db *gorm.DB) TodoRepository {
	return &todoRepository{db: db}
}

func (r *todoRepository) Create(ctx context.Context, todo *model.Todo) error {
	if err := prepareTodoCreate(todo); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(todo).Error; err != nil {
		return apperrors.Storage(err, "create todo")
	}
	return nil
}

func (r *todoRepository) Update(ctx context.Context, todo *model.Todo) error {
	if err := prepareTodoUpdate(todo); err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Model(&model.Todo{ID: todo.ID}).Select(todoColumns).Updates(todo)
	if res.Error != nil {
		return apperrors.Storage(res.Error, "update todo")
	}
	if res.RowsAffected == 0 {
		_, err := r.FindByID(ctx, todo.ID)
		return err
	}
	return nil
}

// Delete removes the to-do and returns it as it was before removal.
func (r *todoRepository) Delete(ctx context.Context, id string) (*model.Todo, error) {
	var deleted *model.Todo
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &todoRepository{db: tx}
		todo, err := txRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := tx.Where("id = ?", id).Delete(&model.Todo{}).Error; err != nil {
			return apperrors.Storage(err, "delete todo")
		}
		deleted = todo
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

func (r *todoRepository) FindByID(ctx context.Context, id string) (*model.Todo, error) {
	var todo model.Todo
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&todo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errTodoNotFound
		}
		return nil, apperrors.Storage(err, "fetch todo")
	}
	return &todo, nil
}

func (r *todoRepository) List(ctx context.Context) ([]model.Todo, error) {
	var todos []model.Todo
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&todos).Error; err != nil {
		return nil, apperrors.Storage(err, "fetch todos")
	}
	return todos, nil
}

func (r *todoRepository) ListByUser(ctx context.Context, userID string) ([]model.Todo, error) {
	var todos []model.Todo
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at, id").Find(&todos).Error; err != nil {
		return nil, apperrors.Storage(err, "fetch todos for user")
	}
	return todos, nil
}
