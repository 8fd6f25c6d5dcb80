package service

import (
	"context"

	"github.com/sirupsen/logrus"

	apperrors "todogql/internal/errors"
	"todogql/internal/model"
	"todogql/internal/repository"
)

// CreateTodoInput carries a new to-do.
type CreateTodoInput struct {
	Title       string `validate:"required"`
	Description string `validate:"required"`
	UserID      string `validate:"required"`
}

// UpdateTodoInput lists the to-do fields a caller may change. The owner is
// not among them.
type UpdateTodoInput struct {
	Title       *string
	Description *string
	Status      *model.TodoStatus
}

// TodoService exposes to-do operations.
type TodoService interface {
	ListTodos(ctx context.Context) ([]model.Todo, error)
	GetTodo(ctx context.Context, id string) (*model.Todo, error)
	ListTodosByUser(ctx context.Context, userID string) ([]model.Todo, error)
	CreateTodo(ctx context.Context, input CreateTodoInput) (*model.Todo, error)
	UpdateTodo(ctx context.Context, id string, input UpdateTodoInput) (*model.Todo, error)
	DeleteTodo(ctx context.Context, id string) (*model.Todo, error)
}

type todoService struct {
	repo repository.TodoRepository
	log  logrus.FieldLogger
}

// NewTodoService builds a TodoService over repo.
func NewTodoService(repo repository.TodoRepository, log logrus.FieldLogger) TodoService {
	return &todoService{repo: repo, log: log}
}

// ListTodos returns every to-do.
func (s *todoService) ListTodos(ctx context.Context) ([]model.Todo, error) {
	return s.repo.List(ctx)
}

// GetTodo returns the to-do or a NotFound error.
func (s *todoService) GetTodo(ctx context.Context, id string) (*model.Todo, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("id is required")
	}
	return s.repo.FindByID(ctx, id)
}

// ListTodosByUser returns the to-dos owned by userID.
func (s *todoService) ListTodosByUser(ctx context.Context, userID string) ([]model.Todo, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("userId is required")
	}
	return s.repo.ListByUser(ctx, userID)
}

// CreateTodo stores a new PENDING to-do owned by input.UserID.
func (s *todoService) CreateTodo(ctx context.Context, input CreateTodoInput) (*model.Todo, error) {
	if err := requireFields(input, "Title, description and userId are required"); err != nil {
		return nil, err
	}
	todo := &model.Todo{
		Title:       input.Title,
		Description: input.Description,
		UserID:      input.UserID,
	}
	if err := s.repo.Create(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

// UpdateTodo applies the non-nil fields of input. The owner never changes.
func (s *todoService) UpdateTodo(ctx context.Context, id string, input UpdateTodoInput) (*model.Todo, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("id is required")
	}
	todo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Title != nil {
		todo.Title = *input.Title
	}
	if input.Description != nil {
		todo.Description = *input.Description
	}
	if input.Status != nil {
		todo.Status = *input.Status
	}
	if err := s.repo.Update(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

// DeleteTodo removes the to-do and returns it as it was before deletion.
func (s *todoService) DeleteTodo(ctx context.Context, id string) (*model.Todo, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("id is required")
	}
	todo, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.WithField("todo_id", id).Info("todo deleted")
	return todo, nil
}
