package repository

import (
	"context"
	"slices"
	"strings"
	"sync"

	"todogql/internal/model"
)

// memoryDB is a process-local store used for development and tests. The
// mutex is held only around map access.
type memoryDB struct {
	mu    sync.RWMutex
	users map[string]model.User
	todos map[string]model.Todo
}

func newMemoryDB() *memoryDB {
	return &memoryDB{
		users: make(map[string]model.User),
		todos: make(map[string]model.Todo),
	}
}

type memoryUserRepository struct{ db *memoryDB }

type memoryTodoRepository struct{ db *memoryDB }

func (r *memoryUserRepository) Create(_ context.Context, user *model.User) error {
	if err := prepareUserCreate(user); err != nil {
		return err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.emailTakenLocked(user.Email, user.ID) {
		return errEmailConflict
	}
	r.db.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepository) Update(_ context.Context, user *model.User) error {
	if err := prepareUserUpdate(user); err != nil {
		return err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	existing, ok := r.db.users[user.ID]
	if !ok {
		return errUserNotFound
	}
	if r.emailTakenLocked(user.Email, user.ID) {
		return errEmailConflict
	}
	user.CreatedAt = existing.CreatedAt
	r.db.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepository) emailTakenLocked(email, exceptID string) bool {
	for id, u := range r.db.users {
		if id != exceptID && u.Email == email {
			return true
		}
	}
	return false
}

func (r *memoryUserRepository) Delete(_ context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.users[id]; !ok {
		return errUserNotFound
	}
	delete(r.db.users, id)
	return nil
}

func (r *memoryUserRepository) FindByID(_ context.Context, id string) (*model.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	u, ok := r.db.users[id]
	if !ok {
		return nil, errUserNotFound
	}
	return &u, nil
}

func (r *memoryUserRepository) FindByEmail(_ context.Context, email string) (*model.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	for _, u := range r.db.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, errUserNotFound
}

func (r *memoryUserRepository) List(_ context.Context) ([]model.User, error) {
	r.db.mu.RLock()
	users := make([]model.User, 0, len(r.db.users))
	for _, u := range r.db.users {
		users = append(users, u)
	}
	r.db.mu.RUnlock()

	slices.SortFunc(users, func(a, b model.User) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return users, nil
}

func (r *memoryTodoRepository) Create(_ context.Context, todo *model.Todo) error {
	if err := prepareTodoCreate(todo); err != nil {
		return err
	}
	r.db.mu.Lock()
	r.db.todos[todo.ID] = *todo
	r.db.mu.Unlock()
	return nil
}

func (r *memoryTodoRepository) Update(_ context.Context, todo *model.Todo) error {
	if err := prepareTodoUpdate(todo); err != nil {
		return err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	existing, ok := r.db.todos[todo.ID]
	if !ok {
		return errTodoNotFound
	}
	todo.UserID = existing.UserID
	todo.CreatedAt = existing.CreatedAt
	r.db.todos[todo.ID] = *todo
	return nil
}

func (r *memoryTodoRepository) Delete(_ context.Context, id string) (*model.Todo, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	t, ok := r.db.todos[id]
	if !ok {
		return nil, errTodoNotFound
	}
	delete(r.db.todos, id)
	return &t, nil
}

func (r *memoryTodoRepository) FindByID(_ context.Context, id string) (*model.Todo, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	t, ok := r.db.todos[id]
	if !ok {
		return nil, errTodoNotFound
	}
	return &t, nil
}

func (r *memoryTodoRepository) List(ctx context.Context) ([]model.Todo, error) {
	return r.filter(func(model.Todo) bool { return true }), nil
}

func (r *memoryTodoRepository) ListByUser(_ context.Context, userID string) ([]model.Todo, error) {
	return r.filter(func(t model.Todo) bool { return t.UserID == userID }), nil
}

func (r *memoryTodoRepository) filter(keep func(model.Todo) bool) []model.Todo {
	r.db.mu.RLock()
	todos := make([]model.Todo, 0, len(r.db.todos))
	for _, t := range r.db.todos {
		if keep(t) {
			todos = append(todos, t)
		}
	}
	r.db.mu.RUnlock()

	slices.SortFunc(todos, func(a, b model.Todo) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return todos
}
