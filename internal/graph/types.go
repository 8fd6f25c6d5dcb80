package graph

import (
	"context"
	"time"

	graphql "github.com/graph-gophers/graphql-go"

	"todogql/internal/auth"
	"todogql/internal/model"
)

type userResolver struct {
	u    model.User
	root *Resolver
}

func (r *userResolver) ID() graphql.ID { return graphql.ID(r.u.ID) }

func (r *userResolver) Username() string { return r.u.Username }

func (r *userResolver) Email() string { return r.u.Email }

func (r *userResolver) CreatedAt() string { return formatTime(r.u.CreatedAt) }

func (r *userResolver) UpdatedAt() string { return formatTime(r.u.UpdatedAt) }

func (r *userResolver) Role() *string {
	role := string(r.u.Role)
	return &role
}

// Todos follows the same access rule as todosByUser.
func (r *userResolver) Todos(ctx context.Context) ([]*todoResolver, error) {
	if err := auth.Authorize(ctx, auth.OpUserTodos); err != nil {
		return nil, fail(ctx, auth.OpUserTodos, err)
	}
	todos, err := r.root.todos.ListTodosByUser(ctx, r.u.ID)
	if err != nil {
		return nil, fail(ctx, auth.OpUserTodos, err)
	}
	return r.root.wrapTodos(todos), nil
}

type todoResolver struct {
	t    model.Todo
	root *Resolver
}

func (r *todoResolver) ID() graphql.ID { return graphql.ID(r.t.ID) }

func (r *todoResolver) Title() string { return r.t.Title }

func (r *todoResolver) Description() string { return r.t.Description }

func (r *todoResolver) UserID() graphql.ID { return graphql.ID(r.t.UserID) }

func (r *todoResolver) CreatedAt() string { return formatTime(r.t.CreatedAt) }

func (r *todoResolver) UpdatedAt() string { return formatTime(r.t.UpdatedAt) }

func (r *todoResolver) Status() *string {
	status := string(r.t.Status)
	return &status
}

// User resolves the owner; null once the owner has been deleted.
func (r *todoResolver) User(ctx context.Context) (*userResolver, error) {
	if err := auth.Authorize(ctx, auth.OpTodoOwner); err != nil {
		return nil, fail(ctx, auth.OpTodoOwner, err)
	}
	return r.root.lookupUser(ctx, auth.OpTodoOwner, r.t.UserID)
}

type loginResponseResolver struct {
	token string
}

func (r *loginResponseResolver) Token() *string { return &r.token }

func (r *Resolver) wrapUser(u *model.User) *userResolver {
	return &userResolver{u: *u, root: r}
}

func (r *Resolver) wrapTodo(t *model.Todo) *todoResolver {
	return &todoResolver{t: *t, root: r}
}

func (r *Resolver) wrapUsers(users []model.User) []*userResolver {
	out := make([]*userResolver, 0, len(users))
	for i := range users {
		out = append(out, r.wrapUser(&users[i]))
	}
	return out
}

func (r *Resolver) wrapTodos(todos []model.Todo) []*todoResolver {
	out := make([]*todoResolver, 0, len(todos))
	for i := range todos {
		out = append(out, r.wrapTodo(&todos[i]))
	}
	return out
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
