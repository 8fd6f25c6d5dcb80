package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"todogql/internal/auth"
	apperrors "todogql/internal/errors"
	"todogql/internal/model"
	"todogql/internal/service"
)

const userDeletedMessage = "User deleted successfully"

// Resolver is the root resolver for both queries and mutations. Every entry
// point checks the permission table before calling a service.
type Resolver struct {
	auth  service.AuthService
	users service.UserService
	todos service.TodoService
}

type newTodoInput struct {
	Title       string
	Description string
	UserID      graphql.ID
}

type newUserInput struct {
	Username string
	Email    string
	Password string
	Role     *string
	Todos    *[]*newTodoInput
}

type updateUserInput struct {
	Username *string
	Email    *string
	Password *string
}

type updateTodoInput struct {
	Title       *string
	Description *string
	Status      *string
}

// Users lists every user.
func (r *Resolver) Users(ctx context.Context) ([]*userResolver, error) {
	if err := auth.Authorize(ctx, auth.OpListUsers); err != nil {
		return nil, fail(ctx, auth.OpListUsers, err)
	}
	users, err := r.users.ListUsers(ctx)
	if err != nil {
		return nil, fail(ctx, auth.OpListUsers, err)
	}
	return r.wrapUsers(users), nil
}

// User returns null when no user has the id.
func (r *Resolver) User(ctx context.Context, args struct{ ID graphql.ID }) (*userResolver, error) {
	if err := auth.Authorize(ctx, auth.OpGetUser); err != nil {
		return nil, fail(ctx, auth.OpGetUser, err)
	}
	return r.lookupUser(ctx, auth.OpGetUser, string(args.ID))
}

func (r *Resolver) lookupUser(ctx context.Context, op auth.Operation, id string) (*userResolver, error) {
	user, err := r.users.GetUser(ctx, id)
	if apperrors.Is(err, apperrors.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fail(ctx, op, err)
	}
	return r.wrapUser(user), nil
}

// Todos lists every to-do.
func (r *Resolver) Todos(ctx context.Context) ([]*todoResolver, error) {
	if err := auth.Authorize(ctx, auth.OpListTodos); err != nil {
		return nil, fail(ctx, auth.OpListTodos, err)
	}
	todos, err := r.todos.ListTodos(ctx)
	if err != nil {
		return nil, fail(ctx, auth.OpListTodos, err)
	}
	return r.wrapTodos(todos), nil
}

// Todo returns null when no to-do has the id.
func (r *Resolver) Todo(ctx context.Context, args struct{ ID graphql.ID }) (*todoResolver, error) {
	if err := auth.Authorize(ctx, auth.OpGetTodo); err != nil {
		return nil, fail(ctx, auth.OpGetTodo, err)
	}
	todo, err := r.todos.GetTodo(ctx, string(args.ID))
	if apperrors.Is(err, apperrors.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fail(ctx, auth.OpGetTodo, err)
	}
	return r.wrapTodo(todo), nil
}

// TodosByUser lists the to-dos owned by a user. Requires a logged-in caller.
func (r *Resolver) TodosByUser(ctx context.Context, args struct{ UserID graphql.ID }) ([]*todoResolver, error) {
	if err := auth.Authorize(ctx, auth.OpTodosByUser); err != nil {
		return nil, fail(ctx, auth.OpTodosByUser, err)
	}
	todos, err := r.todos.ListTodosByUser(ctx, string(args.UserID))
	if err != nil {
		return nil, fail(ctx, auth.OpTodosByUser, err)
	}
	return r.wrapTodos(todos), nil
}

// RegisterUser creates an account and any initial to-dos for it.
func (r *Resolver) RegisterUser(ctx context.Context, args struct{ Input newUserInput }) (*userResolver, error) {
	if err := auth.Authorize(ctx, auth.OpRegisterUser); err != nil {
		return nil, fail(ctx, auth.OpRegisterUser, err)
	}
	in := service.RegisterInput{
		Username: args.Input.Username,
		Email:    args.Input.Email,
		Password: args.Input.Password,
	}
	if args.Input.Role != nil {
		in.Role = model.Role(*args.Input.Role)
	}
	if args.Input.Todos != nil {
		for _, t := range *args.Input.Todos {
			if t == nil {
				continue
			}
			in.Todos = append(in.Todos, service.InitialTodo{Title: t.Title, Description: t.Description})
		}
	}

	user, err := r.auth.Register(ctx, in)
	if err != nil {
		return nil, fail(ctx, auth.OpRegisterUser, err)
	}
	return r.wrapUser(user), nil
}

// LoginUser exchanges credentials for a signed token.
func (r *Resolver) LoginUser(ctx context.Context, args struct {
	Email    string
	Password string
}) (*loginResponseResolver, error) {
	if err := auth.Authorize(ctx, auth.OpLoginUser); err != nil {
		return nil, fail(ctx, auth.OpLoginUser, err)
	}
	token, err := r.auth.Login(ctx, args.Email, args.Password)
	if err != nil {
		return nil, fail(ctx, auth.OpLoginUser, err)
	}
	return &loginResponseResolver{token: token}, nil
}

// UpdateUser is open to any authenticated caller, not only the target user.
func (r *Resolver) UpdateUser(ctx context.Context, args struct {
	ID    graphql.ID
	Input updateUserInput
}) (*userResolver, error) {
	if err := auth.Authorize(ctx, auth.OpUpdateUser); err != nil {
		return nil, fail(ctx, auth.OpUpdateUser, err)
	}
	user, err := r.users.UpdateUser(ctx, string(args.ID), service.UpdateUserInput{
		Username: args.Input.Username,
		Email:    args.Input.Email,
		Password: args.Input.Password,
	})
	if err != nil {
		return nil, fail(ctx, auth.OpUpdateUser, err)
	}
	return r.wrapUser(user), nil
}

// DeleteUser removes a user. Admin only.
func (r *Resolver) DeleteUser(ctx context.Context, args struct{ ID graphql.ID }) (*string, error) {
	if err := auth.Authorize(ctx, auth.OpDeleteUser); err != nil {
		return nil, fail(ctx, auth.OpDeleteUser, err)
	}
	if err := r.users.DeleteUser(ctx, string(args.ID)); err != nil {
		return nil, fail(ctx, auth.OpDeleteUser, err)
	}
	msg := userDeletedMessage
	return &msg, nil
}

// CreateTodo stores a new to-do for the given owner.
func (r *Resolver) CreateTodo(ctx context.Context, args struct{ Input newTodoInput }) (*todoResolver, error) {
	if err := auth.Authorize(ctx, auth.OpCreateTodo); err != nil {
		return nil, fail(ctx, auth.OpCreateTodo, err)
	}
	todo, err := r.todos.CreateTodo(ctx, service.CreateTodoInput{
		Title:       args.Input.Title,
		Description: args.Input.Description,
		UserID:      string(args.Input.UserID),
	})
	if err != nil {
		return nil, fail(ctx, auth.OpCreateTodo, err)
	}
	return r.wrapTodo(todo), nil
}

// UpdateTodo is open to any authenticated caller; ownership is not checked.
func (r *Resolver) UpdateTodo(ctx context.Context, args struct {
	ID    graphql.ID
	Input updateTodoInput
}) (*todoResolver, error) {
	if err := auth.Authorize(ctx, auth.OpUpdateTodo); err != nil {
		return nil, fail(ctx, auth.OpUpdateTodo, err)
	}
	in := service.UpdateTodoInput{
		Title:       args.Input.Title,
		Description: args.Input.Description,
	}
	if args.Input.Status != nil {
		status := model.TodoStatus(*args.Input.Status)
		in.Status = &status
	}
	todo, err := r.todos.UpdateTodo(ctx, string(args.ID), in)
	if err != nil {
		return nil, fail(ctx, auth.OpUpdateTodo, err)
	}
	return r.wrapTodo(todo), nil
}

// DeleteTodo removes a to-do and returns it.
func (r *Resolver) DeleteTodo(ctx context.Context, args struct{ ID graphql.ID }) (*todoResolver, error) {
	if err := auth.Authorize(ctx, auth.OpDeleteTodo); err != nil {
		return nil, fail(ctx, auth.OpDeleteTodo, err)
	}
	todo, err := r.todos.DeleteTodo(ctx, string(args.ID))
	if err != nil {
		return nil, fail(ctx, auth.OpDeleteTodo, err)
	}
	return r.wrapTodo(todo), nil
}
