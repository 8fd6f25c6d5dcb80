package auth

import (
	"context"

	apperrors "todogql/internal/errors"
)

// Operation names an API entry point subject to access control.
type Operation string

const (
	OpListUsers    Operation = "users"
	OpGetUser      Operation = "user"
	OpListTodos    Operation = "todos"
	OpGetTodo      Operation = "todo"
	OpTodosByUser  Operation = "todosByUser"
	OpUserTodos    Operation = "User.todos"
	OpTodoOwner    Operation = "Todo.user"
	OpRegisterUser Operation = "registerUser"
	OpLoginUser    Operation = "loginUser"
	OpUpdateUser   Operation = "updateUser"
	OpDeleteUser   Operation = "deleteUser"
	OpCreateTodo   Operation = "createTodo"
	OpUpdateTodo   Operation = "updateTodo"
	OpDeleteTodo   Operation = "deleteTodo"
)

// Access is the minimum caller level an operation accepts.
type Access int

const (
	Public Access = iota
	Authenticated
	Admin
)

// Permissions is the complete access table. Mutations on users and to-dos
// only require a logged-in caller; neither ownership nor self-service is
// checked. Deleting a user is the one admin-only operation.
var Permissions = map[Operation]Access{
	OpListUsers:    Public,
	OpGetUser:      Public,
	OpListTodos:    Public,
	OpGetTodo:      Public,
	OpTodosByUser:  Authenticated,
	OpUserTodos:    Authenticated,
	OpTodoOwner:    Public,
	OpRegisterUser: Public,
	OpLoginUser:    Public,
	OpUpdateUser:   Authenticated,
	OpDeleteUser:   Admin,
	OpCreateTodo:   Authenticated,
	OpUpdateTodo:   Authenticated,
	OpDeleteTodo:   Authenticated,
}

// Allows reports whether c satisfies the access level a.
func (a Access) Allows(c Caller) bool {
	switch a {
	case Public:
		return true
	case Authenticated:
		return !c.IsAnonymous()
	case Admin:
		return c.IsAdmin()
	default:
		return false
	}
}

// Check enforces the table for op against c. Unknown operations are denied.
func Check(op Operation, c Caller) error {
	access, ok := Permissions[op]
	if !ok || !access.Allows(c) {
		return apperrors.Unauthorized()
	}
	return nil
}

// Authorize enforces the table for op against the caller stored in ctx.
func Authorize(ctx context.Context, op Operation) error {
	return Check(op, CallerFrom(ctx))
}
