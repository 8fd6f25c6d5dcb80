package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "todogql/internal/errors"
	"todogql/internal/model"
)

func TestCheck_Table(t *testing.T) {
	user := Caller{UserID: "u1", Role: model.RoleUser}
	admin := Caller{UserID: "a1", Role: model.RoleAdmin}

	tests := []struct {
		op                     Operation
		anonymous, user, admin bool
	}{
		{OpListUsers, true, true, true},
		{OpGetUser, true, true, true},
		{OpListTodos, true, true, true},
		{OpGetTodo, true, true, true},
		{OpTodoOwner, true, true, true},
		{OpRegisterUser, true, true, true},
		{OpLoginUser, true, true, true},
		{OpTodosByUser, false, true, true},
		{OpUserTodos, false, true, true},
		{OpUpdateUser, false, true, true},
		{OpCreateTodo, false, true, true},
		{OpUpdateTodo, false, true, true},
		{OpDeleteTodo, false, true, true},
		{OpDeleteUser, false, false, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.op), func(t *testing.T) {
			for _, c := range []struct {
				caller  Caller
				allowed bool
			}{
				{Anonymous, tt.anonymous},
				{user, tt.user},
				{admin, tt.admin},
			} {
				err := Check(tt.op, c.caller)
				if c.allowed {
					assert.NoError(t, err)
				} else {
					assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
					assert.Equal(t, "Unauthorized", err.Error())
				}
			}
		})
	}
}

func TestCheck_EveryOperationListed(t *testing.T) {
	assert.Len(t, Permissions, 14)
	assert.ErrorIs(t, Check(Operation("dropDatabase"), Caller{UserID: "a1", Role: model.RoleAdmin}), apperrors.ErrUnauthorized)
}

func TestAuthorize_UsesContextCaller(t *testing.T) {
	ctx := context.Background()
	assert.ErrorIs(t, Authorize(ctx, OpCreateTodo), apperrors.ErrUnauthorized)

	ctx = WithCaller(ctx, Caller{UserID: "u1", Role: model.RoleUser})
	assert.NoError(t, Authorize(ctx, OpCreateTodo))
	assert.ErrorIs(t, Authorize(ctx, OpDeleteUser), apperrors.ErrUnauthorized)
}

func TestAdminRoleWithoutIdentityIsAnonymous(t *testing.T) {
	c := Caller{Role: model.RoleAdmin}
	assert.True(t, c.IsAnonymous())
	assert.False(t, c.IsAdmin())
}
