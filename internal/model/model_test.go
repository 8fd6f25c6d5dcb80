package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "todogql/internal/errors"
)

func validTodo() *Todo {
	return &Todo{
		ID:          "t1",
		Title:       "Buy milk",
		Description: "Buy milk from the store",
		UserID:      "u1",
	}
}

func TestTodo_TitleBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		wantErr bool
	}{
		{"too short", 2, true},
		{"minimum", 3, false},
		{"maximum", 20, false},
		{"too long", 21, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			todo := validTodo()
			todo.Title = strings.Repeat("a", tt.length)
			todo.ApplyDefaults()

			err := todo.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
				assert.Contains(t, err.Error(), "Title")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTodo_DescriptionBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		wantErr bool
	}{
		{"too short", 9, true},
		{"minimum", 10, false},
		{"maximum", 200, false},
		{"too long", 201, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			todo := validTodo()
			todo.Description = strings.Repeat("d", tt.length)
			todo.ApplyDefaults()

			err := todo.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTodo_DefaultsAndStatus(t *testing.T) {
	todo := validTodo()
	todo.ApplyDefaults()
	assert.Equal(t, StatusPending, todo.Status)
	require.NoError(t, todo.Validate())

	todo.Status = "DONE"
	err := todo.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Status must be one of")

	todo.Status = StatusCompleted
	todo.UserID = ""
	err = todo.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UserID is required")
}

func TestUser_Validate(t *testing.T) {
	base := func() *User {
		return &User{ID: "u1", Username: "alice", Email: "alice@example.com", Password: "$2a$12$hash"}
	}

	u := base()
	u.ApplyDefaults()
	assert.Equal(t, RoleUser, u.Role)
	assert.NoError(t, u.Validate())

	tests := []struct {
		name   string
		mutate func(*User)
		field  string
	}{
		{"short username", func(u *User) { u.Username = "al" }, "Username"},
		{"long username", func(u *User) { u.Username = strings.Repeat("x", 21) }, "Username"},
		{"missing email", func(u *User) { u.Email = "" }, "Email"},
		{"missing password", func(u *User) { u.Password = "" }, "Password"},
		{"unknown role", func(u *User) { u.Role = "root" }, "Role"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := base()
			u.ApplyDefaults()
			tt.mutate(u)
			err := u.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestRoleAndStatusValid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("").Valid())
	assert.True(t, StatusInProgress.Valid())
	assert.False(t, TodoStatus("pending").Valid())
}
