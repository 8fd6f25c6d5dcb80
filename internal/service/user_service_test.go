package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"todogql/internal/auth"
	apperrors "todogql/internal/errors"
	"todogql/internal/model"
)

func ptr[T any](v T) *T { return &v }

func storedUser(t *testing.T) *model.User {
	t.Helper()
	hashed, err := auth.HashPassword("password123")
	require.NoError(t, err)
	return &model.User{ID: "user-1", Username: "alice", Email: "alice@example.com", Password: hashed, Role: model.RoleUser}
}

func TestUserService_UpdateKeepsHashOnUnrelatedChange(t *testing.T) {
	user := storedUser(t)
	originalHash := user.Password

	repo := new(MockUserRepository)
	repo.On("FindByID", mock.Anything, "user-1").Return(user, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	svc := NewUserService(repo, nullLogger())
	updated, err := svc.UpdateUser(context.Background(), "user-1", UpdateUserInput{Username: ptr("alice2")})

	require.NoError(t, err)
	assert.Equal(t, "alice2", updated.Username)
	assert.Equal(t, originalHash, updated.Password)
	repo.AssertExpectations(t)
}

func TestUserService_UpdateHashesNewPassword(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByID", mock.Anything, "user-1").Return(storedUser(t), nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	svc := NewUserService(repo, nullLogger())
	updated, err := svc.UpdateUser(context.Background(), "user-1", UpdateUserInput{Password: ptr("new-secret")})

	require.NoError(t, err)
	assert.NotEqual(t, "new-secret", updated.Password)
	assert.True(t, auth.VerifyPassword("new-secret", updated.Password))
	assert.False(t, auth.VerifyPassword("password123", updated.Password))
}

func TestUserService_UpdateLongPassword(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByID", mock.Anything, "user-1").Return(storedUser(t), nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	password := strings.Repeat("p", 100)
	svc := NewUserService(repo, nullLogger())
	updated, err := svc.UpdateUser(context.Background(), "user-1", UpdateUserInput{Password: ptr(password)})

	require.NoError(t, err)
	assert.True(t, auth.VerifyPassword(password, updated.Password))
}

func TestUserService_UpdateErrors(t *testing.T) {
	tests := []struct {
		name            string
		id              string
		input           UpdateUserInput
		setupMock       func(*MockUserRepository)
		expectedError   error
		expectedMessage string
	}{
		{
			name:          "missing id",
			setupMock:     func(*MockUserRepository) {},
			expectedError: apperrors.ErrInvalidInput,
		},
		{
			name: "user not found",
			id:   "ghost",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, "ghost").Return(nil, apperrors.NotFound("User not found"))
			},
			expectedError: apperrors.ErrNotFound,
		},
		{
			name:  "email taken",
			id:    "user-1",
			input: UpdateUserInput{Email: ptr("bob@example.com")},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, "user-1").Return(&model.User{ID: "user-1", Email: "alice@example.com"}, nil)
				m.On("FindByEmail", mock.Anything, "bob@example.com").Return(&model.User{ID: "user-2"}, nil)
			},
			expectedError: ErrUserAlreadyExists,
		},
		{
			name:  "empty password",
			id:    "user-1",
			input: UpdateUserInput{Password: ptr("")},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, "user-1").Return(&model.User{ID: "user-1"}, nil)
			},
			expectedError:   apperrors.ErrInvalidInput,
			expectedMessage: "Password is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(repo)
			svc := NewUserService(repo, nullLogger())

			user, err := svc.UpdateUser(context.Background(), tt.id, tt.input)
			assert.ErrorIs(t, err, tt.expectedError)
			if tt.expectedMessage != "" {
				assert.Equal(t, tt.expectedMessage, apperrors.PublicMessage(err))
			}
			assert.Nil(t, user)
			repo.AssertExpectations(t)
		})
	}
}

func TestUserService_Delete(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("Delete", mock.Anything, "user-1").Return(nil)
	repo.On("Delete", mock.Anything, "ghost").Return(apperrors.NotFound("User not found"))

	svc := NewUserService(repo, nullLogger())
	assert.NoError(t, svc.DeleteUser(context.Background(), "user-1"))
	assert.ErrorIs(t, svc.DeleteUser(context.Background(), "ghost"), apperrors.ErrNotFound)
	assert.ErrorIs(t, svc.DeleteUser(context.Background(), ""), apperrors.ErrInvalidInput)
	repo.AssertExpectations(t)
}
