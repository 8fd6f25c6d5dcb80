package service

import (
	"context"

	"github.com/sirupsen/logrus"

	apperrors "todogql/internal/errors"
	"todogql/internal/model"
	"todogql/internal/repository"
)

// UpdateUserInput lists the user fields a caller may change. Nil means keep.
type UpdateUserInput struct {
	Username *string
	Email    *string
	Password *string
}

// UserService exposes user operations.
type UserService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, id string) (*model.User, error)
	UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*model.User, error)
	DeleteUser(ctx context.Context, id string) error
}

type userService struct {
	repo repository.UserRepository
	log  logrus.FieldLogger
}

// NewUserService builds a UserService over repo.
func NewUserService(repo repository.UserRepository, log logrus.FieldLogger) UserService {
	return &userService{repo: repo, log: log}
}

// ListUsers returns every user.
func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

// GetUser returns the user or a NotFound error.
func (s *userService) GetUser(ctx context.Context, id string) (*model.User, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("id is required")
	}
	return s.repo.FindByID(ctx, id)
}

// UpdateUser applies input to the stored user. The password is hashed only
// when a new one is supplied.
func (s *userService) UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*model.User, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("id is required")
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Email != nil && *input.Email != user.Email {
		other, err := s.repo.FindByEmail(ctx, *input.Email)
		if err == nil && other != nil {
			return nil, ErrUserAlreadyExists
		}
		if err != nil && !apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		user.Email = *input.Email
	}
	if input.Password != nil {
		hashed, err := hashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the user. The user's to-dos are kept.
func (s *userService) DeleteUser(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("id is required")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.WithField("user_id", id).Info("user deleted")
	return nil
}
