package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"todogql/internal/auth"
	apperrors "todogql/internal/errors"
	"todogql/internal/model"
	"todogql/internal/repository"
)

var (
	// ErrUserAlreadyExists is returned when trying to register an existing email.
	ErrUserAlreadyExists = apperrors.Conflict("User with this email already exists")
	// ErrUserNotFound is returned when no user matches the login email.
	ErrUserNotFound = apperrors.NotFound("User not found")
	// ErrInvalidPassword is returned when the login password does not match.
	ErrInvalidPassword = apperrors.New(apperrors.ErrUnauthorized, "Invalid password")
)

// RegisterInput carries a registration request.
type RegisterInput struct {
	Username string `validate:"required"`
	Email    string `validate:"required"`
	Password string `validate:"required"`
	Role     model.Role
	Todos    []InitialTodo
}

// InitialTodo is a to-do created together with a new user.
type InitialTodo struct {
	Title       string
	Description string
}

type loginInput struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// AuthService handles registration and login.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*model.User, error)
	Login(ctx context.Context, email, password string) (token string, err error)
}

type authService struct {
	users      repository.UserRepository
	todos      repository.TodoRepository
	jwtService *auth.JWTService
	tokenTTL   time.Duration
	log        logrus.FieldLogger
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, todos repository.TodoRepository, jwtService *auth.JWTService, tokenTTL time.Duration, log logrus.FieldLogger) AuthService {
	return &authService{
		users:      users,
		todos:      todos,
		jwtService: jwtService,
		tokenTTL:   tokenTTL,
		log:        log,
	}
}

// Register creates a user with a hashed password, then its initial to-dos.
// The two steps are not atomic: if a to-do fails the user is kept and the
// error is returned.
func (s *authService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	if err := requireFields(input, "All fields are required"); err != nil {
		return nil, err
	}

	existing, err := s.users.FindByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return nil, ErrUserAlreadyExists
	}
	if err != nil && !apperrors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	hashed, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username: input.Username,
		Email:    input.Email,
		Password: hashed,
		Role:     input.Role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	s.log.WithField("user_id", user.ID).Info("user registered")

	for _, t := range input.Todos {
		todo := &model.Todo{Title: t.Title, Description: t.Description, UserID: user.ID}
		if err := s.todos.Create(ctx, todo); err != nil {
			s.log.WithField("user_id", user.ID).WithError(err).Warn("initial todo not created")
			return nil, err
		}
	}

	return user, nil
}

// Login verifies credentials and returns a signed token.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	if err := requireFields(loginInput{Email: email, Password: password}, "Email and password are required"); err != nil {
		return "", err
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	if !auth.VerifyPassword(password, user.Password) {
		return "", ErrInvalidPassword
	}

	token, err := s.jwtService.IssueToken(user.ID, user.Role, s.tokenTTL)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrStorage, err, "failed to issue token")
	}

	s.log.WithField("user_id", user.ID).Info("user logged in")
	return token, nil
}
