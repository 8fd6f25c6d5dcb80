package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "todogql/internal/errors"
	"todogql/internal/model"
)

var userColumns = []string{"username", "email", "password", "role", "updated_at"}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	if err := prepareUserCreate(user); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return translateGormUserError(err, "register user")
	}
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	if err := prepareUserUpdate(user); err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Model(&model.User{ID: user.ID}).Select(userColumns).Updates(user)
	if res.Error != nil {
		return translateGormUserError(res.Error, "update user")
	}
	if res.RowsAffected == 0 {
		_, err := r.FindByID(ctx, user.ID)
		return err
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.User{})
	if res.Error != nil {
		return apperrors.Storage(res.Error, "delete user")
	}
	if res.RowsAffected == 0 {
		return errUserNotFound
	}
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, translateGormUserError(err, "fetch user")
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translateGormUserError(err, "fetch user")
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&users).Error; err != nil {
		return nil, apperrors.Storage(err, "fetch users")
	}
	return users, nil
}

func translateGormUserError(err error, op string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errUserNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errEmailConflict
	default:
		return apperrors.Storage(err, op)
	}
}
