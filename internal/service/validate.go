package service

import (
	"github.com/go-playground/validator/v10"

	"todogql/internal/auth"
	apperrors "todogql/internal/errors"
)

var inputValidator = validator.New()

// requireFields checks the `validate` tags of an input struct before any
// storage access. Field-level constraints belong to the model schema.
func requireFields(input any, message string) error {
	if err := inputValidator.Struct(input); err != nil {
		return apperrors.Wrap(apperrors.ErrInvalidInput, err, "%s", message)
	}
	return nil
}

// hashPassword hashes plaintext, reporting every failure as invalid input.
func hashPassword(plaintext string) (string, error) {
	hashed, err := auth.HashPassword(plaintext)
	if apperrors.Is(err, auth.ErrEmptyPassword) {
		return "", apperrors.Wrap(apperrors.ErrInvalidInput, err, "Password is required")
	}
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrInvalidInput, err, "Password could not be hashed")
	}
	return hashed, nil
}
