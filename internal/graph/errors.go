package graph

import (
	"context"

	"todogql/internal/auth"
	apperrors "todogql/internal/errors"
	"todogql/internal/logging"
)

// resolverError exposes only the public message and wire code of err.
type resolverError struct {
	err error
}

func (e *resolverError) Error() string {
	return apperrors.PublicMessage(e.err)
}

func (e *resolverError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": apperrors.Code(e.err)}
}

func (e *resolverError) Unwrap() error { return e.err }

// fail converts a service error for the GraphQL response. Storage failures are
// logged with their cause since the caller only sees a generic message.
func fail(ctx context.Context, op auth.Operation, err error) error {
	if apperrors.Code(err) == apperrors.CodeStorageFailure {
		logging.FromContext(ctx).WithError(err).WithField("operation", string(op)).Error("operation failed")
	}
	return &resolverError{err: err}
}
