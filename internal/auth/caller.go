package auth

import (
	"context"

	"todogql/internal/model"
)

// Caller is the identity behind a request. The zero value is Anonymous.
type Caller struct {
	UserID string
	Role   model.Role
}

// Anonymous is the identity of a request without a usable token.
var Anonymous = Caller{}

// IsAnonymous reports whether no verified identity is attached.
func (c Caller) IsAnonymous() bool {
	return c.UserID == ""
}

// IsAdmin reports whether the caller is an authenticated admin.
func (c Caller) IsAdmin() bool {
	return !c.IsAnonymous() && c.Role == model.RoleAdmin
}

type callerCtxKey struct{}

// WithCaller attaches c to ctx.
func WithCaller(ctx context.Context, c Caller) context.Context {
	return context.WithValue(ctx, callerCtxKey{}, c)
}

// CallerFrom returns the caller stored in ctx, or Anonymous.
func CallerFrom(ctx context.Context) Caller {
	if c, ok := ctx.Value(callerCtxKey{}).(Caller); ok {
		return c
	}
	return Anonymous
}
