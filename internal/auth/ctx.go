package auth

import (
	"context"

	"github.com/solbing/solbing-api/internal/model"
)

var userCtxKey = &contextKey{"user"}

type contextKey struct {
	name string
}

// WithContext sets the User in the given context
func WithContext(r context.Context, user *model.User) context.Context {
	return context.WithValue(r, userCtxKey, user)
}

// FromContext finds the user from the context.
func FromContext(ctx context.Context) (*model.User, bool) {
	raw, ok := ctx.Value(userCtxKey).(*model.User)
	return raw, ok
}
