package auth

import (
	"context"

	"github.com/project/catalog/internal/entity"
)

type userInjector struct{}

// WithUser stores the resolved current user in the request context.
func WithUser(ctx context.Context, user *entity.User) context.Context {
	return context.WithValue(ctx, userInjector{}, user)
}

// UserFrom returns the current user, or nil for an anonymous context.
func UserFrom(ctx context.Context) *entity.User {
	user, ok := ctx.Value(userInjector{}).(*entity.User)

	if !ok {
		return nil
	}

	return user
}
