package catalog

import (
	"context"
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/project/catalog/internal/auth"
	"github.com/project/catalog/internal/entity"
	"github.com/project/catalog/internal/log"
	"go.opentelemetry.io/otel/trace"
)

func (c *catalogImpl) CreateUser(ctx context.Context, username, favoriteGenre, password string) (entity.User, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	log.InfoCreateUser(c.logger, "Start of create user", traceID, username)

	err := validation.Validate(username, validation.Required)
	if err == nil {
		err = validation.Validate(password, validation.Required)
	}
	if err != nil {
		err = fmt.Errorf("%w: %s", entity.ErrInvalidInput, err)
		log.ErrorCreateUser(c.logger, err, "Got invalid user input", traceID, username)
		return entity.User{}, err
	}

	hash, err := auth.HashPassword(password)

	if log.ErrorCreateUser(c.logger, err, "Failed hash password", traceID, username) {
		return entity.User{}, err
	}

	user, err := c.usersRepository.CreateUser(ctx, entity.User{
		Username:      username,
		PasswordHash:  hash,
		FavoriteGenre: favoriteGenre,
	})

	if log.ErrorCreateUser(c.logger, err, "Failed create user", traceID, username) {
		span.RecordError(err)
		return entity.User{}, err
	}

	log.InfoCreateUser(c.logger, "Created the user", traceID, username, user.ID)
	return user, nil
}

// Login validates credentials and issues a signed token embedding
// {userId, username}. Unknown username and wrong password are not
// distinguishable by the returned error.
func (c *catalogImpl) Login(ctx context.Context, username, password string) (string, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	log.InfoLogin(c.logger, "Start of login", traceID, username)

	user, err := c.usersRepository.GetUserByUsername(ctx, username)

	if errors.Is(err, entity.ErrUserNotFound) {
		log.ErrorLogin(c.logger, entity.ErrInvalidCredentials, "Login with unknown username", traceID, username)
		return "", entity.ErrInvalidCredentials
	}

	if log.ErrorLogin(c.logger, err, "Failed lookup user", traceID, username) {
		span.RecordError(err)
		return "", err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		log.ErrorLogin(c.logger, entity.ErrInvalidCredentials, "Login with wrong password", traceID, username)
		return "", entity.ErrInvalidCredentials
	}

	token, err := c.tokens.Sign(user.ID, user.Username)

	if log.ErrorLogin(c.logger, err, "Failed sign token", traceID, username) {
		span.RecordError(err)
		return "", err
	}

	log.InfoLogin(c.logger, "Logged in the user", traceID, username)
	return token, nil
}

// ResolveCurrentUser maps a bearer token to a user. An empty token and a
// valid token whose user no longer exists both resolve to anonymous; a
// token that fails verification returns ErrInvalidToken and the caller
// decides how hard to fail.
func (c *catalogImpl) ResolveCurrentUser(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, nil
	}

	claims, err := c.tokens.Verify(token)

	if err != nil {
		return nil, err
	}

	user, err := c.usersRepository.GetUserByID(ctx, claims.UserID)

	if errors.Is(err, entity.ErrUserNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &user, nil
}
