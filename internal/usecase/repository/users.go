package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/project/catalog/internal/entity"
	"github.com/project/catalog/pkg/logger"
	"go.uber.org/zap"
)

func (p *postgresRepository) CreateUser(ctx context.Context, user entity.User) (entity.User, error) {
	const query = `
INSERT INTO users (username, password_hash, favorite_genre)
VALUES ($1, $2, $3)
RETURNING id, created_at
`
	result := entity.User{
		Username:      user.Username,
		PasswordHash:  user.PasswordHash,
		FavoriteGenre: user.FavoriteGenre,
	}

	err := p.querier(ctx).QueryRow(ctx, query, user.Username, user.PasswordHash, user.FavoriteGenre).
		Scan(&result.ID, &result.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError

		if errors.As(err, &pgErr) && pgErr.Code == errUniqueViolation {
			return entity.User{}, fmt.Errorf("username %q is taken: %w",
				user.Username, entity.ErrUserAlreadyExists)
		}

		return entity.User{}, err
	}

	logger.MakeInfo(p.logger, "created user", zap.String("user_id", result.ID))
	return result, nil
}

func (p *postgresRepository) GetUserByUsername(ctx context.Context, username string) (entity.User, error) {
	const query = `
SELECT id, username, password_hash, favorite_genre, created_at
FROM users
WHERE username = $1
`
	return p.getUser(ctx, query, username)
}

func (p *postgresRepository) GetUserByID(ctx context.Context, idUser string) (entity.User, error) {
	const query = `
SELECT id, username, password_hash, favorite_genre, created_at
FROM users
WHERE id = $1
`
	return p.getUser(ctx, query, idUser)
}

func (p *postgresRepository) getUser(ctx context.Context, query, arg string) (entity.User, error) {
	var user entity.User
	err := p.querier(ctx).QueryRow(ctx, query, arg).
		Scan(&user.ID, &user.Username, &user.PasswordHash, &user.FavoriteGenre, &user.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return entity.User{}, entity.ErrUserNotFound
	}

	if err != nil {
		return entity.User{}, err
	}

	return user, nil
}
