package entity

import (
	"time"

	"github.com/pkg/errors"
)

type User struct {
	ID            string
	Username      string
	PasswordHash  string
	FavoriteGenre string
	CreatedAt     time.Time
}

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")

	ErrUnauthenticated    = errors.New("not authenticated")
	ErrInvalidCredentials = errors.New("wrong credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidInput       = errors.New("invalid input")
)
