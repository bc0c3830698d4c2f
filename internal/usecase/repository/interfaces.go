package repository

import (
	"context"

	"github.com/project/catalog/internal/entity"
)

//go:generate mockgen -source=interfaces.go -destination=../catalog/mocks/repository_mock.go -package=mocks

type (
	AuthorRepository interface {
		RegisterAuthor(ctx context.Context, author entity.Author) (entity.Author, error)
		GetAuthorByName(ctx context.Context, name string) (entity.Author, error)
		SetAuthorBorn(ctx context.Context, name string, born int) (entity.Author, error)
		IncrementBookCount(ctx context.Context, idAuthor string) error
		GetAllAuthors(ctx context.Context) ([]entity.Author, error)
		CountAuthors(ctx context.Context) (int, error)
	}

	BooksRepository interface {
		AddBook(ctx context.Context, book entity.Book) (entity.Book, error)
		GetAllBooks(ctx context.Context, authorID, genre *string) ([]entity.Book, error)
		CountBooks(ctx context.Context) (int, error)
	}

	UsersRepository interface {
		CreateUser(ctx context.Context, user entity.User) (entity.User, error)
		GetUserByUsername(ctx context.Context, username string) (entity.User, error)
		GetUserByID(ctx context.Context, idUser string) (entity.User, error)
	}

	Transactor interface {
		WithTx(ctx context.Context, function func(ctx context.Context) error) error
	}
)
