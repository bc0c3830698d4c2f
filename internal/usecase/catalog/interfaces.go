package catalog

import (
	"context"

	"github.com/project/catalog/internal/entity"
)

//go:generate mockgen -source=interfaces.go -destination=../../controller/mocks/usecase_mock.go -package=mocks

type (
	AuthorUseCase interface {
		EditAuthor(ctx context.Context, name string, setBornTo int, currentUser *entity.User) (entity.Author, error)
		AllAuthors(ctx context.Context) ([]entity.Author, error)
		AuthorCount(ctx context.Context) (int, error)
	}

	BooksUseCase interface {
		AddBook(ctx context.Context, input entity.BookInput, currentUser *entity.User) (entity.Book, error)
		AllBooks(ctx context.Context, filter entity.BookFilter) ([]entity.Book, error)
		BookCount(ctx context.Context) (int, error)
	}

	UsersUseCase interface {
		CreateUser(ctx context.Context, username, favoriteGenre, password string) (entity.User, error)
		Login(ctx context.Context, username, password string) (string, error)
		ResolveCurrentUser(ctx context.Context, token string) (*entity.User, error)
	}

	SubscriptionUseCase interface {
		SubscribeBookAdded(ctx context.Context) <-chan entity.Book
	}
)
