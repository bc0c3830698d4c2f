package controller

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/project/catalog/internal/auth"
	"github.com/project/catalog/internal/entity"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	graphql "github.com/graph-gophers/graphql-go"
)

type addBookArgs = struct {
	Title     string
	Author    string
	Published int32
	Genres    []string
}

type allBooksArgs = struct {
	Author *string
	Genre  *string
}

func TestSchemaCompiles(t *testing.T) {
	t.Parallel()

	_, service := initServiceTest(t)
	var schema *graphql.Schema
	require.NotPanics(t, func() {
		schema = NewSchema(service)
	})
	require.NotNil(t, schema)
}

func TestAddBook(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		useCaseErr  error
		requireCode string
	}{
		{name: "Valid add",
			useCaseErr: nil},

		{name: "Anonymous request",
			useCaseErr:  entity.ErrUnauthenticated,
			requireCode: codeUnauthenticated},

		{name: "Invalid input",
			useCaseErr:  entity.ErrInvalidInput,
			requireCode: codeBadUserInput},

		{name: "Internal error",
			useCaseErr:  errInternal,
			requireCode: codeInternal},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			m, service := initServiceTest(t)
			user := &entity.User{ID: uuid.NewString(), Username: "alice"}
			ctx := auth.WithUser(context.Background(), user)
			args := addBookArgs{
				Title:     "Clean Code",
				Author:    "Robert",
				Published: 2008,
				Genres:    []string{"agile"},
			}

			m.booksUseCase.EXPECT().AddBook(gomock.Any(), gomock.Any(), user).DoAndReturn(
				func(ctx context.Context, input entity.BookInput, currentUser *entity.User) (entity.Book, error) {
					require.Equal(t, "Clean Code", input.Title)
					require.Equal(t, "Robert", input.AuthorName)
					require.Equal(t, 2008, input.Published)
					if test.useCaseErr != nil {
						return entity.Book{}, test.useCaseErr
					}
					return entity.Book{
						ID:     uuid.NewString(),
						Title:  input.Title,
						Genres: input.Genres,
						Author: entity.Author{ID: uuid.NewString(), Name: input.AuthorName, BookCount: 1},
					}, nil
				})

			book, err := service.AddBook(ctx, args)

			if test.requireCode != "" {
				require.Nil(t, book)
				require.Equal(t, test.requireCode, extractCode(t, err))
				return
			}

			require.NoError(t, err)
			require.Equal(t, "Clean Code", book.Title())
			require.Equal(t, "Robert", book.Author().Name())
			require.Equal(t, int32(1), book.Author().BookCount())
		})
	}
}

func TestInternalErrorIsOpaque(t *testing.T) {
	t.Parallel()

	m, service := initServiceTest(t)
	ctx := auth.WithUser(context.Background(), &entity.User{ID: uuid.NewString()})

	m.booksUseCase.EXPECT().AddBook(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(entity.Book{}, errInternal)

	_, err := service.AddBook(ctx, addBookArgs{Title: "Clean Code", Author: "Robert", Published: 2008})
	require.Error(t, err)
	require.NotContains(t, err.Error(), errInternal.Error())
	require.Equal(t, "operation failed", err.Error())
}

func TestAllBooksResolver(t *testing.T) {
	t.Parallel()

	authorName := "Robert"
	genre := "agile"

	m, service := initServiceTest(t)
	born := 1952
	books := []entity.Book{
		{
			ID:     uuid.NewString(),
			Title:  "Clean Code",
			Genres: []string{"agile"},
			Author: entity.Author{ID: uuid.NewString(), Name: authorName, Born: &born, BookCount: 2},
		},
	}

	m.booksUseCase.EXPECT().AllBooks(gomock.Any(), entity.BookFilter{AuthorName: &authorName, Genre: &genre}).
		Return(books, nil)

	resolvers, err := service.AllBooks(context.Background(), allBooksArgs{Author: &authorName, Genre: &genre})
	require.NoError(t, err)
	require.Len(t, resolvers, 1)
	require.Equal(t, "Clean Code", resolvers[0].Title())
	require.Equal(t, []string{"agile"}, resolvers[0].Genres())
	require.Equal(t, int32(1952), *resolvers[0].Author().Born())
}

func TestAllBooksResolver_InternalError(t *testing.T) {
	t.Parallel()

	m, service := initServiceTest(t)
	m.booksUseCase.EXPECT().AllBooks(gomock.Any(), gomock.Any()).Return(nil, errInternal)

	resolvers, err := service.AllBooks(context.Background(), allBooksArgs{})
	require.Nil(t, resolvers)
	require.Equal(t, codeInternal, extractCode(t, err))
}

func TestBookCountResolver(t *testing.T) {
	t.Parallel()

	m, service := initServiceTest(t)
	m.booksUseCase.EXPECT().BookCount(gomock.Any()).Return(7, nil)

	count, err := service.BookCount(context.Background())
	require.NoError(t, err)
	require.Equal(t, int32(7), count)
}
