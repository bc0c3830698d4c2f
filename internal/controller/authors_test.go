package controller

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/project/catalog/internal/auth"
	"github.com/project/catalog/internal/entity"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type editAuthorArgs = struct {
	Name      string
	SetBornTo int32
}

func TestEditAuthorResolver(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		useCaseErr  error
		requireCode string
	}{
		{name: "Valid edit",
			useCaseErr: nil},

		{name: "Anonymous request",
			useCaseErr:  entity.ErrUnauthenticated,
			requireCode: codeUnauthenticated},

		{name: "Unknown author",
			useCaseErr:  entity.ErrAuthorNotFound,
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
			born := 1952

			m.authorUseCase.EXPECT().EditAuthor(gomock.Any(), "Robert", born, user).DoAndReturn(
				func(ctx context.Context, name string, setBornTo int, currentUser *entity.User) (entity.Author, error) {
					if test.useCaseErr != nil {
						return entity.Author{}, test.useCaseErr
					}
					return entity.Author{ID: uuid.NewString(), Name: name, Born: &setBornTo}, nil
				})

			author, err := service.EditAuthor(ctx, editAuthorArgs{Name: "Robert", SetBornTo: int32(born)})

			if test.requireCode != "" {
				require.Nil(t, author)
				require.Equal(t, test.requireCode, extractCode(t, err))
				return
			}

			require.NoError(t, err)
			require.Equal(t, "Robert", author.Name())
			require.Equal(t, int32(born), *author.Born())
		})
	}
}

func TestAllAuthorsResolver(t *testing.T) {
	t.Parallel()

	m, service := initServiceTest(t)
	authors := []entity.Author{
		{ID: uuid.NewString(), Name: "Robert", BookCount: 2},
		{ID: uuid.NewString(), Name: "Martin", BookCount: 1},
	}
	m.authorUseCase.EXPECT().AllAuthors(gomock.Any()).Return(authors, nil)

	resolvers, err := service.AllAuthors(context.Background())
	require.NoError(t, err)
	require.Len(t, resolvers, 2)
	require.Equal(t, "Robert", resolvers[0].Name())
	require.Nil(t, resolvers[0].Born())
	require.Equal(t, int32(2), resolvers[0].BookCount())
}

func TestAuthorCountResolver(t *testing.T) {
	t.Parallel()

	m, service := initServiceTest(t)
	m.authorUseCase.EXPECT().AuthorCount(gomock.Any()).Return(3, nil)

	count, err := service.AuthorCount(context.Background())
	require.NoError(t, err)
	require.Equal(t, int32(3), count)
}
