package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/project/catalog/internal/entity"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func initRepoTest(t *testing.T) (context.Context, pgxmock.PgxPoolIface, *postgresRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	logger, err := zap.NewProduction()
	require.NoError(t, err)
	return context.Background(), mock, New(logger, mock)
}

func Test_postgresRepository_RegisterAuthor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		txL        txLayer
		errDB      error
		errRequire error
	}{
		{
			name: "ok without transaction",
		},
		{
			name: "ok with transaction",
			txL:  extract,
		},
		{
			name:       "unique violation",
			errDB:      &pgconn.PgError{Code: errUniqueViolation},
			errRequire: entity.ErrAuthorAlreadyExists,
		},
		{
			name:       "internal error",
			errDB:      errInternal,
			errRequire: errInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, mock, repo := initRepoTest(t)
			if tt.txL == extract {
				ctx = insertTxInMock(ctx, mock)
			}

			expected := mock.ExpectQuery(`INSERT INTO author`).WithArgs("Robert")
			if tt.errDB != nil {
				expected.WillReturnError(tt.errDB)
			} else {
				expected.WillReturnRows(pgxmock.NewRows([]string{"id", "book_count", "created_at", "updated_at"}).
					AddRow(uuid.NewString(), 0, time.Now(), time.Now()))
			}

			author, err := repo.RegisterAuthor(ctx, entity.Author{Name: "Robert"})
			require.ErrorIs(t, err, tt.errRequire)
			if err != nil {
				require.Empty(t, author)
				return
			}
			require.NotEmpty(t, author.ID)
			require.Equal(t, "Robert", author.Name)
			require.Zero(t, author.BookCount)
		})
	}
}

func Test_postgresRepository_GetAuthorByName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		found      bool
		errRequire error
	}{
		{
			name:  "author exists",
			found: true,
		},
		{
			name:       "author missing",
			errRequire: entity.ErrAuthorNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, mock, repo := initRepoTest(t)
			born := 1952

			rows := pgxmock.NewRows([]string{"id", "name", "born", "book_count", "created_at", "updated_at"})
			if tt.found {
				rows.AddRow(uuid.NewString(), "Robert", &born, 2, time.Now(), time.Now())
			}
			mock.ExpectQuery(`SELECT id, name, born, book_count`).WithArgs("Robert").WillReturnRows(rows)

			author, err := repo.GetAuthorByName(ctx, "Robert")
			require.ErrorIs(t, err, tt.errRequire)
			if err != nil {
				require.Empty(t, author)
				return
			}
			require.Equal(t, "Robert", author.Name)
			require.Equal(t, 2, author.BookCount)
			require.NotNil(t, author.Born)
			require.Equal(t, born, *author.Born)
		})
	}
}

func Test_postgresRepository_IncrementBookCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		affected   int64
		errDB      error
		errRequire error
	}{
		{
			name:     "ok",
			affected: 1,
		},
		{
			name:       "unknown author",
			affected:   0,
			errRequire: entity.ErrAuthorNotFound,
		},
		{
			name:       "internal error",
			errDB:      errInternal,
			errRequire: errInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, mock, repo := initRepoTest(t)
			idAuthor := uuid.NewString()

			expected := mock.ExpectExec(`UPDATE author SET book_count`).WithArgs(idAuthor)
			if tt.errDB != nil {
				expected.WillReturnError(tt.errDB)
			} else {
				expected.WillReturnResult(pgxmock.NewResult("UPDATE", tt.affected))
			}

			err := repo.IncrementBookCount(ctx, idAuthor)
			require.ErrorIs(t, err, tt.errRequire)
		})
	}
}

func Test_postgresRepository_AddBook(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		errDB      error
		errRequire error
	}{
		{
			name: "ok",
		},
		{
			name:       "unknown author id",
			errDB:      &pgconn.PgError{Code: errForeignKeyViolation},
			errRequire: entity.ErrAuthorNotFound,
		},
		{
			name:       "internal error",
			errDB:      errInternal,
			errRequire: errInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, mock, repo := initRepoTest(t)
			book := entity.Book{
				Title:     "Clean Code",
				AuthorID:  uuid.NewString(),
				Published: 2008,
				Genres:    []string{"agile"},
			}

			expected := mock.ExpectQuery(`INSERT INTO book`).
				WithArgs(book.Title, book.AuthorID, book.Published, book.Genres)
			if tt.errDB != nil {
				expected.WillReturnError(tt.errDB)
			} else {
				expected.WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).
					AddRow(uuid.NewString(), time.Now()))
			}

			result, err := repo.AddBook(ctx, book)
			require.ErrorIs(t, err, tt.errRequire)
			if err != nil {
				require.Empty(t, result)
				return
			}
			require.NotEmpty(t, result.ID)
			require.Equal(t, book.Title, result.Title)
			require.Equal(t, book.Genres, result.Genres)
		})
	}
}

func Test_postgresRepository_GetAllBooks(t *testing.T) {
	t.Parallel()

	ctx, mock, repo := initRepoTest(t)

	idAuthor := uuid.NewString()
	genre := "agile"
	born := 1952

	mock.ExpectQuery(`FROM book b`).
		WithArgs(&idAuthor, &genre).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "title", "author_id", "published", "genres", "created_at",
			"name", "born", "book_count", "a_created_at", "a_updated_at",
		}).AddRow(
			uuid.NewString(), "Clean Code", idAuthor, 2008, []string{"agile"}, time.Now(),
			"Robert", &born, 1, time.Now(), time.Now(),
		))

	books, err := repo.GetAllBooks(ctx, &idAuthor, &genre)
	require.NoError(t, err)
	require.Len(t, books, 1)
	require.Equal(t, "Clean Code", books[0].Title)
	require.Equal(t, idAuthor, books[0].Author.ID)
	require.Equal(t, "Robert", books[0].Author.Name)
}

func Test_postgresRepository_CountBooks(t *testing.T) {
	t.Parallel()

	ctx, mock, repo := initRepoTest(t)

	mock.ExpectQuery(`SELECT count`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.CountBooks(ctx)
	require.NoError(t, err)
	require.Equal(t, 7, count)
}
