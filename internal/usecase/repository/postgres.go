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

const (
	errUniqueViolation     = "23505"
	errForeignKeyViolation = "23503"
)

type DataBase interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

var _ AuthorRepository = (*postgresRepository)(nil)
var _ BooksRepository = (*postgresRepository)(nil)
var _ UsersRepository = (*postgresRepository)(nil)

type postgresRepository struct {
	logger *zap.Logger
	db     DataBase
}

func New(logger *zap.Logger, db DataBase) *postgresRepository {
	return &postgresRepository{
		logger: logger,
		db:     db,
	}
}

// querier prefers the transaction injected by the transactor; outside of a
// transaction it falls back to the pool.
func (p *postgresRepository) querier(ctx context.Context) DataBase {
	if tx, err := extractTx(ctx); err == nil {
		return tx
	}
	return p.db
}

func (p *postgresRepository) RegisterAuthor(ctx context.Context, author entity.Author) (entity.Author, error) {
	const query = `
INSERT INTO author (name)
VALUES ($1)
RETURNING id, book_count, created_at, updated_at
`
	result := entity.Author{
		Name: author.Name,
	}

	err := p.querier(ctx).QueryRow(ctx, query, author.Name).
		Scan(&result.ID, &result.BookCount, &result.CreatedAt, &result.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError

		if errors.As(err, &pgErr) && pgErr.Code == errUniqueViolation {
			return entity.Author{}, fmt.Errorf("author with name %q: %w",
				author.Name, entity.ErrAuthorAlreadyExists)
		}

		return entity.Author{}, err
	}

	logger.MakeInfo(p.logger, "registered author", zap.String("author_id", result.ID))
	return result, nil
}

func (p *postgresRepository) GetAuthorByName(ctx context.Context, name string) (entity.Author, error) {
	const query = `
SELECT id, name, born, book_count, created_at, updated_at
FROM author
WHERE name = $1
`
	var author entity.Author
	err := p.querier(ctx).QueryRow(ctx, query, name).
		Scan(&author.ID, &author.Name, &author.Born, &author.BookCount, &author.CreatedAt, &author.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Author{}, entity.ErrAuthorNotFound
	}

	if err != nil {
		return entity.Author{}, err
	}

	return author, nil
}

func (p *postgresRepository) SetAuthorBorn(ctx context.Context, name string, born int) (entity.Author, error) {
	const query = `
UPDATE author SET born = $1, updated_at = now()
WHERE name = $2
RETURNING id, name, born, book_count, created_at, updated_at
`
	var author entity.Author
	err := p.querier(ctx).QueryRow(ctx, query, born, name).
		Scan(&author.ID, &author.Name, &author.Born, &author.BookCount, &author.CreatedAt, &author.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Author{}, entity.ErrAuthorNotFound
	}

	if err != nil {
		return entity.Author{}, err
	}

	return author, nil
}

func (p *postgresRepository) IncrementBookCount(ctx context.Context, idAuthor string) error {
	const query = `
UPDATE author SET book_count = book_count + 1, updated_at = now()
WHERE id = $1
`
	tag, err := p.querier(ctx).Exec(ctx, query, idAuthor)

	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrAuthorNotFound
	}

	return nil
}

func (p *postgresRepository) GetAllAuthors(ctx context.Context) ([]entity.Author, error) {
	const query = `
SELECT id, name, born, book_count, created_at, updated_at
FROM author
`
	rows, err := p.querier(ctx).Query(ctx, query)

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	authors := make([]entity.Author, 0)
	for rows.Next() {
		var author entity.Author

		if err = rows.Scan(&author.ID, &author.Name, &author.Born, &author.BookCount,
			&author.CreatedAt, &author.UpdatedAt); err != nil {
			return nil, err
		}

		authors = append(authors, author)
	}

	return authors, rows.Err()
}

func (p *postgresRepository) CountAuthors(ctx context.Context) (int, error) {
	const query = `
SELECT count(*) FROM author
`
	var count int
	err := p.querier(ctx).QueryRow(ctx, query).Scan(&count)

	if err != nil {
		return 0, err
	}

	return count, nil
}

func (p *postgresRepository) AddBook(ctx context.Context, book entity.Book) (entity.Book, error) {
	const query = `
INSERT INTO book (title, author_id, published, genres)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at
`
	result := entity.Book{
		Title:     book.Title,
		AuthorID:  book.AuthorID,
		Published: book.Published,
		Genres:    book.Genres,
	}

	err := p.querier(ctx).QueryRow(ctx, query, book.Title, book.AuthorID, book.Published, book.Genres).
		Scan(&result.ID, &result.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError

		if errors.As(err, &pgErr) && pgErr.Code == errForeignKeyViolation {
			return entity.Book{}, fmt.Errorf("author with ID %s does not exist: %w",
				book.AuthorID, entity.ErrAuthorNotFound)
		}

		return entity.Book{}, err
	}

	logger.MakeInfo(p.logger, "inserted book", zap.String("book_id", result.ID))
	return result, nil
}

func (p *postgresRepository) GetAllBooks(ctx context.Context, authorID, genre *string) ([]entity.Book, error) {
	const query = `
SELECT b.id, b.title, b.author_id, b.published, b.genres, b.created_at,
       a.name, a.born, a.book_count, a.created_at, a.updated_at
FROM book b
JOIN author a ON a.id = b.author_id
WHERE ($1::uuid IS NULL OR b.author_id = $1)
  AND ($2::text IS NULL OR $2 = ANY (b.genres))
`
	rows, err := p.querier(ctx).Query(ctx, query, authorID, genre)

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	books := make([]entity.Book, 0)
	for rows.Next() {
		var book entity.Book

		if err = rows.Scan(&book.ID, &book.Title, &book.AuthorID, &book.Published, &book.Genres, &book.CreatedAt,
			&book.Author.Name, &book.Author.Born, &book.Author.BookCount,
			&book.Author.CreatedAt, &book.Author.UpdatedAt); err != nil {
			return nil, err
		}

		book.Author.ID = book.AuthorID
		books = append(books, book)
	}

	return books, rows.Err()
}

func (p *postgresRepository) CountBooks(ctx context.Context) (int, error) {
	const query = `
SELECT count(*) FROM book
`
	var count int
	err := p.querier(ctx).QueryRow(ctx, query).Scan(&count)

	if err != nil {
		return 0, err
	}

	return count, nil
}
