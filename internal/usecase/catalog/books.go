package catalog

import (
	"context"
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/project/catalog/internal/entity"
	"github.com/project/catalog/internal/log"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	minAuthorNameLength = 4
	minTitleLength      = 5
)

func validateBookInput(input entity.BookInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.AuthorName, validation.Required, validation.Length(minAuthorNameLength, 0)),
		validation.Field(&input.Title, validation.Required, validation.Length(minTitleLength, 0)),
		validation.Field(&input.Genres, validation.Each(validation.In(lo.ToAnySlice(entity.Genres)...))),
	)

	if err != nil {
		return fmt.Errorf("%w: %s", entity.ErrInvalidInput, err)
	}

	return nil
}

// AddBook upserts the named author, bumps its book counter and inserts the
// book, all inside one transaction. Only after commit the book-added event
// is published with the author inlined.
func (c *catalogImpl) AddBook(ctx context.Context, input entity.BookInput, currentUser *entity.User) (entity.Book, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	log.InfoAddBook(c.logger, "Start of add book", traceID, input.Title, input.AuthorName)

	if currentUser == nil {
		err := entity.ErrUnauthenticated
		log.ErrorAddBook(c.logger, err, "Add book without authenticated user", traceID, input.Title, input.AuthorName)
		return entity.Book{}, err
	}

	if err := validateBookInput(input); log.ErrorAddBook(c.logger, err, "Got invalid book input", traceID, input.Title, input.AuthorName) {
		span.RecordError(err)
		return entity.Book{}, err
	}

	var book entity.Book
	err := c.transactor.WithTx(ctx, func(ctx context.Context) error {
		author, txErr := c.authorRepository.GetAuthorByName(ctx, input.AuthorName)

		if errors.Is(txErr, entity.ErrAuthorNotFound) {
			author, txErr = c.authorRepository.RegisterAuthor(ctx, entity.Author{
				Name: input.AuthorName,
			})
		}

		if txErr != nil {
			return txErr
		}

		if txErr = c.authorRepository.IncrementBookCount(ctx, author.ID); txErr != nil {
			return txErr
		}

		book, txErr = c.booksRepository.AddBook(ctx, entity.Book{
			Title:     input.Title,
			AuthorID:  author.ID,
			Published: input.Published,
			Genres:    input.Genres,
		})

		if txErr != nil {
			return txErr
		}

		author.BookCount++
		book.Author = author
		return nil
	})

	if log.ErrorAddBook(c.logger, err, "Failed add book", traceID, input.Title, input.AuthorName) {
		span.RecordError(err)
		return entity.Book{}, err
	}

	c.eventBus.Publish(book)

	span.SetAttributes(attribute.String("book_id", book.ID))
	log.InfoAddBook(c.logger, "Added the book", traceID, input.Title, input.AuthorName, book.ID)
	return book, nil
}

// AllBooks applies the optional author and genre filters with AND semantics.
// An author filter naming an unknown author matches nothing.
func (c *catalogImpl) AllBooks(ctx context.Context, filter entity.BookFilter) ([]entity.Book, error) {
	var authorID *string

	if filter.AuthorName != nil {
		author, err := c.authorRepository.GetAuthorByName(ctx, *filter.AuthorName)

		if errors.Is(err, entity.ErrAuthorNotFound) {
			return []entity.Book{}, nil
		}

		if err != nil {
			return nil, err
		}

		authorID = &author.ID
	}

	books, err := c.booksRepository.GetAllBooks(ctx, authorID, filter.Genre)
	if err != nil {
		if c.logger != nil {
			c.logger.Error("Failed get all books", zap.Error(err))
		}
		return nil, err
	}

	return books, nil
}

func (c *catalogImpl) BookCount(ctx context.Context) (int, error) {
	return c.booksRepository.CountBooks(ctx)
}
