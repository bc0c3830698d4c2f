package catalog

import (
	"context"

	"github.com/project/catalog/internal/entity"
	"github.com/project/catalog/internal/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// EditAuthor sets the birth year of an existing author. Any integer is
// accepted as the year.
func (c *catalogImpl) EditAuthor(ctx context.Context, name string, setBornTo int, currentUser *entity.User) (entity.Author, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.String("author_name", name))
	log.InfoEditAuthor(c.logger, "Start of edit author", traceID, name, setBornTo)

	if currentUser == nil {
		err := entity.ErrUnauthenticated
		log.ErrorEditAuthor(c.logger, err, "Edit author without authenticated user", traceID, name)
		return entity.Author{}, err
	}

	author, err := c.authorRepository.SetAuthorBorn(ctx, name, setBornTo)

	if log.ErrorEditAuthor(c.logger, err, "Failed edit author", traceID, name) {
		span.RecordError(err)
		return entity.Author{}, err
	}

	log.InfoEditAuthor(c.logger, "Edited the author", traceID, name, setBornTo)
	return author, nil
}

// AllAuthors reads the stored per-author book counter; the counter is kept
// in step with the book table by AddBook's transaction.
func (c *catalogImpl) AllAuthors(ctx context.Context) ([]entity.Author, error) {
	authors, err := c.authorRepository.GetAllAuthors(ctx)
	if err != nil {
		if c.logger != nil {
			c.logger.Error("Failed get all authors", zap.Error(err))
		}
		return nil, err
	}

	return authors, nil
}

func (c *catalogImpl) AuthorCount(ctx context.Context) (int, error) {
	return c.authorRepository.CountAuthors(ctx)
}
