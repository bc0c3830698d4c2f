package controller

import (
	"context"
	"time"

	"github.com/project/catalog/internal/auth"
	"github.com/project/catalog/internal/entity"
	"github.com/project/catalog/internal/log"
	"github.com/samber/lo"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var AddBookDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "catalog_add_book_duration_ms",
	Help:    "Duration of addBook in ms",
	Buckets: prometheus.DefBuckets,
})

var AllBooksDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "catalog_all_books_duration_ms",
	Help:    "Duration of allBooks in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(AddBookDuration)
	prometheus.MustRegister(AllBooksDuration)
}

func (i *implementation) AddBook(ctx context.Context, args struct {
	Title     string
	Author    string
	Published int32
	Genres    []string
}) (*bookResolver, error) {
	start := time.Now()

	defer func() {
		AddBookDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	ctx, span := otel.Tracer(tracerName).Start(ctx, "AddBook")
	defer span.End()
	span.SetAttributes(attribute.String("book_title", args.Title))
	span.SetAttributes(attribute.String("author_name", args.Author))

	traceID := span.SpanContext().TraceID().String()
	log.InfoAddBook(i.logger, "Got addBook request", traceID, args.Title, args.Author)

	book, err := i.booksUseCase.AddBook(ctx, entity.BookInput{
		Title:      args.Title,
		AuthorName: args.Author,
		Published:  int(args.Published),
		Genres:     args.Genres,
	}, auth.UserFrom(ctx))

	if err != nil {
		return nil, i.convertErr(err)
	}

	return &bookResolver{book: book}, nil
}

func (i *implementation) AllBooks(ctx context.Context, args struct {
	Author *string
	Genre  *string
}) ([]*bookResolver, error) {
	start := time.Now()

	defer func() {
		AllBooksDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	ctx, span := otel.Tracer(tracerName).Start(ctx, "AllBooks")
	defer span.End()

	traceID := span.SpanContext().TraceID().String()

	books, err := i.booksUseCase.AllBooks(ctx, entity.BookFilter{
		AuthorName: args.Author,
		Genre:      args.Genre,
	})

	if log.ErrorAllBooks(i.logger, err, "Failed list books", traceID) {
		span.RecordError(err)
		return nil, i.convertErr(err)
	}

	log.InfoAllBooks(i.logger, "Listed books", traceID, len(books))

	return lo.Map(books, func(book entity.Book, _ int) *bookResolver {
		return &bookResolver{book: book}
	}), nil
}

func (i *implementation) BookCount(ctx context.Context) (int32, error) {
	count, err := i.booksUseCase.BookCount(ctx)
	if err != nil {
		return 0, i.convertErr(err)
	}
	return int32(count), nil
}
