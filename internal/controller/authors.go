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

var EditAuthorDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "catalog_edit_author_duration_ms",
	Help:    "Duration of editAuthor in ms",
	Buckets: prometheus.DefBuckets,
})

var AllAuthorsDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "catalog_all_authors_duration_ms",
	Help:    "Duration of allAuthors in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(EditAuthorDuration)
	prometheus.MustRegister(AllAuthorsDuration)
}

func (i *implementation) EditAuthor(ctx context.Context, args struct {
	Name      string
	SetBornTo int32
}) (*authorResolver, error) {
	start := time.Now()

	defer func() {
		EditAuthorDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	ctx, span := otel.Tracer(tracerName).Start(ctx, "EditAuthor")
	defer span.End()
	span.SetAttributes(attribute.String("author_name", args.Name))

	author, err := i.authorUseCase.EditAuthor(ctx, args.Name, int(args.SetBornTo), auth.UserFrom(ctx))

	if err != nil {
		return nil, i.convertErr(err)
	}

	return &authorResolver{author: author}, nil
}

func (i *implementation) AllAuthors(ctx context.Context) ([]*authorResolver, error) {
	start := time.Now()

	defer func() {
		AllAuthorsDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	ctx, span := otel.Tracer(tracerName).Start(ctx, "AllAuthors")
	defer span.End()

	traceID := span.SpanContext().TraceID().String()

	authors, err := i.authorUseCase.AllAuthors(ctx)

	if log.ErrorAllAuthors(i.logger, err, "Failed list authors", traceID) {
		span.RecordError(err)
		return nil, i.convertErr(err)
	}

	log.InfoAllAuthors(i.logger, "Listed authors", traceID, len(authors))

	return lo.Map(authors, func(author entity.Author, _ int) *authorResolver {
		return &authorResolver{author: author}
	}), nil
}

func (i *implementation) AuthorCount(ctx context.Context) (int32, error) {
	count, err := i.authorUseCase.AuthorCount(ctx)
	if err != nil {
		return 0, i.convertErr(err)
	}
	return int32(count), nil
}
