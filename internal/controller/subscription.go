package controller

import (
	"context"

	"github.com/project/catalog/internal/log"
	"go.opentelemetry.io/otel/trace"
)

// BookAdded streams every book added after the subscription was opened.
// The use case channel closes when ctx ends, which closes the outgoing
// channel and lets the engine complete the subscription.
func (i *implementation) BookAdded(ctx context.Context) (<-chan *bookResolver, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()

	events := i.subscriptionUseCase.SubscribeBookAdded(ctx)
	out := make(chan *bookResolver)

	go func() {
		defer close(out)
		for book := range events {
			select {
			case out <- &bookResolver{book: book}:
				log.InfoBookAdded(i.logger, "Delivered book to subscriber", traceID, book.ID)
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}
