package events

import (
	"context"
	"sync"

	"github.com/project/catalog/internal/entity"
	"github.com/project/catalog/pkg/logger"
	"go.uber.org/zap"
)

// Bus fans out book-added events to active subscribers. Events are not
// persisted and not replayed: a subscriber only sees what is published
// after it subscribed. Publish never blocks; a subscriber that can not
// keep up loses events instead of stalling the mutation that produced
// them.
type Bus struct {
	logger *zap.Logger
	buffer int

	mu          sync.RWMutex
	nextID      int
	subscribers map[int]chan entity.Book
}

func NewBus(logger *zap.Logger, buffer int) *Bus {
	return &Bus{
		logger:      logger,
		buffer:      buffer,
		subscribers: make(map[int]chan entity.Book),
	}
}

func (b *Bus) Publish(book entity.Book) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for id, subscriber := range b.subscribers {
		select {
		case subscriber <- book:
		default:
			logger.MakeWarn(b.logger, "subscriber is not keeping up, event dropped",
				zap.Int("subscriber_id", id),
				zap.String("book_id", book.ID))
		}
	}

	logger.MakeInfo(b.logger, "published book added event",
		zap.String("book_id", book.ID),
		zap.Int("subscribers", len(b.subscribers)))
}

// Subscribe registers a new subscriber. The returned channel is closed
// when ctx ends.
func (b *Bus) Subscribe(ctx context.Context) <-chan entity.Book {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	subscriber := make(chan entity.Book, b.buffer)
	b.subscribers[id] = subscriber
	b.mu.Unlock()

	logger.MakeInfo(b.logger, "subscriber registered", zap.Int("subscriber_id", id))

	go func() {
		<-ctx.Done()

		b.mu.Lock()
		delete(b.subscribers, id)
		close(subscriber)
		b.mu.Unlock()

		logger.MakeInfo(b.logger, "subscriber gone", zap.Int("subscriber_id", id))
	}()

	return subscriber
}
