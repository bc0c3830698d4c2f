package catalog

import (
	"context"

	"github.com/project/catalog/internal/auth"
	"github.com/project/catalog/internal/entity"
	"github.com/project/catalog/internal/usecase/repository"
	"go.uber.org/zap"
)

type (
	// EventBus is the notification collaborator; Publish is fire-and-forget.
	EventBus interface {
		Publish(book entity.Book)
		Subscribe(ctx context.Context) <-chan entity.Book
	}

	// TokenProvider is the opaque sign/verify capability.
	TokenProvider interface {
		Sign(userID, username string) (string, error)
		Verify(token string) (auth.Claims, error)
	}
)

var _ AuthorUseCase = (*catalogImpl)(nil)
var _ BooksUseCase = (*catalogImpl)(nil)
var _ UsersUseCase = (*catalogImpl)(nil)
var _ SubscriptionUseCase = (*catalogImpl)(nil)

type catalogImpl struct {
	logger           *zap.Logger
	authorRepository repository.AuthorRepository
	booksRepository  repository.BooksRepository
	usersRepository  repository.UsersRepository
	eventBus         EventBus
	tokens           TokenProvider
	transactor       repository.Transactor
}

func New(
	logger *zap.Logger,
	authorRepository repository.AuthorRepository,
	booksRepository repository.BooksRepository,
	usersRepository repository.UsersRepository,
	eventBus EventBus,
	tokens TokenProvider,
	transactor repository.Transactor,
) *catalogImpl {
	return &catalogImpl{
		logger:           logger,
		authorRepository: authorRepository,
		booksRepository:  booksRepository,
		usersRepository:  usersRepository,
		eventBus:         eventBus,
		tokens:           tokens,
		transactor:       transactor,
	}
}

func (c *catalogImpl) SubscribeBookAdded(ctx context.Context) <-chan entity.Book {
	return c.eventBus.Subscribe(ctx)
}
