package controller

import (
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/project/catalog/internal/usecase/catalog"
	"go.uber.org/zap"
)

const tracerName = "github.com/project/catalog/internal/controller"

// implementation is the GraphQL root resolver: one exported method per
// schema field, each a passthrough to a use case.
type implementation struct {
	logger              *zap.Logger
	booksUseCase        catalog.BooksUseCase
	authorUseCase       catalog.AuthorUseCase
	usersUseCase        catalog.UsersUseCase
	subscriptionUseCase catalog.SubscriptionUseCase
}

func New(
	logger *zap.Logger,
	booksUseCase catalog.BooksUseCase,
	authorUseCase catalog.AuthorUseCase,
	usersUseCase catalog.UsersUseCase,
	subscriptionUseCase catalog.SubscriptionUseCase,
) *implementation {
	return &implementation{
		logger:              logger,
		booksUseCase:        booksUseCase,
		authorUseCase:       authorUseCase,
		usersUseCase:        usersUseCase,
		subscriptionUseCase: subscriptionUseCase,
	}
}

// NewSchema compiles the static schema against the root resolver.
func NewSchema(root *implementation) *graphql.Schema {
	return graphql.MustParseSchema(Schema, root)
}
