package controller

import (
	"github.com/pkg/errors"
	"github.com/project/catalog/internal/entity"
	"go.uber.org/zap"
)

const (
	codeUnauthenticated    = "UNAUTHENTICATED"
	codeBadUserInput       = "BAD_USER_INPUT"
	codeInvalidCredentials = "INVALID_CREDENTIALS"
	codeInternal           = "INTERNAL"
)

// resolverError carries a stable machine-readable code in the GraphQL error
// extensions; the graphql engine picks it up through the Extensions method.
type resolverError struct {
	code    string
	message string
}

func (e *resolverError) Error() string {
	return e.message
}

func (e *resolverError) Extensions() map[string]interface{} {
	return map[string]interface{}{
		"code": e.code,
	}
}

// convertErr maps domain failures to coded GraphQL errors. Anything
// unexpected is logged server-side and surfaced as a generic failure so
// internals never leak to clients.
func (i *implementation) convertErr(err error) error {
	switch {
	case errors.Is(err, entity.ErrUnauthenticated):
		return &resolverError{code: codeUnauthenticated, message: err.Error()}

	case errors.Is(err, entity.ErrInvalidInput),
		errors.Is(err, entity.ErrAuthorNotFound),
		errors.Is(err, entity.ErrUserAlreadyExists):
		return &resolverError{code: codeBadUserInput, message: err.Error()}

	case errors.Is(err, entity.ErrInvalidCredentials):
		return &resolverError{code: codeInvalidCredentials, message: err.Error()}

	default:
		if i.logger != nil {
			i.logger.Error("Unexpected resolver error", zap.Error(err))
		}
		return &resolverError{code: codeInternal, message: "operation failed"}
	}
}
