package controller

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/project/catalog/internal/controller/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errInternal = errors.New("internal error")

type serviceMocks struct {
	booksUseCase        *mocks.MockBooksUseCase
	authorUseCase       *mocks.MockAuthorUseCase
	usersUseCase        *mocks.MockUsersUseCase
	subscriptionUseCase *mocks.MockSubscriptionUseCase
}

func initServiceTest(t *testing.T) (serviceMocks, *implementation) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		booksUseCase:        mocks.NewMockBooksUseCase(ctrl),
		authorUseCase:       mocks.NewMockAuthorUseCase(ctrl),
		usersUseCase:        mocks.NewMockUsersUseCase(ctrl),
		subscriptionUseCase: mocks.NewMockSubscriptionUseCase(ctrl),
	}
	logger, err := zap.NewProduction()
	if err != nil {
		t.Fatal("assertion error: " + err.Error())
	}
	service := New(logger, m.booksUseCase, m.authorUseCase, m.usersUseCase, m.subscriptionUseCase)
	return m, service
}

func extractCode(t *testing.T, err error) string {
	t.Helper()
	var resErr *resolverError
	require.ErrorAs(t, err, &resErr)
	code, ok := resErr.Extensions()["code"].(string)
	require.True(t, ok)
	return code
}
