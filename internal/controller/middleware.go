package controller

import (
	"net/http"
	"strings"

	"github.com/project/catalog/internal/auth"
	"github.com/project/catalog/internal/entity"
	"github.com/project/catalog/internal/usecase/catalog"
	"github.com/project/catalog/pkg/logger"
	"go.uber.org/zap"

	"github.com/pkg/errors"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves an optional Authorization header into the request
// context. Authentication is never required here: a missing, malformed or
// invalid token yields an anonymous request and each resolver decides
// whether that is acceptable.
func AuthMiddleware(log *zap.Logger, usersUseCase catalog.UsersUseCase, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, bearerPrefix) {
			next.ServeHTTP(w, r)
			return
		}

		user, err := usersUseCase.ResolveCurrentUser(r.Context(), strings.TrimPrefix(header, bearerPrefix))

		if errors.Is(err, entity.ErrInvalidToken) {
			logger.MakeWarn(log, "Request with invalid token treated as anonymous", zap.Error(err))
			next.ServeHTTP(w, r)
			return
		}

		if err != nil {
			logger.CheckError(err, log, "Failed resolve current user", zap.Error(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if user != nil {
			r = r.WithContext(auth.WithUser(r.Context(), user))
		}

		next.ServeHTTP(w, r)
	})
}
