package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/project/catalog/internal/auth"
	"github.com/project/catalog/internal/entity"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateUser(t *testing.T) {
	t.Parallel()

	ctx, m, uc := initCatalogTest(t)

	var storedHash string
	m.usersRepo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, user entity.User) (entity.User, error) {
			storedHash = user.PasswordHash
			user.ID = uuid.NewString()
			return user, nil
		})

	user, err := uc.CreateUser(ctx, "alice", "crime", "secret")
	require.NoError(t, err)
	require.Equal(t, "alice", user.Username)
	require.Equal(t, "crime", user.FavoriteGenre)
	require.NotEqual(t, "secret", storedHash)
	require.True(t, auth.CheckPassword(storedHash, "secret"))
}

func TestCreateUser_Rejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		username   string
		password   string
		repoErr    error
		requireErr error
	}{
		{name: "empty username",
			username:   "",
			password:   "secret",
			requireErr: entity.ErrInvalidInput},

		{name: "empty password",
			username:   "alice",
			password:   "",
			requireErr: entity.ErrInvalidInput},

		{name: "duplicate username",
			username:   "alice",
			password:   "secret",
			repoErr:    entity.ErrUserAlreadyExists,
			requireErr: entity.ErrUserAlreadyExists},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			ctx, m, uc := initCatalogTest(t)

			if test.repoErr != nil {
				m.usersRepo.EXPECT().CreateUser(ctx, gomock.Any()).Return(entity.User{}, test.repoErr)
			}

			user, err := uc.CreateUser(ctx, test.username, "crime", test.password)
			require.ErrorIs(t, err, test.requireErr)
			require.Empty(t, user)
		})
	}
}

func TestLogin(t *testing.T) {
	t.Parallel()

	hash, err := auth.HashPassword("secret")
	if err != nil {
		t.Fatal("assertion error: " + err.Error())
	}
	stored := entity.User{ID: uuid.NewString(), Username: "alice", PasswordHash: hash}

	tests := []struct {
		name       string
		password   string
		repoErr    error
		requireErr error
	}{
		{name: "valid credentials",
			password: "secret"},

		{name: "wrong password",
			password:   "guess",
			requireErr: entity.ErrInvalidCredentials},

		{name: "unknown username",
			password:   "secret",
			repoErr:    entity.ErrUserNotFound,
			requireErr: entity.ErrInvalidCredentials},

		{name: "internal error",
			password:   "secret",
			repoErr:    errInternalBooks,
			requireErr: errInternalBooks},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			ctx, m, uc := initCatalogTest(t)

			user := stored
			if test.repoErr != nil {
				user = entity.User{}
			}
			m.usersRepo.EXPECT().GetUserByUsername(ctx, "alice").Return(user, test.repoErr)

			if test.requireErr == nil {
				m.tokens.EXPECT().Sign(stored.ID, stored.Username).Return("signed-token", nil)
			}

			token, err := uc.Login(ctx, "alice", test.password)

			if test.requireErr != nil {
				require.ErrorIs(t, err, test.requireErr)
				require.Empty(t, token)
				return
			}

			require.NoError(t, err)
			require.Equal(t, "signed-token", token)
		})
	}
}

// Login issues tokens that ResolveCurrentUser maps back to the same user.
func TestLoginResolveRoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := auth.HashPassword("secret")
	if err != nil {
		t.Fatal("assertion error: " + err.Error())
	}
	stored := entity.User{ID: uuid.NewString(), Username: "alice", PasswordHash: hash}

	ctx, m, uc := initCatalogTest(t)
	uc.tokens = auth.NewTokenService("round-trip-secret")

	m.usersRepo.EXPECT().GetUserByUsername(ctx, "alice").Return(stored, nil)
	m.usersRepo.EXPECT().GetUserByID(ctx, stored.ID).Return(stored, nil)

	token, err := uc.Login(ctx, "alice", "secret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	user, err := uc.ResolveCurrentUser(ctx, token)
	require.NoError(t, err)
	require.NotNil(t, user)
	require.Equal(t, stored.ID, user.ID)
	require.Equal(t, "alice", user.Username)
}

func TestResolveCurrentUser(t *testing.T) {
	t.Parallel()

	userID := uuid.NewString()

	tests := []struct {
		name        string
		token       string
		verifyErr   error
		lookupErr   error
		requireErr  error
		requireUser bool
	}{
		{name: "empty token is anonymous",
			token: ""},

		{name: "valid token",
			token:       "signed-token",
			requireUser: true},

		{name: "invalid token",
			token:      "garbage",
			verifyErr:  errors.Wrap(entity.ErrInvalidToken, "parse token"),
			requireErr: entity.ErrInvalidToken},

		{name: "token of deleted user is anonymous",
			token:     "signed-token",
			lookupErr: entity.ErrUserNotFound},

		{name: "internal error",
			token:      "signed-token",
			lookupErr:  errInternalBooks,
			requireErr: errInternalBooks},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			ctx, m, uc := initCatalogTest(t)

			if test.token != "" {
				m.tokens.EXPECT().Verify(test.token).Return(auth.Claims{UserID: userID, Username: "alice"}, test.verifyErr)
			}
			if test.token != "" && test.verifyErr == nil {
				found := entity.User{ID: userID, Username: "alice"}
				if test.lookupErr != nil {
					found = entity.User{}
				}
				m.usersRepo.EXPECT().GetUserByID(ctx, userID).Return(found, test.lookupErr)
			}

			user, err := uc.ResolveCurrentUser(ctx, test.token)

			if test.requireErr != nil {
				require.ErrorIs(t, err, test.requireErr)
				require.Nil(t, user)
				return
			}

			require.NoError(t, err)
			if test.requireUser {
				require.NotNil(t, user)
				require.Equal(t, userID, user.ID)
			} else {
				require.Nil(t, user)
			}
		})
	}
}
