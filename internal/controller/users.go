package controller

import (
	"context"
	"time"

	"github.com/project/catalog/internal/auth"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var CreateUserDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "catalog_create_user_duration_ms",
	Help:    "Duration of createUser in ms",
	Buckets: prometheus.DefBuckets,
})

var LoginDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "catalog_login_duration_ms",
	Help:    "Duration of login in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(CreateUserDuration)
	prometheus.MustRegister(LoginDuration)
}

func (i *implementation) CreateUser(ctx context.Context, args struct {
	Username      string
	FavoriteGenre string
	Password      string
}) (*userResolver, error) {
	start := time.Now()

	defer func() {
		CreateUserDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	ctx, span := otel.Tracer(tracerName).Start(ctx, "CreateUser")
	defer span.End()
	span.SetAttributes(attribute.String("username", args.Username))

	user, err := i.usersUseCase.CreateUser(ctx, args.Username, args.FavoriteGenre, args.Password)

	if err != nil {
		return nil, i.convertErr(err)
	}

	return &userResolver{user: user}, nil
}

func (i *implementation) Login(ctx context.Context, args struct {
	Username string
	Password string
}) (*tokenResolver, error) {
	start := time.Now()

	defer func() {
		LoginDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	ctx, span := otel.Tracer(tracerName).Start(ctx, "Login")
	defer span.End()
	span.SetAttributes(attribute.String("username", args.Username))

	token, err := i.usersUseCase.Login(ctx, args.Username, args.Password)

	if err != nil {
		return nil, i.convertErr(err)
	}

	return &tokenResolver{value: token}, nil
}

// Me returns the user resolved by the auth middleware, or null for an
// anonymous request.
func (i *implementation) Me(ctx context.Context) (*userResolver, error) {
	user := auth.UserFrom(ctx)
	if user == nil {
		return nil, nil
	}

	return &userResolver{user: *user}, nil
}
