package app

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/project/catalog/config"
	"github.com/project/catalog/db"
	"github.com/project/catalog/internal/auth"
	"github.com/project/catalog/internal/controller"
	"github.com/project/catalog/internal/usecase/catalog"
	"github.com/project/catalog/internal/usecase/events"
	"github.com/project/catalog/internal/usecase/repository"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"github.com/graph-gophers/graphql-transport-ws/graphqlws"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.uber.org/zap"
)

const (
	shutDownSeconds          = 3
	readHeaderTimeoutSeconds = 5
	serviceName              = "catalog"
)

func Run(logger *zap.Logger, cfg *config.Config) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := db.SetupPostgres(cfg.PG.MigrationsURL, logger); err != nil {
		logger.Error("can not apply migrations", zap.Error(err))
		return
	}

	dbPool, err := pgxpool.New(ctx, cfg.PG.URL)
	if err != nil {
		logger.Error("can not create pgxpool", zap.Error(err))
		return
	}
	defer dbPool.Close()

	shutdownTracing := setupTracing(cfg, logger)
	defer shutdownTracing()

	var logRepo *zap.Logger
	if cfg.Log.LogDBRepo {
		logRepo = logger
	} else {
		logRepo = nil
	}
	repo := repository.New(logRepo, dbPool)

	var logTransactor *zap.Logger
	if cfg.Log.LogTransactor {
		logTransactor = logger
	} else {
		logTransactor = nil
	}
	transactor := repository.NewTransactor(logTransactor, dbPool)

	var logEventBus *zap.Logger
	if cfg.Log.LogEventBus {
		logEventBus = logger
	} else {
		logEventBus = nil
	}
	bus := events.NewBus(logEventBus, cfg.Events.Buffer)

	tokens := auth.NewTokenService(cfg.Auth.JWTSecret)

	var logUseCase *zap.Logger
	if cfg.Log.LogUseCase {
		logUseCase = logger
	} else {
		logUseCase = nil
	}
	useCases := catalog.New(logUseCase, repo, repo, repo, bus, tokens, transactor)

	var logController *zap.Logger
	if cfg.Log.LogController {
		logController = logger
	} else {
		logController = nil
	}
	ctrl := controller.New(logController, useCases, useCases, useCases, useCases)
	schema := controller.NewSchema(ctrl)

	go runMetrics(cfg, logger)
	runGraphQL(ctx, cfg, logger, schema, useCases)

	<-ctx.Done()
	time.Sleep(time.Second * shutDownSeconds)
}

func runGraphQL(
	ctx context.Context,
	cfg *config.Config,
	logger *zap.Logger,
	schema *graphql.Schema,
	usersUseCase catalog.UsersUseCase,
) {
	httpHandler := &relay.Handler{Schema: schema}
	wsHandler := graphqlws.NewHandlerFunc(schema, httpHandler)

	mux := http.NewServeMux()
	mux.Handle("/graphql", controller.AuthMiddleware(logger, usersUseCase, wsHandler))

	server := &http.Server{
		Addr:              ":" + cfg.HTTP.Port,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeoutSeconds * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*shutDownSeconds)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graphql server shutdown error", zap.Error(err))
		}
	}()

	go func() {
		logger.Info("graphql server listening at port", zap.String("port", cfg.HTTP.Port))

		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("graphql server listen error", zap.Error(err))
		}
	}()
}

func runMetrics(cfg *config.Config, logger *zap.Logger) {
	if cfg.Observability.MetricsPort == "" {
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	logger.Info("metrics server listening at port", zap.String("port", cfg.Observability.MetricsPort))

	if err := http.ListenAndServe(":"+cfg.Observability.MetricsPort, mux); err != nil {
		logger.Error("metrics server listen error", zap.Error(err))
	}
}

// setupTracing installs a jaeger-backed tracer provider when JAEGER_URL is
// set; otherwise spans stay no-ops.
func setupTracing(cfg *config.Config, logger *zap.Logger) func() {
	if cfg.Observability.JaegerURL == "" {
		return func() {}
	}

	exporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(cfg.Observability.JaegerURL)))

	if err != nil {
		logger.Error("can not create jaeger exporter", zap.Error(err))
		return func() {}
	}

	provider := tracesdk.NewTracerProvider(
		tracesdk.WithBatcher(exporter),
		tracesdk.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		)),
	)
	otel.SetTracerProvider(provider)

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*shutDownSeconds)
		defer cancel()

		if err := provider.Shutdown(shutdownCtx); err != nil {
			logger.Error("can not shutdown tracer provider", zap.Error(err))
		}
	}
}
