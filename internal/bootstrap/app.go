package bootstrap

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Jeansss/payment-ms/internal/domain/transaction"
	"github.com/Jeansss/payment-ms/internal/infrastructure/cartclient"
	"github.com/Jeansss/payment-ms/internal/infrastructure/config"
	"github.com/Jeansss/payment-ms/internal/infrastructure/observability"
	infraRedis "github.com/Jeansss/payment-ms/internal/infrastructure/redis"
	"github.com/Jeansss/payment-ms/internal/service"
	"github.com/Jeansss/payment-ms/pkg/retry"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type App struct {
	Config  *config.Config
	Logger  zerolog.Logger
	Storage *Storage
	// Redis is only connected when requested with WithRedis.
	Redis   *redis.Client
	Metrics *observability.Metrics

	PaymentMethodService *service.PaymentMethodService
	TransactionService   *service.TransactionService

	shutdownTracer func(context.Context) error
}

type options struct {
	redis bool
}

type Option func(*options)

// WithRedis connects the webhook stream client as part of startup.
func WithRedis() Option {
	return func(o *options) { o.redis = true }
}

func New(ctx context.Context, serviceName string, metricsNamespace string, opts ...Option) (*App, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := observability.InitLogger(serviceName, cfg.InstanceID, cfg.Observability.LogLevel, os.Stdout)
	logger.Info().Str("driver", cfg.Storage.Driver).Msg("Starting")

	app := &App{Config: cfg, Logger: logger}

	if cfg.Observability.EnableTracing {
		shutdown, err := observability.InitTracer(serviceName, cfg.Observability.JaegerEndpoint)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to initialize tracer, continuing without tracing")
		} else {
			app.shutdownTracer = shutdown
			logger.Info().Msg("Tracing enabled")
		}
	}

	if cfg.Observability.EnableMetrics {
		app.Metrics = observability.NewMetrics(metricsNamespace, nil)
		logger.Info().Msg("Metrics initialized")
	}

	retryCfg := connectRetryConfig(cfg.Storage, logger)

	app.Storage, err = OpenStorage(ctx, cfg, retryCfg, logger)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("open storage: %w", err)
	}

	if o.redis {
		app.Redis, err = infraRedis.NewClient(ctx, &cfg.Redis, retryCfg)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		app.Storage.Pingers["redis"] = infraRedis.Pinger{Client: app.Redis}
		logger.Info().Str("addr", cfg.Redis.RedisAddr()).Msg("Connected to Redis")
	}

	carts := cartclient.New(cfg.Cart, logger, app.Metrics)
	factory := service.NewTransactionFactory(
		app.Storage.PaymentMethods,
		carts,
		service.RequirePaymentMethod(cfg.Transaction.RequirePaymentMethod),
	)
	app.PaymentMethodService = service.NewPaymentMethodService(app.Storage.PaymentMethods)
	app.TransactionService = service.NewTransactionService(
		app.Storage.Transactions,
		factory,
		transaction.NewStatusSet(cfg.Transaction.Statuses...),
	)

	return app, nil
}

// connectRetryConfig backs off between startup connection attempts, logging
// each failure.
func connectRetryConfig(cfg config.StorageConfig, logger zerolog.Logger) retry.Config {
	rc := retry.DefaultConfig()
	rc.MaxAttempts = cfg.ConnectRetries
	rc.InitialDelay = cfg.ConnectRetryDelay
	rc.OnRetry = func(attempt uint, err error) {
		logger.Warn().Err(err).Uint("attempt", attempt+1).Msg("Connection attempt failed")
	}
	return rc
}

func (a *App) Close() {
	if a.Redis != nil {
		a.Redis.Close()
	}
	if a.Storage != nil {
		a.Storage.Close()
	}
	if a.shutdownTracer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.shutdownTracer(ctx); err != nil {
			a.Logger.Warn().Err(err).Msg("Failed to flush traces")
		}
	}
}
