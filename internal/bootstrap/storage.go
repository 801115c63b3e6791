package bootstrap

import (
	"context"
	"fmt"

	"github.com/Jeansss/payment-ms/internal/controller"
	"github.com/Jeansss/payment-ms/internal/domain/paymentmethod"
	"github.com/Jeansss/payment-ms/internal/domain/transaction"
	"github.com/Jeansss/payment-ms/internal/infrastructure/config"
	"github.com/Jeansss/payment-ms/internal/repository/memory"
	mongorepo "github.com/Jeansss/payment-ms/internal/repository/mongo"
	"github.com/Jeansss/payment-ms/internal/repository/postgres"
	"github.com/Jeansss/payment-ms/pkg/retry"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
)

// Storage holds the repositories of the configured driver along with the
// dependencies the readiness endpoint should check.
type Storage struct {
	PaymentMethods paymentmethod.Repository
	Transactions   transaction.Repository
	Pingers        map[string]controller.Pinger

	closers []func()
}

func (s *Storage) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
}

// OpenStorage connects the store selected by storage.driver.
func OpenStorage(ctx context.Context, cfg *config.Config, retryCfg retry.Config, logger zerolog.Logger) (*Storage, error) {
	s := &Storage{Pingers: make(map[string]controller.Pinger)}

	switch cfg.Storage.Driver {
	case config.DriverMongo:
		client, err := retry.DoWithResult(ctx, retryCfg, func() (*mongo.Client, error) {
			return mongorepo.Connect(ctx, cfg.Mongo)
		})
		if err != nil {
			return nil, fmt.Errorf("connect to mongo: %w", err)
		}
		s.closers = append(s.closers, func() { _ = client.Disconnect(context.Background()) })

		db := client.Database(cfg.Mongo.Database)
		txRepo, err := mongorepo.NewTransactionRepository(ctx, db)
		if err != nil {
			s.Close()
			return nil, err
		}
		s.PaymentMethods = mongorepo.NewPaymentMethodRepository(db)
		s.Transactions = txRepo
		s.Pingers["mongo"] = mongorepo.Pinger{Client: client}
		logger.Info().Str("database", cfg.Mongo.Database).Msg("Connected to MongoDB")

	case config.DriverPostgres:
		pool, err := retry.DoWithResult(ctx, retryCfg, func() (*pgxpool.Pool, error) {
			return postgres.NewPool(ctx, &cfg.Database)
		})
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		s.closers = append(s.closers, pool.Close)

		s.PaymentMethods = postgres.NewPaymentMethodRepository(pool)
		s.Transactions = postgres.NewTransactionRepository(pool)
		s.Pingers["database"] = pool
		logger.Info().Msg("Connected to PostgreSQL")

	case config.DriverMemory:
		s.PaymentMethods = memory.NewPaymentMethodRepository()
		s.Transactions = memory.NewTransactionRepository()
		logger.Warn().Msg("Using in-memory storage, data is lost on restart")

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	return s, nil
}
