package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Jeansss/payment-ms/internal/bootstrap"
	infraRedis "github.com/Jeansss/payment-ms/internal/infrastructure/redis"
	"github.com/Jeansss/payment-ms/internal/worker"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := bootstrap.New(ctx, "payment-ms-worker", "payments_worker", bootstrap.WithRedis())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to bootstrap: %v\n", err)
		os.Exit(1)
	}
	defer app.Close()

	// --- Webhook stream consumer ---
	workerCfg := app.Config.Worker
	consumer := infraRedis.NewStreamConsumer(
		app.Redis,
		workerCfg.Stream,
		workerCfg.ConsumerGroup,
		app.Config.InstanceID,
		workerCfg.BatchSize,
		workerCfg.BlockDuration,
	)
	if err := consumer.CreateGroup(ctx); err != nil {
		app.Logger.Error().Err(err).Msg("Failed to create consumer group")
		app.Close()
		os.Exit(1)
	}
	producer := infraRedis.NewStreamProducer(app.Redis, workerCfg.Stream, workerCfg.DLQStream)

	processor := worker.NewWebhookProcessor(
		consumer,
		producer,
		app.TransactionService,
		app.Metrics,
		app.Logger,
		consumer.Stream(),
		worker.ClaimPolicy{MinIdle: workerCfg.ClaimMinIdle, Interval: workerCfg.ClaimInterval},
	)

	app.Logger.Info().
		Str("stream", workerCfg.Stream).
		Str("dlq", workerCfg.DLQStream).
		Str("group", workerCfg.ConsumerGroup).
		Str("consumer", app.Config.InstanceID).
		Dur("claim_min_idle", workerCfg.ClaimMinIdle).
		Msg("Worker started, listening for messages...")

	// Signal handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return processor.Run(gCtx)
	})

	g.Go(func() error {
		select {
		case <-gCtx.Done():
			return gCtx.Err()
		case <-quit:
			app.Logger.Info().Msg("Shutting down worker...")
			cancel()
			return nil
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		app.Logger.Error().Err(err).Msg("Worker error")
	}
	app.Logger.Info().Msg("Worker exited")
}
