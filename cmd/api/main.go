package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Jeansss/payment-ms/internal/bootstrap"
	"github.com/Jeansss/payment-ms/internal/controller"
)

func main() {
	ctx := context.Background()

	app, err := bootstrap.New(ctx, "payment-ms-api", "payments")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to bootstrap: %v\n", err)
		os.Exit(1)
	}
	defer app.Close()

	// --- Build router ---
	router := controller.NewRouter(controller.RouterDeps{
		PaymentMethodService: app.PaymentMethodService,
		TransactionService:   app.TransactionService,
		Metrics:              app.Metrics,
		Pingers:              app.Storage.Pingers,
		CORSConfig:           app.Config.Server.CORS,
		RateLimit:            app.Config.Server.RateLimit,
		RequestTimeout:       app.Config.Server.RequestTimeout,
	})

	// --- HTTP server ---
	addr := fmt.Sprintf(":%d", app.Config.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  app.Config.Server.ReadTimeout,
		WriteTimeout: app.Config.Server.WriteTimeout,
		IdleTimeout:  app.Config.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		app.Logger.Info().Str("addr", addr).Strs("cart_base_urls", app.Config.Cart.BaseURLs).Msg("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case err := <-serverErr:
		app.Logger.Error().Err(err).Msg("Failed to start server")
	}

	app.Logger.Info().Msg("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		app.Logger.Error().Err(err).Msg("Server forced to shutdown")
	}
	app.Logger.Info().Msg("Server exited")
}
