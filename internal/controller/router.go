package controller

import (
	"net/http"
	"time"

	"github.com/Jeansss/payment-ms/internal/infrastructure/config"
	"github.com/Jeansss/payment-ms/internal/infrastructure/observability"
	customMW "github.com/Jeansss/payment-ms/internal/middleware"
	"github.com/Jeansss/payment-ms/internal/service"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterDeps struct {
	PaymentMethodService *service.PaymentMethodService
	TransactionService   *service.TransactionService
	Metrics              *observability.Metrics
	// Gatherer backs /metrics; the default registry when nil.
	Gatherer       prometheus.Gatherer
	Pingers        map[string]Pinger
	CORSConfig     config.CORSConfig
	RateLimit      config.RateLimitConfig
	RequestTimeout time.Duration
}

func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	timeout := deps.RequestTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	r.Use(chimw.RequestID)
	r.Use(customMW.Tracing())
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(timeout))
	r.Use(customMW.SecurityHeaders())
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.CORSConfig.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: deps.CORSConfig.AllowCredentials,
		MaxAge:           300,
	}))
	if deps.Metrics != nil {
		r.Use(customMW.Metrics(deps.Metrics))
	}

	healthH := NewHealthController(deps.Pingers)
	paymentMethodH := NewPaymentMethodController(deps.PaymentMethodService)
	transactionH := NewTransactionController(deps.TransactionService, deps.Metrics)
	webhookH := NewWebhookController(deps.TransactionService, deps.Metrics)

	r.Get("/health", healthH.Health)
	r.Get("/health/live", healthH.Liveness)
	r.Get("/health/ready", healthH.Readiness)

	r.Handle("/metrics", metricsHandler(deps.Gatherer))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(customMW.RateLimit(deps.RateLimit.Requests, deps.RateLimit.Window))

		// Payment methods
		r.Get("/payment-methods", paymentMethodH.List)
		r.Post("/payment-methods", paymentMethodH.Create)
		r.Get("/payment-methods/{id}", paymentMethodH.Get)
		r.Put("/payment-methods/{id}", paymentMethodH.Update)
		r.Delete("/payment-methods/{id}", paymentMethodH.Delete)

		// Transactions
		r.Post("/carts/{cartId}/transactions", transactionH.Create)
		r.Get("/transactions", transactionH.List)
		r.Get("/transactions/{id}", transactionH.Get)

		// Webhooks
		r.Post("/webhooks/transactions", webhookH.UpdateTransaction)
	})

	return r
}

func metricsHandler(g prometheus.Gatherer) http.Handler {
	if g == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
