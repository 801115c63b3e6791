package cartclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Jeansss/payment-ms/internal/domain/cart"
	domainErrors "github.com/Jeansss/payment-ms/internal/domain/errors"
	"github.com/Jeansss/payment-ms/internal/infrastructure/config"
	"github.com/Jeansss/payment-ms/internal/infrastructure/observability"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	cartPath        = "/carts/id/"
	requestIDHeader = "X-Request-ID"
)

// Client fetches carts from the order service. Each lookup walks the
// configured base URLs in order and stops at the first success; every
// address is tried at most once.
type Client struct {
	baseURLs   []string
	httpClient *http.Client
	logger     zerolog.Logger
	metrics    *observability.Metrics
	tracer     trace.Tracer
}

var _ cart.Lookup = (*Client)(nil)

// New builds a client. metrics may be nil.
func New(cfg config.CartConfig, logger zerolog.Logger, metrics *observability.Metrics) *Client {
	baseURLs := make([]string, 0, len(cfg.BaseURLs))
	for _, u := range cfg.BaseURLs {
		baseURLs = append(baseURLs, strings.TrimRight(u, "/"))
	}
	return &Client{
		baseURLs: baseURLs,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger:  logger.With().Str("component", "cart_client").Logger(),
		metrics: metrics,
		tracer:  otel.Tracer("github.com/Jeansss/payment-ms/cartclient"),
	}
}

// GetCartByID returns the first cart any endpoint yields. When every endpoint
// fails the last attempt's error is returned as is. Cancellation of ctx stops
// the walk and is returned without ErrCartUnavailable.
func (c *Client) GetCartByID(ctx context.Context, cartID string) (*cart.Cart, error) {
	if len(c.baseURLs) == 0 {
		return nil, fmt.Errorf("no cart endpoints configured: %w", domainErrors.ErrCartUnavailable)
	}

	requestID := chimw.GetReqID(ctx)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	var lastErr error
	for i, base := range c.baseURLs {
		found, err := c.fetch(ctx, base, cartID, requestID)
		if err == nil {
			return found, nil
		}
		if ctx.Err() != nil {
			return nil, err
		}
		lastErr = err

		evt := c.logger.Warn().Err(err).
			Str("endpoint", base).
			Str("cart_id", cartID).
			Str("request_id", requestID)
		if i < len(c.baseURLs)-1 {
			evt.Str("next_endpoint", c.baseURLs[i+1]).Msg("cart lookup failed, trying next endpoint")
		} else {
			evt.Msg("cart lookup failed on last endpoint")
		}
	}
	return nil, lastErr
}

func (c *Client) fetch(ctx context.Context, base, cartID, requestID string) (_ *cart.Cart, err error) {
	ctx, span := c.tracer.Start(ctx, "cart.lookup", trace.WithAttributes(
		attribute.String("cart.endpoint", base),
		attribute.String("cart.id", cartID),
	))
	start := time.Now()
	result := "success"
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			if result == "success" {
				result = "error"
			}
		}
		span.End()
		if c.metrics != nil {
			c.metrics.CartLookups.WithLabelValues(base, result).Inc()
			c.metrics.CartLookupDuration.WithLabelValues(base).Observe(time.Since(start).Seconds())
		}
	}()

	endpoint := base + cartPath + url.PathEscape(cartID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build cart request %s: %w: %w", endpoint, domainErrors.ErrCartUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			result = "canceled"
			return nil, fmt.Errorf("GET %s: %w", endpoint, ctxErr)
		}
		return nil, fmt.Errorf("GET %s: %w: %w", endpoint, domainErrors.ErrCartUnavailable, err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode == http.StatusNotFound {
		result = "not_found"
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("GET %s: cart %s: %w", endpoint, cartID, domainErrors.ErrCartNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("GET %s: unexpected status %d: %w", endpoint, resp.StatusCode, domainErrors.ErrCartUnavailable)
	}

	// Total is a pointer so a null body or a missing field is told apart from 0.
	var payload struct {
		cart.Cart
		Total *float64 `json:"total"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode cart from %s: %v: %w", endpoint, err, domainErrors.ErrCartUnavailable)
	}
	if payload.Total == nil {
		return nil, fmt.Errorf("cart from %s has no total: %w", endpoint, domainErrors.ErrCartUnavailable)
	}
	if *payload.Total < 0 {
		return nil, fmt.Errorf("cart from %s has negative total %v: %w", endpoint, *payload.Total, domainErrors.ErrCartUnavailable)
	}
	found := payload.Cart
	found.Total = *payload.Total
	return &found, nil
}
