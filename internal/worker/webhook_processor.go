package worker

import (
	"context"
	"time"

	"github.com/Jeansss/payment-ms/internal/domain/transaction"
	"github.com/Jeansss/payment-ms/internal/infrastructure/observability"
	infraRedis "github.com/Jeansss/payment-ms/internal/infrastructure/redis"
	"github.com/Jeansss/payment-ms/internal/service"
	"github.com/rs/zerolog"
)

// MessageSource delivers webhook notifications and accepts acknowledgements.
// Claim hands back delivered messages that were never acked.
type MessageSource interface {
	Read(ctx context.Context) ([]infraRedis.WebhookMessage, error)
	Claim(ctx context.Context, minIdle time.Duration) ([]infraRedis.WebhookMessage, error)
	Ack(ctx context.Context, messageID string) error
}

// ClaimPolicy controls how unacked messages are taken back: every Interval,
// messages idle for at least MinIdle are processed again. Zero values fall
// back to 30s.
type ClaimPolicy struct {
	MinIdle  time.Duration
	Interval time.Duration
}

const defaultClaimWindow = 30 * time.Second

// DeadLetterSink stores messages that could not be applied.
type DeadLetterSink interface {
	PublishToDLQ(ctx context.Context, msg infraRedis.WebhookMessage, reason string) error
}

// StatusUpdater applies a status notification to a stored transaction.
type StatusUpdater interface {
	UpdateStatus(ctx context.Context, n service.Notification) (*transaction.Transaction, error)
}

// WebhookProcessor drains the webhook stream into transaction status updates.
// A message is acknowledged once it is applied or copied to the DLQ. Anything
// left unacked is claimed again on the next sweep, so delivery is at least
// once and a redelivered message is simply applied again.
type WebhookProcessor struct {
	source      MessageSource
	dlq         DeadLetterSink
	updater     StatusUpdater
	metrics     *observability.Metrics
	logger      zerolog.Logger
	stream      string
	claim       ClaimPolicy
	readBackoff time.Duration
}

func NewWebhookProcessor(
	source MessageSource,
	dlq DeadLetterSink,
	updater StatusUpdater,
	metrics *observability.Metrics,
	logger zerolog.Logger,
	stream string,
	claim ClaimPolicy,
) *WebhookProcessor {
	if claim.MinIdle <= 0 {
		claim.MinIdle = defaultClaimWindow
	}
	if claim.Interval <= 0 {
		claim.Interval = defaultClaimWindow
	}
	return &WebhookProcessor{
		source:      source,
		dlq:         dlq,
		updater:     updater,
		metrics:     metrics,
		logger:      logger.With().Str("stream", stream).Logger(),
		stream:      stream,
		claim:       claim,
		readBackoff: time.Second,
	}
}

// Run processes messages until ctx is cancelled. Pending messages are swept
// on start and then every claim interval.
func (p *WebhookProcessor) Run(ctx context.Context) error {
	var lastClaim time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if time.Since(lastClaim) >= p.claim.Interval {
			p.reclaim(ctx)
			lastClaim = time.Now()
		}

		msgs, err := p.source.Read(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			p.logger.Error().Err(err).Msg("Failed to read from stream")
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(p.readBackoff):
			}
			continue
		}

		for _, msg := range msgs {
			p.Handle(ctx, msg)
		}
	}
}

func (p *WebhookProcessor) reclaim(ctx context.Context) {
	msgs, err := p.source.Claim(ctx, p.claim.MinIdle)
	if err != nil {
		if ctx.Err() == nil {
			p.logger.Error().Err(err).Msg("Failed to claim pending messages")
		}
		return
	}
	if len(msgs) > 0 {
		p.logger.Info().Int("count", len(msgs)).Msg("Reprocessing pending messages")
	}
	for _, msg := range msgs {
		p.Handle(ctx, msg)
	}
}

// Handle applies one message, dead-lettering it on failure, then acks it.
func (p *WebhookProcessor) Handle(ctx context.Context, msg infraRedis.WebhookMessage) {
	start := time.Now()
	log := p.logger.With().
		Str("message_id", msg.ID).
		Str("transaction_id", msg.TransactionID).
		Str("order_id", msg.OrderID).
		Logger()

	result := "success"
	updated, err := p.updater.UpdateStatus(ctx, service.Notification{
		TransactionID: msg.TransactionID,
		Status:        transaction.Status(msg.Status),
		OrderID:       msg.OrderID,
	})
	if err != nil {
		result = "dead_lettered"
		log.Warn().Err(err).Str("status", msg.Status).Msg("Failed to apply webhook notification")
		if dlqErr := p.dlq.PublishToDLQ(ctx, msg, err.Error()); dlqErr != nil {
			// unacked; the next claim sweep picks it up
			log.Error().Err(dlqErr).Msg("Failed to dead-letter message")
			p.observe("error", start)
			return
		}
	}

	if err == nil && p.metrics != nil {
		p.metrics.TransactionStatusSets.WithLabelValues(string(updated.Status)).Inc()
	}

	if ackErr := p.source.Ack(ctx, msg.ID); ackErr != nil {
		log.Error().Err(ackErr).Msg("Failed to ack message")
	}
	p.observe(result, start)
}

func (p *WebhookProcessor) observe(result string, start time.Time) {
	if p.metrics == nil {
		return
	}
	p.metrics.WorkerMessagesProcessed.WithLabelValues(p.stream, result).Inc()
	p.metrics.WorkerProcessingDuration.WithLabelValues(p.stream).Observe(time.Since(start).Seconds())
}
