package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Stream field names of a webhook notification.
const (
	FieldTransactionID = "transaction_id"
	FieldStatus        = "status"
	FieldOrderID       = "order_id"
)

// WebhookMessage is one entry of the webhook notification stream.
type WebhookMessage struct {
	ID            string
	TransactionID string
	Status        string
	OrderID       string
	Values        map[string]any
}

func webhookMessageFrom(msg redis.XMessage) WebhookMessage {
	str := func(key string) string {
		s, _ := msg.Values[key].(string)
		return s
	}
	return WebhookMessage{
		ID:            msg.ID,
		TransactionID: str(FieldTransactionID),
		Status:        str(FieldStatus),
		OrderID:       str(FieldOrderID),
		Values:        msg.Values,
	}
}

type StreamProducer struct {
	client    *redis.Client
	stream    string
	dlqStream string
}

func NewStreamProducer(client *redis.Client, stream, dlqStream string) *StreamProducer {
	return &StreamProducer{client: client, stream: stream, dlqStream: dlqStream}
}

// PublishToDLQ copies a message that could not be applied to the dead letter
// stream together with the failure reason.
func (p *StreamProducer) PublishToDLQ(ctx context.Context, msg WebhookMessage, reason string) error {
	values := make(map[string]any, len(msg.Values)+3)
	for k, v := range msg.Values {
		values[k] = v
	}
	values["original_id"] = msg.ID
	values["reason"] = reason
	values["failed_at"] = time.Now().UTC().Format(time.RFC3339)

	if err := p.client.XAdd(ctx, &redis.XAddArgs{Stream: p.dlqStream, Values: values}).Err(); err != nil {
		return fmt.Errorf("failed to publish to DLQ: %w", err)
	}
	return nil
}

type StreamConsumer struct {
	client        *redis.Client
	stream        string
	group         string
	consumer      string
	batchSize     int64
	blockDuration time.Duration
}

func NewStreamConsumer(
	client *redis.Client,
	stream string,
	group string,
	consumer string,
	batchSize int64,
	blockDuration time.Duration,
) *StreamConsumer {
	return &StreamConsumer{
		client:        client,
		stream:        stream,
		group:         group,
		consumer:      consumer,
		batchSize:     batchSize,
		blockDuration: blockDuration,
	}
}

func (c *StreamConsumer) Stream() string {
	return c.stream
}

// CreateGroup creates the consumer group and the stream if needed. An
// existing group is not an error.
func (c *StreamConsumer) CreateGroup(ctx context.Context) error {
	err := c.client.XGroupCreateMkStream(ctx, c.stream, c.group, "0").Err()
	if err != nil && !strings.Contains(err.Error(), "BUSYGROUP") {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}
	return nil
}

// Read blocks for up to the configured duration and returns new messages for
// this consumer. A timeout yields no messages and no error.
func (c *StreamConsumer) Read(ctx context.Context) ([]WebhookMessage, error) {
	streams, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    c.group,
		Consumer: c.consumer,
		Streams:  []string{c.stream, ">"},
		Count:    c.batchSize,
		Block:    c.blockDuration,
	}).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read from stream: %w", err)
	}

	var messages []WebhookMessage
	for _, s := range streams {
		for _, msg := range s.Messages {
			messages = append(messages, webhookMessageFrom(msg))
		}
	}
	return messages, nil
}

func (c *StreamConsumer) Ack(ctx context.Context, messageID string) error {
	err := c.client.XAck(ctx, c.stream, c.group, messageID).Err()
	if err != nil {
		return fmt.Errorf("failed to ack message: %w", err)
	}
	return nil
}

// Claim takes over every pending entry of the group that has been idle for at
// least minIdle, whichever consumer it was delivered to, and returns them. One
// call sweeps the whole pending list once.
func (c *StreamConsumer) Claim(ctx context.Context, minIdle time.Duration) ([]WebhookMessage, error) {
	var messages []WebhookMessage
	start := "0-0"
	for {
		claimed, next, err := c.client.XAutoClaim(ctx, &redis.XAutoClaimArgs{
			Stream:   c.stream,
			Group:    c.group,
			Consumer: c.consumer,
			MinIdle:  minIdle,
			Start:    start,
			Count:    c.batchSize,
		}).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to claim pending messages: %w", err)
		}
		for _, msg := range claimed {
			messages = append(messages, webhookMessageFrom(msg))
		}
		if next == "" || next == "0-0" {
			return messages, nil
		}
		start = next
	}
}
