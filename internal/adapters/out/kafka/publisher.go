// Package kafka provides the Kafka implementation of the event publisher
// port. Selection events are serialized as JSON envelopes and written to a
// single topic, keyed by event type so consumers can filter cheaply.
//
// Publishing is fire-and-forget from the caller's point of view: the
// orchestrator emits events after its transaction commits and treats write
// failures as log-and-continue, so this adapter never retries internally.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"logistics/internal/core/domain/model/kernel"

	skafka "github.com/segmentio/kafka-go"
)

// Writer is the subset of segmentio's kafka.Writer used by the publisher.
// Declared as an interface so tests can inject an in-memory writer.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...skafka.Message) error
	Close() error
}

// envelope is the wire format for every published event.
type envelope struct {
	EventID    string    `json:"eventId"`
	EventType  string    `json:"eventType"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload"`
}

// Publisher writes selection lifecycle events to a Kafka topic.
//
// Example:
//
//	publisher := kafka.NewPublisher("localhost:9092", "logistics.selection", logger)
//	defer publisher.Close()
//
//	err := publisher.Publish(ctx, events.TypeRouteSelected, payload)
type Publisher struct {
	writer Writer
	logger *slog.Logger
}

// NewPublisher creates a publisher writing to the given broker and topic.
func NewPublisher(brokerURL, topic string, logger *slog.Logger) *Publisher {
	writer := &skafka.Writer{
		Addr:     skafka.TCP(brokerURL),
		Topic:    topic,
		Balancer: &skafka.LeastBytes{},
	}
	return NewPublisherWithWriter(writer, logger)
}

// NewPublisherWithWriter creates a publisher around an injected writer.
func NewPublisherWithWriter(writer Writer, logger *slog.Logger) *Publisher {
	return &Publisher{
		writer: writer,
		logger: logger.With("component", "kafka-publisher"),
	}
}

// Publish wraps the payload in a typed envelope and writes it, keyed by
// event type.
func (p *Publisher) Publish(ctx context.Context, eventType string, payload any) error {
	body, err := json.Marshal(envelope{
		EventID:    kernel.NewUUID().String(),
		EventType:  eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	})
	if err != nil {
		return err
	}

	msg := skafka.Message{
		Key:   []byte(eventType),
		Value: body,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("kafka write failed", "eventType", eventType, "error", err)
		return err
	}

	return nil
}

// Close shuts down the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
