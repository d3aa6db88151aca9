package kafka

import (
	"context"
	"log/slog"
)

// LogPublisher is the broker-less event publisher: it writes every event to
// the structured log and nothing else. Used by deployments that have no
// Kafka cluster, and as the safe default when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher creates a publisher that only logs events.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.With("component", "log-publisher")}
}

// Publish logs the event and succeeds.
func (p *LogPublisher) Publish(ctx context.Context, eventType string, payload any) error {
	p.logger.InfoContext(ctx, "event emitted", "eventType", eventType, "payload", payload)
	return nil
}
