package ports

import (
	"context"
)

// EventPublisher publishes integration events to the platform bus.
// Publishing happens after the database transaction commits, so a failed
// publish never undoes a selection. Implementations must not panic on
// broker failures.
type EventPublisher interface {
	// Publish sends one event under the given topic/type name.
	// The payload is marshalled by the implementation.
	Publish(ctx context.Context, eventType string, payload any) error
}
