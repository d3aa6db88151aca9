package ports

import (
	"context"

	"logistics/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
// Route selection only ever mutates the status/audit fields of a shipment;
// the rest of the aggregate is owned by the broader platform.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment by its business identifier.
	// Returns errs.ObjectNotFoundError when the shipment does not exist.
	Get(ctx context.Context, id string) (*shipment.Shipment, error)

	// GetForUpdate retrieves a shipment and takes a row-level exclusive lock
	// on it for the duration of the surrounding transaction, without waiting.
	// Returns errs.ResourceContentionError when the row is already locked by
	// a concurrent selection, errs.ObjectNotFoundError when absent.
	GetForUpdate(ctx context.Context, id string) (*shipment.Shipment, error)

	// Update persists changes to an existing shipment aggregate.
	Update(ctx context.Context, aggregate *shipment.Shipment) error
}
