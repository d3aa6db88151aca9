package ports

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/inventory"
)

// InventoryRepository defines the persistence contract for inventory holds
// and the per-hub stock ledger they draw from.
type InventoryRepository interface {
	// HoldItems inserts the hold and decrements the hub's stock counter for
	// the held item type, as one atomic unit of work. The counter row is
	// locked exclusively without waiting: contention on the same hub/item
	// yields errs.ResourceContentionError, insufficient stock yields
	// errs.ResourceExhaustedError.
	HoldItems(ctx context.Context, aggregate *inventory.Hold) error

	// GetByShipment retrieves a shipment's holds in creation order.
	GetByShipment(ctx context.Context, shipmentID string) ([]*inventory.Hold, error)

	// FindExpired retrieves up to limit held holds whose expiry passed
	// before now. Used by the hold-expiry janitor.
	FindExpired(ctx context.Context, now time.Time, limit int) ([]*inventory.Hold, error)

	// Release marks the hold expired and credits its quantity back to the
	// hub's stock counter, atomically, under the same locking discipline as
	// HoldItems.
	Release(ctx context.Context, aggregate *inventory.Hold) error
}
