package ports

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/reservation"
)

// ReservationRepository defines the persistence contract for hub slot
// reservations and the hub capacity ledger they draw from.
type ReservationRepository interface {
	// Reserve inserts the reservation and decrements the hub/service
	// capacity counter by the reservation's capacity units, as one atomic
	// unit of work. The counter row is locked exclusively without waiting:
	// a concurrent selection competing for the same hub/service yields
	// errs.ResourceContentionError, a counter that would go negative yields
	// errs.ResourceExhaustedError.
	Reserve(ctx context.Context, aggregate *reservation.HubSlotReservation) error

	// GetByShipment retrieves a shipment's reservations in creation order.
	GetByShipment(ctx context.Context, shipmentID string) ([]*reservation.HubSlotReservation, error)

	// FindExpired retrieves up to limit reserved reservations whose expiry
	// passed before now. Used by the hold-expiry janitor.
	FindExpired(ctx context.Context, now time.Time, limit int) ([]*reservation.HubSlotReservation, error)

	// Release marks the reservation expired and credits its capacity units
	// back to the hub/service counter, atomically, under the same locking
	// discipline as Reserve.
	Release(ctx context.Context, aggregate *reservation.HubSlotReservation) error
}
