package commands

import (
	"time"

	"logistics/internal/core/domain/model/inventory"
	"logistics/internal/core/domain/model/reservation"
)

// SelectionDefaults collects the deployment-level fallbacks the orchestrator
// applies when a proposal or command omits a value. Keeping them in one
// explicit struct makes the defaulting testable and overridable per
// deployment instead of scattered through the code.
type SelectionDefaults struct {
	// Currency applied when the proposal carries no currency.
	Currency string

	// Actor recorded when the caller omits an actor id.
	Actor string

	// ReservationTTL bounds hub slot reservations.
	ReservationTTL time.Duration

	// InventoryTTL bounds inventory holds.
	InventoryTTL time.Duration
}

// NewSelectionDefaults returns the production defaults: EUR, the system
// actor, and the standard hold TTLs.
func NewSelectionDefaults() SelectionDefaults {
	return SelectionDefaults{
		Currency:       "EUR",
		Actor:          "system",
		ReservationTTL: reservation.DefaultHoldTTL,
		InventoryTTL:   inventory.DefaultHoldTTL,
	}
}
