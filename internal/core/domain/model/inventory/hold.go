package inventory

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// Hold lifecycle statuses. This core writes only StatusHeld;
// the expiry janitor moves overdue holds to StatusExpired.
const (
	StatusHeld    = "held"
	StatusExpired = "expired"
)

// DefaultHoldTTL is how long inventory stays held before it becomes
// reclaimable by the janitor.
const DefaultHoldTTL = 48 * time.Hour

// ErrHoldIsNotConstructed is returned when an InventoryHold was not created
// through NewHold or RestoreHold.
var ErrHoldIsNotConstructed = errors.New("InventoryHold must be created via NewHold or RestoreHold")

// Hold is a time-bounded reservation of physical authentication hardware
// (NFC unit or security tag) from a hub's stock. Creating a hold decrements
// the hub's stock counter for the item type by the held quantity, atomically
// with the hold's own insert.
type Hold struct {
	id         kernel.UUID
	shipmentID string
	hubKey     string

	itemType ItemType
	quantity int

	unitCost  float64
	totalCost float64
	currency  string

	batchNumber  string
	serialNumber string

	status    string
	heldAt    time.Time
	expiresAt time.Time

	isConstructed bool
}

// NewHold creates a hold in held status.
//
// The batch number is derived from the item type and the hold time. A serial
// number is generated only when quantity is exactly 1 — bulk holds are
// tracked at batch granularity.
func NewHold(
	shipmentID string,
	hubKey string,
	itemType ItemType,
	quantity int,
	unitCost float64,
	currency string,
	heldAt time.Time,
	ttl time.Duration,
) (*Hold, error) {
	if strings.TrimSpace(shipmentID) == "" {
		return nil, errs.NewValueIsRequiredError("shipment id")
	}
	if strings.TrimSpace(hubKey) == "" {
		return nil, errs.NewValueIsRequiredError("hub key")
	}
	if _, err := ItemTypeFromString(itemType.String()); err != nil {
		return nil, err
	}
	if quantity < 1 {
		return nil, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, int(^uint(0)>>1))
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsInvalidError("hold ttl")
	}

	var serial string
	if quantity == 1 {
		serial = generateSerialNumber(itemType)
	}

	return &Hold{
		id:            kernel.NewUUID(),
		shipmentID:    shipmentID,
		hubKey:        hubKey,
		itemType:      itemType,
		quantity:      quantity,
		unitCost:      unitCost,
		totalCost:     unitCost * float64(quantity),
		currency:      currency,
		batchNumber:   generateBatchNumber(itemType, heldAt),
		serialNumber:  serial,
		status:        StatusHeld,
		heldAt:        heldAt,
		expiresAt:     heldAt.Add(ttl),
		isConstructed: true,
	}, nil
}

// RestoreHold reconstructs a hold from persistence.
func RestoreHold(
	id kernel.UUID,
	shipmentID, hubKey string,
	itemType ItemType,
	quantity int,
	unitCost, totalCost float64,
	currency string,
	batchNumber, serialNumber, status string,
	heldAt, expiresAt time.Time,
) (*Hold, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(shipmentID) == "" {
		return nil, errs.NewValueIsRequiredError("shipment id")
	}

	return &Hold{
		id:            id,
		shipmentID:    shipmentID,
		hubKey:        hubKey,
		itemType:      itemType,
		quantity:      quantity,
		unitCost:      unitCost,
		totalCost:     totalCost,
		currency:      currency,
		batchNumber:   batchNumber,
		serialNumber:  serialNumber,
		status:        status,
		heldAt:        heldAt,
		expiresAt:     expiresAt,
		isConstructed: true,
	}, nil
}

// generateBatchNumber builds "{ITEMTYPE}_{last-6-digits-of-timestamp}" from
// the hold time's unix milliseconds.
func generateBatchNumber(itemType ItemType, at time.Time) string {
	millis := at.UnixMilli()
	return fmt.Sprintf("%s_%06d", strings.ToUpper(itemType.String()), millis%1_000_000)
}

// generateSerialNumber builds "{ITEMTYPE}_{6-digit-random-zero-padded}".
func generateSerialNumber(itemType ItemType) string {
	return fmt.Sprintf("%s_%06d", strings.ToUpper(itemType.String()), rand.Intn(1_000_000))
}

// Validate ensures the hold was created through a factory function.
func (h *Hold) Validate() error {
	if h == nil || !h.isConstructed {
		return ErrHoldIsNotConstructed
	}
	return nil
}

// Expire marks an overdue hold as expired so its stock can be credited back.
// Only held holds can expire.
func (h *Hold) Expire(now time.Time) error {
	if h.status != StatusHeld {
		return errs.NewValueIsInvalidErrorWithCause(
			"hold status",
			fmt.Errorf("%s hold cannot expire", h.status),
		)
	}
	if now.Before(h.expiresAt) {
		return errs.NewValueIsInvalidErrorWithCause(
			"hold status",
			fmt.Errorf("hold does not expire until %s", h.expiresAt),
		)
	}

	h.status = StatusExpired
	return nil
}

// ID returns the hold's unique identifier.
func (h *Hold) ID() kernel.UUID { return h.id }

// ShipmentID returns the shipment holding the inventory.
func (h *Hold) ShipmentID() string { return h.shipmentID }

// HubKey returns the hub whose stock the hold draws from.
func (h *Hold) HubKey() string { return h.hubKey }

// ItemType returns the held hardware type.
func (h *Hold) ItemType() ItemType { return h.itemType }

// Quantity returns the held quantity.
func (h *Hold) Quantity() int { return h.quantity }

// UnitCost returns the frozen per-unit cost.
func (h *Hold) UnitCost() float64 { return h.unitCost }

// TotalCost returns the frozen total cost.
func (h *Hold) TotalCost() float64 { return h.totalCost }

// Currency returns the frozen cost currency.
func (h *Hold) Currency() string { return h.currency }

// BatchNumber returns the batch the hardware is drawn from.
func (h *Hold) BatchNumber() string { return h.batchNumber }

// SerialNumber returns the unit serial, or "" for bulk holds.
func (h *Hold) SerialNumber() string { return h.serialNumber }

// Status returns the hold status.
func (h *Hold) Status() string { return h.status }

// HeldAt returns the hold time.
func (h *Hold) HeldAt() time.Time { return h.heldAt }

// ExpiresAt returns the advisory expiry time.
func (h *Hold) ExpiresAt() time.Time { return h.expiresAt }
