package reservation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// Reservation lifecycle statuses. This core writes only StatusReserved;
// the expiry janitor moves overdue reservations to StatusExpired.
const (
	StatusReserved = "reserved"
	StatusExpired  = "expired"
)

// DefaultHoldTTL is how long a hub slot reservation is held before it becomes
// reclaimable. Expiry is advisory metadata within a selection; actual release
// is the janitor's responsibility.
const DefaultHoldTTL = 24 * time.Hour

// ErrReservationIsNotConstructed is returned when a HubSlotReservation was not
// created through NewHubSlotReservation or RestoreHubSlotReservation.
var ErrReservationIsNotConstructed = errors.New(
	"HubSlotReservation must be created via NewHubSlotReservation or RestoreHubSlotReservation",
)

// HubSlotReservation is a time-bounded hold on hub processing capacity for
// one service type. Creating a reservation decrements the matching
// hub/service capacity counter by exactly CapacityUnits, atomically with the
// reservation's own insert.
type HubSlotReservation struct {
	id         kernel.UUID
	shipmentID string

	hubID   string
	hubCode string

	serviceType ServiceType
	tier        int

	plannedStart *time.Time
	plannedEnd   *time.Time

	// cost is frozen from the proposal's slot booking at selection time.
	cost float64

	capacityUnits float64
	priority      string

	status     string
	reservedAt time.Time
	expiresAt  time.Time

	isConstructed bool
}

// NewHubSlotReservation creates a reservation in reserved status.
// Capacity units and priority are derived from the service type;
// expiresAt is reservedAt + ttl.
func NewHubSlotReservation(
	shipmentID string,
	hubID, hubCode string,
	serviceType ServiceType,
	tier int,
	plannedStart, plannedEnd *time.Time,
	cost float64,
	reservedAt time.Time,
	ttl time.Duration,
) (*HubSlotReservation, error) {
	if strings.TrimSpace(shipmentID) == "" {
		return nil, errs.NewValueIsRequiredError("shipment id")
	}
	if strings.TrimSpace(hubID) == "" && strings.TrimSpace(hubCode) == "" {
		return nil, errs.NewValueIsRequiredError("hub id")
	}
	if _, err := ServiceTypeFromString(serviceType.String()); err != nil {
		return nil, err
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsInvalidError("hold ttl")
	}

	return &HubSlotReservation{
		id:            kernel.NewUUID(),
		shipmentID:    shipmentID,
		hubID:         hubID,
		hubCode:       hubCode,
		serviceType:   serviceType,
		tier:          tier,
		plannedStart:  plannedStart,
		plannedEnd:    plannedEnd,
		cost:          cost,
		capacityUnits: serviceType.CapacityUnits(),
		priority:      serviceType.Priority(),
		status:        StatusReserved,
		reservedAt:    reservedAt,
		expiresAt:     reservedAt.Add(ttl),
		isConstructed: true,
	}, nil
}

// RestoreHubSlotReservation reconstructs a reservation from persistence.
func RestoreHubSlotReservation(
	id kernel.UUID,
	shipmentID string,
	hubID, hubCode string,
	serviceType ServiceType,
	tier int,
	plannedStart, plannedEnd *time.Time,
	cost, capacityUnits float64,
	priority, status string,
	reservedAt, expiresAt time.Time,
) (*HubSlotReservation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(shipmentID) == "" {
		return nil, errs.NewValueIsRequiredError("shipment id")
	}

	return &HubSlotReservation{
		id:            id,
		shipmentID:    shipmentID,
		hubID:         hubID,
		hubCode:       hubCode,
		serviceType:   serviceType,
		tier:          tier,
		plannedStart:  plannedStart,
		plannedEnd:    plannedEnd,
		cost:          cost,
		capacityUnits: capacityUnits,
		priority:      priority,
		status:        status,
		reservedAt:    reservedAt,
		expiresAt:     expiresAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the reservation was created through a factory function.
func (r *HubSlotReservation) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReservationIsNotConstructed
	}
	return nil
}

// Expire marks an overdue reservation as expired so its capacity units can be
// credited back. Only reserved reservations can expire.
func (r *HubSlotReservation) Expire(now time.Time) error {
	if r.status != StatusReserved {
		return errs.NewValueIsInvalidErrorWithCause(
			"reservation status",
			fmt.Errorf("%s reservation cannot expire", r.status),
		)
	}
	if now.Before(r.expiresAt) {
		return errs.NewValueIsInvalidErrorWithCause(
			"reservation status",
			fmt.Errorf("reservation does not expire until %s", r.expiresAt),
		)
	}

	r.status = StatusExpired
	return nil
}

// ID returns the reservation's unique identifier.
func (r *HubSlotReservation) ID() kernel.UUID { return r.id }

// ShipmentID returns the shipment holding the reservation.
func (r *HubSlotReservation) ShipmentID() string { return r.shipmentID }

// HubID returns the hub identifier from the proposal.
func (r *HubSlotReservation) HubID() string { return r.hubID }

// HubCode returns the hub code, when distinct from the identifier.
func (r *HubSlotReservation) HubCode() string { return r.hubCode }

// HubKey returns the counter key for this reservation's hub: the code when
// set, otherwise the identifier.
func (r *HubSlotReservation) HubKey() string {
	if r.hubCode != "" {
		return r.hubCode
	}
	return r.hubID
}

// ServiceType returns the booked hub service.
func (r *HubSlotReservation) ServiceType() ServiceType { return r.serviceType }

// Tier returns the shipment authentication tier the slot serves.
func (r *HubSlotReservation) Tier() int { return r.tier }

// PlannedStart returns the planned window start, or nil when unknown.
func (r *HubSlotReservation) PlannedStart() *time.Time { return r.plannedStart }

// PlannedEnd returns the planned window end, or nil when unknown.
func (r *HubSlotReservation) PlannedEnd() *time.Time { return r.plannedEnd }

// Cost returns the frozen slot cost.
func (r *HubSlotReservation) Cost() float64 { return r.cost }

// CapacityUnits returns the hub capacity units this reservation consumes.
func (r *HubSlotReservation) CapacityUnits() float64 { return r.capacityUnits }

// Priority returns the scheduling priority.
func (r *HubSlotReservation) Priority() string { return r.priority }

// Status returns the reservation status.
func (r *HubSlotReservation) Status() string { return r.status }

// ReservedAt returns the reservation time.
func (r *HubSlotReservation) ReservedAt() time.Time { return r.reservedAt }

// ExpiresAt returns the advisory expiry time.
func (r *HubSlotReservation) ExpiresAt() time.Time { return r.expiresAt }
