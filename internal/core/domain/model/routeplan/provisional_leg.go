package routeplan

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// LegStatusPlanned is the only status this core ever writes for a
// provisional leg. Later lifecycle states belong to the execution platform.
const LegStatusPlanned = "planned"

// ErrProvisionalLegIsNotConstructed is returned when a ProvisionalLeg was not
// created through NewProvisionalLeg or RestoreProvisionalLeg.
var ErrProvisionalLegIsNotConstructed = errors.New(
	"ProvisionalLeg must be created via NewProvisionalLeg or RestoreProvisionalLeg",
)

// ProvisionalLeg is one frozen transport segment of a selected route.
//
// Cost, currency, and planned times are copied verbatim from the proposal at
// selection time and never recomputed — the upstream quote may change after
// commit without affecting these records. Planned departure/arrival may be
// unknown (nil); downstream consumers must tolerate missing ETAs.
type ProvisionalLeg struct {
	id         kernel.UUID
	shipmentID string

	// legOrder is 1-based and matches the proposal's leg order.
	legOrder int

	legType string
	carrier string
	from    string
	to      string
	hubCode string

	cost     float64
	currency string

	plannedDeparture *time.Time
	plannedArrival   *time.Time

	bufferHours   float64
	distanceKm    float64
	durationHours float64

	status string

	isConstructed bool
}

// NewProvisionalLeg creates a provisional leg in planned status.
// legOrder must be 1-based, shipmentID non-blank.
func NewProvisionalLeg(
	shipmentID string,
	legOrder int,
	legType, carrier, from, to, hubCode string,
	cost float64,
	currency string,
	plannedDeparture, plannedArrival *time.Time,
	bufferHours, distanceKm, durationHours float64,
) (*ProvisionalLeg, error) {
	if strings.TrimSpace(shipmentID) == "" {
		return nil, errs.NewValueIsRequiredError("shipment id")
	}
	if legOrder < 1 {
		return nil, errs.NewValueIsOutOfRangeError("leg order", legOrder, 1, int(^uint(0)>>1))
	}

	return &ProvisionalLeg{
		id:               kernel.NewUUID(),
		shipmentID:       shipmentID,
		legOrder:         legOrder,
		legType:          legType,
		carrier:          carrier,
		from:             from,
		to:               to,
		hubCode:          hubCode,
		cost:             cost,
		currency:         currency,
		plannedDeparture: plannedDeparture,
		plannedArrival:   plannedArrival,
		bufferHours:      bufferHours,
		distanceKm:       distanceKm,
		durationHours:    durationHours,
		status:           LegStatusPlanned,
		isConstructed:    true,
	}, nil
}

// RestoreProvisionalLeg reconstructs a provisional leg from persistence.
func RestoreProvisionalLeg(
	id kernel.UUID,
	shipmentID string,
	legOrder int,
	legType, carrier, from, to, hubCode string,
	cost float64,
	currency string,
	plannedDeparture, plannedArrival *time.Time,
	bufferHours, distanceKm, durationHours float64,
	status string,
) (*ProvisionalLeg, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(shipmentID) == "" {
		return nil, errs.NewValueIsRequiredError("shipment id")
	}
	if legOrder < 1 {
		return nil, errs.NewValueIsOutOfRangeError("leg order", legOrder, 1, int(^uint(0)>>1))
	}

	return &ProvisionalLeg{
		id:               id,
		shipmentID:       shipmentID,
		legOrder:         legOrder,
		legType:          legType,
		carrier:          carrier,
		from:             from,
		to:               to,
		hubCode:          hubCode,
		cost:             cost,
		currency:         currency,
		plannedDeparture: plannedDeparture,
		plannedArrival:   plannedArrival,
		bufferHours:      bufferHours,
		distanceKm:       distanceKm,
		durationHours:    durationHours,
		status:           status,
		isConstructed:    true,
	}, nil
}

// Validate ensures the leg was created through a factory function.
func (l *ProvisionalLeg) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrProvisionalLegIsNotConstructed
	}
	return nil
}

// ID returns the leg's unique identifier.
func (l *ProvisionalLeg) ID() kernel.UUID { return l.id }

// ShipmentID returns the parent shipment's business identifier.
func (l *ProvisionalLeg) ShipmentID() string { return l.shipmentID }

// LegOrder returns the 1-based position of the leg within the route.
func (l *ProvisionalLeg) LegOrder() int { return l.legOrder }

// LegType returns the transport segment type (white-glove, dhl, internal-rollout, ...).
func (l *ProvisionalLeg) LegType() string { return l.legType }

// Carrier returns the carrier operating the leg.
func (l *ProvisionalLeg) Carrier() string { return l.carrier }

// From returns the origin descriptor.
func (l *ProvisionalLeg) From() string { return l.from }

// To returns the destination descriptor.
func (l *ProvisionalLeg) To() string { return l.to }

// HubCode returns the hub touched by this leg, if either endpoint is a hub.
func (l *ProvisionalLeg) HubCode() string { return l.hubCode }

// Cost returns the frozen leg cost.
func (l *ProvisionalLeg) Cost() float64 { return l.cost }

// Currency returns the frozen cost currency.
func (l *ProvisionalLeg) Currency() string { return l.currency }

// PlannedDeparture returns the planned departure time, or nil when unknown.
func (l *ProvisionalLeg) PlannedDeparture() *time.Time { return l.plannedDeparture }

// PlannedArrival returns the planned arrival time, or nil when unknown.
func (l *ProvisionalLeg) PlannedArrival() *time.Time { return l.plannedArrival }

// BufferHours returns the schedule buffer allotted to the leg.
func (l *ProvisionalLeg) BufferHours() float64 { return l.bufferHours }

// DistanceKm returns the leg distance in kilometers.
func (l *ProvisionalLeg) DistanceKm() float64 { return l.distanceKm }

// DurationHours returns the estimated leg duration in hours.
func (l *ProvisionalLeg) DurationHours() float64 { return l.durationHours }

// Status returns the leg status.
func (l *ProvisionalLeg) Status() string { return l.status }
