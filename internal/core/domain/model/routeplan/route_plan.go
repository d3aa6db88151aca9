package routeplan

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ErrRoutePlanIsNotConstructed is returned when a SelectedRoutePlan was not
// created through NewSelectedRoutePlan or RestoreSelectedRoutePlan.
var ErrRoutePlanIsNotConstructed = errors.New(
	"SelectedRoutePlan must be created via NewSelectedRoutePlan or RestoreSelectedRoutePlan",
)

// SelectedRoutePlan is the durable receipt of a committed route selection.
//
// Exactly one plan is written per successful selection, inside the same
// transaction as the legs, reservations, and holds it references. The record
// is frozen at commit and never mutated afterwards: it is the only artifact
// other code should query to recover what was selected.
type SelectedRoutePlan struct {
	id         kernel.UUID
	shipmentID string

	routeID    string
	routeLabel string
	routeType  RouteType
	tier       int

	totalCost   float64
	clientPrice float64
	currency    string

	estimatedDelivery time.Time

	originHub      string
	destinationHub string

	legIDs         []kernel.UUID
	reservationIDs []kernel.UUID
	holdIDs        []kernel.UUID

	isSelected bool
	selectedAt time.Time
	frozenAt   time.Time

	isConstructed bool
}

// NewSelectedRoutePlan creates the frozen summary record for a selection.
// The id arrays must reference records created in the same transaction.
func NewSelectedRoutePlan(
	shipmentID string,
	routeID, routeLabel string,
	routeType RouteType,
	tier int,
	totalCost, clientPrice float64,
	currency string,
	estimatedDelivery time.Time,
	originHub, destinationHub string,
	legIDs, reservationIDs, holdIDs []kernel.UUID,
	selectedAt time.Time,
) (*SelectedRoutePlan, error) {
	if strings.TrimSpace(shipmentID) == "" {
		return nil, errs.NewValueIsRequiredError("shipment id")
	}
	if tier <= 0 {
		return nil, errs.NewValueIsRequiredError("tier")
	}

	return &SelectedRoutePlan{
		id:                kernel.NewUUID(),
		shipmentID:        shipmentID,
		routeID:           routeID,
		routeLabel:        routeLabel,
		routeType:         routeType,
		tier:              tier,
		totalCost:         totalCost,
		clientPrice:       clientPrice,
		currency:          currency,
		estimatedDelivery: estimatedDelivery,
		originHub:         originHub,
		destinationHub:    destinationHub,
		legIDs:            legIDs,
		reservationIDs:    reservationIDs,
		holdIDs:           holdIDs,
		isSelected:        true,
		selectedAt:        selectedAt,
		frozenAt:          selectedAt,
		isConstructed:     true,
	}, nil
}

// RestoreSelectedRoutePlan reconstructs a route plan from persistence.
func RestoreSelectedRoutePlan(
	id kernel.UUID,
	shipmentID string,
	routeID, routeLabel string,
	routeType RouteType,
	tier int,
	totalCost, clientPrice float64,
	currency string,
	estimatedDelivery time.Time,
	originHub, destinationHub string,
	legIDs, reservationIDs, holdIDs []kernel.UUID,
	isSelected bool,
	selectedAt, frozenAt time.Time,
) (*SelectedRoutePlan, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(shipmentID) == "" {
		return nil, errs.NewValueIsRequiredError("shipment id")
	}

	return &SelectedRoutePlan{
		id:                id,
		shipmentID:        shipmentID,
		routeID:           routeID,
		routeLabel:        routeLabel,
		routeType:         routeType,
		tier:              tier,
		totalCost:         totalCost,
		clientPrice:       clientPrice,
		currency:          currency,
		estimatedDelivery: estimatedDelivery,
		originHub:         originHub,
		destinationHub:    destinationHub,
		legIDs:            legIDs,
		reservationIDs:    reservationIDs,
		holdIDs:           holdIDs,
		isSelected:        isSelected,
		selectedAt:        selectedAt,
		frozenAt:          frozenAt,
		isConstructed:     true,
	}, nil
}

// Validate ensures the plan was created through a factory function.
func (p *SelectedRoutePlan) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrRoutePlanIsNotConstructed
	}
	return nil
}

// ID returns the plan's unique identifier.
func (p *SelectedRoutePlan) ID() kernel.UUID { return p.id }

// ShipmentID returns the shipment this plan belongs to.
func (p *SelectedRoutePlan) ShipmentID() string { return p.shipmentID }

// RouteID returns the upstream route identifier.
func (p *SelectedRoutePlan) RouteID() string { return p.routeID }

// RouteLabel returns the human-readable route label.
func (p *SelectedRoutePlan) RouteLabel() string { return p.routeLabel }

// RouteType returns the route classification.
func (p *SelectedRoutePlan) RouteType() RouteType { return p.routeType }

// Tier returns the shipment authentication tier.
func (p *SelectedRoutePlan) Tier() int { return p.tier }

// TotalCost returns the frozen total cost.
func (p *SelectedRoutePlan) TotalCost() float64 { return p.totalCost }

// ClientPrice returns the frozen client price.
func (p *SelectedRoutePlan) ClientPrice() float64 { return p.clientPrice }

// Currency returns the frozen currency.
func (p *SelectedRoutePlan) Currency() string { return p.currency }

// EstimatedDelivery returns the frozen delivery estimate.
func (p *SelectedRoutePlan) EstimatedDelivery() time.Time { return p.estimatedDelivery }

// OriginHub returns the origin hub of the hub pair.
func (p *SelectedRoutePlan) OriginHub() string { return p.originHub }

// DestinationHub returns the destination hub of the hub pair.
func (p *SelectedRoutePlan) DestinationHub() string { return p.destinationHub }

// LegIDs returns the provisional legs created by the same selection.
func (p *SelectedRoutePlan) LegIDs() []kernel.UUID { return p.legIDs }

// ReservationIDs returns the hub slot reservations created by the same selection.
func (p *SelectedRoutePlan) ReservationIDs() []kernel.UUID { return p.reservationIDs }

// HoldIDs returns the inventory holds created by the same selection.
func (p *SelectedRoutePlan) HoldIDs() []kernel.UUID { return p.holdIDs }

// IsSelected reports whether this plan is the shipment's selected plan.
func (p *SelectedRoutePlan) IsSelected() bool { return p.isSelected }

// SelectedAt returns the selection time.
func (p *SelectedRoutePlan) SelectedAt() time.Time { return p.selectedAt }

// FrozenAt returns the time the pricing/ETA data was frozen.
func (p *SelectedRoutePlan) FrozenAt() time.Time { return p.frozenAt }
