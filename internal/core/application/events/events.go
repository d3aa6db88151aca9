// Package events defines the integration events a committed route selection
// emits, and the sequencer that publishes them in a fixed order after commit.
package events

import (
	"time"
)

// Event type names as they appear on the platform bus.
const (
	TypeRouteSelected   = "plan.route.selected"
	TypeShipmentPlanned = "shipment.planned"
	TypeInventoryHolds  = "inventory.holds.created"
	TypeHubSlotHold     = "hub.slot.hold.created"
)

// RouteSelected announces the committed route choice.
type RouteSelected struct {
	ShipmentID        string    `json:"shipmentId"`
	RoutePlanID       string    `json:"routePlanId"`
	RouteID           string    `json:"routeId"`
	RouteLabel        string    `json:"routeLabel"`
	RouteType         string    `json:"routeType"`
	TotalCost         float64   `json:"totalCost"`
	Currency          string    `json:"currency"`
	EstimatedDelivery time.Time `json:"estimatedDelivery"`
	OriginHub         string    `json:"originHub"`
	DestinationHub    string    `json:"destinationHub"`
	Actor             string    `json:"actor"`
	SelectedAt        time.Time `json:"selectedAt"`
}

// ShipmentPlanned announces the shipment status transition.
type ShipmentPlanned struct {
	ShipmentID        string    `json:"shipmentId"`
	PreviousStatus    string    `json:"previousStatus"`
	Status            string    `json:"status"`
	LegCount          int       `json:"legCount"`
	EstimatedDelivery time.Time `json:"estimatedDelivery"`
	Actor             string    `json:"actor"`
	PlannedAt         time.Time `json:"plannedAt"`
}

// HoldSummary is one inventory hold inside an InventoryHoldsCreated event.
type HoldSummary struct {
	HoldID      string    `json:"holdId"`
	HubKey      string    `json:"hubKey"`
	ItemType    string    `json:"itemType"`
	Quantity    int       `json:"quantity"`
	TotalCost   float64   `json:"totalCost"`
	BatchNumber string    `json:"batchNumber"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// InventoryHoldsCreated announces the inventory holds placed for a selection.
// Emitted only when at least one hold was created.
type InventoryHoldsCreated struct {
	ShipmentID     string        `json:"shipmentId"`
	Holds          []HoldSummary `json:"holds"`
	AggregateValue float64       `json:"aggregateValue"`
	Currency       string        `json:"currency"`
}

// HubSlotHoldCreated announces one hub slot reservation.
// One event is emitted per reservation.
type HubSlotHoldCreated struct {
	ShipmentID    string     `json:"shipmentId"`
	ReservationID string     `json:"reservationId"`
	HubKey        string     `json:"hubKey"`
	ServiceType   string     `json:"serviceType"`
	CapacityUnits float64    `json:"capacityUnits"`
	Priority      string     `json:"priority"`
	PlannedStart  *time.Time `json:"plannedStart,omitempty"`
	PlannedEnd    *time.Time `json:"plannedEnd,omitempty"`
	ExpiresAt     time.Time  `json:"expiresAt"`
}
