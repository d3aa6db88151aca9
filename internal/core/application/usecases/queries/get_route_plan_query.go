// Package queries contains read-only operations over the selection read
// model. Queries bypass the domain aggregates and read with raw SQL, per the
// CQRS split used across the application.
package queries

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrGetRoutePlanQueryIsNotConstructed = errors.New(
		"GetRoutePlanQuery must be created via NewGetRoutePlanQuery constructor",
	)
)

// GetRoutePlanQuery retrieves the durable selection receipt for a shipment:
// the route plan plus its legs, reservations, and inventory holds.
//
// Example:
//
//	query, _ := NewGetRoutePlanQuery("SHP-100")
//	handler := NewGetRoutePlanQueryHandler(db, cache)
//
//	plan, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // nothing selected for this shipment yet
//	}
type GetRoutePlanQuery struct {
	shipmentID string

	guard guard.ConstructorGuard
}

// NewGetRoutePlanQuery creates a query for a shipment's selected route plan.
func NewGetRoutePlanQuery(shipmentID string) (GetRoutePlanQuery, error) {
	if strings.TrimSpace(shipmentID) == "" {
		return GetRoutePlanQuery{}, errs.NewValueIsRequiredError("shipment id")
	}

	return GetRoutePlanQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRoutePlanQueryIsNotConstructed if validation fails.
func (q GetRoutePlanQuery) Validate() error {
	return q.guard.Validate(ErrGetRoutePlanQueryIsNotConstructed)
}

// ShipmentID returns the shipment whose plan is requested.
func (q GetRoutePlanQuery) ShipmentID() string {
	return q.shipmentID
}

// RoutePlanLeg is one provisional leg in the read model.
type RoutePlanLeg struct {
	ID               string     `json:"id"`
	LegOrder         int        `json:"legOrder"`
	LegType          string     `json:"legType"`
	Carrier          string     `json:"carrier"`
	From             string     `json:"from"`
	To               string     `json:"to"`
	HubCode          string     `json:"hubCode,omitempty"`
	Cost             float64    `json:"cost"`
	Currency         string     `json:"currency"`
	PlannedDeparture *time.Time `json:"plannedDeparture,omitempty"`
	PlannedArrival   *time.Time `json:"plannedArrival,omitempty"`
	Status           string     `json:"status"`
}

// RoutePlanReservation is one hub slot reservation in the read model.
type RoutePlanReservation struct {
	ID            string    `json:"id"`
	HubID         string    `json:"hubId"`
	HubCode       string    `json:"hubCode,omitempty"`
	ServiceType   string    `json:"serviceType"`
	CapacityUnits float64   `json:"capacityUnits"`
	Priority      string    `json:"priority"`
	Cost          float64   `json:"cost"`
	Status        string    `json:"status"`
	ReservedAt    time.Time `json:"reservedAt"`
	ExpiresAt     time.Time `json:"expiresAt"`
}

// RoutePlanHold is one inventory hold in the read model.
type RoutePlanHold struct {
	ID           string    `json:"id"`
	HubKey       string    `json:"hubKey"`
	ItemType     string    `json:"itemType"`
	Quantity     int       `json:"quantity"`
	UnitCost     float64   `json:"unitCost"`
	TotalCost    float64   `json:"totalCost"`
	Currency     string    `json:"currency"`
	BatchNumber  string    `json:"batchNumber"`
	SerialNumber string    `json:"serialNumber,omitempty"`
	Status       string    `json:"status"`
	HeldAt       time.Time `json:"heldAt"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// GetRoutePlanQueryResponse is the full selection receipt for a shipment.
// JSON tags double as the cache encoding.
type GetRoutePlanQueryResponse struct {
	RoutePlanID       string                 `json:"routePlanId"`
	ShipmentID        string                 `json:"shipmentId"`
	ShipmentStatus    string                 `json:"shipmentStatus"`
	RouteID           string                 `json:"routeId"`
	RouteLabel        string                 `json:"routeLabel"`
	RouteType         string                 `json:"routeType"`
	Tier              int                    `json:"tier"`
	TotalCost         float64                `json:"totalCost"`
	ClientPrice       float64                `json:"clientPrice"`
	Currency          string                 `json:"currency"`
	EstimatedDelivery time.Time              `json:"estimatedDelivery"`
	OriginHub         string                 `json:"originHub"`
	DestinationHub    string                 `json:"destinationHub"`
	SelectedAt        time.Time              `json:"selectedAt"`
	Legs              []RoutePlanLeg         `json:"legs"`
	Reservations      []RoutePlanReservation `json:"reservations"`
	InventoryHolds    []RoutePlanHold        `json:"inventoryHolds"`
}
