package commands

import (
	"time"

	"logistics/internal/core/domain/model/inventory"
	"logistics/internal/core/domain/model/reservation"
	"logistics/internal/core/domain/model/routeplan"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// RouteSummary is the frozen route choice echoed back to the caller.
type RouteSummary struct {
	RouteID           string    `json:"routeId"`
	Label             string    `json:"label"`
	RouteType         string    `json:"routeType"`
	Tier              int       `json:"tier"`
	TotalCost         float64   `json:"totalCost"`
	ClientPrice       float64   `json:"clientPrice"`
	Currency          string    `json:"currency"`
	EstimatedDelivery time.Time `json:"estimatedDelivery"`
	OriginHub         string    `json:"originHub"`
	DestinationHub    string    `json:"destinationHub"`
}

// LegSummary is one created provisional leg.
type LegSummary struct {
	ID               string     `json:"id"`
	LegOrder         int        `json:"legOrder"`
	Type             string     `json:"type"`
	Carrier          string     `json:"carrier"`
	From             string     `json:"from"`
	To               string     `json:"to"`
	Cost             float64    `json:"cost"`
	Currency         string     `json:"currency"`
	PlannedDeparture *time.Time `json:"plannedDeparture,omitempty"`
	PlannedArrival   *time.Time `json:"plannedArrival,omitempty"`
	Status           string     `json:"status"`
}

// ReservationSummary is one created hub slot reservation.
type ReservationSummary struct {
	ID            string    `json:"id"`
	HubKey        string    `json:"hubKey"`
	ServiceType   string    `json:"serviceType"`
	CapacityUnits float64   `json:"capacityUnits"`
	Priority      string    `json:"priority"`
	Status        string    `json:"status"`
	ExpiresAt     time.Time `json:"expiresAt"`
}

// InventoryHoldSummary is one created inventory hold.
type InventoryHoldSummary struct {
	ID           string    `json:"id"`
	HubKey       string    `json:"hubKey"`
	ItemType     string    `json:"itemType"`
	Quantity     int       `json:"quantity"`
	TotalCost    float64   `json:"totalCost"`
	BatchNumber  string    `json:"batchNumber"`
	SerialNumber string    `json:"serialNumber,omitempty"`
	Status       string    `json:"status"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// RouteMapResult points at the rendered manifest artifacts.
type RouteMapResult struct {
	HTMLPath    string  `json:"htmlPath"`
	PDFPath     *string `json:"pdfPath"`
	DownloadURL string  `json:"downloadUrl"`
}

// SelectionResult is the outcome of a committed route selection.
//
// Warnings carries post-commit failures (event publish, manifest rendering)
// so callers can distinguish "route selected, manifest failed" from a failed
// selection. A non-nil result always means the transaction committed.
type SelectionResult struct {
	Success         bool                   `json:"success"`
	ShipmentID      string                 `json:"shipmentId"`
	RoutePlanID     string                 `json:"routePlanId"`
	Status          string                 `json:"status"`
	SelectedRoute   RouteSummary           `json:"selectedRoute"`
	ProvisionalLegs []LegSummary           `json:"provisionalLegs"`
	HubReservations []ReservationSummary   `json:"hubReservations"`
	InventoryHolds  []InventoryHoldSummary `json:"inventoryHolds"`
	NextSteps       services.NextSteps     `json:"nextSteps"`
	RouteMap        *RouteMapResult        `json:"routeMap"`
	SelectedAt      time.Time              `json:"selectedAt"`
	Warnings        []string               `json:"warnings,omitempty"`
}

func summarizeLegs(legs []*routeplan.ProvisionalLeg) []LegSummary {
	out := make([]LegSummary, 0, len(legs))
	for _, leg := range legs {
		out = append(out, LegSummary{
			ID:               leg.ID().String(),
			LegOrder:         leg.LegOrder(),
			Type:             leg.LegType(),
			Carrier:          leg.Carrier(),
			From:             leg.From(),
			To:               leg.To(),
			Cost:             leg.Cost(),
			Currency:         leg.Currency(),
			PlannedDeparture: leg.PlannedDeparture(),
			PlannedArrival:   leg.PlannedArrival(),
			Status:           leg.Status(),
		})
	}
	return out
}

func summarizeReservations(reservations []*reservation.HubSlotReservation) []ReservationSummary {
	out := make([]ReservationSummary, 0, len(reservations))
	for _, res := range reservations {
		out = append(out, ReservationSummary{
			ID:            res.ID().String(),
			HubKey:        res.HubKey(),
			ServiceType:   res.ServiceType().String(),
			CapacityUnits: res.CapacityUnits(),
			Priority:      res.Priority(),
			Status:        res.Status(),
			ExpiresAt:     res.ExpiresAt(),
		})
	}
	return out
}

func summarizeHolds(holds []*inventory.Hold) []InventoryHoldSummary {
	out := make([]InventoryHoldSummary, 0, len(holds))
	for _, hold := range holds {
		out = append(out, InventoryHoldSummary{
			ID:           hold.ID().String(),
			HubKey:       hold.HubKey(),
			ItemType:     hold.ItemType().String(),
			Quantity:     hold.Quantity(),
			TotalCost:    hold.TotalCost(),
			BatchNumber:  hold.BatchNumber(),
			SerialNumber: hold.SerialNumber(),
			Status:       hold.Status(),
			ExpiresAt:    hold.ExpiresAt(),
		})
	}
	return out
}

func summarizeRouteMap(routeMap *ports.RouteMap) *RouteMapResult {
	if routeMap == nil {
		return nil
	}
	return &RouteMapResult{
		HTMLPath:    routeMap.HTMLPath,
		PDFPath:     routeMap.PDFPath,
		DownloadURL: routeMap.DownloadURL,
	}
}
