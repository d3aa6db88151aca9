// Package proposal defines the SelectedRouteProposal value object: the
// finished, selected route handed to the orchestrator by the upstream route
// computation engine. The proposal is read-only input — this core never
// recomputes or mutates it, it only freezes values out of it into durable
// operational records.
package proposal

import (
	"time"

	"logistics/internal/pkg/errs"
)

// Endpoint describes one end of a transport leg.
// HubCode is set when the endpoint is one of the platform's hubs.
type Endpoint struct {
	Name    string `json:"name"`
	HubCode string `json:"hubCode,omitempty"`
	Country string `json:"country,omitempty"`
}

// Leg is one transport segment of the proposed route.
type Leg struct {
	Type          string   `json:"type"`
	Carrier       string   `json:"carrier"`
	From          Endpoint `json:"from"`
	To            Endpoint `json:"to"`
	Cost          Amount   `json:"cost"`
	Currency      string   `json:"currency,omitempty"`
	DistanceKm    float64  `json:"distanceKm,omitempty"`
	DurationHours float64  `json:"durationHours,omitempty"`
	BufferHours   float64  `json:"bufferHours,omitempty"`
}

// CostBreakdown carries the proposal's quoted totals.
// All values are frozen verbatim at selection time.
type CostBreakdown struct {
	Total       Amount `json:"total"`
	ClientPrice Amount `json:"clientPrice"`
	Currency    string `json:"currency"`
	Labor       Amount `json:"labor,omitempty"`
	Transport   Amount `json:"transport,omitempty"`
	HubFees     Amount `json:"hubFees,omitempty"`
	Inventory   Amount `json:"inventory,omitempty"`
	Insurance   Amount `json:"insurance,omitempty"`
	Surcharges  Amount `json:"surcharges,omitempty"`
}

// TimelineEntry is the planned departure/arrival window for the leg at the
// same index in Legs. Either time may be absent; downstream consumers must
// tolerate unknown ETAs.
type TimelineEntry struct {
	Departure *time.Time `json:"departure,omitempty"`
	Arrival   *time.Time `json:"arrival,omitempty"`
}

// Schedule carries the proposal's delivery estimate and per-leg timeline.
type Schedule struct {
	EstimatedDelivery *time.Time      `json:"estimatedDelivery"`
	TotalHours        float64         `json:"totalHours,omitempty"`
	Timeline          []TimelineEntry `json:"timeline,omitempty"`
}

// SlotBooking is one hub processing window the proposal wants reserved.
type SlotBooking struct {
	HubID        string     `json:"hubId"`
	HubCode      string     `json:"hubCode,omitempty"`
	ServiceType  string     `json:"serviceType"`
	Cost         Amount     `json:"cost"`
	PlannedStart *time.Time `json:"plannedStart,omitempty"`
	PlannedEnd   *time.Time `json:"plannedEnd,omitempty"`
}

// SlotBookings wraps the ordered slot-booking sequence.
type SlotBookings struct {
	Sequence []SlotBooking `json:"sequence"`
}

// DetailedItinerary is the richer itinerary shape some quoting engines emit.
// When present, its slot bookings take precedence over the top-level ones.
type DetailedItinerary struct {
	SlotBookings SlotBookings `json:"slotBookings"`
}

// SLAValidation carries upstream SLA risk annotations. Advisory only.
type SLAValidation struct {
	Risks []string `json:"risks,omitempty"`
}

// SelectedRouteProposal is the route an operator committed to.
//
// It is immutable for the duration of the call. Costs, currency, and ETAs are
// copied out of it into provisional legs, reservations, holds, and the route
// plan; after commit the proposal may be re-quoted upstream without affecting
// the frozen records.
type SelectedRouteProposal struct {
	ID    string `json:"id"`
	Label string `json:"label"`

	// RouteType classifies the route (white-glove, dhl, hybrid, mixed).
	// Newer quoting engines send it explicitly; when blank it is derived
	// from ID/Label tokens as a legacy fallback.
	RouteType string `json:"routeType,omitempty"`

	// Tier is the authentication level: 2 = tag-based, 3 = NFC + sewing.
	Tier int `json:"tier"`

	Legs          []Leg         `json:"legs"`
	CostBreakdown CostBreakdown `json:"costBreakdown"`
	Schedule      Schedule      `json:"schedule"`

	// HubID / CounterpartHubID are the origin/destination hub pair.
	HubID            string `json:"hubId"`
	CounterpartHubID string `json:"hubCou"`

	DetailedItinerary *DetailedItinerary `json:"detailedItinerary,omitempty"`
	SlotBookings      *SlotBookings      `json:"slotBookings,omitempty"`
	SLAValidation     *SLAValidation     `json:"slaValidation,omitempty"`
}

// Validate checks the preconditions for route selection: the proposal must
// carry at least a tier, a cost breakdown, and a schedule. Zero legs are
// allowed.
func (p *SelectedRouteProposal) Validate() error {
	if p == nil {
		return errs.NewValueIsRequiredError("proposal")
	}
	if p.Tier <= 0 {
		return errs.NewValueIsRequiredError("proposal tier")
	}
	if p.CostBreakdown == (CostBreakdown{}) {
		return errs.NewValueIsRequiredError("proposal cost breakdown")
	}
	if p.Schedule.EstimatedDelivery == nil {
		return errs.NewValueIsRequiredError("proposal estimated delivery")
	}
	return nil
}

// Currency returns the proposal currency, defaulting to fallback when unset.
func (p *SelectedRouteProposal) Currency(fallback string) string {
	if p.CostBreakdown.Currency != "" {
		return p.CostBreakdown.Currency
	}
	return fallback
}

// SlotSequence returns the ordered slot bookings to reserve.
// The detailed itinerary wins over the top-level slot bookings when both are set.
func (p *SelectedRouteProposal) SlotSequence() []SlotBooking {
	if p.DetailedItinerary != nil && len(p.DetailedItinerary.SlotBookings.Sequence) > 0 {
		return p.DetailedItinerary.SlotBookings.Sequence
	}
	if p.SlotBookings != nil {
		return p.SlotBookings.Sequence
	}
	return nil
}

// TimelineAt returns the timeline entry for leg index i, or nil when the
// schedule has no entry at that index.
func (p *SelectedRouteProposal) TimelineAt(i int) *TimelineEntry {
	if i < 0 || i >= len(p.Schedule.Timeline) {
		return nil
	}
	return &p.Schedule.Timeline[i]
}
