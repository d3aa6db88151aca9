package routeplan

import (
	"time"

	"logistics/internal/core/domain/model/proposal"
)

// MaterializeLegs converts the legs of a selected route proposal into frozen,
// ordered provisional legs for the given shipment.
//
// For leg i (0-based) the produced record has legOrder i+1. Cost comes from
// the leg's own cost field, falling back to the proposal's breakdown total,
// falling back to zero. Currency defaults to the leg's own, then the
// proposal's, then defaultCurrency. Planned departure/arrival are read from
// the timeline entry at the same index; a missing entry yields unknown ETAs,
// not an error.
//
// This is a pure transformation: it touches no shared resource and performs
// no persistence.
func MaterializeLegs(
	shipmentID string,
	p *proposal.SelectedRouteProposal,
	defaultCurrency string,
) ([]*ProvisionalLeg, error) {
	legs := make([]*ProvisionalLeg, 0, len(p.Legs))

	for i, src := range p.Legs {
		cost := src.Cost.Float64()
		if cost == 0 {
			cost = p.CostBreakdown.Total.Float64()
		}

		currency := src.Currency
		if currency == "" {
			currency = p.Currency(defaultCurrency)
		}

		var departure, arrival *time.Time
		if entry := p.TimelineAt(i); entry != nil {
			departure = entry.Departure
			arrival = entry.Arrival
		}

		hubCode := src.From.HubCode
		if hubCode == "" {
			hubCode = src.To.HubCode
		}

		leg, err := NewProvisionalLeg(
			shipmentID,
			i+1,
			src.Type,
			src.Carrier,
			src.From.Name,
			src.To.Name,
			hubCode,
			cost,
			currency,
			departure,
			arrival,
			src.BufferHours,
			src.DistanceKm,
			src.DurationHours,
		)
		if err != nil {
			return nil, err
		}

		legs = append(legs, leg)
	}

	return legs, nil
}
