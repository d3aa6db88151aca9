package routeplan_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/proposal"
	"logistics/internal/core/domain/model/routeplan"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func proposalWithLegs(legs []proposal.Leg) *proposal.SelectedRouteProposal {
	eta := time.Date(2026, 4, 2, 14, 0, 0, 0, time.UTC)
	return &proposal.SelectedRouteProposal{
		ID:    "route-9",
		Label: "HYBRID Paris-Milan",
		Tier:  3,
		Legs:  legs,
		CostBreakdown: proposal.CostBreakdown{
			Total:       500,
			ClientPrice: 720,
			Currency:    "EUR",
		},
		Schedule: proposal.Schedule{EstimatedDelivery: &eta},
	}
}

func TestMaterializeLegs_OrderAndCount(t *testing.T) {
	p := proposalWithLegs([]proposal.Leg{
		{Type: "white-glove", Carrier: "WG", Cost: 200},
		{Type: "dhl", Carrier: "DHL", Cost: 50},
		{Type: "internal-rollout", Carrier: "HUB", Cost: 10},
	})

	legs, err := routeplan.MaterializeLegs("SHP-100", p, "EUR")
	require.NoError(t, err)
	require.Len(t, legs, 3)

	for i, leg := range legs {
		assert.Equal(t, i+1, leg.LegOrder())
		assert.Equal(t, "SHP-100", leg.ShipmentID())
		assert.Equal(t, routeplan.LegStatusPlanned, leg.Status())
		require.NoError(t, leg.Validate())
	}
	assert.InDelta(t, 200, legs[0].Cost(), 1e-9)
	assert.InDelta(t, 50, legs[1].Cost(), 1e-9)
}

func TestMaterializeLegs_ZeroLegs(t *testing.T) {
	legs, err := routeplan.MaterializeLegs("SHP-100", proposalWithLegs(nil), "EUR")
	require.NoError(t, err)
	assert.Empty(t, legs)
}

func TestMaterializeLegs_CostFallsBackToBreakdownTotal(t *testing.T) {
	p := proposalWithLegs([]proposal.Leg{{Type: "dhl", Carrier: "DHL"}})

	legs, err := routeplan.MaterializeLegs("SHP-100", p, "EUR")
	require.NoError(t, err)
	assert.InDelta(t, 500, legs[0].Cost(), 1e-9)
}

func TestMaterializeLegs_CostFallsBackToZero(t *testing.T) {
	p := proposalWithLegs([]proposal.Leg{{Type: "dhl", Carrier: "DHL"}})
	p.CostBreakdown.Total = 0

	legs, err := routeplan.MaterializeLegs("SHP-100", p, "EUR")
	require.NoError(t, err)
	assert.InDelta(t, 0, legs[0].Cost(), 1e-9)
}

func TestMaterializeLegs_CurrencyDefaulting(t *testing.T) {
	t.Run("leg currency wins", func(t *testing.T) {
		p := proposalWithLegs([]proposal.Leg{{Type: "dhl", Cost: 10, Currency: "CHF"}})
		legs, err := routeplan.MaterializeLegs("SHP-100", p, "EUR")
		require.NoError(t, err)
		assert.Equal(t, "CHF", legs[0].Currency())
	})

	t.Run("proposal currency fallback", func(t *testing.T) {
		p := proposalWithLegs([]proposal.Leg{{Type: "dhl", Cost: 10}})
		legs, err := routeplan.MaterializeLegs("SHP-100", p, "USD")
		require.NoError(t, err)
		assert.Equal(t, "EUR", legs[0].Currency())
	})

	t.Run("default currency fallback", func(t *testing.T) {
		p := proposalWithLegs([]proposal.Leg{{Type: "dhl", Cost: 10}})
		p.CostBreakdown.Currency = ""
		legs, err := routeplan.MaterializeLegs("SHP-100", p, "EUR")
		require.NoError(t, err)
		assert.Equal(t, "EUR", legs[0].Currency())
	})
}

func TestMaterializeLegs_Timeline(t *testing.T) {
	dep := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	arr := time.Date(2026, 4, 1, 18, 0, 0, 0, time.UTC)

	p := proposalWithLegs([]proposal.Leg{
		{Type: "white-glove", Cost: 100},
		{Type: "dhl", Cost: 50},
	})
	p.Schedule.Timeline = []proposal.TimelineEntry{{Departure: &dep, Arrival: &arr}}

	legs, err := routeplan.MaterializeLegs("SHP-100", p, "EUR")
	require.NoError(t, err)

	require.NotNil(t, legs[0].PlannedDeparture())
	assert.Equal(t, dep, *legs[0].PlannedDeparture())
	assert.Equal(t, arr, *legs[0].PlannedArrival())

	// Absent timeline entries yield unknown ETAs, not an error.
	assert.Nil(t, legs[1].PlannedDeparture())
	assert.Nil(t, legs[1].PlannedArrival())
}

func TestMaterializeLegs_HubCodeFromEitherEndpoint(t *testing.T) {
	p := proposalWithLegs([]proposal.Leg{
		{Type: "white-glove", Cost: 1, From: proposal.Endpoint{Name: "Paris", HubCode: "PAR-H1"}},
		{Type: "dhl", Cost: 1, To: proposal.Endpoint{Name: "Milan", HubCode: "MIL-H2"}},
		{Type: "dhl", Cost: 1},
	})

	legs, err := routeplan.MaterializeLegs("SHP-100", p, "EUR")
	require.NoError(t, err)
	assert.Equal(t, "PAR-H1", legs[0].HubCode())
	assert.Equal(t, "MIL-H2", legs[1].HubCode())
	assert.Empty(t, legs[2].HubCode())
}
