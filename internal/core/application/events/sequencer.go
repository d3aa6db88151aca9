package events

import (
	"context"
	"log/slog"

	"logistics/internal/core/domain/model/inventory"
	"logistics/internal/core/domain/model/reservation"
	"logistics/internal/core/domain/model/routeplan"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/ports"
)

// Sequencer emits the selection events in a fixed order after commit:
// route selected, shipment planned, inventory holds (when any), then one
// hub slot hold per reservation (when any).
//
// Emission is fire-and-forget. A publish failure is logged and the remaining
// events are still attempted; nothing here can undo the committed selection.
type Sequencer struct {
	publisher ports.EventPublisher
	logger    *slog.Logger
}

// NewSequencer creates a Sequencer publishing through the given publisher.
func NewSequencer(publisher ports.EventPublisher, logger *slog.Logger) Sequencer {
	return Sequencer{
		publisher: publisher,
		logger:    logger.With("component", "event-sequencer"),
	}
}

// EmitSelection publishes the events for one committed selection.
func (s Sequencer) EmitSelection(
	ctx context.Context,
	plan *routeplan.SelectedRoutePlan,
	ship *shipment.Shipment,
	previousStatus shipment.Status,
	legs []*routeplan.ProvisionalLeg,
	reservations []*reservation.HubSlotReservation,
	holds []*inventory.Hold,
	actor string,
) {
	s.publish(ctx, TypeRouteSelected, RouteSelected{
		ShipmentID:        plan.ShipmentID(),
		RoutePlanID:       plan.ID().String(),
		RouteID:           plan.RouteID(),
		RouteLabel:        plan.RouteLabel(),
		RouteType:         string(plan.RouteType()),
		TotalCost:         plan.TotalCost(),
		Currency:          plan.Currency(),
		EstimatedDelivery: plan.EstimatedDelivery(),
		OriginHub:         plan.OriginHub(),
		DestinationHub:    plan.DestinationHub(),
		Actor:             actor,
		SelectedAt:        plan.SelectedAt(),
	})

	s.publish(ctx, TypeShipmentPlanned, ShipmentPlanned{
		ShipmentID:        ship.ID(),
		PreviousStatus:    previousStatus.String(),
		Status:            ship.Status().String(),
		LegCount:          len(legs),
		EstimatedDelivery: plan.EstimatedDelivery(),
		Actor:             actor,
		PlannedAt:         ship.UpdatedAt(),
	})

	if len(holds) > 0 {
		summaries := make([]HoldSummary, 0, len(holds))
		aggregate := 0.0
		for _, hold := range holds {
			summaries = append(summaries, HoldSummary{
				HoldID:      hold.ID().String(),
				HubKey:      hold.HubKey(),
				ItemType:    string(hold.ItemType()),
				Quantity:    hold.Quantity(),
				TotalCost:   hold.TotalCost(),
				BatchNumber: hold.BatchNumber(),
				ExpiresAt:   hold.ExpiresAt(),
			})
			aggregate += hold.TotalCost()
		}

		s.publish(ctx, TypeInventoryHolds, InventoryHoldsCreated{
			ShipmentID:     plan.ShipmentID(),
			Holds:          summaries,
			AggregateValue: aggregate,
			Currency:       plan.Currency(),
		})
	}

	for _, res := range reservations {
		s.publish(ctx, TypeHubSlotHold, HubSlotHoldCreated{
			ShipmentID:    plan.ShipmentID(),
			ReservationID: res.ID().String(),
			HubKey:        res.HubKey(),
			ServiceType:   string(res.ServiceType()),
			CapacityUnits: res.CapacityUnits(),
			Priority:      res.Priority(),
			PlannedStart:  res.PlannedStart(),
			PlannedEnd:    res.PlannedEnd(),
			ExpiresAt:     res.ExpiresAt(),
		})
	}
}

func (s Sequencer) publish(ctx context.Context, eventType string, payload any) {
	if err := s.publisher.Publish(ctx, eventType, payload); err != nil {
		s.logger.Error("failed to publish event",
			"event_type", eventType,
			"error", err)
	}
}
