package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"logistics/internal/core/application/events"
	"logistics/internal/core/domain/model/inventory"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/proposal"
	"logistics/internal/core/domain/model/reservation"
	"logistics/internal/core/domain/model/routeplan"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// SelectRouteCommandHandler orchestrates route selection: it freezes the
// chosen proposal into provisional legs, hub slot reservations, inventory
// holds, and a durable route plan, all in one transaction, then runs the
// post-commit phase (events, next steps, manifest) best effort.
//
// Transactional phase ordering is fixed: shipment lock and transition, legs,
// reservations with capacity decrements, inventory hold with stock decrement,
// route plan, commit. Any failure rolls back everything; the caller can
// retry safely.
//
// Example:
//
//	handler := NewSelectRouteCommandHandler(uowFactory, sequencer, routeMaps, defaults, logger)
//	cmd, _ := NewSelectRouteCommand("SHP-100", routeProposal, "ops.lena")
//
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrResourceContention):
//	    // another selection holds a needed lock, retry later
//	case errors.Is(err, errs.ErrResourceExhausted):
//	    // hub capacity or stock is depleted, pick another route
//	case err != nil:
//	    // nothing was committed
//	default:
//	    log.Printf("plan %s, next: %s", result.RoutePlanID, result.NextSteps.Primary)
//	}
type SelectRouteCommandHandler struct {
	uowFactory SelectionUoWFactory
	sequencer  events.Sequencer
	routeMaps  ports.RouteMapGenerator
	policy     services.NextStepPolicy
	defaults   SelectionDefaults
	logger     *slog.Logger
}

// NewSelectRouteCommandHandler creates a handler for route selection.
// Requires a SelectionUoWFactory for transactional persistence, the event
// sequencer and route map generator for the post-commit phase, and the
// deployment defaults.
func NewSelectRouteCommandHandler(
	uowFactory SelectionUoWFactory,
	sequencer events.Sequencer,
	routeMaps ports.RouteMapGenerator,
	defaults SelectionDefaults,
	logger *slog.Logger,
) SelectRouteCommandHandler {
	return SelectRouteCommandHandler{
		uowFactory: uowFactory,
		sequencer:  sequencer,
		routeMaps:  routeMaps,
		policy:     services.NewNextStepPolicy(),
		defaults:   defaults,
		logger:     logger.With("component", "select-route"),
	}
}

// Handle processes the route selection command.
// On success the returned result reflects the committed state; post-commit
// failures are reported through result.Warnings, never as an error.
func (h SelectRouteCommandHandler) Handle(
	ctx context.Context,
	cmd SelectRouteCommand,
) (*SelectionResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	actor := cmd.ActorID()
	if actor == "" {
		actor = h.defaults.Actor
	}

	now := time.Now().UTC()
	prop := cmd.Proposal()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	planRepo := uow.RoutePlanRepository()
	reservationRepo := uow.ReservationRepository()
	inventoryRepo := uow.InventoryRepository()

	ship, err := shipmentRepo.GetForUpdate(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	previousStatus := ship.Status()
	if err = ship.SelectRoute(actor, now); err != nil {
		return nil, err
	}

	if err = shipmentRepo.Update(ctx, ship); err != nil {
		return nil, err
	}

	legs, err := routeplan.MaterializeLegs(cmd.ShipmentID(), prop, h.defaults.Currency)
	if err != nil {
		return nil, err
	}

	for _, leg := range legs {
		if err = planRepo.AddLeg(ctx, leg); err != nil {
			return nil, err
		}
	}

	reservations, err := h.reserveSlots(ctx, reservationRepo, cmd.ShipmentID(), prop, now)
	if err != nil {
		return nil, err
	}

	holds, err := h.holdInventory(ctx, inventoryRepo, cmd.ShipmentID(), prop, now)
	if err != nil {
		return nil, err
	}

	plan, err := h.buildPlan(cmd.ShipmentID(), prop, legs, reservations, holds, now)
	if err != nil {
		return nil, err
	}

	if err = planRepo.AddPlan(ctx, plan); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return h.postCommit(ctx, plan, ship, previousStatus, legs, reservations, holds, actor), nil
}

// reserveSlots creates one reservation per slot booking, decrementing the
// hub/service capacity counter as each is inserted.
func (h SelectRouteCommandHandler) reserveSlots(
	ctx context.Context,
	repo ports.ReservationRepository,
	shipmentID string,
	prop *proposal.SelectedRouteProposal,
	now time.Time,
) ([]*reservation.HubSlotReservation, error) {
	bookings := prop.SlotSequence()
	reservations := make([]*reservation.HubSlotReservation, 0, len(bookings))

	for _, booking := range bookings {
		serviceType, err := reservation.ServiceTypeFromString(booking.ServiceType)
		if err != nil {
			return nil, err
		}

		res, err := reservation.NewHubSlotReservation(
			shipmentID,
			booking.HubID, booking.HubCode,
			serviceType,
			prop.Tier,
			booking.PlannedStart, booking.PlannedEnd,
			booking.Cost.Float64(),
			now,
			h.defaults.ReservationTTL,
		)
		if err != nil {
			return nil, err
		}

		if err = repo.Reserve(ctx, res); err != nil {
			return nil, err
		}

		reservations = append(reservations, res)
	}

	return reservations, nil
}

// holdInventory places the tier-derived hardware hold, if the tier needs one,
// decrementing the hub stock counter.
func (h SelectRouteCommandHandler) holdInventory(
	ctx context.Context,
	repo ports.InventoryRepository,
	shipmentID string,
	prop *proposal.SelectedRouteProposal,
	now time.Time,
) ([]*inventory.Hold, error) {
	requirement, needed := inventory.RequirementForTier(prop.Tier)
	if !needed {
		return nil, nil
	}

	unitCost := requirement.ItemType.FallbackUnitCost()
	if inventoryCost := prop.CostBreakdown.Inventory.Float64(); inventoryCost > 0 {
		unitCost = inventoryCost / float64(requirement.Quantity)
	}

	hold, err := inventory.NewHold(
		shipmentID,
		prop.HubID,
		requirement.ItemType,
		requirement.Quantity,
		unitCost,
		prop.Currency(h.defaults.Currency),
		now,
		h.defaults.InventoryTTL,
	)
	if err != nil {
		return nil, err
	}

	if err = repo.HoldItems(ctx, hold); err != nil {
		return nil, err
	}

	return []*inventory.Hold{hold}, nil
}

// buildPlan freezes the proposal into the durable route plan record.
func (h SelectRouteCommandHandler) buildPlan(
	shipmentID string,
	prop *proposal.SelectedRouteProposal,
	legs []*routeplan.ProvisionalLeg,
	reservations []*reservation.HubSlotReservation,
	holds []*inventory.Hold,
	now time.Time,
) (*routeplan.SelectedRoutePlan, error) {
	routeType, err := h.resolveRouteType(prop)
	if err != nil {
		return nil, err
	}

	return routeplan.NewSelectedRoutePlan(
		shipmentID,
		prop.ID, prop.Label,
		routeType,
		prop.Tier,
		prop.CostBreakdown.Total.Float64(), prop.CostBreakdown.ClientPrice.Float64(),
		prop.Currency(h.defaults.Currency),
		*prop.Schedule.EstimatedDelivery,
		prop.HubID, prop.CounterpartHubID,
		legIDsOf(legs), reservationIDsOf(reservations), holdIDsOf(holds),
		now,
	)
}

func legIDsOf(legs []*routeplan.ProvisionalLeg) []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(legs))
	for _, leg := range legs {
		ids = append(ids, leg.ID())
	}
	return ids
}

func reservationIDsOf(reservations []*reservation.HubSlotReservation) []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(reservations))
	for _, res := range reservations {
		ids = append(ids, res.ID())
	}
	return ids
}

func holdIDsOf(holds []*inventory.Hold) []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(holds))
	for _, hold := range holds {
		ids = append(ids, hold.ID())
	}
	return ids
}

// resolveRouteType prefers the explicit routeType field; proposals from
// legacy quoting engines omit it, so selection falls back to token
// derivation and logs that the fallback fired.
func (h SelectRouteCommandHandler) resolveRouteType(
	prop *proposal.SelectedRouteProposal,
) (routeplan.RouteType, error) {
	if prop.RouteType != "" {
		return routeplan.RouteTypeFromString(prop.RouteType)
	}

	derived := routeplan.DeriveRouteType(prop.ID, prop.Label)
	h.logger.Warn("proposal missing explicit route type, derived from id/label",
		"route_id", prop.ID,
		"derived", string(derived))
	return derived, nil
}

// postCommit runs the best-effort phase: events in fixed order, next-step
// computation, and manifest rendering. Nothing here can fail the selection.
func (h SelectRouteCommandHandler) postCommit(
	ctx context.Context,
	plan *routeplan.SelectedRoutePlan,
	ship *shipment.Shipment,
	previousStatus shipment.Status,
	legs []*routeplan.ProvisionalLeg,
	reservations []*reservation.HubSlotReservation,
	holds []*inventory.Hold,
	actor string,
) *SelectionResult {
	h.sequencer.EmitSelection(ctx, plan, ship, previousStatus, legs, reservations, holds, actor)

	result := &SelectionResult{
		Success:     true,
		ShipmentID:  ship.ID(),
		RoutePlanID: plan.ID().String(),
		Status:      ship.Status().String(),
		SelectedRoute: RouteSummary{
			RouteID:           plan.RouteID(),
			Label:             plan.RouteLabel(),
			RouteType:         string(plan.RouteType()),
			Tier:              plan.Tier(),
			TotalCost:         plan.TotalCost(),
			ClientPrice:       plan.ClientPrice(),
			Currency:          plan.Currency(),
			EstimatedDelivery: plan.EstimatedDelivery(),
			OriginHub:         plan.OriginHub(),
			DestinationHub:    plan.DestinationHub(),
		},
		ProvisionalLegs: summarizeLegs(legs),
		HubReservations: summarizeReservations(reservations),
		InventoryHolds:  summarizeHolds(holds),
		NextSteps:       h.policy.Decide(legs),
		SelectedAt:      plan.SelectedAt(),
	}

	routeMap, err := h.routeMaps.GenerateRouteMap(ctx, ports.RouteMapInput{
		ShipmentID: ship.ID(),
		RouteType:  plan.RouteType(),
		RouteLabel: plan.RouteLabel(),
		TotalCost:  plan.TotalCost(),
		Currency:   plan.Currency(),
		Legs:       legs,
	})
	if err != nil {
		h.logger.Error("route map generation failed",
			"shipment_id", ship.ID(),
			"error", err)
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("route map generation failed: %v", err))
		return result
	}

	result.RouteMap = summarizeRouteMap(routeMap)
	return result
}
