package queries

import (
	"context"
	"log/slog"

	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// PlanCache is a read-through cache for the route plan read model. A plan is
// immutable once selected, so cached entries never need invalidation, only
// expiry.
type PlanCache interface {
	// Get returns the cached response, or nil on a miss.
	Get(ctx context.Context, shipmentID string) (*GetRoutePlanQueryResponse, error)

	// Set stores the response.
	Set(ctx context.Context, shipmentID string, response *GetRoutePlanQueryResponse) error
}

// GetRoutePlanQueryHandler retrieves the selection receipt for a shipment
// from the database, fronted by an optional cache.
//
// Example:
//
//	handler := NewGetRoutePlanQueryHandler(db, cache, logger)
//	query, _ := NewGetRoutePlanQuery("SHP-100")
//
//	plan, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("plan %s, %d legs\n", plan.RoutePlanID, len(plan.Legs))
type GetRoutePlanQueryHandler struct {
	db     *gorm.DB
	cache  PlanCache
	logger *slog.Logger
}

// NewGetRoutePlanQueryHandler creates a handler for route plan queries.
// cache may be nil; the handler then always reads from the database.
func NewGetRoutePlanQueryHandler(db *gorm.DB, cache PlanCache, logger *slog.Logger) GetRoutePlanQueryHandler {
	return GetRoutePlanQueryHandler{
		db:     db,
		cache:  cache,
		logger: logger.With("component", "get-route-plan"),
	}
}

// Handle executes the query.
// Returns errs.ObjectNotFoundError when the shipment has no selected plan.
// Cache failures fall through to the database read.
func (h GetRoutePlanQueryHandler) Handle(
	ctx context.Context,
	query GetRoutePlanQuery,
) (*GetRoutePlanQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if h.cache != nil {
		cached, err := h.cache.Get(ctx, query.ShipmentID())
		if err != nil {
			h.logger.Warn("plan cache read failed", "shipment_id", query.ShipmentID(), "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	response, err := h.loadPlan(ctx, query.ShipmentID())
	if err != nil {
		return nil, err
	}

	if err = h.loadLegs(ctx, response); err != nil {
		return nil, err
	}
	if err = h.loadReservations(ctx, response); err != nil {
		return nil, err
	}
	if err = h.loadHolds(ctx, response); err != nil {
		return nil, err
	}

	if h.cache != nil {
		if err = h.cache.Set(ctx, query.ShipmentID(), response); err != nil {
			h.logger.Warn("plan cache write failed", "shipment_id", query.ShipmentID(), "error", err)
		}
	}

	return response, nil
}

func (h GetRoutePlanQueryHandler) loadPlan(
	ctx context.Context,
	shipmentID string,
) (*GetRoutePlanQueryResponse, error) {
	response := &GetRoutePlanQueryResponse{
		Legs:           make([]RoutePlanLeg, 0),
		Reservations:   make([]RoutePlanReservation, 0),
		InventoryHolds: make([]RoutePlanHold, 0),
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.shipment_id,
			s.status,
			p.route_id,
			p.route_label,
			p.route_type,
			p.tier,
			p.total_cost,
			p.client_price,
			p.currency,
			p.estimated_delivery,
			p.origin_hub,
			p.destination_hub,
			p.selected_at
		FROM route_plans p
		JOIN shipments s ON s.id = p.shipment_id
		WHERE p.shipment_id = ? AND p.is_selected
		ORDER BY p.selected_at DESC
		LIMIT 1
	`, shipmentID).Row()

	err := row.Scan(
		&response.RoutePlanID,
		&response.ShipmentID,
		&response.ShipmentStatus,
		&response.RouteID,
		&response.RouteLabel,
		&response.RouteType,
		&response.Tier,
		&response.TotalCost,
		&response.ClientPrice,
		&response.Currency,
		&response.EstimatedDelivery,
		&response.OriginHub,
		&response.DestinationHub,
		&response.SelectedAt,
	)
	if err != nil {
		return nil, errs.NewObjectNotFoundErrorWithCause("shipment id", shipmentID, err)
	}

	return response, nil
}

func (h GetRoutePlanQueryHandler) loadLegs(ctx context.Context, response *GetRoutePlanQueryResponse) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			leg_order,
			leg_type,
			carrier,
			from_location,
			to_location,
			hub_code,
			cost,
			currency,
			planned_departure,
			planned_arrival,
			status
		FROM provisional_legs
		WHERE shipment_id = ?
		ORDER BY leg_order
	`, response.ShipmentID).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var leg RoutePlanLeg
		err = rows.Scan(
			&leg.ID,
			&leg.LegOrder,
			&leg.LegType,
			&leg.Carrier,
			&leg.From,
			&leg.To,
			&leg.HubCode,
			&leg.Cost,
			&leg.Currency,
			&leg.PlannedDeparture,
			&leg.PlannedArrival,
			&leg.Status,
		)
		if err != nil {
			return err
		}
		response.Legs = append(response.Legs, leg)
	}

	return rows.Err()
}

func (h GetRoutePlanQueryHandler) loadReservations(ctx context.Context, response *GetRoutePlanQueryResponse) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			hub_id,
			hub_code,
			service_type,
			capacity_units,
			priority,
			cost,
			status,
			reserved_at,
			expires_at
		FROM hub_slot_reservations
		WHERE shipment_id = ?
		ORDER BY reserved_at, id
	`, response.ShipmentID).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var res RoutePlanReservation
		err = rows.Scan(
			&res.ID,
			&res.HubID,
			&res.HubCode,
			&res.ServiceType,
			&res.CapacityUnits,
			&res.Priority,
			&res.Cost,
			&res.Status,
			&res.ReservedAt,
			&res.ExpiresAt,
		)
		if err != nil {
			return err
		}
		response.Reservations = append(response.Reservations, res)
	}

	return rows.Err()
}

func (h GetRoutePlanQueryHandler) loadHolds(ctx context.Context, response *GetRoutePlanQueryResponse) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			hub_key,
			item_type,
			quantity,
			unit_cost,
			total_cost,
			currency,
			batch_number,
			serial_number,
			status,
			held_at,
			expires_at
		FROM inventory_holds
		WHERE shipment_id = ?
		ORDER BY held_at, id
	`, response.ShipmentID).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var hold RoutePlanHold
		err = rows.Scan(
			&hold.ID,
			&hold.HubKey,
			&hold.ItemType,
			&hold.Quantity,
			&hold.UnitCost,
			&hold.TotalCost,
			&hold.Currency,
			&hold.BatchNumber,
			&hold.SerialNumber,
			&hold.Status,
			&hold.HeldAt,
			&hold.ExpiresAt,
		)
		if err != nil {
			return err
		}
		response.InventoryHolds = append(response.InventoryHolds, hold)
	}

	return rows.Err()
}
