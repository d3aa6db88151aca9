package ports

import (
	"context"

	"logistics/internal/core/domain/model/routeplan"
)

// RoutePlanRepository defines the persistence contract for the frozen records
// of a selection: provisional legs and the selected route plan.
type RoutePlanRepository interface {
	// AddLeg persists a provisional leg.
	AddLeg(ctx context.Context, leg *routeplan.ProvisionalLeg) error

	// GetLegsByShipment retrieves a shipment's legs ordered by leg order.
	GetLegsByShipment(ctx context.Context, shipmentID string) ([]*routeplan.ProvisionalLeg, error)

	// AddPlan persists the selected route plan. The record is immutable
	// after this insert; there is no update method.
	AddPlan(ctx context.Context, plan *routeplan.SelectedRoutePlan) error

	// GetSelectedPlan retrieves the shipment's selected route plan.
	// Returns errs.ObjectNotFoundError when no plan exists.
	GetSelectedPlan(ctx context.Context, shipmentID string) (*routeplan.SelectedRoutePlan, error)
}
