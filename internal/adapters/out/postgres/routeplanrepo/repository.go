package routeplanrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/routeplan"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRoutePlanRepository implements RoutePlanRepository using GORM.
type GormRoutePlanRepository struct {
	db *gorm.DB
}

// NewGormRoutePlanRepository creates a new GORM route plan repository.
func NewGormRoutePlanRepository(db *gorm.DB) *GormRoutePlanRepository {
	return &GormRoutePlanRepository{db: db}
}

// AddLeg saves a provisional leg to the database.
func (r *GormRoutePlanRepository) AddLeg(ctx context.Context, leg *routeplan.ProvisionalLeg) error {
	if err := leg.Validate(); err != nil {
		return err
	}

	dto := legFromDomain(leg)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetLegsByShipment retrieves a shipment's legs ordered by leg order.
func (r *GormRoutePlanRepository) GetLegsByShipment(
	ctx context.Context,
	shipmentID string,
) ([]*routeplan.ProvisionalLeg, error) {
	var dtos []LegDTO
	err := r.db.WithContext(ctx).
		Order("leg_order").
		Find(&dtos, "shipment_id = ?", shipmentID).Error
	if err != nil {
		return nil, err
	}

	legs := make([]*routeplan.ProvisionalLeg, 0, len(dtos))
	for _, dto := range dtos {
		leg, legErr := legToDomain(dto)
		if legErr != nil {
			return nil, legErr
		}
		legs = append(legs, leg)
	}

	return legs, nil
}

// AddPlan saves the selected route plan to the database.
func (r *GormRoutePlanRepository) AddPlan(ctx context.Context, plan *routeplan.SelectedRoutePlan) error {
	if err := plan.Validate(); err != nil {
		return err
	}

	dto := planFromDomain(plan)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetSelectedPlan retrieves the shipment's most recent selected plan.
func (r *GormRoutePlanRepository) GetSelectedPlan(
	ctx context.Context,
	shipmentID string,
) (*routeplan.SelectedRoutePlan, error) {
	var dto PlanDTO
	err := r.db.WithContext(ctx).
		Order("selected_at DESC").
		First(&dto, "shipment_id = ? AND is_selected", shipmentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("route plan", shipmentID)
		}
		return nil, err
	}

	return planToDomain(dto)
}
