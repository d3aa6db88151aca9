// Package routeplanrepo provides data transfer objects and mapping functions
// for the frozen selection records: provisional legs and selected route plans.
package routeplanrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/routeplan"

	"github.com/google/uuid"
)

// LegDTO represents the database structure for persisting provisional legs.
type LegDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID       string    `gorm:"index"`
	LegOrder         int
	LegType          string
	Carrier          string
	FromLocation     string
	ToLocation       string
	HubCode          string
	Cost             float64
	Currency         string
	PlannedDeparture *time.Time
	PlannedArrival   *time.Time
	BufferHours      float64
	DistanceKm       float64
	DurationHours    float64
	Status           string
}

// TableName specifies the database table name for provisional legs.
func (LegDTO) TableName() string {
	return "provisional_legs"
}

// PlanDTO represents the database structure for persisting selected route
// plans. The id arrays referencing legs, reservations, and holds are stored
// as JSON columns; the plan row is never updated after insert.
type PlanDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID        string    `gorm:"index"`
	RouteID           string
	RouteLabel        string
	RouteType         string
	Tier              int
	TotalCost         float64
	ClientPrice       float64
	Currency          string
	EstimatedDelivery time.Time
	OriginHub         string
	DestinationHub    string
	LegIDs            []string `gorm:"serializer:json"`
	ReservationIDs    []string `gorm:"serializer:json"`
	HoldIDs           []string `gorm:"serializer:json"`
	IsSelected        bool
	SelectedAt        time.Time
	FrozenAt          time.Time
}

// TableName specifies the database table name for route plans.
func (PlanDTO) TableName() string {
	return "route_plans"
}

func legFromDomain(leg *routeplan.ProvisionalLeg) LegDTO {
	return LegDTO{
		ID:               leg.ID().Bytes(),
		ShipmentID:       leg.ShipmentID(),
		LegOrder:         leg.LegOrder(),
		LegType:          leg.LegType(),
		Carrier:          leg.Carrier(),
		FromLocation:     leg.From(),
		ToLocation:       leg.To(),
		HubCode:          leg.HubCode(),
		Cost:             leg.Cost(),
		Currency:         leg.Currency(),
		PlannedDeparture: leg.PlannedDeparture(),
		PlannedArrival:   leg.PlannedArrival(),
		BufferHours:      leg.BufferHours(),
		DistanceKm:       leg.DistanceKm(),
		DurationHours:    leg.DurationHours(),
		Status:           leg.Status(),
	}
}

func legToDomain(dto LegDTO) (*routeplan.ProvisionalLeg, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return routeplan.RestoreProvisionalLeg(
		id,
		dto.ShipmentID,
		dto.LegOrder,
		dto.LegType, dto.Carrier, dto.FromLocation, dto.ToLocation, dto.HubCode,
		dto.Cost,
		dto.Currency,
		dto.PlannedDeparture, dto.PlannedArrival,
		dto.BufferHours, dto.DistanceKm, dto.DurationHours,
		dto.Status,
	)
}

func planFromDomain(plan *routeplan.SelectedRoutePlan) PlanDTO {
	return PlanDTO{
		ID:                plan.ID().Bytes(),
		ShipmentID:        plan.ShipmentID(),
		RouteID:           plan.RouteID(),
		RouteLabel:        plan.RouteLabel(),
		RouteType:         string(plan.RouteType()),
		Tier:              plan.Tier(),
		TotalCost:         plan.TotalCost(),
		ClientPrice:       plan.ClientPrice(),
		Currency:          plan.Currency(),
		EstimatedDelivery: plan.EstimatedDelivery(),
		OriginHub:         plan.OriginHub(),
		DestinationHub:    plan.DestinationHub(),
		LegIDs:            uuidStrings(plan.LegIDs()),
		ReservationIDs:    uuidStrings(plan.ReservationIDs()),
		HoldIDs:           uuidStrings(plan.HoldIDs()),
		IsSelected:        plan.IsSelected(),
		SelectedAt:        plan.SelectedAt(),
		FrozenAt:          plan.FrozenAt(),
	}
}

func planToDomain(dto PlanDTO) (*routeplan.SelectedRoutePlan, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	routeType, err := routeplan.RouteTypeFromString(dto.RouteType)
	if err != nil {
		return nil, err
	}

	legIDs, err := uuidsFromStrings(dto.LegIDs)
	if err != nil {
		return nil, err
	}
	reservationIDs, err := uuidsFromStrings(dto.ReservationIDs)
	if err != nil {
		return nil, err
	}
	holdIDs, err := uuidsFromStrings(dto.HoldIDs)
	if err != nil {
		return nil, err
	}

	return routeplan.RestoreSelectedRoutePlan(
		id,
		dto.ShipmentID,
		dto.RouteID, dto.RouteLabel,
		routeType,
		dto.Tier,
		dto.TotalCost, dto.ClientPrice,
		dto.Currency,
		dto.EstimatedDelivery,
		dto.OriginHub, dto.DestinationHub,
		legIDs, reservationIDs, holdIDs,
		dto.IsSelected,
		dto.SelectedAt, dto.FrozenAt,
	)
}

func uuidStrings(ids []kernel.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

func uuidsFromStrings(values []string) ([]kernel.UUID, error) {
	out := make([]kernel.UUID, 0, len(values))
	for _, value := range values {
		id, err := kernel.UUIDFromString(value)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}
