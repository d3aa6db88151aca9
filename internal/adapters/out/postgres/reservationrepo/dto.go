// Package reservationrepo provides data transfer objects and mapping
// functions for hub slot reservations and the hub capacity ledger. The
// ledger rows are plain counters mutated only under row locks; they have no
// domain aggregate of their own.
package reservationrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/reservation"

	"github.com/google/uuid"
)

// ReservationDTO represents the database structure for persisting hub slot
// reservations.
type ReservationDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID    string    `gorm:"index"`
	HubID         string
	HubCode       string
	ServiceType   string
	Tier          int
	PlannedStart  *time.Time
	PlannedEnd    *time.Time
	Cost          float64
	CapacityUnits float64
	Priority      string
	Status        string `gorm:"index"`
	ReservedAt    time.Time
	ExpiresAt     time.Time `gorm:"index"`
}

// TableName specifies the database table name for hub slot reservations.
func (ReservationDTO) TableName() string {
	return "hub_slot_reservations"
}

// HubCapacityDTO is one row of the hub capacity ledger, keyed by hub and
// service type. Capacity is in service-specific units and may be fractional.
type HubCapacityDTO struct {
	HubCode     string `gorm:"primaryKey"`
	ServiceType string `gorm:"primaryKey"`
	Capacity    float64
}

// TableName specifies the database table name for the capacity ledger.
func (HubCapacityDTO) TableName() string {
	return "hub_capacities"
}

func fromDomain(aggregate *reservation.HubSlotReservation) ReservationDTO {
	return ReservationDTO{
		ID:            aggregate.ID().Bytes(),
		ShipmentID:    aggregate.ShipmentID(),
		HubID:         aggregate.HubID(),
		HubCode:       aggregate.HubCode(),
		ServiceType:   aggregate.ServiceType().String(),
		Tier:          aggregate.Tier(),
		PlannedStart:  aggregate.PlannedStart(),
		PlannedEnd:    aggregate.PlannedEnd(),
		Cost:          aggregate.Cost(),
		CapacityUnits: aggregate.CapacityUnits(),
		Priority:      aggregate.Priority(),
		Status:        aggregate.Status(),
		ReservedAt:    aggregate.ReservedAt(),
		ExpiresAt:     aggregate.ExpiresAt(),
	}
}

func toDomain(dto ReservationDTO) (*reservation.HubSlotReservation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	serviceType, err := reservation.ServiceTypeFromString(dto.ServiceType)
	if err != nil {
		return nil, err
	}

	return reservation.RestoreHubSlotReservation(
		id,
		dto.ShipmentID,
		dto.HubID, dto.HubCode,
		serviceType,
		dto.Tier,
		dto.PlannedStart, dto.PlannedEnd,
		dto.Cost, dto.CapacityUnits,
		dto.Priority, dto.Status,
		dto.ReservedAt, dto.ExpiresAt,
	)
}
