// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. Route selection owns only the status/audit slice
// of the shipment row; the rest of the platform's shipment data lives in
// other services.
package shipmentrepo

import (
	"time"

	"logistics/internal/core/domain/model/shipment"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. The business identifier (e.g. "SHP-100") is the primary key.
type ShipmentDTO struct {
	ID        string `gorm:"primaryKey"`
	Status    string `gorm:"index"`
	UpdatedBy string
	UpdatedAt time.Time
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// fromDomain converts a shipment domain aggregate to its database representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:        aggregate.ID(),
		Status:    aggregate.Status().String(),
		UpdatedBy: aggregate.UpdatedBy(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a shipment domain aggregate.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(dto.ID, status, dto.UpdatedBy, dto.UpdatedAt)
}
