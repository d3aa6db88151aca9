// Package inventoryrepo provides data transfer objects and mapping functions
// for inventory holds and the hub stock ledger. The ledger rows are plain
// counters mutated only under row locks.
package inventoryrepo

import (
	"time"

	"logistics/internal/core/domain/model/inventory"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// HoldDTO represents the database structure for persisting inventory holds.
type HoldDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID   string    `gorm:"index"`
	HubKey       string
	ItemType     string
	Quantity     int
	UnitCost     float64
	TotalCost    float64
	Currency     string
	BatchNumber  string
	SerialNumber string
	Status       string `gorm:"index"`
	HeldAt       time.Time
	ExpiresAt    time.Time `gorm:"index"`
}

// TableName specifies the database table name for inventory holds.
func (HoldDTO) TableName() string {
	return "inventory_holds"
}

// HubStockDTO is one row of the hub stock ledger, keyed by hub and item type.
type HubStockDTO struct {
	HubCode  string `gorm:"primaryKey"`
	ItemType string `gorm:"primaryKey"`
	Quantity int
}

// TableName specifies the database table name for the stock ledger.
func (HubStockDTO) TableName() string {
	return "hub_stocks"
}

func fromDomain(aggregate *inventory.Hold) HoldDTO {
	return HoldDTO{
		ID:           aggregate.ID().Bytes(),
		ShipmentID:   aggregate.ShipmentID(),
		HubKey:       aggregate.HubKey(),
		ItemType:     aggregate.ItemType().String(),
		Quantity:     aggregate.Quantity(),
		UnitCost:     aggregate.UnitCost(),
		TotalCost:    aggregate.TotalCost(),
		Currency:     aggregate.Currency(),
		BatchNumber:  aggregate.BatchNumber(),
		SerialNumber: aggregate.SerialNumber(),
		Status:       aggregate.Status(),
		HeldAt:       aggregate.HeldAt(),
		ExpiresAt:    aggregate.ExpiresAt(),
	}
}

func toDomain(dto HoldDTO) (*inventory.Hold, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	itemType, err := inventory.ItemTypeFromString(dto.ItemType)
	if err != nil {
		return nil, err
	}

	return inventory.RestoreHold(
		id,
		dto.ShipmentID, dto.HubKey,
		itemType,
		dto.Quantity,
		dto.UnitCost, dto.TotalCost,
		dto.Currency,
		dto.BatchNumber, dto.SerialNumber, dto.Status,
		dto.HeldAt, dto.ExpiresAt,
	)
}
