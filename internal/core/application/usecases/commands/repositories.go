// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// RoutePlanRepoFactory provides access to the route plan repository within a transaction.
	RoutePlanRepoFactory interface {
		RoutePlanRepository() ports.RoutePlanRepository
	}

	// ReservationRepoFactory provides access to the reservation repository within a transaction.
	ReservationRepoFactory interface {
		ReservationRepository() ports.ReservationRepository
	}

	// InventoryRepoFactory provides access to the inventory repository within a transaction.
	InventoryRepoFactory interface {
		InventoryRepository() ports.InventoryRepository
	}

	// SelectionUoW manages transactions for a route selection, which touches
	// the shipment, its legs and plan, hub slot reservations, and inventory
	// holds as one atomic unit.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   shipmentRepo := uow.ShipmentRepository()
	//   planRepo := uow.RoutePlanRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	SelectionUoW interface {
		TxManager
		ShipmentRepoFactory
		RoutePlanRepoFactory
		ReservationRepoFactory
		InventoryRepoFactory
	}

	// SelectionUoWFactory creates new selection unit of work instances.
	SelectionUoWFactory interface {
		Create() SelectionUoW
	}

	// JanitorUoW manages transactions for hold expiry. The janitor only
	// touches reservations, inventory holds, and their counters.
	JanitorUoW interface {
		TxManager
		ReservationRepoFactory
		InventoryRepoFactory
	}

	// JanitorUoWFactory creates new janitor unit of work instances.
	JanitorUoWFactory interface {
		Create() JanitorUoW
	}
)
