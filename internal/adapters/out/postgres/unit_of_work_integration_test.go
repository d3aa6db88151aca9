package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/postgres/inventoryrepo"
	"logistics/internal/adapters/out/postgres/reservationrepo"
	"logistics/internal/adapters/out/postgres/routeplanrepo"
	"logistics/internal/adapters/out/postgres/shipmentrepo"
	"logistics/internal/core/domain/model/inventory"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/reservation"
	"logistics/internal/core/domain/model/routeplan"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&routeplanrepo.LegDTO{},
		&routeplanrepo.PlanDTO{},
		&reservationrepo.ReservationDTO{},
		&reservationrepo.HubCapacityDTO{},
		&inventoryrepo.HoldDTO{},
		&inventoryrepo.HubStockDTO{},
	)
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE shipments, provisional_legs, route_plans, hub_slot_reservations, inventory_holds, hub_capacities, hub_stocks",
	).Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.ShipmentRepository(), "First instance should provide shipment repository")
	suite.NotNil(uow1.RoutePlanRepository(), "First instance should provide route plan repository")
	suite.NotNil(uow2.ReservationRepository(), "Second instance should provide reservation repository")
	suite.NotNil(uow2.InventoryRepository(), "Second instance should provide inventory repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_ShipmentRoundTrip verifies shipment persistence and the
// locked read used at the start of every selection.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ShipmentRoundTrip() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testShipment := createCalculatingShipment("SHP-IT-1")
	err := uow.ShipmentRepository().Add(ctx, testShipment)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	locked, err := uow.ShipmentRepository().GetForUpdate(ctx, "SHP-IT-1")
	suite.Require().NoError(err)
	suite.Equal(shipment.Calculating, locked.Status())

	err = locked.SelectRoute("ops@example.com", time.Now().UTC())
	suite.Require().NoError(err)
	err = uow.ShipmentRepository().Update(ctx, locked)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	retrieved, err := suite.factory.Create().ShipmentRepository().Get(ctx, "SHP-IT-1")
	suite.Require().NoError(err)
	suite.Equal(shipment.Planned, retrieved.Status())
	suite.Equal("ops@example.com", retrieved.UpdatedBy())

	_, err = suite.factory.Create().ShipmentRepository().Get(ctx, "SHP-MISSING")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// TestUnitOfWork_SelectionWorkflow tests the complete route selection write
// set across all four repositories within a single transaction: shipment
// transition, legs, reservation plus capacity debit, hold plus stock debit,
// and the frozen plan record.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SelectionWorkflow() {
	ctx := context.Background()
	suite.seedCapacity("PAR-H1", "authentication", 5)
	suite.seedStock("PAR-H1", "tag", 10)

	now := time.Now().UTC()
	testShipment := createCalculatingShipment("SHP-IT-2")

	uow := suite.factory.Create()
	err := uow.ShipmentRepository().Add(ctx, testShipment)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	// Step 1: lock and transition the shipment
	locked, err := uow.ShipmentRepository().GetForUpdate(ctx, "SHP-IT-2")
	suite.Require().NoError(err)
	err = locked.SelectRoute("system", now)
	suite.Require().NoError(err)
	err = uow.ShipmentRepository().Update(ctx, locked)
	suite.Require().NoError(err)

	// Step 2: materialized legs
	leg1 := createTestLeg("SHP-IT-2", 1)
	leg2 := createTestLeg("SHP-IT-2", 2)
	err = uow.RoutePlanRepository().AddLeg(ctx, leg1)
	suite.Require().NoError(err)
	err = uow.RoutePlanRepository().AddLeg(ctx, leg2)
	suite.Require().NoError(err)

	// Step 3: hub slot reservation debits the capacity ledger
	testReservation := createTestReservation("SHP-IT-2", now)
	err = uow.ReservationRepository().Reserve(ctx, testReservation)
	suite.Require().NoError(err)

	// Step 4: inventory hold debits the stock ledger
	testHold := createTestHold("SHP-IT-2", now)
	err = uow.InventoryRepository().HoldItems(ctx, testHold)
	suite.Require().NoError(err)

	// Step 5: the frozen plan record referencing everything above
	plan := createTestPlan("SHP-IT-2",
		[]kernel.UUID{leg1.ID(), leg2.ID()},
		[]kernel.UUID{testReservation.ID()},
		[]kernel.UUID{testHold.ID()},
		now,
	)
	err = uow.RoutePlanRepository().AddPlan(ctx, plan)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify everything persisted using a new unit of work
	newUow := suite.factory.Create()

	retrievedShipment, err := newUow.ShipmentRepository().Get(ctx, "SHP-IT-2")
	suite.Require().NoError(err)
	suite.Equal(shipment.Planned, retrievedShipment.Status())

	legs, err := newUow.RoutePlanRepository().GetLegsByShipment(ctx, "SHP-IT-2")
	suite.Require().NoError(err)
	suite.Require().Len(legs, 2)
	suite.Equal(1, legs[0].LegOrder())
	suite.Equal(2, legs[1].LegOrder())

	reservations, err := newUow.ReservationRepository().GetByShipment(ctx, "SHP-IT-2")
	suite.Require().NoError(err)
	suite.Require().Len(reservations, 1)
	suite.Equal(reservation.StatusReserved, reservations[0].Status())

	holds, err := newUow.InventoryRepository().GetByShipment(ctx, "SHP-IT-2")
	suite.Require().NoError(err)
	suite.Require().Len(holds, 1)
	suite.Equal(inventory.StatusHeld, holds[0].Status())

	retrievedPlan, err := newUow.RoutePlanRepository().GetSelectedPlan(ctx, "SHP-IT-2")
	suite.Require().NoError(err)
	suite.Equal(plan.ID(), retrievedPlan.ID())
	suite.Equal("RT-7", retrievedPlan.RouteID())
	suite.Require().Len(retrievedPlan.LegIDs(), 2)
	suite.Require().Len(retrievedPlan.ReservationIDs(), 1)
	suite.Require().Len(retrievedPlan.HoldIDs(), 1)

	// Both ledgers are debited exactly once
	suite.InDelta(4.0, suite.readCapacity("PAR-H1", "authentication"), 0.001)
	suite.Equal(9, suite.readStock("PAR-H1", "tag"))
}

// TestUnitOfWork_SelectionRollback verifies a mid-selection failure leaves no
// partial state: no rows and no ledger movement.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SelectionRollback() {
	ctx := context.Background()
	suite.seedCapacity("PAR-H1", "authentication", 5)
	suite.seedStock("PAR-H1", "tag", 10)

	now := time.Now().UTC()
	testShipment := createCalculatingShipment("SHP-IT-3")

	uow := suite.factory.Create()
	err := uow.ShipmentRepository().Add(ctx, testShipment)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	locked, err := uow.ShipmentRepository().GetForUpdate(ctx, "SHP-IT-3")
	suite.Require().NoError(err)
	err = locked.SelectRoute("system", now)
	suite.Require().NoError(err)
	err = uow.ShipmentRepository().Update(ctx, locked)
	suite.Require().NoError(err)

	err = uow.RoutePlanRepository().AddLeg(ctx, createTestLeg("SHP-IT-3", 1))
	suite.Require().NoError(err)
	err = uow.ReservationRepository().Reserve(ctx, createTestReservation("SHP-IT-3", now))
	suite.Require().NoError(err)
	err = uow.InventoryRepository().HoldItems(ctx, createTestHold("SHP-IT-3", now))
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	retrievedShipment, err := newUow.ShipmentRepository().Get(ctx, "SHP-IT-3")
	suite.Require().NoError(err)
	suite.Equal(shipment.Calculating, retrievedShipment.Status(), "Shipment should remain calculating after rollback")

	legs, err := newUow.RoutePlanRepository().GetLegsByShipment(ctx, "SHP-IT-3")
	suite.Require().NoError(err)
	suite.Empty(legs, "No legs should persist after rollback")

	reservations, err := newUow.ReservationRepository().GetByShipment(ctx, "SHP-IT-3")
	suite.Require().NoError(err)
	suite.Empty(reservations, "No reservations should persist after rollback")

	holds, err := newUow.InventoryRepository().GetByShipment(ctx, "SHP-IT-3")
	suite.Require().NoError(err)
	suite.Empty(holds, "No holds should persist after rollback")

	suite.InDelta(5.0, suite.readCapacity("PAR-H1", "authentication"), 0.001)
	suite.Equal(10, suite.readStock("PAR-H1", "tag"))
}

// TestUnitOfWork_CapacityContention verifies that two selections competing
// for the same hub/service counter do not queue: the second one fails fast
// with a contention error while the first transaction is still open.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CapacityContention() {
	ctx := context.Background()
	suite.seedCapacity("PAR-H1", "authentication", 5)

	now := time.Now().UTC()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)
	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	// First transaction takes the counter lock and holds it
	err = uow1.ReservationRepository().Reserve(ctx, createTestReservation("SHP-IT-4", now))
	suite.Require().NoError(err)

	// Second transaction must fail immediately instead of waiting
	err = uow2.ReservationRepository().Reserve(ctx, createTestReservation("SHP-IT-5", now))
	suite.Require().ErrorIs(err, errs.ErrResourceContention)

	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)
	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	// Only the first reservation debited the counter
	suite.InDelta(4.0, suite.readCapacity("PAR-H1", "authentication"), 0.001)
}

// TestUnitOfWork_CapacityExhausted verifies the floor check on the capacity
// counter: a debit that would take it negative is rejected.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CapacityExhausted() {
	ctx := context.Background()
	suite.seedCapacity("PAR-H1", "authentication", 0.5)

	uow := suite.factory.Create()
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Authentication slots cost one full unit
	err = uow.ReservationRepository().Reserve(ctx, createTestReservation("SHP-IT-6", time.Now().UTC()))
	suite.Require().ErrorIs(err, errs.ErrResourceExhausted)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	suite.InDelta(0.5, suite.readCapacity("PAR-H1", "authentication"), 0.001)
}

// TestUnitOfWork_StockExhausted verifies the floor check on the stock
// counter and that an unknown counter row maps to not-found.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_StockExhausted() {
	ctx := context.Background()
	suite.seedStock("PAR-H1", "tag", 0)

	now := time.Now().UTC()
	uow := suite.factory.Create()
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.InventoryRepository().HoldItems(ctx, createTestHold("SHP-IT-7", now))
	suite.Require().ErrorIs(err, errs.ErrResourceExhausted)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Unknown hub/item pair has no ledger row at all
	uow = suite.factory.Create()
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	missingHold, err := inventory.NewHold("SHP-IT-7", "UNKNOWN-HUB", inventory.ItemTag, 1, 5, "EUR", now, inventory.DefaultHoldTTL)
	suite.Require().NoError(err)
	err = uow.InventoryRepository().HoldItems(ctx, missingHold)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)
}

// TestUnitOfWork_ExpiredHoldRelease tests the janitor path end to end:
// overdue reservations and holds are found, expired, and their units
// credited back to the ledgers.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ExpiredHoldRelease() {
	ctx := context.Background()
	suite.seedCapacity("PAR-H1", "authentication", 5)
	suite.seedStock("PAR-H1", "tag", 10)

	// Reserved two days ago with a 24h TTL, so already overdue
	reservedAt := time.Now().UTC().Add(-48 * time.Hour)

	setupUow := suite.factory.Create()
	err := setupUow.Begin(ctx)
	suite.Require().NoError(err)

	overdueReservation := createTestReservation("SHP-IT-8", reservedAt)
	err = setupUow.ReservationRepository().Reserve(ctx, overdueReservation)
	suite.Require().NoError(err)

	overdueHold, err := inventory.NewHold("SHP-IT-8", "PAR-H1", inventory.ItemTag, 1, 5, "EUR", reservedAt, time.Hour)
	suite.Require().NoError(err)
	err = setupUow.InventoryRepository().HoldItems(ctx, overdueHold)
	suite.Require().NoError(err)

	err = setupUow.Commit(ctx)
	suite.Require().NoError(err)

	suite.InDelta(4.0, suite.readCapacity("PAR-H1", "authentication"), 0.001)
	suite.Equal(9, suite.readStock("PAR-H1", "tag"))

	// Janitor pass
	now := time.Now().UTC()
	uow := suite.factory.Create()
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	expiredReservations, err := uow.ReservationRepository().FindExpired(ctx, now, 100)
	suite.Require().NoError(err)
	suite.Require().Len(expiredReservations, 1)

	err = expiredReservations[0].Expire(now)
	suite.Require().NoError(err)
	err = uow.ReservationRepository().Release(ctx, expiredReservations[0])
	suite.Require().NoError(err)

	expiredHolds, err := uow.InventoryRepository().FindExpired(ctx, now, 100)
	suite.Require().NoError(err)
	suite.Require().Len(expiredHolds, 1)

	err = expiredHolds[0].Expire(now)
	suite.Require().NoError(err)
	err = uow.InventoryRepository().Release(ctx, expiredHolds[0])
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Units are credited back and the rows are expired
	suite.InDelta(5.0, suite.readCapacity("PAR-H1", "authentication"), 0.001)
	suite.Equal(10, suite.readStock("PAR-H1", "tag"))

	newUow := suite.factory.Create()
	reservations, err := newUow.ReservationRepository().GetByShipment(ctx, "SHP-IT-8")
	suite.Require().NoError(err)
	suite.Require().Len(reservations, 1)
	suite.Equal(reservation.StatusExpired, reservations[0].Status())

	holds, err := newUow.InventoryRepository().GetByShipment(ctx, "SHP-IT-8")
	suite.Require().NoError(err)
	suite.Require().Len(holds, 1)
	suite.Equal(inventory.StatusExpired, holds[0].Status())

	// A second janitor pass finds nothing
	remaining, err := newUow.ReservationRepository().FindExpired(ctx, now, 100)
	suite.Require().NoError(err)
	suite.Empty(remaining)
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testShipment := createCalculatingShipment("SHP-IT-9")

	err := uow.ShipmentRepository().Add(ctx, testShipment)
	suite.Require().NoError(err)

	retrieved, err := uow.ShipmentRepository().Get(ctx, "SHP-IT-9")
	suite.Require().NoError(err)
	suite.Equal(testShipment.ID(), retrieved.ID())

	newUow := suite.factory.Create()
	retrieved, err = newUow.ShipmentRepository().Get(ctx, "SHP-IT-9")
	suite.Require().NoError(err)
	suite.Equal(testShipment.ID(), retrieved.ID())
}

// seedCapacity inserts one hub capacity ledger row.
func (suite *UnitOfWorkIntegrationTestSuite) seedCapacity(hubCode, serviceType string, capacity float64) {
	err := suite.db.Create(&reservationrepo.HubCapacityDTO{
		HubCode:     hubCode,
		ServiceType: serviceType,
		Capacity:    capacity,
	}).Error
	suite.Require().NoError(err)
}

// seedStock inserts one hub stock ledger row.
func (suite *UnitOfWorkIntegrationTestSuite) seedStock(hubCode, itemType string, quantity int) {
	err := suite.db.Create(&inventoryrepo.HubStockDTO{
		HubCode:  hubCode,
		ItemType: itemType,
		Quantity: quantity,
	}).Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) readCapacity(hubCode, serviceType string) float64 {
	var counter reservationrepo.HubCapacityDTO
	err := suite.db.First(&counter, "hub_code = ? AND service_type = ?", hubCode, serviceType).Error
	suite.Require().NoError(err)
	return counter.Capacity
}

func (suite *UnitOfWorkIntegrationTestSuite) readStock(hubCode, itemType string) int {
	var counter inventoryrepo.HubStockDTO
	err := suite.db.First(&counter, "hub_code = ? AND item_type = ?", hubCode, itemType).Error
	suite.Require().NoError(err)
	return counter.Quantity
}

// createCalculatingShipment creates a shipment ready for route selection.
func createCalculatingShipment(id string) *shipment.Shipment {
	now := time.Now().UTC()
	s, _ := shipment.NewShipment(id, "system", now)
	_ = s.StartCalculating("system", now)
	return s
}

// createTestLeg creates a valid provisional leg for testing purposes.
func createTestLeg(shipmentID string, legOrder int) *routeplan.ProvisionalLeg {
	leg, _ := routeplan.NewProvisionalLeg(
		shipmentID, legOrder,
		"white-glove", "EliteWG", "Paris", "PAR-H1", "PAR-H1",
		200, "EUR",
		nil, nil,
		4, 0, 6,
	)
	return leg
}

// createTestReservation creates a valid authentication slot reservation.
func createTestReservation(shipmentID string, reservedAt time.Time) *reservation.HubSlotReservation {
	res, _ := reservation.NewHubSlotReservation(
		shipmentID,
		"H1", "PAR-H1",
		reservation.ServiceAuthentication,
		2,
		nil, nil,
		80,
		reservedAt,
		reservation.DefaultHoldTTL,
	)
	return res
}

// createTestHold creates a valid tier-2 security tag hold.
func createTestHold(shipmentID string, heldAt time.Time) *inventory.Hold {
	hold, _ := inventory.NewHold(
		shipmentID,
		"PAR-H1",
		inventory.ItemTag,
		1,
		5, "EUR",
		heldAt,
		inventory.DefaultHoldTTL,
	)
	return hold
}

// createTestPlan creates a frozen route plan referencing the given ids.
func createTestPlan(
	shipmentID string,
	legIDs, reservationIDs, holdIDs []kernel.UUID,
	selectedAt time.Time,
) *routeplan.SelectedRoutePlan {
	plan, _ := routeplan.NewSelectedRoutePlan(
		shipmentID,
		"RT-7", "Paris FULL_WG relay",
		routeplan.RouteTypeWhiteGlove,
		2,
		250, 320, "EUR",
		selectedAt.Add(72*time.Hour),
		"PAR-H1", "NYC-H2",
		legIDs, reservationIDs, holdIDs,
		selectedAt,
	)
	return plan
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
