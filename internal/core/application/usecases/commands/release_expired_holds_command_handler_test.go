package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/inventory"
	"logistics/internal/core/domain/model/reservation"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockJanitorUoW struct{ mock.Mock }

func (m *MockJanitorUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockJanitorUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockJanitorUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockJanitorUoW) ReservationRepository() ports.ReservationRepository {
	args := m.Called()
	return args.Get(0).(ports.ReservationRepository)
}

func (m *MockJanitorUoW) InventoryRepository() ports.InventoryRepository {
	args := m.Called()
	return args.Get(0).(ports.InventoryRepository)
}

type MockJanitorUoWFactory struct{ mock.Mock }

func (m *MockJanitorUoWFactory) Create() commands.JanitorUoW {
	args := m.Called()
	return args.Get(0).(commands.JanitorUoW)
}

func expiredReservation(t *testing.T) *reservation.HubSlotReservation {
	t.Helper()
	reservedAt := time.Now().UTC().Add(-48 * time.Hour)
	res, err := reservation.NewHubSlotReservation(
		"SHP-100", "H1", "H1", reservation.ServiceAuthentication, 2,
		nil, nil, 150, reservedAt, reservation.DefaultHoldTTL,
	)
	require.NoError(t, err)
	return res
}

func expiredHold(t *testing.T) *inventory.Hold {
	t.Helper()
	heldAt := time.Now().UTC().Add(-72 * time.Hour)
	hold, err := inventory.NewHold(
		"SHP-100", "H1", inventory.ItemTag, 1, 5, "EUR", heldAt, inventory.DefaultHoldTTL,
	)
	require.NoError(t, err)
	return hold
}

func TestReleaseExpiredHoldsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	res := expiredReservation(t)
	hold := expiredHold(t)

	reservationRepo := new(MockReservationRepository)
	inventoryRepo := new(MockInventoryRepository)
	uow := new(MockJanitorUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReservationRepository").Return(reservationRepo).Once(),
		uow.On("InventoryRepository").Return(inventoryRepo).Once(),
		reservationRepo.On("FindExpired", ctx, mock.AnythingOfType("time.Time"), 100).
			Return([]*reservation.HubSlotReservation{res}, nil).Once(),
		reservationRepo.On("Release", ctx, res).Return(nil).Once(),
		inventoryRepo.On("FindExpired", ctx, mock.AnythingOfType("time.Time"), 100).
			Return([]*inventory.Hold{hold}, nil).Once(),
		inventoryRepo.On("Release", ctx, hold).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJanitorUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReleaseExpiredHoldsCommandHandler(factory, testLogger())
	cmd := commands.NewReleaseExpiredHoldsCommand(0)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, reservation.StatusExpired, res.Status())
	assert.Equal(t, inventory.StatusExpired, hold.Status())
	reservationRepo.AssertExpectations(t)
	inventoryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReleaseExpiredHoldsCommandHandler_Handle_NothingExpired(t *testing.T) {
	ctx := t.Context()

	reservationRepo := new(MockReservationRepository)
	inventoryRepo := new(MockInventoryRepository)
	uow := new(MockJanitorUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ReservationRepository").Return(reservationRepo).Once()
	uow.On("InventoryRepository").Return(inventoryRepo).Once()
	reservationRepo.On("FindExpired", ctx, mock.AnythingOfType("time.Time"), 25).
		Return([]*reservation.HubSlotReservation{}, nil).Once()
	inventoryRepo.On("FindExpired", ctx, mock.AnythingOfType("time.Time"), 25).
		Return([]*inventory.Hold{}, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockJanitorUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReleaseExpiredHoldsCommandHandler(factory, testLogger())
	cmd := commands.NewReleaseExpiredHoldsCommand(25)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	reservationRepo.AssertNotCalled(t, "Release", ctx, mock.Anything)
	inventoryRepo.AssertNotCalled(t, "Release", ctx, mock.Anything)
}

func TestReleaseExpiredHoldsCommandHandler_Handle_ReleaseErrorRollsBack(t *testing.T) {
	ctx := t.Context()

	res := expiredReservation(t)

	reservationRepo := new(MockReservationRepository)
	inventoryRepo := new(MockInventoryRepository)
	uow := new(MockJanitorUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ReservationRepository").Return(reservationRepo).Once()
	uow.On("InventoryRepository").Return(inventoryRepo).Once()
	reservationRepo.On("FindExpired", ctx, mock.AnythingOfType("time.Time"), 100).
		Return([]*reservation.HubSlotReservation{res}, nil).Once()
	reservationRepo.On("Release", ctx, res).Return(errors.New("database error")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockJanitorUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReleaseExpiredHoldsCommandHandler(factory, testLogger())
	cmd := commands.NewReleaseExpiredHoldsCommand(100)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "database error")
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestReleaseExpiredHoldsCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()

	factory := new(MockJanitorUoWFactory)
	handler := commands.NewReleaseExpiredHoldsCommandHandler(factory, testLogger())

	cmd := commands.ReleaseExpiredHoldsCommand{} // not constructed properly
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrReleaseExpiredHoldsCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
