package commands

import (
	"context"
	"log/slog"
	"time"
)

// ReleaseExpiredHoldsCommandHandler reclaims expired hub slot reservations
// and inventory holds. Each released record credits its units back to the
// matching hub counter under the same locking discipline selection uses, so
// a sweep and a concurrent selection can never double-spend capacity.
type ReleaseExpiredHoldsCommandHandler struct {
	uowFactory JanitorUoWFactory
	logger     *slog.Logger
}

// NewReleaseExpiredHoldsCommandHandler creates a handler for hold expiry sweeps.
func NewReleaseExpiredHoldsCommandHandler(
	uowFactory JanitorUoWFactory,
	logger *slog.Logger,
) ReleaseExpiredHoldsCommandHandler {
	return ReleaseExpiredHoldsCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "hold-expiry"),
	}
}

// Handle processes one expiry sweep.
// Expired reservations are released before expired inventory holds; all
// releases in one sweep commit atomically.
func (h *ReleaseExpiredHoldsCommandHandler) Handle(ctx context.Context, cmd ReleaseExpiredHoldsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	reservationRepo := uow.ReservationRepository()
	inventoryRepo := uow.InventoryRepository()

	expiredReservations, err := reservationRepo.FindExpired(ctx, now, cmd.BatchSize())
	if err != nil {
		return err
	}

	for _, res := range expiredReservations {
		if err = res.Expire(now); err != nil {
			return err
		}

		if err = reservationRepo.Release(ctx, res); err != nil {
			return err
		}
	}

	expiredHolds, err := inventoryRepo.FindExpired(ctx, now, cmd.BatchSize())
	if err != nil {
		return err
	}

	for _, hold := range expiredHolds {
		if err = hold.Expire(now); err != nil {
			return err
		}

		if err = inventoryRepo.Release(ctx, hold); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if len(expiredReservations) > 0 || len(expiredHolds) > 0 {
		h.logger.Info("released expired holds",
			"reservations", len(expiredReservations),
			"inventory_holds", len(expiredHolds))
	}

	return nil
}
