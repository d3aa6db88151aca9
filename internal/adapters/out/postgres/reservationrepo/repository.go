package reservationrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/reservation"
	"logistics/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// pgLockNotAvailable is the Postgres error code raised by NOWAIT locking
// when another transaction holds the row lock.
const pgLockNotAvailable = "55P03"

const capacityResource = "hub_capacity"

// GormReservationRepository implements ReservationRepository using GORM.
//
// Capacity accounting and reservation rows live in the same transaction: a
// reservation insert is always paired with a locked decrement of the
// hub/service capacity counter, and a release with the matching credit.
type GormReservationRepository struct {
	db *gorm.DB
}

// NewGormReservationRepository creates a new GORM reservation repository.
func NewGormReservationRepository(db *gorm.DB) *GormReservationRepository {
	return &GormReservationRepository{db: db}
}

// Reserve saves the reservation and decrements the capacity counter.
// The counter row is locked FOR UPDATE NOWAIT; a held lock maps to
// ResourceContentionError, a floor violation to ResourceExhaustedError.
func (r *GormReservationRepository) Reserve(ctx context.Context, aggregate *reservation.HubSlotReservation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return r.adjustCapacity(ctx, aggregate.HubKey(), aggregate.ServiceType().String(), -aggregate.CapacityUnits())
}

// GetByShipment retrieves a shipment's reservations in creation order.
func (r *GormReservationRepository) GetByShipment(
	ctx context.Context,
	shipmentID string,
) ([]*reservation.HubSlotReservation, error) {
	var dtos []ReservationDTO
	err := r.db.WithContext(ctx).
		Order("reserved_at, id").
		Find(&dtos, "shipment_id = ?", shipmentID).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// FindExpired retrieves up to limit reserved reservations past their expiry.
func (r *GormReservationRepository) FindExpired(
	ctx context.Context,
	now time.Time,
	limit int,
) ([]*reservation.HubSlotReservation, error) {
	var dtos []ReservationDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND expires_at < ?", reservation.StatusReserved, now).
		Order("expires_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// Release persists the expired reservation and credits its capacity units
// back to the counter, under the same locking discipline as Reserve.
func (r *GormReservationRepository) Release(ctx context.Context, aggregate *reservation.HubSlotReservation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ReservationDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return r.adjustCapacity(ctx, aggregate.HubKey(), aggregate.ServiceType().String(), aggregate.CapacityUnits())
}

// adjustCapacity applies a delta to one counter row under FOR UPDATE NOWAIT.
// Negative deltas are floor-checked against the locked value.
func (r *GormReservationRepository) adjustCapacity(
	ctx context.Context,
	hubCode, serviceType string,
	delta float64,
) error {
	key := fmt.Sprintf("%s/%s", hubCode, serviceType)

	var counter HubCapacityDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "NOWAIT"}).
		First(&counter, "hub_code = ? AND service_type = ?", hubCode, serviceType).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError(capacityResource, key)
		}
		if isLockNotAvailable(err) {
			return errs.NewResourceContentionErrorWithCause(capacityResource, key, err)
		}
		return err
	}

	if counter.Capacity+delta < 0 {
		return errs.NewResourceExhaustedError(capacityResource, key, -delta, counter.Capacity)
	}

	return r.db.WithContext(ctx).
		Model(&HubCapacityDTO{}).
		Where("hub_code = ? AND service_type = ?", hubCode, serviceType).
		Update("capacity", gorm.Expr("capacity + ?", delta)).Error
}

func toDomainSlice(dtos []ReservationDTO) ([]*reservation.HubSlotReservation, error) {
	reservations := make([]*reservation.HubSlotReservation, 0, len(dtos))
	for _, dto := range dtos {
		res, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, nil
}

func isLockNotAvailable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgLockNotAvailable
}
