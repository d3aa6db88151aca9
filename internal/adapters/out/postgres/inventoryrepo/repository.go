package inventoryrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/inventory"
	"logistics/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// pgLockNotAvailable is the Postgres error code raised by NOWAIT locking
// when another transaction holds the row lock.
const pgLockNotAvailable = "55P03"

const stockResource = "hub_stock"

// GormInventoryRepository implements InventoryRepository using GORM.
//
// Stock accounting and hold rows live in the same transaction: a hold insert
// is always paired with a locked decrement of the hub/item stock counter,
// and a release with the matching credit.
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewGormInventoryRepository creates a new GORM inventory repository.
func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// HoldItems saves the hold and decrements the stock counter.
// The counter row is locked FOR UPDATE NOWAIT; a held lock maps to
// ResourceContentionError, a floor violation to ResourceExhaustedError.
func (r *GormInventoryRepository) HoldItems(ctx context.Context, aggregate *inventory.Hold) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return r.adjustStock(ctx, aggregate.HubKey(), aggregate.ItemType().String(), -aggregate.Quantity())
}

// GetByShipment retrieves a shipment's holds in creation order.
func (r *GormInventoryRepository) GetByShipment(
	ctx context.Context,
	shipmentID string,
) ([]*inventory.Hold, error) {
	var dtos []HoldDTO
	err := r.db.WithContext(ctx).
		Order("held_at, id").
		Find(&dtos, "shipment_id = ?", shipmentID).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// FindExpired retrieves up to limit held holds past their expiry.
func (r *GormInventoryRepository) FindExpired(
	ctx context.Context,
	now time.Time,
	limit int,
) ([]*inventory.Hold, error) {
	var dtos []HoldDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND expires_at < ?", inventory.StatusHeld, now).
		Order("expires_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// Release persists the expired hold and credits its quantity back to the
// stock counter, under the same locking discipline as HoldItems.
func (r *GormInventoryRepository) Release(ctx context.Context, aggregate *inventory.Hold) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&HoldDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return r.adjustStock(ctx, aggregate.HubKey(), aggregate.ItemType().String(), aggregate.Quantity())
}

// adjustStock applies a delta to one counter row under FOR UPDATE NOWAIT.
// Negative deltas are floor-checked against the locked value.
func (r *GormInventoryRepository) adjustStock(
	ctx context.Context,
	hubCode, itemType string,
	delta int,
) error {
	key := fmt.Sprintf("%s/%s", hubCode, itemType)

	var counter HubStockDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "NOWAIT"}).
		First(&counter, "hub_code = ? AND item_type = ?", hubCode, itemType).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError(stockResource, key)
		}
		if isLockNotAvailable(err) {
			return errs.NewResourceContentionErrorWithCause(stockResource, key, err)
		}
		return err
	}

	if counter.Quantity+delta < 0 {
		return errs.NewResourceExhaustedError(stockResource, key, float64(-delta), float64(counter.Quantity))
	}

	return r.db.WithContext(ctx).
		Model(&HubStockDTO{}).
		Where("hub_code = ? AND item_type = ?", hubCode, itemType).
		Update("quantity", gorm.Expr("quantity + ?", delta)).Error
}

func toDomainSlice(dtos []HoldDTO) ([]*inventory.Hold, error) {
	holds := make([]*inventory.Hold, 0, len(dtos))
	for _, dto := range dtos {
		hold, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		holds = append(holds, hold)
	}
	return holds, nil
}

func isLockNotAvailable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgLockNotAvailable
}
