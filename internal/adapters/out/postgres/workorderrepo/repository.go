package workorderrepo

import (
	"context"
	"errors"
	"time"

	"hangar/internal/core/domain/model/kernel"
	"hangar/internal/core/domain/model/workorder"
	"hangar/internal/core/ports"
	"hangar/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// pgUniqueViolation is the postgres error code for unique constraint violations.
const pgUniqueViolation = "23505"

// GormWorkOrderRepository implements WorkOrderRepository using GORM.
type GormWorkOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormWorkOrderRepository creates a new GORM work order repository.
func NewGormWorkOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormWorkOrderRepository {
	return &GormWorkOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new work order. A unique violation on (shop_id, number) maps to
// ErrDuplicateWorkOrderNumber so the caller can re-count and retry allocation.
func (r *GormWorkOrderRepository) Add(ctx context.Context, aggregate *workorder.WorkOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isDuplicateNumber(err) {
			return ports.ErrDuplicateWorkOrderNumber
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing work order. Status and stamped timestamps land in
// the same UPDATE statement.
func (r *GormWorkOrderRepository) Update(ctx context.Context, aggregate *workorder.WorkOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&WorkOrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetForShop retrieves a work order by id within the shop boundary. When the
// repository runs inside a transaction the row is locked with FOR UPDATE, so
// concurrent status changes on the same order serialize at the database.
func (r *GormWorkOrderRepository) GetForShop(ctx context.Context, id, shopID kernel.UUID) (*workorder.WorkOrder, error) {
	if err := errors.Join(id.Validate(), shopID.Validate()); err != nil {
		return nil, err
	}

	var dto WorkOrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		First(&dto, "id = ? AND shop_id = ?", id.Bytes(), shopID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("workOrder", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllForShop retrieves all of a shop's work orders, newest first.
func (r *GormWorkOrderRepository) GetAllForShop(ctx context.Context, shopID kernel.UUID) ([]*workorder.WorkOrder, error) {
	if err := shopID.Validate(); err != nil {
		return nil, err
	}

	var dtos []WorkOrderDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dtos, "shop_id = ?", shopID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllInStatus retrieves work orders in the given status across all shops.
func (r *GormWorkOrderRepository) GetAllInStatus(ctx context.Context, status workorder.Status) ([]*workorder.WorkOrder, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []WorkOrderDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "status = ?", int(status)).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// CountCreatedSince counts a shop's work orders created at or after the given instant.
func (r *GormWorkOrderRepository) CountCreatedSince(ctx context.Context, shopID kernel.UUID, since time.Time) (int64, error) {
	if err := shopID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&WorkOrderDTO{}).
		Where("shop_id = ? AND created_at >= ?", shopID.Bytes(), since).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

func toDomainSlice(dtos []WorkOrderDTO) ([]*workorder.WorkOrder, error) {
	workOrders := make([]*workorder.WorkOrder, 0, len(dtos))
	for _, dto := range dtos {
		wo, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		workOrders = append(workOrders, wo)
	}
	return workOrders, nil
}

func isDuplicateNumber(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation
}
