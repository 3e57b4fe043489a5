package deliveryrepo

import (
	"context"
	"errors"

	"flowerdelivery/internal/core/domain/model/delivery"
	"flowerdelivery/internal/core/domain/model/kernel"
	"flowerdelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

const orderNumberLockNamespace = "deliveries.order_number:"

// GormDeliveryRepository implements ports.DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new delivery. A taken order number yields errs.ObjectConflictError.
// The gorm.DB must be opened with TranslateError for the duplicate key to be recognized.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectConflictErrorWithCause("delivery", dto.ID, err)
		}
		return err
	}

	r.tracker.TrackAggregate(dto.ID, aggregate)
	return nil
}

// Update overwrites status and descriptive fields. Zero values are written too.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "prefix", "sequence", "settlement", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("delivery", dto.ID)
	}

	r.tracker.TrackAggregate(dto.ID, aggregate)
	return nil
}

func (r *GormDeliveryRepository) Get(ctx context.Context, number kernel.OrderNumber) (*delivery.Delivery, error) {
	if err := number.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", number.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", number.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// LockOrderNumbers takes a transaction-scoped advisory lock for the prefix.
// Outside a transaction the lock is released as soon as the statement ends,
// so it must run on the unit of work's transaction.
func (r *GormDeliveryRepository) LockOrderNumbers(ctx context.Context, prefix string) error {
	return r.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtext(?))", orderNumberLockNamespace+prefix).
		Error
}

func (r *GormDeliveryRepository) GetOrderNumbersWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	var ids []string
	if err := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("prefix = ?", prefix).
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
