package contactrepo

import (
	"context"
	"errors"

	"flowerdelivery/internal/core/domain/model/contact"
	"flowerdelivery/internal/core/domain/model/kernel"
	"flowerdelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormContactRepository implements ports.ContactRepository using GORM.
type GormContactRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

func NewGormContactRepository(db *gorm.DB, tracker aggregateTracker) *GormContactRepository {
	return &GormContactRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a contact. A taken business name yields errs.ObjectConflictError.
func (r *GormContactRepository) Add(ctx context.Context, aggregate *contact.Contact) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translateWriteError(err, dto.BusinessName)
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

func (r *GormContactRepository) Update(ctx context.Context, aggregate *contact.Contact) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ContactDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return translateWriteError(result.Error, dto.BusinessName)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("contact", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Delete removes a contact. The tracker receives a nil *contact.Contact.
func (r *GormContactRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ContactDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("contact", id.String())
	}

	r.tracker.TrackAggregate(id.String(), (*contact.Contact)(nil))
	return nil
}

func (r *GormContactRepository) Get(ctx context.Context, id kernel.UUID) (*contact.Contact, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ContactDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("contact", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormContactRepository) FindByBusinessName(ctx context.Context, businessName string) (*contact.Contact, error) {
	var dtos []ContactDTO
	if err := r.db.WithContext(ctx).
		Where("business_name = ?", businessName).
		Limit(1).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	if len(dtos) == 0 {
		return nil, nil //nolint:nilnil // absence is a normal outcome of the lookup
	}
	return toDomain(dtos[0])
}

func translateWriteError(err error, businessName string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewObjectConflictErrorWithCause("contact", businessName, err)
	}
	return err
}
