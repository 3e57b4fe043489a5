// Package postgres implements the unit of work and the schema helpers on
// top of GORM. Repositories live in the deliveryrepo and contactrepo
// subpackages and are always obtained through a GormUnitOfWork.
//
// Usage:
//
//	factory := postgres.NewGormUnitOfWorkFactory(db, postgres.WithContactCache(cache, logger))
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.DeliveryRepository().Add(ctx, d); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Each UnitOfWork holds one transaction; goroutines must not share one.
package postgres

import (
	"context"
	"log/slog"

	"flowerdelivery/internal/adapters/out/postgres/contactrepo"
	"flowerdelivery/internal/adapters/out/postgres/deliveryrepo"
	"flowerdelivery/internal/core/domain/model/contact"
	"flowerdelivery/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        string
	Aggregate any
}

// Option configures the units of work created by a factory.
type Option func(*GormUnitOfWorkFactory)

// WithContactCache makes every commit that wrote a contact drop the cached
// contact list. Invalidation failures are logged and do not fail the commit.
func WithContactCache(cache ports.ContactCache, logger *slog.Logger) Option {
	return func(f *GormUnitOfWorkFactory) {
		f.contactCache = cache
		f.logger = logger.With("component", "unit_of_work")
	}
}

// GormUnitOfWorkFactory creates a fresh UnitOfWork per business operation.
type GormUnitOfWorkFactory struct {
	db           *gorm.DB
	contactCache ports.ContactCache
	logger       *slog.Logger
}

func NewGormUnitOfWorkFactory(db *gorm.DB, opts ...Option) *GormUnitOfWorkFactory {
	f := &GormUnitOfWorkFactory{db: db, logger: slog.Default()}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		contactCache:      f.contactCache,
		logger:            f.logger,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one GORM transaction and records every
// aggregate its repositories write, so that work depending on a successful
// commit (cache invalidation) runs only after Commit.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	contactCache      ports.ContactCache
	logger            *slog.Logger
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling it twice is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the transaction and then runs the post-commit work for
// the tracked aggregates.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.trackedAggregates = uow.trackedAggregates[:0]
		return err
	}

	uow.afterCommit(ctx)
	return nil
}

// Rollback discards the transaction and the tracked aggregates.
// Returns gorm.ErrInvalidTransaction when there is no active transaction,
// which is the normal outcome of a deferred Rollback after Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// DeliveryRepository returns a repository bound to the active transaction,
// or to the plain connection when none is active.
func (uow *GormUnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	return deliveryrepo.NewGormDeliveryRepository(uow.conn(), uow)
}

// ContactRepository returns a repository bound to the active transaction,
// or to the plain connection when none is active.
func (uow *GormUnitOfWork) ContactRepository() ports.ContactRepository {
	return contactrepo.NewGormContactRepository(uow.conn(), uow)
}

// TrackAggregate is called by the repositories after every successful write.
func (uow *GormUnitOfWork) TrackAggregate(id string, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})

	// Without a transaction the write is already durable.
	if uow.tx == nil {
		uow.afterCommit(context.Background())
	}
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) afterCommit(ctx context.Context) {
	tracked := uow.trackedAggregates
	uow.trackedAggregates = make([]trackedAggregate, 0)

	if uow.contactCache == nil || !touchesContacts(tracked) {
		return
	}
	if err := uow.contactCache.Invalidate(ctx); err != nil {
		uow.logger.WarnContext(ctx, "failed to invalidate contact cache", "error", err)
	}
}

func touchesContacts(tracked []trackedAggregate) bool {
	for _, t := range tracked {
		if _, ok := t.Aggregate.(*contact.Contact); ok {
			return true
		}
	}
	return false
}
