package commands

import (
	"context"

	"flowerdelivery/internal/core/domain/model/delivery"
	"flowerdelivery/internal/core/domain/model/kernel"
	"flowerdelivery/internal/core/domain/services"
	"flowerdelivery/internal/pkg/clock"
)

// CreateDeliveryCommandHandler assigns the next order number of the day,
// stores the delivery and feeds the business details into the address book,
// all in one transaction.
type CreateDeliveryCommandHandler struct {
	uowFactory UoWFactory
	clock      clock.Clock
	numbers    services.OrderNumberGenerator
	upserter   services.ContactUpserter
}

func NewCreateDeliveryCommandHandler(uowFactory UoWFactory, clk clock.Clock) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
		numbers:    services.NewOrderNumberGenerator(),
		upserter:   services.NewContactUpserter(),
	}
}

// Handle returns the stored delivery.
//
// The day's order numbers are read under an advisory lock held until the
// transaction ends, so concurrent creations get consecutive numbers. A
// collision that still reaches the database fails with errs.ErrObjectConflict.
func (h CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	prefix := kernel.DatePrefix(now)

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	if err := deliveryRepo.LockOrderNumbers(ctx, prefix); err != nil {
		return nil, err
	}

	issued, err := deliveryRepo.GetOrderNumbersWithPrefix(ctx, prefix)
	if err != nil {
		return nil, err
	}

	number, err := h.numbers.Next(prefix, issued)
	if err != nil {
		return nil, err
	}

	draft := cmd.Draft()
	d, err := delivery.NewDelivery(number, draft.Settlement, draft.Details(), now)
	if err != nil {
		return nil, err
	}

	if err = deliveryRepo.Add(ctx, d); err != nil {
		return nil, err
	}

	if err = syncContact(ctx, uow.ContactRepository(), h.upserter, draft.ContactInfo()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
