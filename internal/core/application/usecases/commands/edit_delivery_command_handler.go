package commands

import (
	"context"
	"errors"

	"flowerdelivery/internal/core/domain/model/delivery"
	"flowerdelivery/internal/core/domain/model/deliveryform"
	"flowerdelivery/internal/core/domain/services"
	"flowerdelivery/internal/pkg/errs"
)

// ErrSettlementIsImmutable is the cause reported when an edit tries to change the settlement method.
var ErrSettlementIsImmutable = errors.New("settlement method is fixed at creation")

// EditDeliveryCommandHandler saves an edited delivery and, like creation,
// feeds the business details into the address book.
type EditDeliveryCommandHandler struct {
	uowFactory UoWFactory
	upserter   services.ContactUpserter
}

func NewEditDeliveryCommandHandler(uowFactory UoWFactory) EditDeliveryCommandHandler {
	return EditDeliveryCommandHandler{
		uowFactory: uowFactory,
		upserter:   services.NewContactUpserter(),
	}
}

// Handle returns the edited delivery. Status is not changed by an edit.
func (h EditDeliveryCommandHandler) Handle(ctx context.Context, cmd EditDeliveryCommand) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	d, err := deliveryRepo.Get(ctx, cmd.Number())
	if err != nil {
		return nil, err
	}

	draft := deliveryform.DraftOf(d).Apply(cmd.Updates()...)
	if draft.Settlement != d.Settlement() {
		return nil, errs.NewValueIsInvalidErrorWithCause("settlement", ErrSettlementIsImmutable)
	}
	if err = validateDraft(draft); err != nil {
		return nil, err
	}

	if err = d.Edit(draft.Details()); err != nil {
		return nil, err
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
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
