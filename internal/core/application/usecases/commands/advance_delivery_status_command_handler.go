package commands

import (
	"context"

	"flowerdelivery/internal/core/domain/model/delivery"
)

// AdvanceDeliveryStatusCommandHandler applies the status transition table.
//
// A settled delivery is returned unchanged and nothing is written. A
// requested status other than the next one fails with an error wrapping
// delivery.ErrStatusTransitionNotAllowed.
type AdvanceDeliveryStatusCommandHandler struct {
	uowFactory UoWFactory
}

func NewAdvanceDeliveryStatusCommandHandler(uowFactory UoWFactory) AdvanceDeliveryStatusCommandHandler {
	return AdvanceDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h AdvanceDeliveryStatusCommandHandler) Handle(
	ctx context.Context,
	cmd AdvanceDeliveryStatusCommand,
) (*delivery.Delivery, error) {
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

	repo := uow.DeliveryRepository()
	d, err := repo.Get(ctx, cmd.Number())
	if err != nil {
		return nil, err
	}

	before := d.Status()
	if requested, ok := cmd.Requested(); ok {
		if err = d.AdvanceTo(requested); err != nil {
			return nil, err
		}
	} else {
		d.Advance()
	}

	if d.Status() == before {
		return d, nil
	}

	if err = repo.Update(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
