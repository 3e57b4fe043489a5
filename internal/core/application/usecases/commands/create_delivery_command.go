package commands

import (
	"errors"

	"flowerdelivery/internal/core/domain/model/delivery"
	"flowerdelivery/internal/core/domain/model/deliveryform"
	"flowerdelivery/internal/pkg/errs"
	"flowerdelivery/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryCommand registers a new delivery. The order number is
// assigned by the handler.
//
// Example:
//
//	cmd, err := NewCreateDeliveryCommand(
//	    deliveryform.SetBusinessName{Value: "새 가든브리즈"},
//	    deliveryform.SetAddress{Value: "수원시 영통구 대학로101"},
//	    deliveryform.SetFee{Value: 15000},
//	    deliveryform.SetSettlement{Value: delivery.SettlementCollect},
//	)
//	if err != nil {
//	    return err
//	}
//	d, err := handler.Handle(ctx, cmd)
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	draft deliveryform.Draft

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand applies the updates to an empty form and checks
// the numeric fields.
func NewCreateDeliveryCommand(updates ...deliveryform.Update) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setDraft(deliveryform.NewDraft().Apply(updates...)); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return cmd, nil
}

func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

func (c CreateDeliveryCommand) Draft() deliveryform.Draft {
	return c.draft
}

func (c *CreateDeliveryCommand) setDraft(draft deliveryform.Draft) error {
	if err := validateDraft(draft); err != nil {
		return err
	}

	c.draft = draft
	return nil
}

func validateDraft(draft deliveryform.Draft) error {
	var err error
	if draft.BoxCount < 1 || draft.BoxCount > delivery.MaxBoxCount {
		err = errors.Join(err, errs.NewValueIsOutOfRangeError("boxCount", draft.BoxCount, 1, delivery.MaxBoxCount))
	}
	if draft.Fee < 0 || draft.Fee > delivery.MaxFee {
		err = errors.Join(err, errs.NewValueIsOutOfRangeError("fee", draft.Fee, 0, delivery.MaxFee))
	}
	return errors.Join(err, draft.Settlement.Validate())
}
