package commands

import (
	"errors"

	"flowerdelivery/internal/core/domain/model/deliveryform"
	"flowerdelivery/internal/core/domain/model/kernel"
	"flowerdelivery/internal/pkg/guard"
)

var ErrEditDeliveryCommandIsNotConstructed = errors.New(
	"EditDeliveryCommand must be created via NewEditDeliveryCommand constructor",
)

// EditDeliveryCommand changes the descriptive fields of a delivery.
// The updates are applied on top of the stored values.
type EditDeliveryCommand struct { //nolint:recvcheck //using for validation
	number  kernel.OrderNumber
	updates []deliveryform.Update

	guard guard.ConstructorGuard
}

func NewEditDeliveryCommand(number kernel.OrderNumber, updates ...deliveryform.Update) (EditDeliveryCommand, error) {
	cmd := EditDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setNumber(number); err != nil {
		return EditDeliveryCommand{}, err
	}
	cmd.updates = append([]deliveryform.Update(nil), updates...)

	return cmd, nil
}

func (c EditDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrEditDeliveryCommandIsNotConstructed)
}

func (c EditDeliveryCommand) Number() kernel.OrderNumber {
	return c.number
}

func (c EditDeliveryCommand) Updates() []deliveryform.Update {
	return append([]deliveryform.Update(nil), c.updates...)
}

func (c *EditDeliveryCommand) setNumber(number kernel.OrderNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}

	c.number = number
	return nil
}
