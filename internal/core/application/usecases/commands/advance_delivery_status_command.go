package commands

import (
	"errors"

	"flowerdelivery/internal/core/domain/model/delivery"
	"flowerdelivery/internal/core/domain/model/kernel"
	"flowerdelivery/internal/pkg/guard"
)

var ErrAdvanceDeliveryStatusCommandIsNotConstructed = errors.New(
	"AdvanceDeliveryStatusCommand must be created via NewAdvanceDeliveryStatusCommand constructor",
)

// AdvanceDeliveryStatusCommand moves a delivery one step along its lifecycle.
//
// Example:
//
//	// Advance whatever the next status is.
//	cmd, _ := NewAdvanceDeliveryStatusCommand(number, nil)
//
//	// Advance only if the next status is PICKED_UP.
//	pickedUp := delivery.StatusPickedUp
//	cmd, _ = NewAdvanceDeliveryStatusCommand(number, &pickedUp)
type AdvanceDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	number    kernel.OrderNumber
	requested *delivery.Status

	guard guard.ConstructorGuard
}

// NewAdvanceDeliveryStatusCommand accepts an optional requested status.
func NewAdvanceDeliveryStatusCommand(
	number kernel.OrderNumber,
	requested *delivery.Status,
) (AdvanceDeliveryStatusCommand, error) {
	cmd := AdvanceDeliveryStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setNumber(number),
		cmd.setRequested(requested),
	); err != nil {
		return AdvanceDeliveryStatusCommand{}, err
	}

	return cmd, nil
}

func (c AdvanceDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceDeliveryStatusCommandIsNotConstructed)
}

func (c AdvanceDeliveryStatusCommand) Number() kernel.OrderNumber {
	return c.number
}

// Requested returns the status the caller expects to reach, if any.
func (c AdvanceDeliveryStatusCommand) Requested() (delivery.Status, bool) {
	if c.requested == nil {
		return delivery.StatusUnknown, false
	}
	return *c.requested, true
}

func (c *AdvanceDeliveryStatusCommand) setNumber(number kernel.OrderNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}

	c.number = number
	return nil
}

func (c *AdvanceDeliveryStatusCommand) setRequested(requested *delivery.Status) error {
	if requested == nil {
		return nil
	}
	if err := requested.Validate(); err != nil {
		return err
	}

	status := *requested
	c.requested = &status
	return nil
}
