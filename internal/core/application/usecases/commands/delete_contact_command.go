package commands

import (
	"errors"

	"flowerdelivery/internal/core/domain/model/kernel"
	"flowerdelivery/internal/pkg/guard"
)

var ErrDeleteContactCommandIsNotConstructed = errors.New(
	"DeleteContactCommand must be created via NewDeleteContactCommand constructor",
)

// DeleteContactCommand removes an address book entry. Deliveries keep
// their business name; only the autocomplete source goes away.
type DeleteContactCommand struct { //nolint:recvcheck //using for validation
	id kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteContactCommand(id kernel.UUID) (DeleteContactCommand, error) {
	cmd := DeleteContactCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setID(id); err != nil {
		return DeleteContactCommand{}, err
	}

	return cmd, nil
}

func (c DeleteContactCommand) Validate() error {
	return c.guard.Validate(ErrDeleteContactCommandIsNotConstructed)
}

func (c DeleteContactCommand) ID() kernel.UUID {
	return c.id
}

func (c *DeleteContactCommand) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}
