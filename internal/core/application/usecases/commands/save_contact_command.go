package commands

import (
	"errors"
	"strings"

	"flowerdelivery/internal/core/domain/model/kernel"
	"flowerdelivery/internal/pkg/errs"
	"flowerdelivery/internal/pkg/guard"
)

var ErrSaveContactCommandIsNotConstructed = errors.New(
	"SaveContactCommand must be created via NewCreateContactCommand or NewUpdateContactCommand constructor",
)

// SaveContactCommand creates or replaces an address book entry from the
// contact form. Phones are normalized by the domain: blanks and duplicates
// dropped, at most three kept.
type SaveContactCommand struct { //nolint:recvcheck //using for validation
	id           *kernel.UUID
	businessName string
	phones       []string
	address      string
	note         string

	guard guard.ConstructorGuard
}

// NewCreateContactCommand prepares a new entry. The handler assigns the id.
func NewCreateContactCommand(businessName string, phones []string, address, note string) (SaveContactCommand, error) {
	return newSaveContactCommand(nil, businessName, phones, address, note)
}

// NewUpdateContactCommand replaces every field of an existing entry.
func NewUpdateContactCommand(
	id kernel.UUID,
	businessName string,
	phones []string,
	address, note string,
) (SaveContactCommand, error) {
	if err := id.Validate(); err != nil {
		return SaveContactCommand{}, err
	}
	return newSaveContactCommand(&id, businessName, phones, address, note)
}

func newSaveContactCommand(
	id *kernel.UUID,
	businessName string,
	phones []string,
	address, note string,
) (SaveContactCommand, error) {
	cmd := SaveContactCommand{
		id:      id,
		phones:  append([]string(nil), phones...),
		address: address,
		note:    note,
		guard:   guard.NewConstructorGuard(),
	}

	if err := cmd.setBusinessName(businessName); err != nil {
		return SaveContactCommand{}, err
	}

	return cmd, nil
}

func (c SaveContactCommand) Validate() error {
	return c.guard.Validate(ErrSaveContactCommandIsNotConstructed)
}

// ID returns the entry to update, or false for a new entry.
func (c SaveContactCommand) ID() (kernel.UUID, bool) {
	if c.id == nil {
		return kernel.UUID{}, false
	}
	return *c.id, true
}

func (c SaveContactCommand) BusinessName() string {
	return c.businessName
}

func (c SaveContactCommand) Phones() []string {
	return append([]string(nil), c.phones...)
}

func (c SaveContactCommand) Address() string {
	return c.address
}

func (c SaveContactCommand) Note() string {
	return c.note
}

func (c *SaveContactCommand) setBusinessName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("businessName")
	}

	c.businessName = name
	return nil
}
