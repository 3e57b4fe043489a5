package commands

import (
	"context"

	"flowerdelivery/internal/core/domain/model/contact"
	"flowerdelivery/internal/core/domain/model/kernel"
)

// SaveContactCommandHandler stores the contact form. A business name taken
// by another entry fails with errs.ErrObjectConflict.
type SaveContactCommandHandler struct {
	uowFactory ContactUoWFactory
	newID      func() kernel.UUID
}

func NewSaveContactCommandHandler(uowFactory ContactUoWFactory) SaveContactCommandHandler {
	return SaveContactCommandHandler{
		uowFactory: uowFactory,
		newID:      kernel.NewUUID,
	}
}

func (h SaveContactCommandHandler) Handle(ctx context.Context, cmd SaveContactCommand) (*contact.Contact, error) {
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

	repo := uow.ContactRepository()

	var c *contact.Contact
	if id, ok := cmd.ID(); ok {
		existing, err := repo.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if err = existing.Update(cmd.BusinessName(), cmd.Phones(), cmd.Address(), cmd.Note()); err != nil {
			return nil, err
		}
		if err = repo.Update(ctx, existing); err != nil {
			return nil, err
		}
		c = existing
	} else {
		created, err := contact.NewContact(h.newID(), cmd.BusinessName(), cmd.Phones(), cmd.Address(), cmd.Note())
		if err != nil {
			return nil, err
		}
		if err = repo.Add(ctx, created); err != nil {
			return nil, err
		}
		c = created
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}
