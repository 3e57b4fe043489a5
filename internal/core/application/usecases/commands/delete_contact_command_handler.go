package commands

import (
	"context"
)

type DeleteContactCommandHandler struct {
	uowFactory ContactUoWFactory
}

func NewDeleteContactCommandHandler(uowFactory ContactUoWFactory) DeleteContactCommandHandler {
	return DeleteContactCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the contact. A missing contact yields errs.ObjectNotFoundError.
func (h DeleteContactCommandHandler) Handle(ctx context.Context, cmd DeleteContactCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ContactRepository().Delete(ctx, cmd.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
