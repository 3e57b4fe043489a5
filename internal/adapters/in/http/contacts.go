package http

import (
	"net/http"

	"flowerdelivery/internal/core/application/usecases/commands"
	"flowerdelivery/internal/core/application/usecases/queries"
	"flowerdelivery/internal/core/domain/model/kernel"
	"flowerdelivery/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ListContacts handles GET /api/contacts.
func (s *Server) ListContacts(ctx echo.Context, params servers.ListContactsParams) error {
	contacts, err := s.handlers.ListContacts.Handle(ctx.Request().Context(), queries.NewListContactsQuery(deref(params.Q)))
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve contacts")
	}

	response := make([]servers.Contact, 0, len(contacts))
	for _, c := range contacts {
		item, mapErr := toContact(c)
		if mapErr != nil {
			return s.fail(ctx, mapErr, "Failed to retrieve contacts")
		}
		response = append(response, item)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateContact handles POST /api/contacts.
func (s *Server) CreateContact(ctx echo.Context) error {
	var body servers.CreateContactJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateContactCommand(body.BusinessName, deref(body.Phones), deref(body.Address), deref(body.Note))
	if err != nil {
		return s.fail(ctx, err, "Invalid contact data")
	}
	return s.saveContact(ctx, cmd, http.StatusCreated)
}

// UpdateContact handles PUT /api/contacts/{id}.
func (s *Server) UpdateContact(ctx echo.Context, id servers.ContactID) error {
	contactID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return s.fail(ctx, err, "Invalid contact id")
	}

	var body servers.UpdateContactJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateContactCommand(
		contactID, body.BusinessName, deref(body.Phones), deref(body.Address), deref(body.Note),
	)
	if err != nil {
		return s.fail(ctx, err, "Invalid contact data")
	}
	return s.saveContact(ctx, cmd, http.StatusOK)
}

// DeleteContact handles DELETE /api/contacts/{id}.
func (s *Server) DeleteContact(ctx echo.Context, id servers.ContactID) error {
	contactID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return s.fail(ctx, err, "Invalid contact id")
	}
	cmd, err := commands.NewDeleteContactCommand(contactID)
	if err != nil {
		return s.fail(ctx, err, "Invalid contact id")
	}

	if err = s.handlers.DeleteContact.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to delete contact")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) saveContact(ctx echo.Context, cmd commands.SaveContactCommand, code int) error {
	saved, err := s.handlers.SaveContact.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to save contact")
	}

	response, err := toContact(queries.NewContactView(saved))
	if err != nil {
		return s.fail(ctx, err, "Failed to save contact")
	}
	return ctx.JSON(code, response)
}
