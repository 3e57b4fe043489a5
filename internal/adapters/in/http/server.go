// Package http exposes the delivery and contact use cases over REST.
package http

import (
	"context"
	"log/slog"

	"flowerdelivery/internal/core/application/usecases/commands"
	"flowerdelivery/internal/core/application/usecases/queries"
	"flowerdelivery/internal/core/domain/model/contact"
	"flowerdelivery/internal/core/domain/model/delivery"
	"flowerdelivery/internal/generated/servers"
)

var _ servers.ServerInterface = &Server{}

type CreateDeliveryHandler interface {
	Handle(ctx context.Context, cmd commands.CreateDeliveryCommand) (*delivery.Delivery, error)
}

type EditDeliveryHandler interface {
	Handle(ctx context.Context, cmd commands.EditDeliveryCommand) (*delivery.Delivery, error)
}

type AdvanceDeliveryStatusHandler interface {
	Handle(ctx context.Context, cmd commands.AdvanceDeliveryStatusCommand) (*delivery.Delivery, error)
}

type SaveContactHandler interface {
	Handle(ctx context.Context, cmd commands.SaveContactCommand) (*contact.Contact, error)
}

type DeleteContactHandler interface {
	Handle(ctx context.Context, cmd commands.DeleteContactCommand) error
}

type ListDeliveriesHandler interface {
	Handle(ctx context.Context, query queries.ListDeliveriesQuery) ([]queries.DeliveryView, error)
}

type GetDeliveryHandler interface {
	Handle(ctx context.Context, query queries.GetDeliveryQuery) (queries.DeliveryView, error)
}

type TodaySummaryHandler interface {
	Handle(ctx context.Context, query queries.TodaySummaryQuery) (queries.TodaySummaryQueryResponse, error)
}

type ListContactsHandler interface {
	Handle(ctx context.Context, query queries.ListContactsQuery) ([]queries.ContactView, error)
}

// ReportRenderer turns one day of deliveries into a spreadsheet.
type ReportRenderer interface {
	Render(date string, views []queries.DeliveryView) ([]byte, error)
}

// QREncoder turns a map link into a PNG image.
type QREncoder interface {
	PNG(link string) ([]byte, error)
}

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateDelivery        CreateDeliveryHandler
	EditDelivery          EditDeliveryHandler
	AdvanceDeliveryStatus AdvanceDeliveryStatusHandler
	SaveContact           SaveContactHandler
	DeleteContact         DeleteContactHandler

	ListDeliveries ListDeliveriesHandler
	GetDelivery    GetDeliveryHandler
	TodaySummary   TodaySummaryHandler
	ListContacts   ListContactsHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	report   ReportRenderer
	qr       QREncoder
	today    func() string
	logger   *slog.Logger
}

// NewServer wires the use cases with the report and QR renderers. today
// returns the YYMMDD prefix used when a report has no explicit date.
func NewServer(handlers Handlers, report ReportRenderer, qr QREncoder, today func() string, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		report:   report,
		qr:       qr,
		today:    today,
		logger:   logger,
	}
}
