package http

import (
	"fmt"
	"net/http"

	"flowerdelivery/internal/core/application/usecases/commands"
	"flowerdelivery/internal/core/application/usecases/queries"
	"flowerdelivery/internal/core/domain/model/delivery"
	"flowerdelivery/internal/core/domain/model/kernel"
	"flowerdelivery/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ListDeliveries handles GET /api/deliveries.
func (s *Server) ListDeliveries(ctx echo.Context, params servers.ListDeliveriesParams) error {
	var status *delivery.Status
	if params.Status != nil {
		parsed, err := delivery.ParseStatus(string(*params.Status))
		if err != nil {
			return s.fail(ctx, err, "Invalid status filter")
		}
		status = &parsed
	}

	view := delivery.ViewAll
	if params.View != nil {
		parsed, ok := delivery.ParseView(string(*params.View))
		if !ok {
			return badRequest(ctx, "Invalid view filter")
		}
		view = parsed
	}

	query, err := queries.NewListDeliveriesQuery(status, view, deref(params.Date))
	if err != nil {
		return s.fail(ctx, err, "Invalid delivery filter")
	}

	views, err := s.handlers.ListDeliveries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve deliveries")
	}
	return ctx.JSON(http.StatusOK, toDeliveries(views))
}

// CreateDelivery handles POST /api/deliveries. The order number is assigned by the server.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	var body servers.CreateDeliveryJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	updates, err := formUpdates(body)
	if err != nil {
		return s.fail(ctx, err, "Invalid delivery data")
	}
	cmd, err := commands.NewCreateDeliveryCommand(updates...)
	if err != nil {
		return s.fail(ctx, err, "Invalid delivery data")
	}

	created, err := s.handlers.CreateDelivery.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to create delivery")
	}
	return ctx.JSON(http.StatusCreated, toDelivery(queries.NewDeliveryView(created)))
}

// EditDelivery handles PUT /api/deliveries/{id}.
func (s *Server) EditDelivery(ctx echo.Context, id servers.OrderNumber) error {
	number, err := kernel.ParseOrderNumber(id)
	if err != nil {
		return s.fail(ctx, err, "Invalid order number")
	}

	var body servers.EditDeliveryJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	updates, err := formUpdates(servers.NewDelivery(body))
	if err != nil {
		return s.fail(ctx, err, "Invalid delivery data")
	}
	cmd, err := commands.NewEditDeliveryCommand(number, updates...)
	if err != nil {
		return s.fail(ctx, err, "Invalid delivery data")
	}

	edited, err := s.handlers.EditDelivery.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to edit delivery")
	}
	return ctx.JSON(http.StatusOK, toDelivery(queries.NewDeliveryView(edited)))
}

// AdvanceDeliveryStatus handles POST /api/deliveries/{id}/status. Without a
// body the delivery moves to its next status. With a status the request only
// succeeds when that status is the next one.
func (s *Server) AdvanceDeliveryStatus(ctx echo.Context, id servers.OrderNumber) error {
	number, err := kernel.ParseOrderNumber(id)
	if err != nil {
		return s.fail(ctx, err, "Invalid order number")
	}

	var body servers.AdvanceDeliveryStatusJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var requested *delivery.Status
	if body.Status != nil {
		parsed, parseErr := delivery.ParseStatus(string(*body.Status))
		if parseErr != nil {
			return s.fail(ctx, parseErr, "Invalid status")
		}
		requested = &parsed
	}

	cmd, err := commands.NewAdvanceDeliveryStatusCommand(number, requested)
	if err != nil {
		return s.fail(ctx, err, "Invalid status change")
	}

	advanced, err := s.handlers.AdvanceDeliveryStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to change delivery status")
	}
	return ctx.JSON(http.StatusOK, toDelivery(queries.NewDeliveryView(advanced)))
}

// GetDeliveryMapQR handles GET /api/deliveries/{id}/map-qr.
func (s *Server) GetDeliveryMapQR(ctx echo.Context, id servers.OrderNumber) error {
	number, err := kernel.ParseOrderNumber(id)
	if err != nil {
		return s.fail(ctx, err, "Invalid order number")
	}
	query, err := queries.NewGetDeliveryQuery(number)
	if err != nil {
		return s.fail(ctx, err, "Invalid order number")
	}

	view, err := s.handlers.GetDelivery.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve delivery")
	}
	if view.RecipientAddress == "" {
		return badRequest(ctx, "Delivery has no recipient address")
	}

	png, err := s.qr.PNG(view.MapLink)
	if err != nil {
		return s.fail(ctx, err, "Failed to render QR code")
	}
	return ctx.Blob(http.StatusOK, "image/png", png)
}

// GetTodaySummary handles GET /api/deliveries/summary/today.
func (s *Server) GetTodaySummary(ctx echo.Context) error {
	summary, err := s.handlers.TodaySummary.Handle(ctx.Request().Context(), queries.NewTodaySummaryQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to summarize today's deliveries")
	}
	return ctx.JSON(http.StatusOK, servers.TodaySummary{
		Date:     summary.Date,
		Count:    summary.Count,
		FeeTotal: summary.FeeTotal,
	})
}

// GetDeliveryReport handles GET /api/deliveries/report. The date defaults to today.
func (s *Server) GetDeliveryReport(ctx echo.Context, params servers.GetDeliveryReportParams) error {
	date := deref(params.Date)
	if date == "" {
		date = s.today()
	}

	query, err := queries.NewListDeliveriesQuery(nil, delivery.ViewAll, date)
	if err != nil {
		return s.fail(ctx, err, "Invalid report date")
	}
	views, err := s.handlers.ListDeliveries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve deliveries")
	}

	data, err := s.report.Render(date, views)
	if err != nil {
		return s.fail(ctx, err, "Failed to render report")
	}
	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "deliveries-"+date+".xlsx"))
	return ctx.Blob(http.StatusOK, xlsxContentType, data)
}
