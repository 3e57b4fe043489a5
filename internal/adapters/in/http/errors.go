package http

import (
	"errors"
	"net/http"

	"flowerdelivery/internal/core/domain/model/delivery"
	"flowerdelivery/internal/generated/servers"
	"flowerdelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectConflict),
		errors.Is(err, delivery.ErrStatusTransitionNotAllowed):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as a JSON Error body. Internal errors are logged and
// their details hidden from the client.
func (s *Server) fail(ctx echo.Context, err error, message string) error {
	code := statusOf(err)
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), message,
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		return ctx.JSON(code, servers.Error{Code: code, Message: message})
	}
	return ctx.JSON(code, servers.Error{Code: code, Message: message + ": " + err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{Code: http.StatusBadRequest, Message: message})
}

// HTTPErrorHandler renders echo errors, such as unknown routes and
// parameter binding failures, in the same JSON shape as the handlers.
func HTTPErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(code)
		}
	}

	if ctx.Request().Method == http.MethodHead {
		_ = ctx.NoContent(code)
		return
	}
	_ = ctx.JSON(code, servers.Error{Code: code, Message: message})
}
