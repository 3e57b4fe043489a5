package http

import (
	"net/http"

	"flowerdelivery/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

// RequestValidator checks requests against the OpenAPI document before they
// reach the handlers. Routes the document does not describe pass through.
func RequestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	// Match paths regardless of the host the server runs on.
	routed := *doc
	routed.Servers = nil

	router, err := legacy.NewRouter(&routed)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(ctx)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return ctx.JSON(http.StatusBadRequest, servers.Error{
					Code:    http.StatusBadRequest,
					Message: err.Error(),
				})
			}
			return next(ctx)
		}
	}, nil
}
