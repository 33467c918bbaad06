package http

import (
	"errors"
	"net/http"
	"strings"

	"warehouse/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

// NewRequestValidator checks requests under basePath against the OpenAPI
// document before they reach a handler. Paths the document does not describe
// pass through untouched. Authentication is done by ActorMiddleware.
func NewRequestValidator(swagger *openapi3.T, basePath string) (echo.MiddlewareFunc, error) {
	// Routes are matched on the path with basePath stripped.
	swagger.Servers = nil

	router, err := legacy.NewRouter(swagger)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			routed := req.Clone(req.Context())
			routed.URL.Path = strings.TrimPrefix(req.URL.Path, basePath)

			route, pathParams, findErr := router.FindRoute(routed)
			if findErr != nil {
				return next(c)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    routed,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return c.JSON(http.StatusBadRequest, servers.Error{Error: validationMessage(err)})
			}

			// The validator consumed the body and left a rewound copy on routed.
			req.Body = routed.Body
			return next(c)
		}
	}, nil
}

func validationMessage(err error) string {
	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) {
		switch {
		case reqErr.Parameter != nil:
			return "invalid parameter " + reqErr.Parameter.Name + ": " + reqErr.Err.Error()
		case reqErr.RequestBody != nil:
			return "invalid request body: " + reqErr.Err.Error()
		}
	}
	return err.Error()
}
