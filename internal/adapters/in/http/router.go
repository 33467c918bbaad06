package http

import (
	"log/slog"
	"net/http"

	"warehouse/internal/adapters/in/http/docs"
	"warehouse/internal/core/ports"
	"warehouse/internal/generated/servers"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// APIBasePath prefixes every route of the OpenAPI document.
const APIBasePath = "/api/v1"

// NewRouter assembles the echo instance: /health and /swagger/* are public,
// everything under APIBasePath requires an actor and a request that matches
// the OpenAPI document.
func NewRouter(server *Server, users ports.UserDirectory, logger *slog.Logger) (*echo.Echo, error) {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}

	if err = docs.Register(swagger); err != nil {
		return nil, err
	}

	validator, err := NewRequestValidator(swagger, APIBasePath)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group(APIBasePath, ActorMiddleware(users), validator)
	servers.RegisterHandlers(api, server)

	return e, nil
}
