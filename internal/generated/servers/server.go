package servers

import (
	_ "embed"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Get recent status changes in the caller's tenant
	// (GET /notifications)
	GetNotifications(ctx echo.Context, params GetNotificationsParams) error
	// Acknowledge notifications
	// (POST /notifications/read)
	MarkNotificationsRead(ctx echo.Context) error
	// Register a received product
	// (POST /products)
	CreateProduct(ctx echo.Context) error
	// (GET /products/{id})
	GetProduct(ctx echo.Context, id ProductId) error
	// (GET /products/{id}/history)
	GetProductHistory(ctx echo.Context, id ProductId, params GetProductHistoryParams) error
	// (GET /products/{id}/next-states)
	GetProductNextStates(ctx echo.Context, id ProductId) error
	// Move a product to another status
	// (PATCH /products/{id}/status)
	ChangeProductStatus(ctx echo.Context, id ProductId) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetNotifications converts echo context to params.
func (w *ServerInterfaceWrapper) GetNotifications(ctx echo.Context) error {
	var err error

	ctx.Set(UserHeaderScopes, []string{})

	var params GetNotificationsParams
	err = runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	return w.Handler.GetNotifications(ctx, params)
}

// MarkNotificationsRead converts echo context to params.
func (w *ServerInterfaceWrapper) MarkNotificationsRead(ctx echo.Context) error {
	ctx.Set(UserHeaderScopes, []string{})

	return w.Handler.MarkNotificationsRead(ctx)
}

// CreateProduct converts echo context to params.
func (w *ServerInterfaceWrapper) CreateProduct(ctx echo.Context) error {
	ctx.Set(UserHeaderScopes, []string{})

	return w.Handler.CreateProduct(ctx)
}

// GetProduct converts echo context to params.
func (w *ServerInterfaceWrapper) GetProduct(ctx echo.Context) error {
	id, err := bindProductID(ctx)
	if err != nil {
		return err
	}

	ctx.Set(UserHeaderScopes, []string{})

	return w.Handler.GetProduct(ctx, id)
}

// GetProductHistory converts echo context to params.
func (w *ServerInterfaceWrapper) GetProductHistory(ctx echo.Context) error {
	id, err := bindProductID(ctx)
	if err != nil {
		return err
	}

	ctx.Set(UserHeaderScopes, []string{})

	var params GetProductHistoryParams
	err = runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	return w.Handler.GetProductHistory(ctx, id, params)
}

// GetProductNextStates converts echo context to params.
func (w *ServerInterfaceWrapper) GetProductNextStates(ctx echo.Context) error {
	id, err := bindProductID(ctx)
	if err != nil {
		return err
	}

	ctx.Set(UserHeaderScopes, []string{})

	return w.Handler.GetProductNextStates(ctx, id)
}

// ChangeProductStatus converts echo context to params.
func (w *ServerInterfaceWrapper) ChangeProductStatus(ctx echo.Context) error {
	id, err := bindProductID(ctx)
	if err != nil {
		return err
	}

	ctx.Set(UserHeaderScopes, []string{})

	return w.Handler.ChangeProductStatus(ctx, id)
}

func bindProductID(ctx echo.Context) (ProductId, error) {
	var id ProductId

	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return id, nil
}

// EchoRouter is implemented by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the
// paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/notifications", wrapper.GetNotifications)
	router.POST(baseURL+"/notifications/read", wrapper.MarkNotificationsRead)
	router.POST(baseURL+"/products", wrapper.CreateProduct)
	router.GET(baseURL+"/products/:id", wrapper.GetProduct)
	router.GET(baseURL+"/products/:id/history", wrapper.GetProductHistory)
	router.GET(baseURL+"/products/:id/next-states", wrapper.GetProductNextStates)
	router.PATCH(baseURL+"/products/:id/status", wrapper.ChangeProductStatus)
}

//go:embed openapi.yaml
var swaggerSpec []byte

// GetSwagger returns the OpenAPI document the routes above were written against.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	swagger, err := loader.LoadFromData(swaggerSpec)
	if err != nil {
		return nil, fmt.Errorf("error loading Swagger: %w", err)
	}
	return swagger, nil
}
