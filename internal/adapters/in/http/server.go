package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/lifecycle"
	"warehouse/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createProductHandler         commands.CreateProductCommandHandler
	changeProductStatusHandler   commands.ChangeProductStatusCommandHandler
	markNotificationsReadHandler commands.MarkNotificationsReadCommandHandler

	// Query handlers
	getProductHandler        queries.GetProductQueryHandler
	getNextStatesHandler     queries.GetNextStatesQueryHandler
	getProductHistoryHandler queries.GetProductHistoryQueryHandler
	getNotificationsHandler  queries.GetNotificationsQueryHandler

	logger *slog.Logger
}

// Handlers groups what NewServer needs; the composition root fills it.
type Handlers struct {
	CreateProduct         commands.CreateProductCommandHandler
	ChangeProductStatus   commands.ChangeProductStatusCommandHandler
	MarkNotificationsRead commands.MarkNotificationsReadCommandHandler
	GetProduct            queries.GetProductQueryHandler
	GetNextStates         queries.GetNextStatesQueryHandler
	GetProductHistory     queries.GetProductHistoryQueryHandler
	GetNotifications      queries.GetNotificationsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers, logger *slog.Logger) *Server {
	return &Server{
		createProductHandler:         h.CreateProduct,
		changeProductStatusHandler:   h.ChangeProductStatus,
		markNotificationsReadHandler: h.MarkNotificationsRead,
		getProductHandler:            h.GetProduct,
		getNextStatesHandler:         h.GetNextStates,
		getProductHistoryHandler:     h.GetProductHistory,
		getNotificationsHandler:      h.GetNotifications,
		logger:                       logger.With("component", "http"),
	}
}

var errNoActor = echo.NewHTTPError(http.StatusUnauthorized, "missing "+HeaderUserID+" header")

// CreateProduct handles POST /api/v1/products - registers a received product.
func (s *Server) CreateProduct(ctx echo.Context) error {
	actor, ok := actorFrom(ctx)
	if !ok {
		return errNoActor
	}

	var body servers.NewProduct
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{Error: "Invalid request body"})
	}

	location := ""
	if body.Location != nil {
		location = *body.Location
	}

	cmd, err := commands.NewCreateProductCommand(actor.TenantID, actor.UserID, body.Sku, body.Name, body.Quantity, location)
	if err != nil {
		return s.writeError(ctx, err)
	}

	p, err := s.createProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, productFromDomain(p))
}

// GetProduct handles GET /api/v1/products/{id}.
func (s *Server) GetProduct(ctx echo.Context, id servers.ProductId) error {
	productID, err := fromAPIUUID(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetProductQuery(productID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	p, err := s.getProductHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productFromReadModel(p))
}

// ChangeProductStatus handles PATCH /api/v1/products/{id}/status.
func (s *Server) ChangeProductStatus(ctx echo.Context, id servers.ProductId) error {
	actor, ok := actorFrom(ctx)
	if !ok {
		return errNoActor
	}

	var body servers.StatusChangeRequest
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{Error: "Invalid request body"})
	}

	productID, err := fromAPIUUID(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	to, err := lifecycle.ParseStatus(string(body.NewStatus))
	if err != nil {
		return s.writeError(ctx, err)
	}

	var expected *lifecycle.Status
	if body.ExpectedStatus != nil {
		parsed, parseErr := lifecycle.ParseStatus(string(*body.ExpectedStatus))
		if parseErr != nil {
			return s.writeError(ctx, parseErr)
		}
		expected = &parsed
	}

	payload := make(map[string]any, 2)
	if body.Reason != nil {
		payload[lifecycle.FieldReason] = *body.Reason
	}
	if body.Location != nil {
		payload[lifecycle.FieldLocation] = *body.Location
	}

	cmd, err := commands.NewChangeProductStatusCommand(productID, to, actor, payload, expected)
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.changeProductStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.StatusChangeResponse{
		Message: fmt.Sprintf("Product status changed from %s to %s", result.From, result.To),
		Product: productFromDomain(result.Product),
		Transition: servers.Transition{
			From: toStatus(result.From),
			To:   toStatus(result.To),
		},
	})
}

// GetProductNextStates handles GET /api/v1/products/{id}/next-states.
func (s *Server) GetProductNextStates(ctx echo.Context, id servers.ProductId) error {
	productID, err := fromAPIUUID(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetNextStatesQuery(productID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	next, err := s.getNextStatesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.NextStates{
		CurrentStatus:      toStatus(next.CurrentStatus),
		NextPossibleStates: toStatuses(next.NextPossibleStates),
		IsFinalState:       next.IsFinalState,
	})
}

// GetProductHistory handles GET /api/v1/products/{id}/history.
func (s *Server) GetProductHistory(ctx echo.Context, id servers.ProductId, params servers.GetProductHistoryParams) error {
	productID, err := fromAPIUUID(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var statuses []lifecycle.Status
	if params.Status != nil {
		for _, name := range *params.Status {
			status, parseErr := lifecycle.ParseStatus(string(name))
			if parseErr != nil {
				return s.writeError(ctx, parseErr)
			}
			statuses = append(statuses, status)
		}
	}

	query, err := queries.NewGetProductHistoryQuery(productID, params.Limit, statuses)
	if err != nil {
		return s.writeError(ctx, err)
	}

	history, err := s.getProductHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]servers.Movement, len(history))
	for i, m := range history {
		response[i] = movementFromReadModel(m)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetNotifications handles GET /api/v1/notifications.
func (s *Server) GetNotifications(ctx echo.Context, params servers.GetNotificationsParams) error {
	actor, ok := actorFrom(ctx)
	if !ok {
		return errNoActor
	}

	query, err := queries.NewGetNotificationsQuery(actor.TenantID, actor.UserID, params.Limit)
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.getNotificationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := servers.NotificationList{
		Notifications: make([]servers.Notification, len(result.Notifications)),
		UnreadCount:   result.UnreadCount,
	}
	for i, n := range result.Notifications {
		response.Notifications[i] = notificationFromReadModel(n)
	}

	return ctx.JSON(http.StatusOK, response)
}

// MarkNotificationsRead handles POST /api/v1/notifications/read.
func (s *Server) MarkNotificationsRead(ctx echo.Context) error {
	actor, ok := actorFrom(ctx)
	if !ok {
		return errNoActor
	}

	var body servers.MarkNotificationsRead
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{Error: "Invalid request body"})
	}

	ids := make([]kernel.UUID, 0, len(body.NotificationIds))
	for _, raw := range body.NotificationIds {
		id, err := fromAPIUUID(raw)
		if err != nil {
			return s.writeError(ctx, err)
		}
		ids = append(ids, id)
	}

	cmd, err := commands.NewMarkNotificationsReadCommand(actor.UserID, ids)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.markNotificationsReadHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
