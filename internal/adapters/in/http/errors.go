package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"warehouse/internal/core/domain/model/lifecycle"
	"warehouse/internal/generated/servers"
	"warehouse/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps application errors onto the response shapes of the API.
// Anything it does not recognise is logged and answered with 500.
func (s *Server) writeError(c echo.Context, err error) error {
	var (
		noOp     *lifecycle.NoOpTransitionError
		illegal  *lifecycle.IllegalTransitionError
		denied   *lifecycle.PermissionDeniedError
		missing  *lifecycle.MissingRequiredFieldsError
		conflict *lifecycle.CommitConflictError
	)

	switch {
	case errors.As(err, &noOp):
		current := toStatus(noOp.Status)
		return c.JSON(http.StatusBadRequest, servers.Error{
			Error:         lifecycle.ErrNoOpTransition.Error(),
			CurrentStatus: &current,
		})
	case errors.As(err, &illegal):
		current := toStatus(illegal.From)
		attempted := toStatus(illegal.To)
		allowed := toStatuses(illegal.Allowed)
		return c.JSON(http.StatusBadRequest, servers.Error{
			Error:             fmt.Sprintf("Transition from %s to %s is not allowed", illegal.From, illegal.To),
			CurrentStatus:     &current,
			AttemptedStatus:   &attempted,
			AllowedNextStates: &allowed,
		})
	case errors.As(err, &denied):
		reason := denied.Reason
		return c.JSON(http.StatusForbidden, servers.Error{
			Error:  "Permission denied",
			Reason: &reason,
		})
	case errors.As(err, &missing):
		fields := append([]string{}, missing.Fields...)
		return c.JSON(http.StatusBadRequest, servers.Error{
			Error:         "Missing required fields",
			MissingFields: &fields,
		})
	case errors.As(err, &conflict):
		return c.JSON(http.StatusConflict, servers.Error{Error: conflict.Error()})
	case errors.Is(err, errs.ErrObjectNotFound):
		return c.JSON(http.StatusNotFound, servers.Error{Error: err.Error()})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return c.JSON(http.StatusBadRequest, servers.Error{Error: err.Error()})
	case errors.Is(err, lifecycle.ErrPersistenceFailure):
		s.logger.ErrorContext(c.Request().Context(), "persistence failure", "error", err)
		return c.JSON(http.StatusInternalServerError, servers.Error{Error: "Failed to persist the change"})
	default:
		s.logger.ErrorContext(c.Request().Context(), "request failed", "error", err)
		return c.JSON(http.StatusInternalServerError, servers.Error{Error: "Internal server error"})
	}
}

// NewHTTPErrorHandler renders errors that escape the handlers, such as
// parameter binding failures and unknown routes, in the API error shape.
func NewHTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := "Internal server error"

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			message = fmt.Sprint(he.Message)
		} else {
			logger.ErrorContext(c.Request().Context(), "unhandled error", "error", err)
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, servers.Error{Error: message})
	}
}
