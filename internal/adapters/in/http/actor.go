package http

import (
	"errors"
	"net/http"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/core/ports"
	"warehouse/internal/generated/servers"
	"warehouse/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// HeaderUserID carries the id of the acting user. Authentication happens in
// front of this service; the header is trusted.
const HeaderUserID = "X-User-ID"

const (
	contextKeyActor = "warehouse.actor"
	contextKeyUser  = "warehouse.user"
)

// ActorMiddleware resolves X-User-ID against the user directory and stores the
// acting user and its capabilities in the echo context.
func ActorMiddleware(users ports.UserDirectory) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(HeaderUserID)
			if raw == "" {
				return c.JSON(http.StatusUnauthorized, servers.Error{Error: "missing " + HeaderUserID + " header"})
			}

			userID, err := kernel.UUIDFromString(raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, servers.Error{Error: "invalid " + HeaderUserID + " header"})
			}

			user, err := users.Get(c.Request().Context(), userID)
			if err != nil {
				if errors.Is(err, errs.ErrObjectNotFound) {
					return c.JSON(http.StatusUnauthorized, servers.Error{Error: "unknown user"})
				}
				return err
			}

			c.Set(contextKeyUser, user)
			c.Set(contextKeyActor, services.Actor{
				UserID:       user.ID,
				TenantID:     user.TenantID,
				Capabilities: user.Role.Capabilities(),
			})

			return next(c)
		}
	}
}

func actorFrom(c echo.Context) (services.Actor, bool) {
	actor, ok := c.Get(contextKeyActor).(services.Actor)
	return actor, ok
}
