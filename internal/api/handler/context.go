package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adoptionsystem/adoption-api/internal/api/middleware"
	"github.com/adoptionsystem/adoption-api/internal/core/ports"
)

// ctxActor extracts the identity injected by the Auth middleware and
// fast-fails before any service call: a missing uid or role means the
// middleware did not run or the token carried no usable identity.
func ctxActor(c echo.Context) (ports.Actor, error) {
	userID, _ := c.Get(middleware.CtxUserID).(string)
	role, _ := c.Get(middleware.CtxRole).(string)
	if userID == "" || role == "" {
		return ports.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return ports.Actor{UserID: userID, Role: role}, nil
}
