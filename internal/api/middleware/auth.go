package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/adoptionsystem/adoption-api/internal/pkg/token"
)

// Context keys populated by Auth for downstream handlers.
const (
	CtxUserID   = "uid"
	CtxUsername = "username"
	CtxName     = "name"
	CtxRole     = "role"
)

// Auth validates the bearer token and injects the session claims into
// the request context. Invalid or missing credentials short-circuit
// with 401 before the handler runs.
func Auth(tokens *token.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Validate(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxUsername, claims.Username)
			c.Set(CtxName, claims.Name)
			c.Set(CtxRole, claims.Role)

			return next(c)
		}
	}
}
