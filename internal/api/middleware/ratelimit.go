package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/adoptionsystem/adoption-api/internal/api/metrics"
)

// Limiter is the interface the middleware needs from the Redis-backed
// rate limiter.
type Limiter interface {
	Allow(ctx context.Context, clientKey string) (bool, error)
}

// RateLimit throttles request volume per client IP. Limiter failures
// are logged and the request is let through: the limiter protects the
// service, it must not take it down.
func RateLimit(limiter Limiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn().Err(err).Str("ip", c.RealIP()).Msg("rate limit check failed, allowing request")
				return next(c)
			}
			if !ok {
				metrics.RequestsThrottledTotal.Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
			}
			return next(c)
		}
	}
}
