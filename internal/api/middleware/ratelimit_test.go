package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type stubLimiter struct {
	ok   bool
	err  error
	keys []string
}

func (l *stubLimiter) Allow(_ context.Context, clientKey string) (bool, error) {
	l.keys = append(l.keys, clientKey)
	return l.ok, l.err
}

func limiterContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.7:1234"
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRateLimit_AllowsUnderLimit(t *testing.T) {
	limiter := &stubLimiter{ok: true}
	c, rec := limiterContext()

	if err := RateLimit(limiter, zerolog.Nop())(okHandler)(c); err != nil {
		t.Fatalf("expected pass, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(limiter.keys) != 1 || limiter.keys[0] != "10.0.0.7" {
		t.Fatalf("expected limiter keyed by client ip, got %v", limiter.keys)
	}
}

func TestRateLimit_ThrottlesOverLimit(t *testing.T) {
	limiter := &stubLimiter{ok: false}
	c, _ := limiterContext()

	err := RateLimit(limiter, zerolog.Nop())(okHandler)(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %v", err)
	}
}

func TestRateLimit_FailsOpen(t *testing.T) {
	limiter := &stubLimiter{err: errors.New("redis down")}
	c, rec := limiterContext()

	if err := RateLimit(limiter, zerolog.Nop())(okHandler)(c); err != nil {
		t.Fatalf("expected request to pass when limiter fails, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
