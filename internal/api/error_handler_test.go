package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/adoptionsystem/adoption-api/internal/core/domain"
)

func handleError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad error body: %v", err)
	}
	return rec.Code, body.Error
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrAnimalNotFound, http.StatusNotFound},
		{domain.ErrKeeperNotFound, http.StatusNotFound},
		{domain.ErrClientNotFound, http.StatusNotFound},
		{domain.ErrAppointmentNotFound, http.StatusNotFound},
		{domain.ErrDateTaken, http.StatusBadRequest},
		{domain.ErrInvalidStatus, http.StatusBadRequest},
		{domain.ErrInvalidAnimalType, http.StatusBadRequest},
		{domain.ErrEmptyUpdate, http.StatusBadRequest},
		{domain.ErrInvalidCredentials, http.StatusBadRequest},
		{domain.ErrWrongPassword, http.StatusBadRequest},
		{domain.ErrUserExists, http.StatusBadRequest},
		{domain.ErrForbidden, http.StatusForbidden},
	}

	for _, tc := range cases {
		code, msg := handleError(t, tc.err)
		if code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, code)
		}
		if msg == "" {
			t.Fatalf("%v: expected a message", tc.err)
		}
	}
}

func TestHTTPErrorHandler_EchoErrorsPassThrough(t *testing.T) {
	code, msg := handleError(t, echo.NewHTTPError(http.StatusUnauthorized, "missing token"))
	if code != http.StatusUnauthorized || msg != "missing token" {
		t.Fatalf("expected 401 missing token, got %d %q", code, msg)
	}
}

func TestHTTPErrorHandler_UnexpectedErrorsAreGeneric(t *testing.T) {
	code, msg := handleError(t, errors.New("mongo: socket was unexpectedly closed"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "internal server error" {
		t.Fatalf("internal details leaked: %q", msg)
	}
}
