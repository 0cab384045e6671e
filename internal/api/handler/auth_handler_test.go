package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/adoptionsystem/adoption-api/internal/core/domain"
	"github.com/adoptionsystem/adoption-api/internal/core/ports"
	"github.com/adoptionsystem/adoption-api/internal/infrastructure/storage"
)

type stubAuthService struct {
	registered *ports.RegisterInput
	registerFn func(ports.RegisterInput) (*domain.User, error)
	loginFn    func(userLogin, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Register(_ context.Context, input ports.RegisterInput) (*domain.User, error) {
	s.registered = &input
	if s.registerFn != nil {
		return s.registerFn(input)
	}
	return &domain.User{
		ID:       "u1",
		Name:     input.Name,
		Username: input.Username,
		Email:    input.Email,
		Role:     domain.RoleClient,
	}, nil
}

func (s *stubAuthService) Login(_ context.Context, userLogin, password string) (string, *domain.User, error) {
	if s.loginFn != nil {
		return s.loginFn(userLogin, password)
	}
	return "", nil, domain.ErrInvalidCredentials
}

func newAuthHandlerFixture(t *testing.T, svc *stubAuthService) (*AuthHandler, *echo.Echo) {
	t.Helper()
	uploads, err := storage.NewLocalStore(t.TempDir(), 0)
	if err != nil {
		t.Fatalf("uploads store: %v", err)
	}
	e := echo.New()
	e.Validator = NewValidator()
	return NewAuthHandler(svc, uploads), e
}

func registerForm(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, w.FormDataContentType()
}

func TestAuthHandler_Register(t *testing.T) {
	svc := &stubAuthService{}
	h, e := newAuthHandlerFixture(t, svc)

	body, contentType := registerForm(t, map[string]string{
		"name":     "Alice",
		"surname":  "Doe",
		"username": "alice",
		"email":    "alice@example.com",
		"password": "s3cret1",
		"role":     "ADMIN", // must be ignored
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()

	if err := h.Register(e.NewContext(req, rec)); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body)
	}
	if svc.registered == nil || svc.registered.Username != "alice" {
		t.Fatalf("service did not receive the form data: %+v", svc.registered)
	}

	var resp registerResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Username != "alice" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	svc := &stubAuthService{}
	h, e := newAuthHandlerFixture(t, svc)

	body, contentType := registerForm(t, map[string]string{
		"name": "Alice", // everything else missing
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()

	err := h.Register(e.NewContext(req, rec))
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if svc.registered != nil {
		t.Fatalf("service must not be called on validation failure")
	}
}

func TestAuthHandler_Login(t *testing.T) {
	svc := &stubAuthService{
		loginFn: func(userLogin, password string) (string, *domain.User, error) {
			if userLogin == "alice" && password == "s3cret1" {
				return "signed-token", &domain.User{ID: "u1", Name: "Alice", Username: "alice"}, nil
			}
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h, e := newAuthHandlerFixture(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"userLogin":"alice","password":"s3cret1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Login(e.NewContext(req, rec)); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Token != "signed-token" {
		t.Fatalf("expected token in response, got %+v", resp)
	}
	if strings.Contains(rec.Body.String(), "PasswordHash") || strings.Contains(rec.Body.String(), "password_hash") {
		t.Fatalf("password hash leaked: %s", rec.Body)
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	svc := &stubAuthService{}
	h, e := newAuthHandlerFixture(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"userLogin":"ghost","password":"nope"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.Login(e.NewContext(req, rec))
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
