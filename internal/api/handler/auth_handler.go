package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adoptionsystem/adoption-api/internal/api/metrics"
	"github.com/adoptionsystem/adoption-api/internal/api/middleware"
	"github.com/adoptionsystem/adoption-api/internal/core/domain"
	"github.com/adoptionsystem/adoption-api/internal/core/ports"
	"github.com/adoptionsystem/adoption-api/internal/infrastructure/storage"
)

// AuthHandler handles registration, login and the session echo endpoint.
type AuthHandler struct {
	authService ports.AuthService
	uploads     *storage.LocalStore
}

func NewAuthHandler(authService ports.AuthService, uploads *storage.LocalStore) *AuthHandler {
	return &AuthHandler{authService: authService, uploads: uploads}
}

// Register creates a CLIENT account from a multipart form.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       multipart/form-data
// @Produce      json
// @Param        name            formData  string  true   "First name"
// @Param        surname         formData  string  true   "Surname"
// @Param        username        formData  string  true   "Unique username"
// @Param        email           formData  string  true   "Unique email"
// @Param        password        formData  string  true   "Password"
// @Param        phone           formData  string  false  "Phone number"
// @Param        profilePicture  formData  file    false  "Profile picture (jpeg/png, max 10MB)"
// @Success      201  {object}  registerResponse
// @Failure      400  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// Profile picture is optional; store it first so the filename can be
	// persisted with the user.
	var filename string
	if fh, err := c.FormFile("profilePicture"); err == nil {
		stored, err := h.uploads.Save(fh)
		if err != nil {
			if errors.Is(err, storage.ErrFileTooLarge) || errors.Is(err, storage.ErrUnsupportedType) {
				return echo.NewHTTPError(http.StatusBadRequest, err.Error())
			}
			return err
		}
		filename = stored
	}

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Name:           req.Name,
		Surname:        req.Surname,
		Username:       req.Username,
		Email:          req.Email,
		Password:       req.Password,
		Phone:          req.Phone,
		ProfilePicture: filename,
	})
	if err != nil {
		// Orphaned upload: registration failed after the file was stored.
		_ = h.uploads.Remove(filename)
		return err
	}

	metrics.UsersRegisteredTotal.Inc()
	return c.JSON(http.StatusCreated, registerResponse{
		Message:  "registered successfully, you can log in with username: " + user.Username,
		Username: user.Username,
	})
}

// Login authenticates by username or email and returns a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.UserLogin, req.Password)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid credentials")
		}
		return err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Message:    "welcome " + user.Name,
		Token:      token,
		LoggedUser: user,
	})
}

// Test is the session-gated echo endpoint.
//
// @Summary      Session check
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  errorResponse
// @Router       /auth/test [get]
func (h *AuthHandler) Test(c echo.Context) error {
	username, _ := c.Get(middleware.CtxUsername).(string)
	return c.JSON(http.StatusOK, map[string]string{
		"message":  "session is valid",
		"username": username,
	})
}
