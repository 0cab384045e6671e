package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adoptionsystem/adoption-api/internal/api/metrics"
	"github.com/adoptionsystem/adoption-api/internal/core/domain"
	"github.com/adoptionsystem/adoption-api/internal/core/ports"
)

// AppointmentHandler handles HTTP requests for adoption appointments.
// All routes sit behind the Auth middleware.
type AppointmentHandler struct {
	service ports.AppointmentService
}

func NewAppointmentHandler(service ports.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// List handles GET /api/appointments.
//
// @Summary      List appointments
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Appointment
// @Failure      401  {object}  errorResponse
// @Router       /appointments [get]
func (h *AppointmentHandler) List(c echo.Context) error {
	appointments, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appointments)
}

// Get handles GET /api/appointments/:id.
//
// @Summary      Get an appointment by id
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Appointment id"
// @Success      200  {object}  domain.Appointment
// @Failure      404  {object}  errorResponse
// @Router       /appointments/{id} [get]
func (h *AppointmentHandler) Get(c echo.Context) error {
	appointment, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appointment)
}

// Create handles POST /api/appointments. At most one appointment can
// exist per calendar day.
//
// @Summary      Book an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAppointmentRequest  true  "Appointment details"
// @Success      201   {object}  domain.Appointment
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /appointments [post]
func (h *AppointmentHandler) Create(c echo.Context) error {
	var req createAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	appointment, err := h.service.Create(c.Request().Context(), ports.CreateAppointmentInput{
		Date:   req.Date,
		Animal: req.Animal,
		Client: req.Client,
		Status: req.Status,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDateTaken) {
			metrics.AppointmentConflictsTotal.Inc()
		}
		return err
	}

	metrics.AppointmentsBookedTotal.WithLabelValues(string(appointment.Status)).Inc()
	return c.JSON(http.StatusCreated, appointment)
}

// Update handles PUT /api/appointments/:id. Only the appointment's
// client or an ADMIN may mutate it.
//
// @Summary      Update an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                    true  "Appointment id"
// @Param        body  body      updateAppointmentRequest  true  "Fields to update"
// @Success      200   {object}  domain.Appointment
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /appointments/{id} [put]
func (h *AppointmentHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	appointment, err := h.service.Update(c.Request().Context(), c.Param("id"), actor, ports.UpdateAppointmentInput{
		Date:   req.Date,
		Status: req.Status,
		Animal: req.Animal,
		Client: req.Client,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDateTaken) {
			metrics.AppointmentConflictsTotal.Inc()
		}
		return err
	}
	return c.JSON(http.StatusOK, appointment)
}

// Delete handles DELETE /api/appointments/:id, gated like Update.
//
// @Summary      Cancel an appointment
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Appointment id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /appointments/{id} [delete]
func (h *AppointmentHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), actor); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "appointment deleted successfully"})
}
