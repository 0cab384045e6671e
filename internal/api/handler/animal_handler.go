package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adoptionsystem/adoption-api/internal/core/ports"
)

// AnimalHandler handles HTTP requests for shelter animals.
type AnimalHandler struct {
	service ports.AnimalService
}

func NewAnimalHandler(service ports.AnimalService) *AnimalHandler {
	return &AnimalHandler{service: service}
}

// List handles GET /api/animals.
//
// @Summary      List animals
// @Tags         animals
// @Produce      json
// @Success      200  {array}   domain.Animal
// @Failure      500  {object}  errorResponse
// @Router       /animals [get]
func (h *AnimalHandler) List(c echo.Context) error {
	animals, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, animals)
}

// Get handles GET /api/animals/:id.
//
// @Summary      Get an animal by id
// @Tags         animals
// @Produce      json
// @Param        id   path      string  true  "Animal id"
// @Success      200  {object}  domain.Animal
// @Failure      404  {object}  errorResponse
// @Router       /animals/{id} [get]
func (h *AnimalHandler) Get(c echo.Context) error {
	animal, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, animal)
}

// Create handles POST /api/animals. The keeper must resolve to an
// existing user or nothing is persisted.
//
// @Summary      Register an animal
// @Tags         animals
// @Accept       json
// @Produce      json
// @Param        body  body      createAnimalRequest  true  "Animal details"
// @Success      201   {object}  domain.Animal
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /animals [post]
func (h *AnimalHandler) Create(c echo.Context) error {
	var req createAnimalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	animal, err := h.service.Create(c.Request().Context(), ports.CreateAnimalInput{
		Name:        req.Name,
		Description: req.Description,
		Age:         req.Age,
		Type:        req.Type,
		Keeper:      req.Keeper,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, animal)
}

// Update handles PUT /api/animals/:id with a partial, whitelisted patch.
//
// @Summary      Update an animal
// @Tags         animals
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Animal id"
// @Param        body  body      updateAnimalRequest  true  "Fields to update"
// @Success      200   {object}  domain.Animal
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /animals/{id} [put]
func (h *AnimalHandler) Update(c echo.Context) error {
	var req updateAnimalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	animal, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateAnimalInput{
		Name:        req.Name,
		Description: req.Description,
		Age:         req.Age,
		Keeper:      req.Keeper,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, animal)
}

// Delete handles DELETE /api/animals/:id.
//
// @Summary      Delete an animal
// @Tags         animals
// @Produce      json
// @Param        id   path      string  true  "Animal id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /animals/{id} [delete]
func (h *AnimalHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "animal deleted successfully"})
}
