package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/schoolspace/classroom-reservation/internal/core/ports"
)

type ClassroomHandler struct {
	service ports.ClassroomService
}

func NewClassroomHandler(service ports.ClassroomService) *ClassroomHandler {
	return &ClassroomHandler{service: service}
}

type classroomRequest struct {
	Name     string `json:"name" validate:"required"`
	Capacity int    `json:"capacity" validate:"required,gt=0"`
	Color    string `json:"color" validate:"required"`
}

// List returns the full room catalog. Open to everyone; the calendar needs
// it before login.
//
// @Summary      List classrooms
// @Tags         classrooms
// @Produce      json
// @Success      200  {array}  domain.Classroom
// @Router       /api/classrooms [get]
func (h *ClassroomHandler) List(c echo.Context) error {
	rooms, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rooms)
}

// Create adds a classroom (admin only).
//
// @Summary      Create a classroom
// @Tags         classrooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      classroomRequest  true  "Classroom details"
// @Success      201   {object}  domain.Classroom
// @Router       /api/classrooms [post]
func (h *ClassroomHandler) Create(c echo.Context) error {
	var req classroomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	room, err := h.service.Create(c.Request().Context(), ports.ClassroomInput{
		Name:     req.Name,
		Capacity: req.Capacity,
		Color:    req.Color,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, room)
}

// Update edits a classroom (admin only).
//
// @Summary      Update a classroom
// @Tags         classrooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int               true  "Classroom id"
// @Param        body  body      classroomRequest  true  "Classroom details"
// @Success      200   {object}  domain.Classroom
// @Router       /api/classrooms/{id} [put]
func (h *ClassroomHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req classroomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	room, err := h.service.Update(c.Request().Context(), id, ports.ClassroomInput{
		Name:     req.Name,
		Capacity: req.Capacity,
		Color:    req.Color,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, room)
}

// Delete removes a classroom and, by cascade, its reservations (admin only).
//
// @Summary      Delete a classroom
// @Tags         classrooms
// @Security     BearerAuth
// @Param        id  path  int  true  "Classroom id"
// @Success      204
// @Router       /api/classrooms/{id} [delete]
func (h *ClassroomHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return uint(id), nil
}
