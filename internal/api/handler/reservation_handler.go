package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/schoolspace/classroom-reservation/internal/api/metrics"
	"github.com/schoolspace/classroom-reservation/internal/core/domain"
	"github.com/schoolspace/classroom-reservation/internal/core/ports"
)

type ReservationHandler struct {
	service ports.ReservationService
}

func NewReservationHandler(service ports.ReservationService) *ReservationHandler {
	return &ReservationHandler{service: service}
}

type slotRequest struct {
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	TimeSlot string `json:"timeSlot" validate:"required"`
}

type createReservationRequest struct {
	ClassroomID uint          `json:"classroomId" validate:"required"`
	Purpose     string        `json:"purpose" validate:"required"`
	Slots       []slotRequest `json:"slots" validate:"required,min=1,dive"`
}

type createReservationResponse struct {
	Message      string                  `json:"message"`
	Reservations []ports.ReservationView `json:"reservations"`
}

type batchLockRequest struct {
	ClassroomID uint     `json:"classroomId" validate:"required"`
	Purpose     string   `json:"purpose" validate:"required"`
	StartDate   string   `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate     string   `json:"endDate" validate:"required,datetime=2006-01-02"`
	TimeSlots   []string `json:"timeSlots" validate:"required,min=1"`
	Weekdays    []int    `json:"weekdays" validate:"required,min=1,dive,gte=0,lte=6"`
}

type batchLockResponse struct {
	Message string `json:"message"`
	BatchID string `json:"batchId"`
	Created int    `json:"created"`
}

type batchDeleteResponse struct {
	Message string `json:"message"`
	Deleted int64  `json:"deleted"`
}

// List returns all reservations, optionally filtered by classroom.
//
// @Summary      List reservations
// @Tags         reservations
// @Produce      json
// @Param        classroomId  query     int  false  "Restrict to one classroom"
// @Success      200          {array}   ports.ReservationView
// @Router       /api/reservations [get]
func (h *ReservationHandler) List(c echo.Context) error {
	var classroomID uint
	if raw := c.QueryParam("classroomId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid classroomId")
		}
		classroomID = uint(id)
	}

	views, err := h.service.List(c.Request().Context(), classroomID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

// ListMine returns the caller's own reservations.
//
// @Summary      List my reservations
// @Tags         reservations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  ports.ReservationView
// @Router       /api/reservations/my [get]
func (h *ReservationHandler) ListMine(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	views, err := h.service.ListMine(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

// Create books a set of slots for the caller; all requested slots are
// created or none are.
//
// @Summary      Create reservations
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createReservationRequest  true  "Desired slots"
// @Success      201   {object}  createReservationResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/reservations [post]
func (h *ReservationHandler) Create(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	slots := make([]domain.Slot, 0, len(req.Slots))
	for _, s := range req.Slots {
		slots = append(slots, domain.Slot{Date: s.Date, TimeSlot: s.TimeSlot})
	}

	views, err := h.service.Book(c.Request().Context(), actor, ports.BookingInput{
		ClassroomID: req.ClassroomID,
		Purpose:     req.Purpose,
		Slots:       slots,
	})
	if err != nil {
		if errors.Is(err, domain.ErrSlotTaken) {
			metrics.ConflictsTotal.WithLabelValues("single").Inc()
		}
		return err
	}

	metrics.ReservationsCreatedTotal.WithLabelValues("single").Add(float64(len(views)))
	return c.JSON(http.StatusCreated, createReservationResponse{
		Message:      "reservations created successfully",
		Reservations: views,
	})
}

// Delete removes a single reservation (holder or admin).
//
// @Summary      Delete a reservation
// @Tags         reservations
// @Security     BearerAuth
// @Param        id  path  int  true  "Reservation id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/reservations/{id} [delete]
func (h *ReservationHandler) Delete(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// BatchLock reserves a recurring pattern of slots under one batch tag
// (admin only).
//
// @Summary      Batch-lock slots
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      batchLockRequest  true  "Range, weekdays and slots to lock"
// @Success      201   {object}  batchLockResponse
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/reservations/batch [post]
func (h *ReservationHandler) BatchLock(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req batchLockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	weekdays := make([]time.Weekday, 0, len(req.Weekdays))
	for _, wd := range req.Weekdays {
		weekdays = append(weekdays, time.Weekday(wd))
	}

	result, err := h.service.BatchLock(c.Request().Context(), actor, ports.BatchLockInput{
		ClassroomID: req.ClassroomID,
		Purpose:     req.Purpose,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		TimeSlots:   req.TimeSlots,
		Weekdays:    weekdays,
	})
	if err != nil {
		var bce *domain.BatchConflictError
		if errors.As(err, &bce) || errors.Is(err, domain.ErrSlotTaken) {
			metrics.ConflictsTotal.WithLabelValues("batch").Inc()
		}
		return err
	}

	metrics.ReservationsCreatedTotal.WithLabelValues("batch").Add(float64(result.Created))
	return c.JSON(http.StatusCreated, batchLockResponse{
		Message: "batch lock created successfully",
		BatchID: result.BatchID,
		Created: result.Created,
	})
}

// DeleteBatch removes every reservation sharing a batch tag (admin only).
//
// @Summary      Delete a batch
// @Tags         reservations
// @Produce      json
// @Security     BearerAuth
// @Param        batch_id  path      string  true  "Batch tag"
// @Success      200       {object}  batchDeleteResponse
// @Failure      404       {object}  map[string]string
// @Router       /api/reservations/batch/{batch_id} [delete]
func (h *ReservationHandler) DeleteBatch(c echo.Context) error {
	batchID := c.Param("batch_id")

	deleted, err := h.service.DeleteBatch(c.Request().Context(), batchID)
	if err != nil {
		return err
	}

	metrics.BatchDeletesTotal.Inc()
	return c.JSON(http.StatusOK, batchDeleteResponse{
		Message: "batch deleted successfully",
		Deleted: deleted,
	})
}
