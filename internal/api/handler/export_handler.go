package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/schoolspace/classroom-reservation/internal/api/metrics"
	"github.com/schoolspace/classroom-reservation/internal/core/ports"
)

// ExportHandler serves the CSV reporting view (admin only).
type ExportHandler struct {
	service ports.ExportService
}

func NewExportHandler(service ports.ExportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// Export downloads reservations in a date range as CSV.
//
// @Summary      Export reservations as CSV
// @Tags         reservations
// @Produce      text/csv
// @Security     BearerAuth
// @Param        startDate    query  string  true   "Range start (YYYY-MM-DD)"
// @Param        endDate      query  string  true   "Range end, inclusive (YYYY-MM-DD)"
// @Param        classroomId  query  string  false  "Classroom id, or 'all'"
// @Success      200  {string}  string  "CSV body"
// @Failure      404  {object}  map[string]string
// @Router       /api/reservations/export [get]
func (h *ExportHandler) Export(c echo.Context) error {
	startDate := c.QueryParam("startDate")
	endDate := c.QueryParam("endDate")
	if startDate == "" || endDate == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "startDate and endDate are required")
	}

	var classroomID uint
	if raw := c.QueryParam("classroomId"); raw != "" && raw != "all" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid classroomId")
		}
		classroomID = uint(id)
	}

	body, filename, err := h.service.ExportCSV(c.Request().Context(), ports.ExportInput{
		StartDate:   startDate,
		EndDate:     endDate,
		ClassroomID: classroomID,
	})
	if err != nil {
		return err
	}

	metrics.ExportsTotal.Inc()
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", body)
}
