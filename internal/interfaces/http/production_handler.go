package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pakwerk/magazijn-api/internal/application/dto"
	"github.com/pakwerk/magazijn-api/internal/application/production"
)

// ProductionHandler serves the time registration KPI report and the
// production order cost details.
type ProductionHandler struct {
	kpi     *production.KPIUseCase
	details *production.OrderDetailsUseCase
}

func NewProductionHandler(kpi *production.KPIUseCase, details *production.OrderDetailsUseCase) *ProductionHandler {
	return &ProductionHandler{kpi: kpi, details: details}
}

// optionalDate reads an optional YYYY-MM-DD query parameter. The zero time
// means the bound is open; on a malformed value the 400 response is already
// written and ok is false.
func optionalDate(c *fiber.Ctx, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, true
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "'" + name + "' must be formatted as YYYY-MM-DD"})
		return time.Time{}, false
	}
	return date, true
}

// KPIReport godoc
// @Summary      Worked hours per order, step, employee and item
// @Tags         production
// @Produce      json
// @Param        date_from  query  string  false  "inclusive lower bound (YYYY-MM-DD)"
// @Param        date_to    query  string  false  "inclusive upper bound (YYYY-MM-DD)"
// @Success      200  {object}  dto.KPIReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/production-orders/kpi [get]
func (h *ProductionHandler) KPIReport(c *fiber.Ctx) error {
	from, ok := optionalDate(c, "date_from")
	if !ok {
		return nil
	}
	to, ok := optionalDate(c, "date_to")
	if !ok {
		return nil
	}
	if !to.IsZero() {
		// Inclusive upper bound: stretch to the end of the day.
		to = to.AddDate(0, 0, 1).Add(-time.Millisecond)
	}
	report, err := h.kpi.Report(c.Context(), from, to, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(report)
}

// OrderDetails godoc
// @Summary      Material usage and cost breakdown per production order
// @Tags         production
// @Produce      json
// @Success      200  {object}  dto.OrderDetailsDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/production-orders/order-details [get]
func (h *ProductionHandler) OrderDetails(c *fiber.Ctx) error {
	details, err := h.details.OrderDetails(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(details)
}
