package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pakwerk/magazijn-api/internal/application/dto"
	"github.com/pakwerk/magazijn-api/internal/application/packing"
)

// ReportHandler serves the daily packing reports for both queues.
type ReportHandler struct {
	prepack    *packing.ReportUseCase
	airtec     *packing.ReportUseCase
	prepackPDF *packing.ReportPDFUseCase
}

func NewReportHandler(prepack, airtec *packing.ReportUseCase, prepackPDF *packing.ReportPDFUseCase) *ReportHandler {
	return &ReportHandler{prepack: prepack, airtec: airtec, prepackPDF: prepackPDF}
}

// reportDate reads the mandatory ?date=YYYY-MM-DD query parameter. When the
// parameter is missing or malformed the 400 response is already written and
// ok is false.
func reportDate(c *fiber.Ctx) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_DATE", Message: "query parameter 'date' is required (YYYY-MM-DD)"})
		return time.Time{}, false
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "date must be formatted as YYYY-MM-DD"})
		return time.Time{}, false
	}
	return date, true
}

// DailyReport godoc
// @Summary      Daily packing report for the prepack queue
// @Tags         reports
// @Produce      json
// @Param        date  query  string  true  "report date (YYYY-MM-DD)"
// @Success      200   {object}  dto.DailyReportDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/items-to-pack/report [get]
func (h *ReportHandler) DailyReport(c *fiber.Ctx) error {
	date, ok := reportDate(c)
	if !ok {
		return nil
	}
	report, err := h.prepack.DailyReport(c.Context(), date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(report)
}

// DailyReportPDF godoc
// @Summary      Daily packing report as a printable PDF
// @Tags         reports
// @Produce      application/pdf
// @Param        date  query  string  true  "report date (YYYY-MM-DD)"
// @Success      200   {file}    binary
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/items-to-pack/report/pdf [get]
func (h *ReportHandler) DailyReportPDF(c *fiber.Ctx) error {
	date, ok := reportDate(c)
	if !ok {
		return nil
	}
	pdfBytes, filename, err := h.prepackPDF.DailyReportPDF(c.Context(), date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// AirtecDailyReport godoc
// @Summary      Daily packing report for the Airtec queue
// @Tags         reports
// @Produce      json
// @Param        date  query  string  true  "report date (YYYY-MM-DD)"
// @Success      200   {object}  dto.DailyReportDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/items-to-pack-airtec/report [get]
func (h *ReportHandler) AirtecDailyReport(c *fiber.Ctx) error {
	date, ok := reportDate(c)
	if !ok {
		return nil
	}
	report, err := h.airtec.DailyReport(c.Context(), date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(report)
}
