package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pakwerk/magazijn-api/internal/application/dto"
	"github.com/pakwerk/magazijn-api/internal/application/exports"
)

// ExportHandler converts packing list uploads into ERP purchase order XML.
type ExportHandler struct {
	uc *exports.POInboxUseCase
}

func NewExportHandler(uc *exports.POInboxUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// POInbox godoc
// @Summary      Convert a packing list (.xlsx) to BE2NET PO inbox XML
// @Tags         exports
// @Accept       multipart/form-data
// @Produce      json
// @Param        file          formData  file    true   "packing list workbook"
// @Param        division      formData  string  false  "ERP division code"
// @Param        vendorCode    formData  string  false  "vendor code"
// @Param        deliveryDate  formData  string  false  "requested delivery date (YYYY-MM-DD)"
// @Success      200  {object}  dto.POInboxExportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/exports/po-inbox [post]
func (h *ExportHandler) POInbox(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "multipart field 'file' is required"})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "cannot open uploaded file"})
	}
	defer f.Close()

	division := c.FormValue("division")
	vendorCode := c.FormValue("vendorCode")
	deliveryDate := c.FormValue("deliveryDate")

	result, err := h.uc.Convert(c.Context(), f, division, vendorCode, deliveryDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EXPORT_FAILED", Message: err.Error()})
	}
	return c.JSON(result)
}
