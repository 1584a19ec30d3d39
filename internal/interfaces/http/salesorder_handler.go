package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pakwerk/magazijn-api/internal/application/dto"
	"github.com/pakwerk/magazijn-api/internal/application/salesorders"
)

// SalesOrderHandler imports the ERP price list workbook.
type SalesOrderHandler struct {
	uc *salesorders.ImportUseCase
}

func NewSalesOrderHandler(uc *salesorders.ImportUseCase) *SalesOrderHandler {
	return &SalesOrderHandler{uc: uc}
}

// Upload godoc
// @Summary      Import a sales order price list (.xlsx)
// @Tags         sales-orders
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "price list workbook"
// @Success      200   {object}  dto.SalesOrderImportDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sales-orders/upload [post]
func (h *SalesOrderHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "multipart field 'file' is required"})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "cannot open uploaded file"})
	}
	defer f.Close()

	result, err := h.uc.Import(c.Context(), f, time.Now())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "IMPORT_FAILED", Message: err.Error()})
	}
	return c.JSON(result)
}
