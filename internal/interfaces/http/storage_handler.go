package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pakwerk/magazijn-api/internal/application/dto"
	"github.com/pakwerk/magazijn-api/internal/application/storage"
)

// StorageHandler serves the storage rental dashboard.
type StorageHandler struct {
	uc *storage.DashboardUseCase
}

func NewStorageHandler(uc *storage.DashboardUseCase) *StorageHandler {
	return &StorageHandler{uc: uc}
}

// Dashboard godoc
// @Summary      Storage rental totals and annualized revenue
// @Tags         storage
// @Produce      json
// @Success      200  {object}  dto.StorageDashboardDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/storage-rentals/dashboard [get]
func (h *StorageHandler) Dashboard(c *fiber.Ctx) error {
	summary, err := h.uc.Summary(c.Context(), time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(summary)
}
