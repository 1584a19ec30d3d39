package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pakwerk/magazijn-api/internal/application/dto"
	"github.com/pakwerk/magazijn-api/internal/application/packing"
)

// PrepackHandler serves the live queue snapshot on the admin dashboard.
type PrepackHandler struct {
	uc *packing.PrepackUseCase
}

func NewPrepackHandler(uc *packing.PrepackUseCase) *PrepackHandler {
	return &PrepackHandler{uc: uc}
}

// QueueSnapshot godoc
// @Summary      Current prepack queue statistics
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.PrepackQueueDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/admin/prepack-queue [get]
func (h *PrepackHandler) QueueSnapshot(c *fiber.Ctx) error {
	snapshot, err := h.uc.QueueSnapshot(c.Context(), time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(snapshot)
}
