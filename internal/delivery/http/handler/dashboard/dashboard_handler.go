package dashboard

import (
	"github.com/gofiber/fiber/v2"

	dashuc "github.com/godcandidate/warehouse-management-app/internal/usecase/dashboard"
)

type Handler struct {
	uc *dashuc.Usecase
}

func New(uc *dashuc.Usecase) *Handler {
	return &Handler{uc: uc}
}

func (h *Handler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.UserContext())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}
	return c.JSON(out)
}

func (h *Handler) Activities(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 5)

	out, err := h.uc.RecentActivities(c.UserContext(), limit)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}
	return c.JSON(fiber.Map{"items": out})
}
