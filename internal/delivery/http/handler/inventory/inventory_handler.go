package inventory

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/godcandidate/warehouse-management-app/internal/delivery/http/httpx"
	invuc "github.com/godcandidate/warehouse-management-app/internal/usecase/inventory"
	"github.com/godcandidate/warehouse-management-app/internal/validation"
)

type Handler struct {
	uc *invuc.Usecase
}

func New(uc *invuc.Usecase) *Handler {
	return &Handler{uc: uc}
}

func (h *Handler) List(c *fiber.Ctx) error {
	q := httpx.ListQuery(c, "categoryId", "status")

	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(out)
}

func (h *Handler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(out)
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var req invuc.CreateInput
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json")
	}

	out, err := h.uc.Create(c.UserContext(), req)
	if err != nil {
		return writeErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *Handler) Update(c *fiber.Ctx) error {
	var req invuc.UpdateInput
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json")
	}

	out, err := h.uc.Update(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(out)
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeErr(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) Categories(c *fiber.Ctx) error {
	out, err := h.uc.Categories(c.UserContext())
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(fiber.Map{"items": out})
}

func (h *Handler) Statistics(c *fiber.Ctx) error {
	out, err := h.uc.Statistics(c.UserContext())
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(out)
}

func writeErr(c *fiber.Ctx, err error) error {
	if ve, ok := validation.As(err); ok {
		return httpx.WriteValidation(c, ve)
	}
	switch {
	case errors.Is(err, invuc.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, invuc.ErrCategoryMissing), errors.Is(err, invuc.ErrInvalidInput):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}
}
