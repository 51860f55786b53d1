package shipment

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/godcandidate/warehouse-management-app/internal/delivery/http/httpx"
	shipuc "github.com/godcandidate/warehouse-management-app/internal/usecase/shipment"
	"github.com/godcandidate/warehouse-management-app/internal/validation"
)

type Handler struct {
	uc *shipuc.Usecase
}

func New(uc *shipuc.Usecase) *Handler {
	return &Handler{uc: uc}
}

func (h *Handler) List(c *fiber.Ctx) error {
	q := httpx.ListQuery(c, "status")

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
	var req shipuc.Draft
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
	var req shipuc.Draft
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json")
	}

	out, err := h.uc.Update(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(out)
}

func (h *Handler) UpdateStatus(c *fiber.Ctx) error {
	var req shipuc.UpdateStatusInput
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json")
	}

	out, err := h.uc.UpdateStatus(c.UserContext(), c.Params("id"), req)
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
	case errors.Is(err, shipuc.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, shipuc.ErrItemMissing),
		errors.Is(err, shipuc.ErrInvalidStatus),
		errors.Is(err, shipuc.ErrInvalidTransition),
		errors.Is(err, shipuc.ErrInvalidInput):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}
}
