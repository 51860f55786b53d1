package report

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/godcandidate/warehouse-management-app/internal/delivery/http/httpx"
	repuc "github.com/godcandidate/warehouse-management-app/internal/usecase/report"
	"github.com/godcandidate/warehouse-management-app/internal/validation"
)

type Handler struct {
	uc *repuc.Usecase
}

func New(uc *repuc.Usecase) *Handler {
	return &Handler{uc: uc}
}

type generateRequest struct {
	Type       string         `json:"type"`
	Parameters map[string]any `json:"parameters"`
}

func (h *Handler) Generate(c *fiber.Ctx) error {
	var req generateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json")
	}

	out, err := h.uc.Generate(c.UserContext(), req.Type, req.Parameters)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(out)
}

func (h *Handler) Save(c *fiber.Ctx) error {
	var req repuc.SaveInput
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json")
	}

	out, err := h.uc.Save(c.UserContext(), req)
	if err != nil {
		return writeErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *Handler) List(c *fiber.Ctx) error {
	q := httpx.ListQuery(c, "type")

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

func writeErr(c *fiber.Ctx, err error) error {
	if ve, ok := validation.As(err); ok {
		return httpx.WriteValidation(c, ve)
	}
	switch {
	case errors.Is(err, repuc.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, repuc.ErrUnknownType), errors.Is(err, repuc.ErrInvalidInput):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}
}
