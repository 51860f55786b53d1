package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/godcandidate/warehouse-management-app/internal/delivery/http/httpx"
	"github.com/godcandidate/warehouse-management-app/internal/session"
	authuc "github.com/godcandidate/warehouse-management-app/internal/usecase/auth"
	"github.com/godcandidate/warehouse-management-app/internal/validation"
)

type Handler struct {
	uc *authuc.Usecase
}

func New(uc *authuc.Usecase) *Handler {
	return &Handler{uc: uc}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json")
	}

	out, err := h.uc.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(out)
}

func (h *Handler) Register(c *fiber.Ctx) error {
	var req authuc.RegisterInput
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json")
	}

	out, err := h.uc.Register(c.UserContext(), req)
	if err != nil {
		return writeErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *Handler) Me(c *fiber.Ctx) error {
	sess, ok := c.Locals("session").(session.Session)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "no session")
	}

	out, err := h.uc.CurrentUser(c.UserContext(), sess.UserID)
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
	case errors.Is(err, authuc.ErrInvalidCredentials):
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, authuc.ErrEmailConflict):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, authuc.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}
}
