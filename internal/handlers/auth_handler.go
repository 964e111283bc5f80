package handlers

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/tanuki-map/internal/dto"
	"github.com/ahmetcoskunkizilkaya/tanuki-map/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	service *services.AuthService
}

func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request")
	}
	if err := dto.Validate.Struct(req); err != nil {
		return badRequest(c, "Email required and password must be at least 8 characters")
	}

	resp, err := h.service.Register(&req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request")
	}
	if err := dto.Validate.Struct(req); err != nil {
		return badRequest(c, "Email and password are required")
	}

	resp, err := h.service.Login(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return unauthorized(c)
		}
		return respondError(c, err)
	}

	return c.JSON(resp)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request")
	}

	resp, err := h.service.Refresh(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidToken) {
			return unauthorized(c)
		}
		return respondError(c, err)
	}

	return c.JSON(resp)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var req dto.LogoutRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request")
	}

	if err := h.service.Logout(&req); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// Guest establishes the anonymous session fallback for a device.
func (h *AuthHandler) Guest(c *fiber.Ctx) error {
	var req dto.GuestRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request")
	}
	if err := dto.Validate.Struct(req); err != nil {
		return badRequest(c, "Device id is required")
	}

	resp, err := h.service.Guest(&req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
