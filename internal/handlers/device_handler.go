package handlers

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/tanuki-map/internal/dto"
	"github.com/ahmetcoskunkizilkaya/tanuki-map/internal/identity"
	"github.com/ahmetcoskunkizilkaya/tanuki-map/internal/notifier"
	"github.com/ahmetcoskunkizilkaya/tanuki-map/internal/services"
	"github.com/gofiber/fiber/v2"
)

// DeviceHandler serves the device-scoped state: guest nicknames and the
// new-tanuki detection driven by the last-visit instant.
type DeviceHandler struct {
	devices *services.DeviceService
	tanukis *services.TanukiService
}

func NewDeviceHandler(devices *services.DeviceService, tanukis *services.TanukiService) *DeviceHandler {
	return &DeviceHandler{devices: devices, tanukis: tanukis}
}

// deviceID prefers the explicit header and falls back to the guest token's
// device claim.
func deviceID(c *fiber.Ctx) string {
	if id := c.Get("X-Device-ID"); id != "" {
		return id
	}
	return identity.DeviceID(c)
}

func (h *DeviceHandler) GetNickname(c *fiber.Ctx) error {
	device := deviceID(c)
	if device == "" {
		return badRequest(c, "Device id is required")
	}
	return c.JSON(fiber.Map{"nickname": h.devices.Nickname(device)})
}

func (h *DeviceHandler) SetNickname(c *fiber.Ctx) error {
	device := deviceID(c)
	if device == "" {
		return badRequest(c, "Device id is required")
	}

	var req dto.NicknameRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request")
	}
	if err := dto.Validate.Struct(req); err != nil {
		return badRequest(c, "Nickname is required")
	}

	if err := h.devices.SetNickname(device, req.Nickname); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// NewTanukis reports entries created since this device's previous visit,
// newest first, and rolls the last-visit instant forward. A first-ever
// visit sees an empty batch, not the whole catalog.
func (h *DeviceHandler) NewTanukis(c *fiber.Ctx) error {
	device := deviceID(c)
	if device == "" {
		return badRequest(c, "Device id is required")
	}

	lastVisit, err := h.devices.TouchLastVisit(device, time.Now())
	if err != nil {
		return respondError(c, err)
	}

	entries, err := h.tanukis.ListActive()
	if err != nil {
		return respondError(c, err)
	}

	fresh := notifier.Detect(entries, lastVisit)
	return c.JSON(dto.NewTanukisResponse{
		Count:   len(fresh),
		Tanukis: fresh,
	})
}
