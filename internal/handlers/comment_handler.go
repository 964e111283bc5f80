package handlers

import (
	"github.com/ahmetcoskunkizilkaya/tanuki-map/internal/dto"
	"github.com/ahmetcoskunkizilkaya/tanuki-map/internal/identity"
	"github.com/ahmetcoskunkizilkaya/tanuki-map/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CommentHandler struct {
	comments *services.CommentService
	devices  *services.DeviceService
}

func NewCommentHandler(comments *services.CommentService, devices *services.DeviceService) *CommentHandler {
	return &CommentHandler{comments: comments, devices: devices}
}

// List returns a tanuki's comments newest first. Content is returned raw;
// rendering clients are responsible for escaping it.
func (h *CommentHandler) List(c *fiber.Ctx) error {
	tanukiID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid tanuki ID")
	}

	comments, err := h.comments.List(tanukiID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"comments": comments}})
}

// Post appends a comment. Guests are blocked until a nickname has been
// persisted for their device.
func (h *CommentHandler) Post(c *fiber.Ctx) error {
	actor, err := identity.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	tanukiID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid tanuki ID")
	}

	var req dto.PostCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request")
	}

	displayName := actor.Name
	if actor.IsGuest() {
		displayName = ""
		if device := identity.DeviceID(c); device != "" {
			displayName = h.devices.Nickname(device)
		}
	}

	comment, err := h.comments.Post(tanukiID, actor, displayName, req.Content)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// Remove hard-deletes a comment. Mounted under the admin group.
func (h *CommentHandler) Remove(c *fiber.Ctx) error {
	actor, err := identity.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	tanukiID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid tanuki ID")
	}
	commentID, err := uuid.Parse(c.Params("comment_id"))
	if err != nil {
		return badRequest(c, "Invalid comment ID")
	}

	if err := h.comments.Remove(tanukiID, commentID, actor); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
