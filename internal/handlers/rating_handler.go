package handlers

import (
	"github.com/ahmetcoskunkizilkaya/tanuki-map/internal/dto"
	"github.com/ahmetcoskunkizilkaya/tanuki-map/internal/identity"
	"github.com/ahmetcoskunkizilkaya/tanuki-map/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type RatingHandler struct {
	ratings *services.RatingService
	devices *services.DeviceService
}

func NewRatingHandler(ratings *services.RatingService, devices *services.DeviceService) *RatingHandler {
	return &RatingHandler{ratings: ratings, devices: devices}
}

// Submit writes or overwrites the caller's rating for a tanuki. Guests may
// rate; their persisted nickname rides along when one exists.
func (h *RatingHandler) Submit(c *fiber.Ctx) error {
	actor, err := identity.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	tanukiID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid tanuki ID")
	}

	var req dto.SubmitRatingRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request")
	}

	displayName := actor.Name
	if actor.IsGuest() {
		if device := identity.DeviceID(c); device != "" {
			displayName = h.devices.Nickname(device)
		}
	}

	if err := h.ratings.Submit(tanukiID, actor, req.Score, displayName); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// Amend changes only the score of the caller's existing rating.
func (h *RatingHandler) Amend(c *fiber.Ctx) error {
	actor, err := identity.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	tanukiID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid tanuki ID")
	}

	var req dto.SubmitRatingRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request")
	}

	if err := h.ratings.Amend(tanukiID, actor, req.Score); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// Aggregate returns (average, count) plus the viewer's own score when the
// request carries a valid token. An unrated tanuki responds with count 0
// and no average field.
func (h *RatingHandler) Aggregate(c *fiber.Ctx) error {
	tanukiID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid tanuki ID")
	}

	var viewer *identity.Identity
	if actor, err := identity.FromContext(c); err == nil {
		viewer = &actor
	}

	agg, viewerScore, err := h.ratings.Aggregate(tanukiID, viewer)
	if err != nil {
		return respondError(c, err)
	}

	resp := dto.RatingAggregateResponse{
		Count:       agg.Count,
		ViewerScore: viewerScore,
	}
	if agg.Count > 0 {
		avg := agg.Average
		resp.Average = &avg
	}
	return c.JSON(resp)
}
