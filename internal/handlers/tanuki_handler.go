package handlers

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/ahmetcoskunkizilkaya/tanuki-map/internal/dto"
	"github.com/ahmetcoskunkizilkaya/tanuki-map/internal/identity"
	"github.com/ahmetcoskunkizilkaya/tanuki-map/internal/ranking"
	"github.com/ahmetcoskunkizilkaya/tanuki-map/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type TanukiHandler struct {
	tanukis *services.TanukiService
	ratings *services.RatingService
}

func NewTanukiHandler(tanukis *services.TanukiService, ratings *services.RatingService) *TanukiHandler {
	return &TanukiHandler{tanukis: tanukis, ratings: ratings}
}

// List returns the active catalog ordered by the requested mode, each row
// carrying its rating aggregate. `near=lat,lng` switches to nearest-first.
func (h *TanukiHandler) List(c *fiber.Ctx) error {
	entries, err := h.tanukis.ListActive()
	if err != nil {
		return respondError(c, err)
	}

	aggs := h.ratings.AggregateAll(c.Context(), entries)

	nearLat, nearLng, useNear := parseNearQuery(c.Query("near"))

	if useNear {
		entries = ranking.Nearest(entries, nearLat, nearLng)
	} else {
		entries = ranking.Rank(entries, aggs, ranking.Mode(c.Query("sort", string(ranking.ModeRecency))))
	}

	items := make([]dto.TanukiListItem, 0, len(entries))
	for _, e := range entries {
		item := dto.TanukiListItem{Tanuki: e, Rating: aggs[e.ID]}
		if useNear {
			d := ranking.Distance(nearLat, nearLng, e.Latitude, e.Longitude)
			item.DistanceKm = &d
		}
		items = append(items, item)
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"tanukis": items,
			"count":   len(items),
		},
	})
}

// Get returns one entry by direct id, including soft-deleted ones. The
// `from=list` query flag is echoed back so the client shows the right back
// affordance.
func (h *TanukiHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid tanuki ID")
	}

	tanuki, err := h.tanukis.Get(id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"tanuki": tanuki,
			"back":   c.Query("from", "map"),
		},
	})
}

func (h *TanukiHandler) Create(c *fiber.Ctx) error {
	actor, err := identity.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateTanukiRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request")
	}
	if err := dto.Validate.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	photo, err := formFileBytes(c, "photo")
	if err != nil {
		return badRequest(c, "Unreadable photo upload")
	}
	thumb, err := formFileBytes(c, "thumbnail")
	if err != nil {
		return badRequest(c, "Unreadable thumbnail upload")
	}

	tanuki, err := h.tanukis.Create(c.Context(), &req, photo, thumb, actor)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(tanuki)
}

func (h *TanukiHandler) Update(c *fiber.Ctx) error {
	actor, err := identity.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid tanuki ID")
	}

	var req dto.UpdateTanukiRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request")
	}
	if err := dto.Validate.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	photo, err := formFileBytes(c, "photo")
	if err != nil {
		return badRequest(c, "Unreadable photo upload")
	}
	thumb, err := formFileBytes(c, "thumbnail")
	if err != nil {
		return badRequest(c, "Unreadable thumbnail upload")
	}

	tanuki, err := h.tanukis.Update(c.Context(), id, &req, photo, thumb, actor)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(tanuki)
}

// Delete is the full owner delete: record removal plus best-effort asset
// cleanup.
func (h *TanukiHandler) Delete(c *fiber.Ctx) error {
	actor, err := identity.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid tanuki ID")
	}

	if err := h.tanukis.HardDelete(c.Context(), id, actor); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// SoftDelete hides an entry from listings without purging it. Admin only.
func (h *TanukiHandler) SoftDelete(c *fiber.Ctx) error {
	actor, err := identity.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid tanuki ID")
	}

	if err := h.tanukis.SoftDelete(id, actor); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// parseNearQuery parses the `near=lat,lng` list parameter. Anything
// malformed, out of range, or the (0,0) null island sentinel is treated as
// "not requested".
func parseNearQuery(s string) (float64, float64, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, false
	}
	lat, latErr := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lng, lngErr := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if latErr != nil || lngErr != nil {
		return 0, 0, false
	}
	if lat == 0 && lng == 0 {
		return 0, 0, false
	}
	if math.Abs(lat) > 90 || math.Abs(lng) > 180 {
		return 0, 0, false
	}
	return lat, lng, true
}

// formFileBytes reads an optional multipart file part. A missing part
// returns nil bytes, not an error.
func formFileBytes(c *fiber.Ctx, name string) ([]byte, error) {
	fh, err := c.FormFile(name)
	if err != nil {
		return nil, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
