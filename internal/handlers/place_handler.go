package handlers

import (
	"github.com/ahmetcoskunkizilkaya/tanuki-map/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/tanuki-map/internal/places"
	"github.com/gofiber/fiber/v2"
)

type PlaceHandler struct {
	search places.Search
}

func NewPlaceHandler(search places.Search) *PlaceHandler {
	return &PlaceHandler{search: search}
}

// Search looks up candidate places for optional linkage on an entry.
func (h *PlaceHandler) Search(c *fiber.Ctx) error {
	query := c.Query("query")
	if query == "" {
		return badRequest(c, "Query is required")
	}

	lat := c.QueryFloat("lat", 0)
	lng := c.QueryFloat("lng", 0)

	results, err := h.search.Search(c.Context(), query, lat, lng)
	if err != nil {
		return respondError(c, apperr.Collaborator("place search", err))
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"places": results}})
}
