package middleware

import (
	"github.com/ahmetcoskunkizilkaya/tanuki-map/internal/dto"
	"github.com/ahmetcoskunkizilkaya/tanuki-map/internal/identity"
	"github.com/gofiber/fiber/v2"
)

// AdminRequired rejects any identity outside the static admin allow-list.
func AdminRequired(resolver *identity.Resolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := identity.FromContext(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		if !resolver.IsPrivileged(id) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Admin access required",
			})
		}

		return c.Next()
	}
}
