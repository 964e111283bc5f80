package identity

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// FromContext builds the acting Identity from the JWT claims that the auth
// middleware stored in Fiber locals.
func FromContext(c *fiber.Ctx) (Identity, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return Identity{}, errors.New("invalid token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, errors.New("invalid claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return Identity{}, errors.New("missing sub claim")
	}
	id, err := uuid.Parse(sub)
	if err != nil {
		return Identity{}, err
	}

	kind := KindRegistered
	if k, _ := claims["kind"].(string); k == string(KindGuest) {
		kind = KindGuest
	}

	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)

	return Identity{ID: id, Kind: kind, Email: email, Name: name}, nil
}

// DeviceID extracts the guest session's device id claim, if present.
func DeviceID(c *fiber.Ctx) string {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return ""
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	device, _ := claims["device"].(string)
	return device
}
