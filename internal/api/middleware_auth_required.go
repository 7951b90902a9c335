package api

import (
	"github.com/gofiber/fiber/v2"
)

// AuthRequired validates the bearer token and attaches the embedded user id
// to the request. It deliberately does not load the user record; handlers
// report NotFound themselves when a valid token outlives its account.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	userID, err := handler.authenticateRequest(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	c.Locals(contextUserIDKey, userID)
	return c.Next()
}
