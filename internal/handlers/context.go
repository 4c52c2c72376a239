package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// userIDFromContext extracts the authenticated user ID stored by the
// auth middleware.
func userIDFromContext(c *fiber.Ctx) (string, error) {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("no authenticated user in request context")
	}
	return userID, nil
}
