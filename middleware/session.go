// middleware/session.go
package middleware

import (
	"log"

	"social-connect-platform/services"

	"github.com/gofiber/fiber/v2"
)

// RequireSession rejects requests to member-only routes when no user is
// logged in, mirroring the app's login redirects. The current user is
// attached to the request context for handlers.
func RequireSession(session *services.SessionManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := session.Current()
		if user == nil {
			log.Printf("🚫 [SESSION] anonymous request rejected for %s", c.Path())
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "login required",
			})
		}

		c.Locals("current_user", user)
		return c.Next()
	}
}
