// handlers/spin_routes.go
package handlers

import (
	"errors"

	"social-connect-platform/middleware"
	"social-connect-platform/models"
	"social-connect-platform/services"

	"github.com/gofiber/fiber/v2"
)

func SetupSpinRoutes(app *fiber.App, engine *services.SpinEngine, session *services.SessionManager) {
	// 🔐 Spinning requires a logged-in session; wins attach to the profile.
	secured := app.Group("/spin", middleware.RequireSession(session))

	secured.Get("/prizes", func(c *fiber.Ctx) error {
		return c.JSON(models.WheelSlots)
	})

	secured.Post("/", func(c *fiber.Ctx) error {
		rotation, err := engine.Spin()
		if errors.Is(err, services.ErrAlreadySpinning) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "spin already in progress"})
		}

		return c.JSON(fiber.Map{
			"state":    services.SpinStateSpinning,
			"rotation": rotation,
		})
	})

	// Clients poll here until the wheel settles and the prize appears.
	secured.Get("/status", func(c *fiber.Ctx) error {
		state, rotation, result := engine.Status()
		resp := fiber.Map{
			"state":    state,
			"rotation": rotation,
		}
		if result != nil {
			resp["result"] = result
		}
		return c.JSON(resp)
	})
}
