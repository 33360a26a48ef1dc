// handlers/contact_routes.go
package handlers

import (
	"strings"

	"social-connect-platform/services"

	"github.com/gofiber/fiber/v2"
)

func SetupContactRoutes(app *fiber.App, gateway *services.StoreGateway) {
	app.Post("/contact", func(c *fiber.Ctx) error {
		var req struct {
			Name    string `json:"name"`
			Email   string `json:"email"`
			Message string `json:"message"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		req.Name = strings.TrimSpace(req.Name)
		req.Email = strings.TrimSpace(req.Email)
		req.Message = strings.TrimSpace(req.Message)
		if req.Name == "" || req.Email == "" || req.Message == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "name, email and message are required",
			})
		}

		if err := gateway.SendContactMessage(c.Context(), req.Name, req.Email, req.Message); err != nil {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "failed to send message"})
		}

		return c.JSON(fiber.Map{"message": "Message Sent!"})
	})

	app.Get("/privacy", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"title":   "Privacy Policy",
			"updated": "June 2024",
			"sections": []fiber.Map{
				{
					"heading": "Data Collection",
					"body":    "We collect information such as your name, email, phone number, and interaction history to provide better services.",
				},
				{
					"heading": "Usage of Data",
					"body":    "Your data is used solely for authentication, processing applications, and personalizing your rewards experience.",
				},
			},
		})
	})
}
