// handlers/auth_routes.go
package handlers

import (
	"strings"

	"social-connect-platform/services"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, gateway *services.StoreGateway, session *services.SessionManager) {
	app.Post("/signup", func(c *fiber.Ctx) error {
		var req struct {
			Username string `json:"username"`
			Email    string `json:"email"`
			Phone    string `json:"phone"`
			Password string `json:"password"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		req.Username = strings.TrimSpace(req.Username)
		req.Email = strings.TrimSpace(req.Email)
		req.Phone = strings.TrimSpace(req.Phone)
		if req.Username == "" || req.Email == "" || req.Phone == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "username, email and phone are required",
			})
		}
		// The password field is accepted but never verified or stored;
		// this mock auth keeps no credentials.

		if gateway.CheckUsernameExists(c.Context(), req.Username) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Username already taken. Please choose another one.",
			})
		}

		user, err := gateway.Signup(c.Context(), req.Username, req.Email, req.Phone)
		if err != nil {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "signup failed"})
		}

		session.Login(*user)
		return c.Status(fiber.StatusCreated).JSON(user)
	})

	app.Post("/login", func(c *fiber.Ctx) error {
		var req struct {
			Identifier string `json:"identifier"`
			Password   string `json:"password"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if strings.TrimSpace(req.Identifier) == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "identifier is required"})
		}

		user, err := gateway.Login(c.Context(), req.Identifier)
		if err != nil {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "login failed"})
		}
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid credentials. Try your username, email, or phone.",
			})
		}

		session.Login(*user)
		return c.JSON(user)
	})

	app.Post("/logout", func(c *fiber.Ctx) error {
		session.Logout()
		return c.JSON(fiber.Map{"message": "logged out"})
	})

	app.Get("/session", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user": session.Current()})
	})
}
