// handlers/feed_routes.go
package handlers

import (
	"errors"

	"social-connect-platform/middleware"
	"social-connect-platform/models"
	"social-connect-platform/services"

	"github.com/gofiber/fiber/v2"
)

func SetupFeedRoutes(app *fiber.App, gateway *services.StoreGateway, cache *services.CatalogCache, session *services.SessionManager) {
	// 🔓 Public: anyone can browse feeds and read comments.
	app.Get("/videos", func(c *fiber.Ctx) error {
		category := c.Query("category")
		if category != "" && !models.ValidCategory(category) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown category"})
		}

		videos, ok := cache.Fresh()
		if !ok {
			var err error
			videos, err = gateway.ListVideos(c.Context(), "")
			if err != nil {
				return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "failed to fetch videos"})
			}
			cache.Put(videos)
		}

		return c.JSON(services.FilterByCategory(videos, category))
	})

	app.Get("/videos/:id/comments", func(c *fiber.Ctx) error {
		comments, err := gateway.ListComments(c.Context(), c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "failed to fetch comments"})
		}

		services.SortCommentsNewestFirst(comments)
		return c.JSON(comments)
	})

	// 🔐 Posting a comment requires a logged-in session.
	app.Post("/videos/:id/comments", middleware.RequireSession(session), func(c *fiber.Ctx) error {
		var req struct {
			Text string `json:"text"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		user := c.Locals("current_user").(*models.User)
		comment, err := gateway.PostComment(c.Context(), c.Params("id"), user.ID, user.Username, req.Text)
		if errors.Is(err, services.ErrEmptyComment) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "comment text is empty"})
		}
		if err != nil {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Error posting comment"})
		}

		return c.Status(fiber.StatusCreated).JSON(comment)
	})
}
