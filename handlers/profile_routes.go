// handlers/profile_routes.go
package handlers

import (
	"path/filepath"
	"strings"

	"social-connect-platform/middleware"
	"social-connect-platform/models"
	"social-connect-platform/services"
	"social-connect-platform/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const maxAvatarSize = 5 * 1024 * 1024 // 5MB

func SetupProfileRoutes(app *fiber.App, gateway *services.StoreGateway, session *services.SessionManager) {
	// 🔐 All profile routes require a logged-in session.
	secured := app.Group("/profile", middleware.RequireSession(session))

	secured.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(c.Locals("current_user").(*models.User))
	})

	secured.Patch("/", func(c *fiber.Ctx) error {
		var req models.UserUpdate
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		user := c.Locals("current_user").(*models.User)
		if err := gateway.UpdateUserProfile(c.Context(), user.ID, req); err != nil {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "profile update failed"})
		}

		// The store does not return the merged record; merge locally.
		return c.JSON(session.UpdateCurrentUser(req))
	})

	secured.Post("/avatar", func(c *fiber.Ctx) error {
		avatarFile, err := c.FormFile("avatar")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "avatar file is required"})
		}
		if avatarFile.Size > maxAvatarSize {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "avatar too large (max 5MB)"})
		}

		ext := strings.ToLower(filepath.Ext(avatarFile.Filename))
		if ext == "" {
			ext = ".png"
		}
		key := "avatars/" + uuid.NewString() + ext

		avatarURL, err := utils.UploadFileToR2(avatarFile, key)
		if err == utils.ErrR2NotConfigured {
			// Local-disk fallback, served under /uploads.
			localPath := utils.GetUploadPath(key)
			if err := utils.SaveFile(avatarFile, localPath); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save avatar"})
			}
			avatarURL = "/" + filepath.ToSlash(localPath)
		} else if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to upload avatar"})
		}

		user := c.Locals("current_user").(*models.User)
		update := models.UserUpdate{AvatarURL: &avatarURL}
		if err := gateway.UpdateUserProfile(c.Context(), user.ID, update); err != nil {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "profile update failed"})
		}

		return c.JSON(session.UpdateCurrentUser(update))
	})
}
