package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pravendra93/support-creator-web/internal/pkg/constants"
	"github.com/pravendra93/support-creator-web/internal/pkg/session"
)

// RequireAuth ensures the session cookie is present on page routes;
// redirects to /login if missing. Presence-only: token validity is
// judged by the backend on every proxied call.
func RequireAuth(c *fiber.Ctx) error {
	if session.Token(c) == "" {
		return c.Redirect(constants.LoginRoute, fiber.StatusSeeOther)
	}
	return c.Next()
}

// RequireAPISessionAuth ensures the session cookie is present on API
// routes and returns a JSON 401 instead of a redirect.
func RequireAPISessionAuth(c *fiber.Ctx) error {
	if session.Token(c) == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized",
		})
	}
	return c.Next()
}
