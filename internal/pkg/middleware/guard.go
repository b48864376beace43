package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/pravendra93/support-creator-web/internal/pkg/constants"
	"github.com/pravendra93/support-creator-web/internal/pkg/session"
)

// RouteGuard classifies every page request as public or protected by
// path prefix and issues the two advisory redirects before any handler
// runs: authenticated users are sent away from public screens to the
// dashboard, anonymous users are sent from protected screens to login.
// API routes are excluded; they answer 401 themselves so a fetch never
// receives a redirected HTML page.
func RouteGuard(c *fiber.Ctx) error {
	path := c.Path()

	if strings.HasPrefix(path, "/api") || isAssetPath(path) {
		return c.Next()
	}

	token := session.Token(c)
	public := isPublicPath(path)

	if token != "" && public {
		return c.Redirect(constants.DashboardRoute, fiber.StatusSeeOther)
	}

	if token == "" && !public {
		return c.Redirect(constants.LoginRoute, fiber.StatusSeeOther)
	}

	return c.Next()
}

func isPublicPath(path string) bool {
	if path == constants.PublicRoute {
		return true
	}
	for _, prefix := range constants.PublicPathPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func isAssetPath(path string) bool {
	return strings.HasPrefix(path, "/assets") ||
		strings.HasPrefix(path, "/docs") ||
		strings.HasPrefix(path, "/metrics") ||
		path == "/favicon.ico"
}
