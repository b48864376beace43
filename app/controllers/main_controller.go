package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pravendra93/support-creator-web/internal/pkg/gateway"
)

// HandleStart renders the public landing page.
func HandleStart(c *fiber.Ctx) error {
	return render(c, "index", "SupportAI", fiber.Map{
		"PublicBackendURL": gateway.PublicBaseURL(),
	})
}

func HandleDashboard(c *fiber.Ctx) error {
	return render(c, "dashboard/index", "Dashboard", nil)
}
