package router

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"

	"github.com/pravendra93/support-creator-web/app/controllers"
	"github.com/pravendra93/support-creator-web/internal/pkg/env"
)

// newCSRFConfig protects every HTML form flow; the JSON proxy routes
// are exempt (same-origin fetches guarded by SameSite=Lax).
func newCSRFConfig() csrf.Config {
	return csrf.Config{
		KeyLookup:      "form:_csrf",
		ContextKey:     "csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		Expiration:     1 * time.Hour,
		CookieSecure:   !env.IsDev(),
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/api/")
		},
	}
}

func (h HttpRouter) registerPublicRoutes(group fiber.Router) {
	group.Get("/", controllers.HandleStart)

	// Auth screens
	group.Get("/login", controllers.HandleAuthLogin)
	group.Post("/login", controllers.HandleAuthLogin)
	group.Get("/register", controllers.HandleAuthRegister)
	group.Post("/register", controllers.HandleAuthRegister)
	group.Get("/verify-email", controllers.HandleVerifyEmail)

	// Invitation flow for tenant sub-users
	group.Get("/setup-account", controllers.HandleSetupAccount)
	group.Post("/setup-account", controllers.HandleSetupAccountSubmit)
}
