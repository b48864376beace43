package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/csrf"

	"github.com/pravendra93/support-creator-web/internal/pkg/middleware"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// Route guard first: advisory redirects based on cookie presence,
	// before any page handler runs.
	app.Use(middleware.RouteGuard)

	// Resolve the current user once per page request.
	app.Use(middleware.UserContextMiddleware)

	// All page routes share one CSRF-protected group; the per-route
	// RequireAuth decides which of them need a session.
	group := app.Group("", cors.New(), csrf.New(newCSRFConfig()))
	h.registerPublicRoutes(group)
	h.registerProtectedRoutes(group)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
