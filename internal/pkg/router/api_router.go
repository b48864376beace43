package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/pravendra93/support-creator-web/app/controllers"
	"github.com/pravendra93/support-creator-web/internal/pkg/cache"
	"github.com/pravendra93/support-creator-web/internal/pkg/gateway"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New(limiter.Config{
		Max:     120,
		Storage: cache.Storage(),
	}))

	// Endpoints with behavior beyond forwarding get hand-written
	// handlers; everything else is a declarative gateway.Proxy spec.
	api.Post("/auth/login", controllers.HandleAPILogin)
	api.Post("/auth/logout", controllers.HandleAPILogout)
	api.Get("/auth/verify-email", controllers.HandleAPIVerifyEmail)

	api.Post("/auth/register", gateway.Proxy(gateway.Route{
		Method: fiber.MethodPost, Path: "/v1/auth/register",
		Fallback: "Registration failed",
	}))
	api.Get("/auth/me", gateway.Proxy(gateway.Route{
		Method: fiber.MethodGet, Path: "/v1/auth/me", Auth: true,
		Fallback: "Failed to fetch user",
	}))
	api.Put("/auth/me", gateway.Proxy(gateway.Route{
		Method: fiber.MethodPut, Path: "/v1/auth/me", Auth: true,
		Fallback: "Failed to update profile",
	}))
	api.Get("/accounts", gateway.Proxy(gateway.Route{
		Method: fiber.MethodGet, Path: "/v1/auth/accounts", Auth: true, CopyQuery: true,
		Fallback: "Failed to fetch accounts",
	}))

	// Tenants
	api.Get("/tenants", gateway.Proxy(gateway.Route{
		Method: fiber.MethodGet, Path: "/v1/tenants/admin/tenants", Auth: true, CopyQuery: true,
		Fallback: "Failed to fetch tenants",
	}))
	api.Post("/tenants", gateway.Proxy(gateway.Route{
		Method: fiber.MethodPost, Path: "/v1/tenants", Auth: true,
		Fallback: "Failed to create tenant",
	}))
	api.Get("/tenants/:id", gateway.Proxy(gateway.Route{
		Method: fiber.MethodGet, Path: "/v1/tenants/:id", Auth: true,
		Fallback: "Failed to fetch tenant",
	}))
	api.Put("/tenants/:id", gateway.Proxy(gateway.Route{
		Method: fiber.MethodPut, Path: "/v1/tenants/:id", Auth: true,
		Fallback: "Failed to update tenant",
	}))
	api.Get("/tenants/:id/users", gateway.Proxy(gateway.Route{
		Method: fiber.MethodGet, Path: "/v1/tenants/tenants/:id/users", Auth: true,
		Fallback: "Failed to fetch tenant users",
	}))
	api.Post("/tenants/:id/users", gateway.Proxy(gateway.Route{
		Method: fiber.MethodPost, Path: "/v1/tenants/:id/invite", Auth: true,
		Fallback: "Failed to invite tenant user",
	}))
	api.Get("/tenants/:id/chatbot", gateway.Proxy(gateway.Route{
		Method: fiber.MethodGet, Path: "/v1/tenants/:id/chatbot", Auth: true,
		Fallback: "Failed to fetch chatbot config",
	}))
	api.Put("/tenants/:id/chatbot", gateway.Proxy(gateway.Route{
		Method: fiber.MethodPut, Path: "/v1/tenants/:id/chatbot", Auth: true,
		Fallback: "Failed to update chatbot config",
	}))

	// Billing catalog
	api.Get("/plans", gateway.Proxy(gateway.Route{
		Method: fiber.MethodGet, Path: "/v1/admin/plans", Auth: true, CopyQuery: true,
		Fallback: "Failed to fetch plans",
	}))
	api.Post("/plans", gateway.Proxy(gateway.Route{
		Method: fiber.MethodPost, Path: "/v1/admin/plans", Auth: true,
		Fallback: "Failed to create plan",
	}))
	api.Get("/coupons", gateway.Proxy(gateway.Route{
		Method: fiber.MethodGet, Path: "/v1/admin/coupons", Auth: true, CopyQuery: true,
		Fallback: "Failed to fetch coupons",
	}))
	api.Get("/coupons/:id", gateway.Proxy(gateway.Route{
		Method: fiber.MethodGet, Path: "/v1/admin/coupons/:id", Auth: true,
		Fallback: "Failed to fetch coupon",
	}))
	api.Post("/coupons", controllers.HandleAPICouponCreate)
	api.Patch("/coupons/:id", controllers.HandleAPICouponUpdate)
	api.Delete("/coupons/:id", controllers.HandleAPICouponDelete)

	// Invitation flow
	api.Post("/validate-token", gateway.Proxy(gateway.Route{
		Method: fiber.MethodPost, Path: "/v1/tenants/validate-token",
		Fallback: "Failed to validate token",
	}))
	api.Post("/setup-tenant-user", gateway.Proxy(gateway.Route{
		Method: fiber.MethodPost, Path: "/v1/tenants/setup-tenant-user",
		Fallback: "Failed to set up account",
	}))

	// Logging
	api.Post("/logs", controllers.HandleAPILogSubmit)
	api.Get("/logs", controllers.HandleAPILogs)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
