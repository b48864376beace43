package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pravendra93/support-creator-web/app/controllers"
	"github.com/pravendra93/support-creator-web/internal/pkg/middleware"
)

func (h HttpRouter) registerProtectedRoutes(group fiber.Router) {
	group.Get("/dashboard", middleware.RequireAuth, controllers.HandleDashboard)
	group.Post("/logout", middleware.RequireAuth, controllers.HandleAuthLogout)

	// Tenant administration
	group.Get("/tenants", middleware.RequireAuth, controllers.HandleTenants)
	group.Get("/tenants/new", middleware.RequireAuth, controllers.HandleTenantNew)
	group.Post("/tenants/create", middleware.RequireAuth, controllers.HandleTenantCreate)
	group.Get("/tenants/:id/edit", middleware.RequireAuth, controllers.HandleTenantEdit)
	group.Post("/tenants/:id/update", middleware.RequireAuth, controllers.HandleTenantUpdate)
	group.Get("/tenants/:id/users", middleware.RequireAuth, controllers.HandleTenantUsers)
	group.Post("/tenants/:id/invite", middleware.RequireAuth, controllers.HandleTenantUserInvite)
	group.Get("/tenants/:id/chatbot", middleware.RequireAuth, controllers.HandleTenantChatbot)
	group.Post("/tenants/:id/chatbot", middleware.RequireAuth, controllers.HandleTenantChatbotSave)

	// Billing catalog
	group.Get("/plans", middleware.RequireAuth, controllers.HandlePlans)
	group.Post("/plans/store", middleware.RequireAuth, controllers.HandlePlanStore)
	group.Get("/coupons", middleware.RequireAuth, controllers.HandleCoupons)
	group.Post("/coupons/store", middleware.RequireAuth, controllers.HandleCouponStore)
	group.Post("/coupons/update/:id", middleware.RequireAuth, controllers.HandleCouponUpdate)
	group.Post("/coupons/delete/:id", middleware.RequireAuth, controllers.HandleCouponDelete)

	// Operations
	group.Get("/logs", middleware.RequireAuth, controllers.HandleLogs)
	group.Get("/logs/download", middleware.RequireAuth, controllers.HandleLogsDownload)

	group.Get("/profile", middleware.RequireAuth, controllers.HandleProfile)
	group.Post("/profile/update", middleware.RequireAuth, controllers.HandleProfileUpdate)
}
