package viewmodel

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/pravendra93/support-creator-web/internal/pkg/constants"
	"github.com/pravendra93/support-creator-web/internal/pkg/usercontext"
)

type Layout struct {
	Title      string
	IsLoggedIn bool
	User       usercontext.UserContext
	Msg        fiber.Map
	CSRF       string
	Nav        []NavItem
}

type NavItem struct {
	Name   string
	Href   string
	Active bool
}

// NewLayout assembles the data every page template needs: the cached
// user context, any flash message, the CSRF token, and the navigation
// filtered by the user's role. Roles never gate data access here; the
// backend re-checks authorization on every proxied call.
func NewLayout(c *fiber.Ctx, title string) Layout {
	user := usercontext.GetUserContext(c)

	csrfToken := ""
	if v, ok := c.Locals("csrf").(string); ok {
		csrfToken = v
	}

	return Layout{
		Title:      title,
		IsLoggedIn: user.IsLoggedIn,
		User:       user,
		Msg:        flash.Get(c),
		CSRF:       csrfToken,
		Nav:        buildNav(user, c.Path()),
	}
}

func buildNav(user usercontext.UserContext, path string) []NavItem {
	if !user.IsLoggedIn {
		return nil
	}

	items := []NavItem{
		{Name: "Dashboard", Href: constants.DashboardRoute},
	}
	if user.IsSuperAdmin() {
		items = append(items,
			NavItem{Name: "Tenants", Href: constants.TenantsRoute},
			NavItem{Name: "Plans", Href: constants.PlansRoute},
			NavItem{Name: "Coupons", Href: constants.CouponsRoute},
			NavItem{Name: "Logs", Href: constants.LogsRoute},
		)
	}
	items = append(items, NavItem{Name: "Profile", Href: constants.ProfileRoute})

	for i := range items {
		items[i].Active = items[i].Href == path
	}
	return items
}
