package viewmodel

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pravendra93/support-creator-web/internal/pkg/usercontext"
)

func navNames(items []NavItem) []string {
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Name)
	}
	return names
}

func TestBuildNav_AnonymousHasNone(t *testing.T) {
	assert.Nil(t, buildNav(usercontext.UserContext{}, "/"))
}

func TestBuildNav_SuperAdminSeesAdminSections(t *testing.T) {
	user := usercontext.UserContext{IsLoggedIn: true, Role: usercontext.RoleSuperAdmin}
	items := buildNav(user, "/tenants")

	assert.Equal(t, []string{"Dashboard", "Tenants", "Plans", "Coupons", "Logs", "Profile"}, navNames(items))

	for _, it := range items {
		assert.Equal(t, it.Href == "/tenants", it.Active, it.Name)
	}
}

func TestBuildNav_RegularUserSeesBaseSectionsOnly(t *testing.T) {
	user := usercontext.UserContext{IsLoggedIn: true, Role: usercontext.RoleTenantAdmin}
	items := buildNav(user, "/dashboard")

	assert.Equal(t, []string{"Dashboard", "Profile"}, navNames(items))
	assert.True(t, items[0].Active)
}

func TestNewLayout_InsideRequest(t *testing.T) {
	app := fiber.New()
	app.Get("/dashboard", func(c *fiber.Ctx) error {
		c.Locals(usercontext.KeyUserContext, usercontext.UserContext{
			IsLoggedIn: true,
			FirstName:  "Ada",
			Role:       usercontext.RoleSuperAdmin,
		})
		c.Locals("csrf", "csrf-token")

		layout := NewLayout(c, "Dashboard")
		assert.Equal(t, "Dashboard", layout.Title)
		assert.True(t, layout.IsLoggedIn)
		assert.Equal(t, "csrf-token", layout.CSRF)
		assert.NotEmpty(t, layout.Nav)
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/dashboard", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
