package usercontext

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserContext_DefaultsToAnonymous(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		user := GetUserContext(c)
		assert.False(t, user.IsLoggedIn)
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestGetUserContext_RoundTrip(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		c.Locals(KeyUserContext, UserContext{ID: "u1", Email: "a@b.co", IsLoggedIn: true})
		user := GetUserContext(c)
		assert.True(t, user.IsLoggedIn)
		assert.Equal(t, "u1", user.ID)
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", UserContext{FirstName: "Ada", LastName: "Lovelace"}.DisplayName())
	assert.Equal(t, "Ada", UserContext{FirstName: "Ada"}.DisplayName())
	assert.Equal(t, "a@b.co", UserContext{Email: "a@b.co"}.DisplayName())
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "AL", UserContext{FirstName: "Ada", LastName: "Lovelace"}.Initials())
	assert.Equal(t, "A", UserContext{FirstName: "ada"}.Initials())
	assert.Equal(t, "X", UserContext{Email: "x@y.z"}.Initials())
	assert.Empty(t, UserContext{}.Initials())
	// Multibyte first letters must come out as whole runes.
	assert.Equal(t, "ÉZ", UserContext{FirstName: "Émile", LastName: "Zola"}.Initials())
	assert.Equal(t, "Ø", UserContext{Email: "øyvind@b.co"}.Initials())
}

func TestRoleLabel(t *testing.T) {
	assert.Equal(t, "Admin", UserContext{Role: RoleSuperAdmin}.RoleLabel())
	assert.Equal(t, "Tenant Admin", UserContext{Role: RoleTenantAdmin}.RoleLabel())
	assert.Equal(t, "Viewer", UserContext{Role: RoleViewer}.RoleLabel())
	// Open set: unknown role slugs pass through untouched.
	assert.Equal(t, "billing_bot", UserContext{Role: "billing_bot"}.RoleLabel())
}

func TestIsSuperAdmin(t *testing.T) {
	assert.True(t, UserContext{Role: RoleSuperAdmin}.IsSuperAdmin())
	assert.False(t, UserContext{Role: RoleTenantAdmin}.IsSuperAdmin())
	assert.False(t, UserContext{}.IsSuperAdmin())
}
