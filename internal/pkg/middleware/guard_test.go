package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pravendra93/support-creator-web/internal/pkg/constants"
	"github.com/pravendra93/support-creator-web/internal/pkg/session"
)

func newGuardedApp() *fiber.App {
	app := fiber.New()
	app.Use(RouteGuard)

	ok := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }
	app.Get("/", ok)
	app.Get("/login", ok)
	app.Get("/register", ok)
	app.Get("/verify-email", ok)
	app.Get("/setup-account", ok)
	app.Get("/dashboard", ok)
	app.Get("/tenants", ok)
	app.Get("/api/tenants", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	})
	return app
}

func withSession(req *http.Request) *http.Request {
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "tok"})
	return req
}

func TestRouteGuard_AnonymousOnProtectedRedirectsToLogin(t *testing.T) {
	app := newGuardedApp()

	for _, path := range []string{"/dashboard", "/tenants"} {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode, path)
		assert.Equal(t, constants.LoginRoute, resp.Header.Get("Location"), path)
	}
}

func TestRouteGuard_AuthenticatedOnPublicRedirectsToDashboard(t *testing.T) {
	app := newGuardedApp()

	for _, path := range []string{"/", "/login", "/register"} {
		resp, err := app.Test(withSession(httptest.NewRequest(fiber.MethodGet, path, nil)))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode, path)
		assert.Equal(t, constants.DashboardRoute, resp.Header.Get("Location"), path)
	}
}

func TestRouteGuard_AnonymousOnPublicPassesThrough(t *testing.T) {
	app := newGuardedApp()

	for _, path := range []string{"/", "/login", "/register", "/verify-email", "/setup-account"} {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, path)
	}
}

func TestRouteGuard_AuthenticatedOnProtectedPassesThrough(t *testing.T) {
	app := newGuardedApp()

	resp, err := app.Test(withSession(httptest.NewRequest(fiber.MethodGet, "/dashboard", nil)))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

// API routes answer 401 themselves; a fetch must never receive a
// redirect to an HTML page.
func TestRouteGuard_SkipsAPIPaths(t *testing.T) {
	app := newGuardedApp()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/tenants", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("Location"))
}

func TestRequireAuth_RedirectsWithoutSession(t *testing.T) {
	app := fiber.New()
	app.Get("/profile", RequireAuth, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/profile", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, constants.LoginRoute, resp.Header.Get("Location"))

	resp, err = app.Test(withSession(httptest.NewRequest(fiber.MethodGet, "/profile", nil)))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireAPISessionAuth_Returns401JSON(t *testing.T) {
	app := fiber.New()
	app.Get("/api/me", RequireAPISessionAuth, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/me", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")
}
