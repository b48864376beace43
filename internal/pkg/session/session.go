package session

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pravendra93/support-creator-web/internal/pkg/env"
)

// CookieName is the cookie carrying the upstream bearer token. The value
// is opaque to this application; only the backend can judge its validity.
const CookieName = "session_token"

// Lifetime matches the upstream token lifetime of 7 days.
const Lifetime = 7 * 24 * time.Hour

// Token returns the bearer token from the session cookie, or "" when the
// browser sent none.
func Token(c *fiber.Ctx) string {
	return c.Cookies(CookieName)
}

// Set stores the bearer token in the session cookie.
func Set(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(Lifetime.Seconds()),
		HTTPOnly: true,
		Secure:   !env.IsDev(),
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// Clear expires the session cookie.
func Clear(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   !env.IsDev(),
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
