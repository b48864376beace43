package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/pravendra93/support-creator-web/internal/pkg/constants"
	"github.com/pravendra93/support-creator-web/internal/pkg/gateway"
	"github.com/pravendra93/support-creator-web/internal/pkg/session"
	"github.com/pravendra93/support-creator-web/internal/pkg/usercontext"
)

// UserContextMiddleware resolves the current user once per page request
// through the gateway and caches the result in Locals for the request's
// lifetime. Login and register skip the lookup entirely; any failure,
// including a non-2xx from upstream, resolves to anonymous (fail closed).
func UserContextMiddleware(c *fiber.Ctx) error {
	path := c.Path()

	// API routes carry the token per call and never render navigation.
	if strings.HasPrefix(path, "/api") || isAssetPath(path) {
		return c.Next()
	}

	if path == constants.LoginRoute || path == constants.RegisterRoute {
		setAnonymous(c)
		return c.Next()
	}

	token := session.Token(c)
	if token == "" {
		setAnonymous(c)
		return c.Next()
	}

	res, err := gateway.Default().Do(fiber.MethodGet, "/v1/auth/me", "", token, nil)
	if err != nil || !res.OK() {
		setAnonymous(c)
		return c.Next()
	}

	var user usercontext.UserContext
	if err := res.JSON(&user); err != nil {
		setAnonymous(c)
		return c.Next()
	}

	user.IsLoggedIn = true
	c.Locals(usercontext.KeyUserContext, user)

	return c.Next()
}

func setAnonymous(c *fiber.Ctx) {
	c.Locals(usercontext.KeyUserContext, usercontext.UserContext{IsLoggedIn: false})
}
