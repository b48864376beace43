package gateway

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/pravendra93/support-creator-web/internal/pkg/session"
)

// Route describes one browser-facing proxy endpoint. Every plain
// read-cookie/forward/translate handler in the API layer is an instance
// of this; only endpoints with extra behavior (login, logout, logs,
// email verification) get hand-written handlers.
type Route struct {
	// Method used for the upstream call.
	Method string
	// Upstream path; ":id" is substituted with the route parameter.
	Path string
	// Auth requires the session cookie before the upstream is contacted.
	Auth bool
	// CopyQuery relays the incoming query string verbatim.
	CopyQuery bool
	// SuccessStatus overrides the relayed status on success (0 = relay).
	SuccessStatus int
	// Fallback is the message used when the upstream error body carries
	// no usable message.
	Fallback string
}

// Proxy builds the handler for a Route: precondition-check the session
// cookie, forward one call upstream, relay the response or a normalized
// {message} error envelope.
func Proxy(spec Route) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := session.Token(c)
		if spec.Auth && token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
		}

		path := spec.Path
		if strings.Contains(path, ":id") {
			path = strings.Replace(path, ":id", c.Params("id"), 1)
		}

		var query string
		if spec.CopyQuery {
			query = string(c.Request().URI().QueryString())
		}

		var body []byte
		if spec.Method != fiber.MethodGet && spec.Method != fiber.MethodDelete {
			body = c.Body()
		}

		res, err := Default().Do(spec.Method, path, query, token, body)
		if err != nil {
			log.Printf("[gateway] %s %s: %v", spec.Method, path, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
		}

		if !res.OK() {
			return c.Status(res.Status).JSON(fiber.Map{"message": Message(res.Body, spec.Fallback)})
		}

		status := res.Status
		if spec.SuccessStatus != 0 {
			status = spec.SuccessStatus
		}

		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Status(status).Send(res.Body)
	}
}
