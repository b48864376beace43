package controllers

import (
	"log"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/pravendra93/support-creator-web/internal/pkg/gateway"
	"github.com/pravendra93/support-creator-web/internal/pkg/session"
)

// HandleAPILogin forwards credentials upstream and, on success, stores
// the issued bearer token in the session cookie. The token itself never
// reaches the browser's scripts.
func HandleAPILogin(c *fiber.Ctx) error {
	res, err := gateway.Default().Do(fiber.MethodPost, "/v1/auth/login", "", "", c.Body())
	if err != nil {
		log.Printf("Login proxy error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}

	if !res.OK() {
		return c.Status(res.Status).JSON(fiber.Map{"message": gateway.Message(res.Body, "Login failed")})
	}

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if err := res.JSON(&payload); err != nil || payload.AccessToken == "" {
		log.Printf("Login proxy error: upstream success without access token")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}

	session.Set(c, payload.AccessToken)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Login successful"})
}

// HandleAPILogout revokes the upstream token when one is present and
// always clears the cookie. Logout cannot fail from the caller's
// perspective.
func HandleAPILogout(c *fiber.Ctx) error {
	if token := session.Token(c); token != "" {
		if _, err := gateway.Default().Do(fiber.MethodPost, "/v1/auth/revoke-token", "", token, nil); err != nil {
			log.Printf("Logout proxy error: %v", err)
		}
	}

	session.Clear(c)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Logged out successfully"})
}

// HandleAPIVerifyEmail relays the e-mail verification token. An
// upstream "already verified" status is a success variant, not an
// error.
func HandleAPIVerifyEmail(c *fiber.Ctx) error {
	token := c.Query("token")
	if token == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Missing verification token"})
	}

	query := url.Values{"token": {token}, "mode": {"json"}}
	res, err := gateway.Default().Do(fiber.MethodGet, "/v1/auth/verify-email", query.Encode(), "", nil)
	if err != nil {
		log.Printf("Verify email proxy error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}

	if res.OK() {
		var payload struct {
			Status string `json:"status"`
		}
		_ = res.JSON(&payload)
		message := "Email verified successfully."
		if payload.Status == "already_verified" {
			message = "Email is already verified."
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": message})
	}

	return c.Status(res.Status).JSON(fiber.Map{
		"message": gateway.Message(res.Body, "Verification failed. The token may be invalid or expired."),
	})
}
