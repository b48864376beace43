package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/pravendra93/support-creator-web/app/models"
	"github.com/pravendra93/support-creator-web/internal/pkg/gateway"
	"github.com/pravendra93/support-creator-web/internal/pkg/session"
)

// HandleAPILogSubmit forwards one log record to the backend ingest.
// Unauthenticated: the in-page error reporter must work on public
// screens too. The payload is validated before it leaves the process,
// since anyone can hit this route.
func HandleAPILogSubmit(c *fiber.Ctx) error {
	var entry models.LogEntry
	if err := c.BodyParser(&entry); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid log entry"})
	}
	if err := entry.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid log entry"})
	}

	res, err := gateway.Default().Do(fiber.MethodPost, "/v1/logs/", "", "", c.Body())
	if err != nil {
		log.Printf("Logging proxy error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}

	if !res.OK() {
		log.Printf("Backend logging failed: %d", res.Status)
		return c.Status(res.Status).JSON(fiber.Map{"message": "Failed to log to backend"})
	}

	return c.JSON(fiber.Map{"status": "ok"})
}

// HandleAPILogs retrieves the application log. An upstream 404 is a
// distinguished "no log file yet" condition rather than a generic
// failure.
func HandleAPILogs(c *fiber.Ctx) error {
	token := session.Token(c)
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}

	res, err := gateway.Default().Do(fiber.MethodGet, "/v1/logs/", "", token, nil)
	if err != nil {
		log.Printf("Get logs proxy error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}

	if res.Status == fiber.StatusNotFound {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Log file not found"})
	}

	if !res.OK() {
		return c.Status(res.Status).JSON(fiber.Map{"message": gateway.Message(res.Body, "Failed to fetch logs")})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(fiber.StatusOK).Send(res.Body)
}
