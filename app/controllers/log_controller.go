package controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pravendra93/support-creator-web/internal/pkg/gateway"
	"github.com/pravendra93/support-creator-web/internal/pkg/session"
)

func fetchLogText(c *fiber.Ctx) (string, bool, error) {
	res, err := gateway.Default().Do(fiber.MethodGet, "/v1/logs/", "", session.Token(c), nil)
	if err != nil {
		return "", false, fmt.Errorf("Failed to fetch logs.")
	}
	if res.Status == fiber.StatusNotFound {
		return "", true, nil
	}
	if !res.OK() {
		return "", false, fmt.Errorf("%s", gateway.Message(res.Body, "Failed to fetch logs."))
	}
	return string(res.Body), false, nil
}

// HandleLogs renders the application log viewer. A missing log file is
// an informational state, not a failure.
func HandleLogs(c *fiber.Ctx) error {
	text, notFound, err := fetchLogText(c)
	if err != nil {
		return render(c, "logs/index", "System logs", fiber.Map{"Error": err.Error()})
	}
	if notFound {
		return render(c, "logs/index", "System logs", fiber.Map{"Error": "Log file not found."})
	}

	return render(c, "logs/index", "System logs", fiber.Map{"Logs": text})
}

// HandleLogsDownload streams the same log content as an attachment.
func HandleLogsDownload(c *fiber.Ctx) error {
	text, notFound, err := fetchLogText(c)
	if err != nil || notFound {
		return c.Redirect("/logs", fiber.StatusSeeOther)
	}

	filename := fmt.Sprintf("application-logs-%s.log", time.Now().UTC().Format(time.RFC3339))
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(text)
}
