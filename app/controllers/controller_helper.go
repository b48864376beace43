package controllers

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/pravendra93/support-creator-web/internal/pkg/gateway"
	"github.com/pravendra93/support-creator-web/internal/pkg/session"
	"github.com/pravendra93/support-creator-web/internal/pkg/viewmodel"
)

// render wraps c.Render with the shared layout data.
func render(c *fiber.Ctx, view, title string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["Layout"] = viewmodel.NewLayout(c, title)
	return c.Render(view, data, "layouts/main")
}

// call performs one authenticated upstream request on behalf of a page
// and decodes the response into out (which may be nil). The returned
// error message is safe to show to the user; the underlying cause is
// only logged.
func call(c *fiber.Ctx, method, path, query string, body interface{}, out interface{}, fallback string) error {
	var raw []byte
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		if err != nil {
			log.Printf("[pages] %s %s: marshal: %v", method, path, err)
			return errors.New(fallback)
		}
	}

	res, err := gateway.Default().Do(method, path, query, session.Token(c), raw)
	if err != nil {
		log.Printf("[pages] %s %s: %v", method, path, err)
		return errors.New(fallback)
	}

	if !res.OK() {
		return errors.New(gateway.Message(res.Body, fallback))
	}

	if out != nil {
		if err := res.JSON(out); err != nil {
			log.Printf("[pages] %s %s: decode: %v", method, path, err)
			return errors.New(fallback)
		}
	}

	return nil
}

// errInternal logs the cause and returns the user-safe fallback.
func errInternal(fallback string, err error) error {
	log.Printf("[pages] %s: %v", fallback, err)
	return errors.New(fallback)
}

// errUpstream translates an upstream error body into a displayable error.
func errUpstream(res *gateway.Result, fallback string) error {
	return errors.New(gateway.Message(res.Body, fallback))
}

// decodeList accepts both upstream list shapes: a bare JSON array or a
// paginated {items: [...]} envelope.
func decodeList(data json.RawMessage, out interface{}) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err == nil {
		return nil
	}
	var envelope struct {
		Items json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}
	if len(envelope.Items) == 0 {
		return nil
	}
	return json.Unmarshal(envelope.Items, out)
}
