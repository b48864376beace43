package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/pravendra93/support-creator-web/app/models"
	"github.com/pravendra93/support-creator-web/internal/pkg/gateway"
	"github.com/pravendra93/support-creator-web/internal/pkg/session"
)

// HandleAPICouponCreate validates the payload locally before the
// upstream is contacted; an over-100 percentage never leaves this
// process.
func HandleAPICouponCreate(c *fiber.Ctx) error {
	token := session.Token(c)
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}

	var payload models.CouponCreate
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if err := payload.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	res, err := gateway.Default().Do(fiber.MethodPost, "/v1/admin/coupons", "", token, c.Body())
	if err != nil {
		log.Printf("Create coupon proxy error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}

	if !res.OK() {
		return c.Status(res.Status).JSON(fiber.Map{"message": gateway.Message(res.Body, "Failed to create coupon")})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(fiber.StatusCreated).Send(res.Body)
}

// HandleAPICouponUpdate applies the same local validation to the PATCH
// body, then relays.
func HandleAPICouponUpdate(c *fiber.Ctx) error {
	token := session.Token(c)
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}

	var payload models.CouponUpdate
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if err := payload.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	res, err := gateway.Default().Do(fiber.MethodPatch, "/v1/admin/coupons/"+c.Params("id"), "", token, c.Body())
	if err != nil {
		log.Printf("Update coupon proxy error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}

	if !res.OK() {
		return c.Status(res.Status).JSON(fiber.Map{"message": gateway.Message(res.Body, "Failed to update coupon")})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(fiber.StatusOK).Send(res.Body)
}

// HandleAPICouponDelete relays the delete and replaces the empty
// upstream success body with a message envelope.
func HandleAPICouponDelete(c *fiber.Ctx) error {
	token := session.Token(c)
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}

	res, err := gateway.Default().Do(fiber.MethodDelete, "/v1/admin/coupons/"+c.Params("id"), "", token, nil)
	if err != nil {
		log.Printf("Delete coupon proxy error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}

	if !res.OK() {
		return c.Status(res.Status).JSON(fiber.Map{"message": gateway.Message(res.Body, "Failed to delete coupon")})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Coupon deleted successfully"})
}
