package controllers

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/pravendra93/support-creator-web/app/models"
	"github.com/pravendra93/support-creator-web/internal/pkg/constants"
	"github.com/pravendra93/support-creator-web/internal/pkg/gateway"
	"github.com/pravendra93/support-creator-web/internal/pkg/session"
)

// couponRow is a coupon plus its render-time derived values.
type couponRow struct {
	models.Coupon
	StatusLabel   string
	DiscountText  string
	ValidFromText string
	ValidToText   string
}

func formatCouponDate(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format("02 Jan 2006")
}

// HandleCoupons lists coupons; search/status/type/sort are copied
// verbatim onto the upstream query string.
func HandleCoupons(c *fiber.Ctx) error {
	query := string(c.Request().URI().QueryString())

	res, err := gateway.Default().Do(fiber.MethodGet, "/v1/admin/coupons", query, session.Token(c), nil)
	if err != nil {
		return render(c, "coupons/index", "Coupons", fiber.Map{"Error": "Failed to load coupons. Please try again."})
	}
	if !res.OK() {
		return render(c, "coupons/index", "Coupons", fiber.Map{
			"Error": gateway.Message(res.Body, "Failed to fetch coupons"),
		})
	}

	var coupons []models.Coupon
	if err := decodeList(json.RawMessage(res.Body), &coupons); err != nil {
		return render(c, "coupons/index", "Coupons", fiber.Map{"Error": "Failed to load coupons. Please try again."})
	}

	now := time.Now()
	rows := make([]couponRow, 0, len(coupons))
	for _, cp := range coupons {
		validTo := "N/A"
		if cp.ValidUntil != nil {
			validTo = formatCouponDate(*cp.ValidUntil)
		}
		rows = append(rows, couponRow{
			Coupon:        cp,
			StatusLabel:   cp.Status(now),
			DiscountText:  cp.DiscountLabel(),
			ValidFromText: formatCouponDate(cp.ValidFrom),
			ValidToText:   validTo,
		})
	}

	return render(c, "coupons/index", "Coupons", fiber.Map{
		"Coupons": rows,
		"Search":  c.Query("search"),
		"Status":  c.Query("status"),
		"Type":    c.Query("type"),
		"Sort":    c.Query("sort"),
	})
}

// couponFromForm maps the shared coupon form (type + value pair) onto
// the exclusive amount/percentage fields.
func couponFromForm(c *fiber.Ctx) (string, models.CouponCreate) {
	value, _ := strconv.ParseFloat(c.FormValue("discount_value"), 64)
	maxUses, _ := strconv.Atoi(c.FormValue("max_uses"))

	payload := models.CouponCreate{
		CouponCode:  c.FormValue("coupon_code"),
		Description: c.FormValue("description"),
		ValidFrom:   c.FormValue("valid_from"),
		ValidUntil:  c.FormValue("valid_until"),
		IsActive:    c.FormValue("is_active") == "on",
		MaxUses:     maxUses,
	}

	discountType := c.FormValue("discount_type")
	if discountType == "percentage" {
		payload.DiscountPercentage = value
	} else {
		payload.DiscountAmount = value
	}

	return discountType, payload
}

// HandleCouponStore rejects invalid input before any upstream call is
// made.
func HandleCouponStore(c *fiber.Ctx) error {
	_, payload := couponFromForm(c)

	fm := fiber.Map{"type": "error"}

	if err := payload.Validate(); err != nil {
		fm["message"] = err.Error()
		return flash.WithError(c, fm).Redirect(constants.CouponsRoute)
	}

	if err := call(c, fiber.MethodPost, "/v1/admin/coupons", "", payload, nil, "Failed to create coupon"); err != nil {
		fm["message"] = err.Error()
		return flash.WithError(c, fm).Redirect(constants.CouponsRoute)
	}

	fm = fiber.Map{"type": "success", "message": "Coupon " + payload.CouponCode + " created"}
	return flash.WithSuccess(c, fm).Redirect(constants.CouponsRoute)
}

func HandleCouponUpdate(c *fiber.Ctx) error {
	id := c.Params("id")

	_, form := couponFromForm(c)
	payload := models.CouponUpdate{
		Description:        form.Description,
		DiscountAmount:     form.DiscountAmount,
		DiscountPercentage: form.DiscountPercentage,
		ValidFrom:          form.ValidFrom,
		ValidUntil:         form.ValidUntil,
		IsActive:           form.IsActive,
		MaxUses:            form.MaxUses,
	}

	fm := fiber.Map{"type": "error"}

	if err := payload.Validate(); err != nil {
		fm["message"] = err.Error()
		return flash.WithError(c, fm).Redirect(constants.CouponsRoute)
	}

	if err := call(c, fiber.MethodPatch, "/v1/admin/coupons/"+id, "", payload, nil, "Failed to update coupon"); err != nil {
		fm["message"] = err.Error()
		return flash.WithError(c, fm).Redirect(constants.CouponsRoute)
	}

	fm = fiber.Map{"type": "success", "message": "Coupon updated"}
	return flash.WithSuccess(c, fm).Redirect(constants.CouponsRoute)
}

// HandleCouponDelete sits behind the confirmation form on the list
// page.
func HandleCouponDelete(c *fiber.Ctx) error {
	id := c.Params("id")

	fm := fiber.Map{"type": "error"}

	res, err := gateway.Default().Do(fiber.MethodDelete, "/v1/admin/coupons/"+id, "", session.Token(c), nil)
	if err != nil {
		fm["message"] = "Failed to delete coupon"
		return flash.WithError(c, fm).Redirect(constants.CouponsRoute)
	}
	if !res.OK() {
		fm["message"] = gateway.Message(res.Body, "Failed to delete coupon")
		return flash.WithError(c, fm).Redirect(constants.CouponsRoute)
	}

	fm = fiber.Map{"type": "success", "message": "Coupon deleted successfully"}
	return flash.WithSuccess(c, fm).Redirect(constants.CouponsRoute)
}
