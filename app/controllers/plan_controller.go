package controllers

import (
	"encoding/json"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/pravendra93/support-creator-web/app/models"
	"github.com/pravendra93/support-creator-web/internal/pkg/constants"
	"github.com/pravendra93/support-creator-web/internal/pkg/gateway"
	"github.com/pravendra93/support-creator-web/internal/pkg/session"
)

type planRow struct {
	models.Plan
	PriceText    string
	IntervalText string
}

// HandlePlans lists subscription plans, optionally only the active
// ones.
func HandlePlans(c *fiber.Ctx) error {
	onlyActive := c.Query("only_active", "false")

	res, err := gateway.Default().Do(fiber.MethodGet, "/v1/admin/plans", "only_active="+onlyActive, session.Token(c), nil)
	if err != nil {
		return render(c, "plans/index", "Plans", fiber.Map{"Error": "Failed to fetch plans"})
	}
	if !res.OK() {
		return render(c, "plans/index", "Plans", fiber.Map{
			"Error": gateway.Message(res.Body, "Failed to fetch plans"),
		})
	}

	var plans []models.Plan
	if err := decodeList(json.RawMessage(res.Body), &plans); err != nil {
		return render(c, "plans/index", "Plans", fiber.Map{"Error": "Failed to fetch plans"})
	}

	rows := make([]planRow, 0, len(plans))
	for _, p := range plans {
		rows = append(rows, planRow{
			Plan:         p,
			PriceText:    p.FormatPrice(),
			IntervalText: p.FormatInterval(),
		})
	}

	return render(c, "plans/index", "Plans", fiber.Map{
		"Plans":      rows,
		"OnlyActive": onlyActive == "true",
	})
}

// HandlePlanStore creates a plan from the inline form. The slug is
// write-once; editing re-uses the same form with the slug input
// disabled.
func HandlePlanStore(c *fiber.Ctx) error {
	priceCents, _ := strconv.ParseInt(c.FormValue("price_cents"), 10, 64)
	intervalCount, _ := strconv.Atoi(c.FormValue("interval_count"))
	trialDays, _ := strconv.Atoi(c.FormValue("trial_days"))
	if intervalCount == 0 {
		intervalCount = 1
	}

	payload := models.PlanCreate{
		Slug:            c.FormValue("slug"),
		Name:            c.FormValue("name"),
		Description:     c.FormValue("description"),
		PriceCents:      priceCents,
		Currency:        c.FormValue("currency", "usd"),
		Interval:        c.FormValue("interval", models.PLAN_INTERVAL_MONTH),
		IntervalCount:   intervalCount,
		TrialDays:       trialDays,
		StripeProductID: c.FormValue("stripe_product_id"),
		StripePriceID:   c.FormValue("stripe_price_id"),
		Active:          c.FormValue("active") == "on",
	}

	fm := fiber.Map{"type": "error"}

	// Features/meta arrive as free-form JSON textareas.
	if raw := c.FormValue("features"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &payload.Features); err != nil {
			fm["message"] = "Features must be valid JSON"
			return flash.WithError(c, fm).Redirect(constants.PlansRoute)
		}
	}
	if raw := c.FormValue("meta"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &payload.Meta); err != nil {
			fm["message"] = "Meta must be valid JSON"
			return flash.WithError(c, fm).Redirect(constants.PlansRoute)
		}
	}

	if err := payload.Validate(); err != nil {
		fm["message"] = err.Error()
		return flash.WithError(c, fm).Redirect(constants.PlansRoute)
	}

	if err := call(c, fiber.MethodPost, "/v1/admin/plans", "", payload, nil, "Failed to create plan"); err != nil {
		fm["message"] = err.Error()
		return flash.WithError(c, fm).Redirect(constants.PlansRoute)
	}

	fm = fiber.Map{"type": "success", "message": "Plan " + payload.Slug + " created"}
	return flash.WithSuccess(c, fm).Redirect(constants.PlansRoute)
}
