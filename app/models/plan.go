package models

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	PLAN_INTERVAL_MONTH    = "month"
	PLAN_INTERVAL_YEAR     = "year"
	PLAN_INTERVAL_ONE_TIME = "one_time"
)

// Plan is a subscription plan. Slug is the natural key and write-once
// from this UI's perspective.
type Plan struct {
	ID              string                 `json:"id"`
	Slug            string                 `json:"slug"`
	Name            string                 `json:"name"`
	Description     string                 `json:"description,omitempty"`
	PriceCents      int64                  `json:"price_cents"`
	Currency        string                 `json:"currency"`
	Interval        string                 `json:"interval"`
	IntervalCount   int                    `json:"interval_count"`
	TrialDays       int                    `json:"trial_days"`
	StripeProductID string                 `json:"stripe_product_id,omitempty"`
	StripePriceID   string                 `json:"stripe_price_id,omitempty"`
	Features        map[string]interface{} `json:"features,omitempty"`
	Meta            map[string]interface{} `json:"meta,omitempty"`
	Active          bool                   `json:"active"`
	CreatedAt       string                 `json:"created_at,omitempty"`
	UpdatedAt       string                 `json:"updated_at,omitempty"`
}

var currencySymbols = map[string]string{
	"usd": "$",
	"eur": "€",
	"gbp": "£",
}

// FormatPrice renders the plan price for display, e.g. "$19.00".
func (p *Plan) FormatPrice() string {
	sym, ok := currencySymbols[strings.ToLower(p.Currency)]
	if !ok {
		sym = strings.ToUpper(p.Currency) + " "
	}
	return fmt.Sprintf("%s%.2f", sym, float64(p.PriceCents)/100)
}

// FormatInterval renders the billing cadence label. One-time plans
// ignore the interval count.
func (p *Plan) FormatInterval() string {
	if p.Interval == PLAN_INTERVAL_ONE_TIME {
		return "One-time"
	}
	unit := "year"
	if p.Interval == PLAN_INTERVAL_MONTH {
		unit = "month"
	}
	if p.IntervalCount == 1 {
		return "per " + unit
	}
	return fmt.Sprintf("every %d %ss", p.IntervalCount, unit)
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type PlanCreate struct {
	Slug            string                 `json:"slug" validate:"required,min=2,max=50"`
	Name            string                 `json:"name" validate:"required,min=2,max=150"`
	Description     string                 `json:"description,omitempty"`
	PriceCents      int64                  `json:"price_cents" validate:"gte=0"`
	Currency        string                 `json:"currency,omitempty" validate:"omitempty,len=3"`
	Interval        string                 `json:"interval,omitempty" validate:"omitempty,oneof=month year one_time"`
	IntervalCount   int                    `json:"interval_count,omitempty" validate:"omitempty,gte=1"`
	TrialDays       int                    `json:"trial_days,omitempty" validate:"gte=0"`
	StripeProductID string                 `json:"stripe_product_id,omitempty"`
	StripePriceID   string                 `json:"stripe_price_id,omitempty"`
	Features        map[string]interface{} `json:"features,omitempty"`
	Meta            map[string]interface{} `json:"meta,omitempty"`
	Active          bool                   `json:"active"`
}

func (p *PlanCreate) Validate() error {
	v := validator.New()
	if err := v.Struct(p); err != nil {
		return err
	}
	if !slugPattern.MatchString(p.Slug) {
		return fmt.Errorf("slug may contain lowercase letters, digits and dashes only")
	}
	return nil
}
