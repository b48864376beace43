package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanFormatPrice(t *testing.T) {
	tests := []struct {
		cents    int64
		currency string
		want     string
	}{
		{1900, "usd", "$19.00"},
		{999, "eur", "€9.99"},
		{25000, "gbp", "£250.00"},
		{500, "USD", "$5.00"},
		{1000, "chf", "CHF 10.00"},
		{0, "usd", "$0.00"},
	}
	for _, tt := range tests {
		p := Plan{PriceCents: tt.cents, Currency: tt.currency}
		assert.Equal(t, tt.want, p.FormatPrice())
	}
}

func TestPlanFormatInterval(t *testing.T) {
	tests := []struct {
		interval string
		count    int
		want     string
	}{
		{PLAN_INTERVAL_ONE_TIME, 1, "One-time"},
		{PLAN_INTERVAL_ONE_TIME, 6, "One-time"},
		{PLAN_INTERVAL_MONTH, 1, "per month"},
		{PLAN_INTERVAL_MONTH, 3, "every 3 months"},
		{PLAN_INTERVAL_YEAR, 1, "per year"},
		{PLAN_INTERVAL_YEAR, 2, "every 2 years"},
	}
	for _, tt := range tests {
		p := Plan{Interval: tt.interval, IntervalCount: tt.count}
		assert.Equal(t, tt.want, p.FormatInterval())
	}
}

func TestPlanCreateValidate(t *testing.T) {
	valid := PlanCreate{
		Slug:       "starter-monthly",
		Name:       "Starter",
		PriceCents: 1900,
		Currency:   "usd",
		Interval:   PLAN_INTERVAL_MONTH,
	}
	require.NoError(t, valid.Validate())

	t.Run("missing name", func(t *testing.T) {
		p := valid
		p.Name = ""
		assert.Error(t, p.Validate())
	})

	t.Run("uppercase slug rejected", func(t *testing.T) {
		p := valid
		p.Slug = "Starter-Monthly"
		assert.Error(t, p.Validate())
	})

	t.Run("slug with trailing dash rejected", func(t *testing.T) {
		p := valid
		p.Slug = "starter-"
		assert.Error(t, p.Validate())
	})

	t.Run("negative price rejected", func(t *testing.T) {
		p := valid
		p.PriceCents = -100
		assert.Error(t, p.Validate())
	})

	t.Run("unknown interval rejected", func(t *testing.T) {
		p := valid
		p.Interval = "weekly"
		assert.Error(t, p.Validate())
	})

	t.Run("free plan allowed", func(t *testing.T) {
		p := valid
		p.PriceCents = 0
		assert.NoError(t, p.Validate())
	})
}
