package models

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

// Derived coupon display states, never stored.
const (
	COUPON_STATUS_ACTIVE    = "Active"
	COUPON_STATUS_INACTIVE  = "Inactive"
	COUPON_STATUS_EXPIRED   = "Expired"
	COUPON_STATUS_SCHEDULED = "Scheduled"
)

// Coupon as returned by the backend. Exactly one of DiscountAmount and
// DiscountPercentage is expected to be nonzero.
type Coupon struct {
	ID                 string     `json:"id"`
	CouponCode         string     `json:"coupon_code"`
	Description        string     `json:"description,omitempty"`
	DiscountAmount     float64    `json:"discount_amount"`
	DiscountPercentage float64    `json:"discount_percentage"`
	ValidFrom          time.Time  `json:"valid_from"`
	ValidUntil         *time.Time `json:"valid_until"`
	IsActive           bool       `json:"is_active"`
	MaxUses            int        `json:"max_uses"`
	CurrentUses        int        `json:"current_uses"`
	TimesUsed          int        `json:"times_used"`
	CreatedAt          time.Time  `json:"created_at"`
}

// Uses unifies the two field names the backend has used for the redeem
// counter.
func (cp Coupon) Uses() int {
	if cp.CurrentUses > 0 {
		return cp.CurrentUses
	}
	return cp.TimesUsed
}

// Status derives the display state from the stored flags and date range
// against the given wall-clock time. Inactive wins over everything,
// then expiry, then a future start date.
func (cp Coupon) Status(now time.Time) string {
	if !cp.IsActive {
		return COUPON_STATUS_INACTIVE
	}
	if cp.ValidUntil != nil && now.After(*cp.ValidUntil) {
		return COUPON_STATUS_EXPIRED
	}
	if now.Before(cp.ValidFrom) {
		return COUPON_STATUS_SCHEDULED
	}
	return COUPON_STATUS_ACTIVE
}

// DiscountLabel renders "25% Off" or "$10 Off" depending on the coupon
// kind.
func (cp Coupon) DiscountLabel() string {
	if cp.DiscountPercentage > 0 {
		return fmt.Sprintf("%g%% Off", cp.DiscountPercentage)
	}
	return fmt.Sprintf("$%g Off", cp.DiscountAmount)
}

var couponCodePattern = regexp.MustCompile(`^[A-Z0-9]+$`)

// User-facing validation errors, surfaced before any upstream call.
var (
	ErrCouponCodeFormat = errors.New("Code must be alphanumeric and uppercase.")
	ErrCouponCodeLength = errors.New("Code must be between 3 and 20 characters.")
	ErrCouponPercentage = errors.New("Percentage discount cannot exceed 100%.")
	ErrCouponDiscount   = errors.New("Specify either a fixed amount or a percentage discount, not both.")
)

type CouponCreate struct {
	CouponCode         string  `json:"coupon_code"`
	Description        string  `json:"description,omitempty"`
	DiscountAmount     float64 `json:"discount_amount" validate:"gte=0"`
	DiscountPercentage float64 `json:"discount_percentage" validate:"gte=0"`
	ValidFrom          string  `json:"valid_from,omitempty"`
	ValidUntil         string  `json:"valid_until,omitempty"`
	IsActive           bool    `json:"is_active"`
	MaxUses            int     `json:"max_uses" validate:"gte=0"`
}

func (cc *CouponCreate) Validate() error {
	if len(cc.CouponCode) < 3 || len(cc.CouponCode) > 20 {
		return ErrCouponCodeLength
	}
	if !couponCodePattern.MatchString(cc.CouponCode) {
		return ErrCouponCodeFormat
	}
	if cc.DiscountPercentage > 100 {
		return ErrCouponPercentage
	}
	if (cc.DiscountAmount > 0) == (cc.DiscountPercentage > 0) {
		return ErrCouponDiscount
	}

	v := validator.New()

	return v.Struct(cc)
}

// CouponUpdate carries everything editable after creation; the code is
// immutable.
type CouponUpdate struct {
	Description        string  `json:"description,omitempty"`
	DiscountAmount     float64 `json:"discount_amount" validate:"gte=0"`
	DiscountPercentage float64 `json:"discount_percentage" validate:"gte=0"`
	ValidFrom          string  `json:"valid_from,omitempty"`
	ValidUntil         string  `json:"valid_until,omitempty"`
	IsActive           bool    `json:"is_active"`
	MaxUses            int     `json:"max_uses" validate:"gte=0"`
}

func (cu *CouponUpdate) Validate() error {
	if cu.DiscountPercentage > 100 {
		return ErrCouponPercentage
	}
	// Partial updates may omit the discount entirely; only both-set is
	// contradictory here.
	if cu.DiscountAmount > 0 && cu.DiscountPercentage > 0 {
		return ErrCouponDiscount
	}

	v := validator.New()

	return v.Struct(cu)
}
