package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

type Coupon struct {
	gorm.Model
	Code            string    `json:"code" gorm:"uniqueIndex;size:64" binding:"required"`
	Description     string    `json:"description"`
	DiscountType    string    `json:"discountType" binding:"required"`
	DiscountAmount  float64   `json:"discountAmount" binding:"required"`
	MinimumAmount   float64   `json:"minimumAmount"`
	MaximumDiscount float64   `json:"maximumDiscount"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	IsActive        bool      `json:"isActive"`
	// UsageLimit 0 means unlimited.
	UsageLimit int `json:"usageLimit"`
	UsedCount  int `json:"usedCount"`
}

var (
	ErrCouponInactive      = errors.New("coupon is not active")
	ErrCouponNotStarted    = errors.New("coupon is not yet valid")
	ErrCouponExpired       = errors.New("coupon has expired")
	ErrCouponUsageExceeded = errors.New("coupon usage limit reached")
	ErrCouponMinimumAmount = errors.New("order amount is below the coupon minimum")
)

// Validate checks whether the coupon can be applied to an order of the given
// amount at the given time.
func (c *Coupon) Validate(amount float64, now time.Time) error {
	if !c.IsActive {
		return ErrCouponInactive
	}
	if now.Before(c.StartDate) {
		return ErrCouponNotStarted
	}
	if now.After(c.EndDate) {
		return ErrCouponExpired
	}
	if c.UsageLimit > 0 && c.UsedCount >= c.UsageLimit {
		return ErrCouponUsageExceeded
	}
	if amount < c.MinimumAmount {
		return ErrCouponMinimumAmount
	}
	return nil
}

// DiscountFor computes the discount applied to the given amount. The result
// never exceeds the amount itself, and percentage discounts are additionally
// capped at MaximumDiscount when one is set.
func (c *Coupon) DiscountFor(amount float64) float64 {
	var discount float64
	switch c.DiscountType {
	case DiscountTypePercentage:
		discount = amount * c.DiscountAmount / 100
		if c.MaximumDiscount > 0 && discount > c.MaximumDiscount {
			discount = c.MaximumDiscount
		}
	case DiscountTypeFixed:
		discount = c.DiscountAmount
	}
	if discount > amount {
		discount = amount
	}
	return discount
}
