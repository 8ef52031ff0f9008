package models

import (
	"errors"
	"testing"
	"time"
)

func testCoupon() Coupon {
	return Coupon{
		Code:           "SALE20",
		DiscountType:   DiscountTypePercentage,
		DiscountAmount: 20,
		MinimumAmount:  500000,
		StartDate:      time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC),
		IsActive:       true,
		UsageLimit:     100,
		UsedCount:      0,
	}
}

func TestCouponValidate(t *testing.T) {
	inWindow := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mutate  func(*Coupon)
		amount  float64
		now     time.Time
		wantErr error
	}{
		{"valid", func(c *Coupon) {}, 1000000, inWindow, nil},
		{"inactive", func(c *Coupon) { c.IsActive = false }, 1000000, inWindow, ErrCouponInactive},
		{"not yet started", func(c *Coupon) {}, 1000000, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), ErrCouponNotStarted},
		{"expired", func(c *Coupon) {}, 1000000, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), ErrCouponExpired},
		{"usage limit reached", func(c *Coupon) { c.UsedCount = 100 }, 1000000, inWindow, ErrCouponUsageExceeded},
		{"unlimited usage", func(c *Coupon) { c.UsageLimit = 0; c.UsedCount = 100000 }, 1000000, inWindow, nil},
		{"below minimum", func(c *Coupon) {}, 499999, inWindow, ErrCouponMinimumAmount},
		{"exactly minimum", func(c *Coupon) {}, 500000, inWindow, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coupon := testCoupon()
			tt.mutate(&coupon)
			if err := coupon.Validate(tt.amount, tt.now); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate(%v) = %v, want %v", tt.amount, err, tt.wantErr)
			}
		})
	}
}

func TestCouponDiscountFor(t *testing.T) {
	tests := []struct {
		name   string
		coupon Coupon
		amount float64
		want   float64
	}{
		{
			"percentage",
			Coupon{DiscountType: DiscountTypePercentage, DiscountAmount: 10},
			1000000,
			100000,
		},
		{
			"percentage capped at maximum discount",
			Coupon{DiscountType: DiscountTypePercentage, DiscountAmount: 20, MaximumDiscount: 200000},
			2000000,
			200000,
		},
		{
			"percentage under the cap",
			Coupon{DiscountType: DiscountTypePercentage, DiscountAmount: 20, MaximumDiscount: 200000},
			500000,
			100000,
		},
		{
			"fixed",
			Coupon{DiscountType: DiscountTypeFixed, DiscountAmount: 50000},
			1000000,
			50000,
		},
		{
			"fixed larger than the amount",
			Coupon{DiscountType: DiscountTypeFixed, DiscountAmount: 50000},
			30000,
			30000,
		},
		{
			"unknown type discounts nothing",
			Coupon{DiscountType: "bogus", DiscountAmount: 50},
			1000000,
			0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.coupon.DiscountFor(tt.amount); got != tt.want {
				t.Errorf("DiscountFor(%v) = %v, want %v", tt.amount, got, tt.want)
			}
		})
	}
}
