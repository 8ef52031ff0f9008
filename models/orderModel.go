package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	UserID int `json:"userId"`
	// OrderCode is the gateway-facing correlation key. It is assigned lazily on
	// the first payment attempt, distinct from the internal id. Nullable so
	// code-less checkouts never collide on the unique index.
	OrderCode       *string        `json:"orderCode" gorm:"uniqueIndex;size:64"`
	FirstName       string         `json:"firstName"`
	LastName        string         `json:"lastName"`
	Email           string         `json:"email"`
	Phone           string         `json:"phone"`
	ShippingAddress string         `json:"shippingAddress"`
	ShippingCity    string         `json:"shippingCity"`
	PaymentMethod   string         `json:"paymentMethod"`
	ItemsPrice      float64        `json:"itemsPrice"`
	TaxPrice        float64        `json:"taxPrice"`
	ShippingPrice   float64        `json:"shippingPrice"`
	DiscountPrice   float64        `json:"discountPrice"`
	TotalPrice      float64        `json:"totalPrice"`
	CouponCode      string         `json:"couponCode"`
	IsPaid          bool           `json:"isPaid"`
	PaidAt          *time.Time     `json:"paidAt"`
	IsDelivered     bool           `json:"isDelivered"`
	DeliveredAt     *time.Time     `json:"deliveredAt"`
	IsCancelled     bool           `json:"isCancelled"`
	CancelledAt     *time.Time     `json:"cancelledAt"`
	PaymentResult   datatypes.JSON `json:"paymentResult"`
	OrderItems      []OrderItem    `json:"orderItems" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

type OrderItem struct {
	gorm.Model
	OrderID   int     `json:"orderId"`
	ProductId int     `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// PaymentResultData is the gateway transaction metadata recorded on an order.
type PaymentResultData struct {
	TransID      int64  `json:"transId"`
	ResultCode   int    `json:"resultCode"`
	Message      string `json:"message"`
	PayType      string `json:"payType"`
	ResponseTime int64  `json:"responseTime"`
}

// CanCancel reports whether the order may still be cancelled. Paid or
// delivered orders cannot.
func (o *Order) CanCancel() bool {
	return !o.IsPaid && !o.IsDelivered && !o.IsCancelled
}

// GetPaymentResult decodes the stored gateway metadata, if any.
func (o *Order) GetPaymentResult() (PaymentResultData, bool) {
	var result PaymentResultData
	if len(o.PaymentResult) == 0 {
		return result, false
	}
	if err := json.Unmarshal(o.PaymentResult, &result); err != nil {
		return result, false
	}
	return result, true
}

// SetPaymentResult records gateway transaction metadata on the order.
func (o *Order) SetPaymentResult(result PaymentResultData) {
	raw, _ := json.Marshal(result)
	o.PaymentResult = raw
}

// HasTransaction reports whether the given gateway transaction id has already
// been recorded, which makes a duplicate IPN delivery a no-op.
func (o *Order) HasTransaction(transID int64) bool {
	result, ok := o.GetPaymentResult()
	return ok && result.TransID == transID
}
