package models

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestOrderCanCancel(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name  string
		order Order
		want  bool
	}{
		{"fresh order", Order{}, true},
		{"paid", Order{IsPaid: true, PaidAt: &now}, false},
		{"delivered", Order{IsDelivered: true, DeliveredAt: &now}, false},
		{"already cancelled", Order{IsCancelled: true, CancelledAt: &now}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.order.CanCancel(); got != tt.want {
				t.Errorf("CanCancel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func openOrderTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&Order{}, &OrderItem{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// Orders are created at checkout without an order code; the code is assigned
// on the first payment attempt. Code-less orders must never collide on the
// unique index.
func TestOrdersWithoutCodeDoNotCollide(t *testing.T) {
	db := openOrderTestDB(t)

	first := Order{UserID: 1, TotalPrice: 100000}
	if err := db.Create(&first).Error; err != nil {
		t.Fatalf("first code-less order rejected: %v", err)
	}

	second := Order{UserID: 2, TotalPrice: 250000}
	if err := db.Create(&second).Error; err != nil {
		t.Fatalf("second code-less order rejected: %v", err)
	}

	code := "1700000000000abcd"
	if err := db.Model(&first).Update("order_code", code).Error; err != nil {
		t.Fatalf("failed to assign order code: %v", err)
	}

	duplicate := Order{UserID: 3, OrderCode: &code}
	if err := db.Create(&duplicate).Error; err == nil {
		t.Error("duplicate order code accepted")
	}
}

func TestOrderPaymentResult(t *testing.T) {
	var order Order

	if _, ok := order.GetPaymentResult(); ok {
		t.Fatal("GetPaymentResult() reported data on a fresh order")
	}
	if order.HasTransaction(4088878653) {
		t.Fatal("HasTransaction() matched on a fresh order")
	}

	order.SetPaymentResult(PaymentResultData{
		TransID:      4088878653,
		ResultCode:   0,
		Message:      "Successful.",
		PayType:      "qr",
		ResponseTime: 1700000001000,
	})

	result, ok := order.GetPaymentResult()
	if !ok {
		t.Fatal("GetPaymentResult() lost the recorded data")
	}
	if result.TransID != 4088878653 || result.PayType != "qr" || result.ResultCode != 0 {
		t.Errorf("unexpected payment result: %+v", result)
	}

	if !order.HasTransaction(4088878653) {
		t.Error("HasTransaction() missed the recorded transaction")
	}
	if order.HasTransaction(1) {
		t.Error("HasTransaction() matched a different transaction")
	}
}
