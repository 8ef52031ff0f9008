package controllers

import (
	"net/http"
	"testing"

	"github.com/vietshop/vietshop-api/initializers"
	"github.com/vietshop/vietshop-api/models"
	"github.com/vietshop/vietshop-api/momo"
)

func paymentTestGateway() *momo.Client {
	return momo.NewClient(&momo.Config{
		PartnerCode: "TESTPARTNER",
		AccessKey:   "testaccess",
		SecretKey:   "testsecretkey",
		Endpoint:    "https://test-payment.momo.vn/v2/gateway/api/create",
		RedirectURL: "https://api.example.vn/payment/momo/callback",
		IPNURL:      "https://api.example.vn/payment/momo/ipn",
		RequestType: "payWithMethod",
	})
}

func signedNotification(gateway *momo.Client, orderCode string, resultCode int) momo.IPNRequest {
	cfg := gateway.Config()
	notification := momo.IPNRequest{
		PartnerCode:  cfg.PartnerCode,
		OrderID:      orderCode,
		RequestID:    orderCode,
		Amount:       150000,
		OrderInfo:    "Thanh toan don hang #7",
		OrderType:    "momo_wallet",
		TransID:      4088878653,
		ResultCode:   resultCode,
		Message:      "Successful.",
		PayType:      "qr",
		ResponseTime: 1700000001000,
	}
	notification.Signature = momo.Sign(momo.IPNRawSignature(cfg.AccessKey, notification), cfg.SecretKey)
	return notification
}

func createPayableOrder(t *testing.T, orderCode string) models.Order {
	t.Helper()
	order := models.Order{UserID: 7, OrderCode: &orderCode, TotalPrice: 150000}
	if err := initializers.DB.Create(&order).Error; err != nil {
		t.Fatalf("failed to create order: %v", err)
	}
	return order
}

func TestMomoIPNPaidTransition(t *testing.T) {
	setupTestDB(t, &models.Order{}, &models.OrderItem{})
	gateway := paymentTestGateway()
	handler := MomoIPN(gateway)

	orderCode := "1700000000000abcd"
	order := createPayableOrder(t, orderCode)
	notification := signedNotification(gateway, orderCode, 0)

	recorder, ctx := jsonRequest(t, http.MethodPost, "/payment/momo/ipn", notification)
	handler(ctx)
	if recorder.Code != http.StatusOK {
		t.Fatalf("notification rejected: %d %s", recorder.Code, recorder.Body.String())
	}

	var paid models.Order
	if err := initializers.DB.First(&paid, order.ID).Error; err != nil {
		t.Fatalf("failed to reload order: %v", err)
	}
	if !paid.IsPaid || paid.PaidAt == nil {
		t.Fatalf("order not marked paid: isPaid=%v paidAt=%v", paid.IsPaid, paid.PaidAt)
	}
	result, ok := paid.GetPaymentResult()
	if !ok || result.TransID != notification.TransID {
		t.Fatalf("transaction metadata not recorded: %+v", result)
	}
	firstPaidAt := *paid.PaidAt

	// Gateways retry deliveries; the identical payload must be a no-op.
	recorder, ctx = jsonRequest(t, http.MethodPost, "/payment/momo/ipn", notification)
	handler(ctx)
	if recorder.Code != http.StatusOK {
		t.Fatalf("duplicate notification rejected: %d %s", recorder.Code, recorder.Body.String())
	}

	var after models.Order
	if err := initializers.DB.First(&after, order.ID).Error; err != nil {
		t.Fatalf("failed to reload order: %v", err)
	}
	if !after.IsPaid || after.PaidAt == nil || !after.PaidAt.Equal(firstPaidAt) {
		t.Errorf("duplicate notification changed the paid state: paidAt %v -> %v", firstPaidAt, after.PaidAt)
	}
}

func TestMomoIPNFailureLeavesOrderPayable(t *testing.T) {
	setupTestDB(t, &models.Order{}, &models.OrderItem{})
	gateway := paymentTestGateway()
	handler := MomoIPN(gateway)

	orderCode := "1700000000001abcd"
	order := createPayableOrder(t, orderCode)
	notification := signedNotification(gateway, orderCode, 1006)
	notification.Message = "Transaction denied by user."
	notification.Signature = momo.Sign(momo.IPNRawSignature(gateway.Config().AccessKey, notification), gateway.Config().SecretKey)

	recorder, ctx := jsonRequest(t, http.MethodPost, "/payment/momo/ipn", notification)
	handler(ctx)
	if recorder.Code != http.StatusOK {
		t.Fatalf("failed-payment notification rejected: %d %s", recorder.Code, recorder.Body.String())
	}

	var reloaded models.Order
	if err := initializers.DB.First(&reloaded, order.ID).Error; err != nil {
		t.Fatalf("failed to reload order: %v", err)
	}
	if reloaded.IsPaid || reloaded.PaidAt != nil || len(reloaded.PaymentResult) != 0 {
		t.Errorf("failed payment mutated the order: %+v", reloaded)
	}
}

func TestMomoIPNTamperedPayloadRejected(t *testing.T) {
	setupTestDB(t, &models.Order{}, &models.OrderItem{})
	gateway := paymentTestGateway()
	handler := MomoIPN(gateway)

	orderCode := "1700000000002abcd"
	order := createPayableOrder(t, orderCode)
	notification := signedNotification(gateway, orderCode, 0)
	notification.Amount = 1

	recorder, ctx := jsonRequest(t, http.MethodPost, "/payment/momo/ipn", notification)
	handler(ctx)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("tampered notification accepted: %d %s", recorder.Code, recorder.Body.String())
	}

	var reloaded models.Order
	if err := initializers.DB.First(&reloaded, order.ID).Error; err != nil {
		t.Fatalf("failed to reload order: %v", err)
	}
	if reloaded.IsPaid {
		t.Error("tampered notification marked the order paid")
	}
}
