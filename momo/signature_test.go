package momo

import (
	"testing"
)

func testConfig() *Config {
	return &Config{
		PartnerCode: "TESTPARTNER",
		AccessKey:   "testaccess",
		SecretKey:   "testsecretkey",
		Endpoint:    "https://test-payment.momo.vn/v2/gateway/api/create",
		RedirectURL: "https://api.example.vn/payment/momo/callback",
		IPNURL:      "https://api.example.vn/payment/momo/ipn",
		RequestType: "payWithMethod",
	}
}

func testCreateRequest(cfg *Config) CreateRequest {
	return CreateRequest{
		PartnerCode: cfg.PartnerCode,
		RequestID:   "1700000000000abcd",
		Amount:      150000,
		OrderID:     "1700000000000abcd",
		OrderInfo:   "Thanh toan don hang #42",
		RedirectURL: cfg.RedirectURL,
		IPNURL:      cfg.IPNURL,
		RequestType: cfg.RequestType,
		ExtraData:   "eyJvcmRlcklkIjo0Mn0=",
	}
}

func testIPNRequest() IPNRequest {
	return IPNRequest{
		PartnerCode:  "TESTPARTNER",
		OrderID:      "1700000000000abcd",
		RequestID:    "1700000000000abcd",
		Amount:       150000,
		OrderInfo:    "Thanh toan don hang #42",
		OrderType:    "momo_wallet",
		TransID:      4088878653,
		ResultCode:   0,
		Message:      "Successful.",
		PayType:      "qr",
		ResponseTime: 1700000001000,
		ExtraData:    "eyJvcmRlcklkIjo0Mn0=",
	}
}

func TestCreateRawSignature(t *testing.T) {
	cfg := testConfig()
	got := CreateRawSignature(cfg, testCreateRequest(cfg))
	want := "accessKey=testaccess&amount=150000&extraData=eyJvcmRlcklkIjo0Mn0=" +
		"&ipnUrl=https://api.example.vn/payment/momo/ipn&orderId=1700000000000abcd" +
		"&orderInfo=Thanh toan don hang #42&partnerCode=TESTPARTNER" +
		"&redirectUrl=https://api.example.vn/payment/momo/callback" +
		"&requestId=1700000000000abcd&requestType=payWithMethod"
	if got != want {
		t.Errorf("canonical string mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestIPNRawSignature(t *testing.T) {
	got := IPNRawSignature("testaccess", testIPNRequest())
	want := "accessKey=testaccess&amount=150000&extraData=eyJvcmRlcklkIjo0Mn0=" +
		"&message=Successful.&orderId=1700000000000abcd" +
		"&orderInfo=Thanh toan don hang #42&orderType=momo_wallet" +
		"&partnerCode=TESTPARTNER&payType=qr&requestId=1700000000000abcd" +
		"&responseTime=1700000001000&resultCode=0&transId=4088878653"
	if got != want {
		t.Errorf("canonical string mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestSignIsStable(t *testing.T) {
	cfg := testConfig()
	raw := CreateRawSignature(cfg, testCreateRequest(cfg))

	want := "c435c584ac7dbce8852135e9668f30f706d7b61910fbbfb6f86ad43fb50269c8"
	for i := 0; i < 3; i++ {
		if got := Sign(raw, cfg.SecretKey); got != want {
			t.Fatalf("Sign() = %s, want %s", got, want)
		}
	}
}

func TestVerifyIPN(t *testing.T) {
	cfg := testConfig()

	valid := testIPNRequest()
	valid.Signature = Sign(IPNRawSignature(cfg.AccessKey, valid), cfg.SecretKey)
	if valid.Signature != "56f07b68157d8f7accfb7ac7b046b08a2ea84947c58ca33454c1e9998a67bbdc" {
		t.Fatalf("unexpected signature for fixture: %s", valid.Signature)
	}
	if !VerifyIPN(cfg, valid) {
		t.Error("valid notification rejected")
	}

	tests := []struct {
		name   string
		mutate func(*IPNRequest)
	}{
		{"tampered amount", func(n *IPNRequest) { n.Amount = 1 }},
		{"tampered order id", func(n *IPNRequest) { n.OrderID = "other" }},
		{"tampered result code", func(n *IPNRequest) { n.ResultCode = 9000 }},
		{"tampered trans id", func(n *IPNRequest) { n.TransID = 1 }},
		{"empty signature", func(n *IPNRequest) { n.Signature = "" }},
		{"garbage signature", func(n *IPNRequest) { n.Signature = "deadbeef" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tampered := valid
			tt.mutate(&tampered)
			if VerifyIPN(cfg, tampered) {
				t.Error("tampered notification accepted")
			}
		})
	}
}

func TestVerifyIPNOtherSecret(t *testing.T) {
	cfg := testConfig()
	n := testIPNRequest()
	n.Signature = Sign(IPNRawSignature(cfg.AccessKey, n), "someothersecret")
	if VerifyIPN(cfg, n) {
		t.Error("notification signed with a different secret accepted")
	}
}
