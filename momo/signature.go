package momo

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// CreateRequest is the body of an outbound create-payment call.
type CreateRequest struct {
	PartnerCode string `json:"partnerCode"`
	RequestID   string `json:"requestId"`
	Amount      int64  `json:"amount"`
	OrderID     string `json:"orderId"`
	OrderInfo   string `json:"orderInfo"`
	RedirectURL string `json:"redirectUrl"`
	IPNURL      string `json:"ipnUrl"`
	RequestType string `json:"requestType"`
	ExtraData   string `json:"extraData"`
	Lang        string `json:"lang"`
	Signature   string `json:"signature"`
}

// CreateResponse is the gateway's answer to a create-payment call.
type CreateResponse struct {
	PartnerCode  string `json:"partnerCode"`
	OrderID      string `json:"orderId"`
	RequestID    string `json:"requestId"`
	Amount       int64  `json:"amount"`
	ResponseTime int64  `json:"responseTime"`
	Message      string `json:"message"`
	ResultCode   int    `json:"resultCode"`
	PayURL       string `json:"payUrl"`
}

// IPNRequest is the asynchronous payment notification posted by the gateway.
type IPNRequest struct {
	PartnerCode  string `json:"partnerCode" binding:"required"`
	OrderID      string `json:"orderId" binding:"required"`
	RequestID    string `json:"requestId" binding:"required"`
	Amount       int64  `json:"amount"`
	OrderInfo    string `json:"orderInfo"`
	OrderType    string `json:"orderType"`
	TransID      int64  `json:"transId"`
	ResultCode   int    `json:"resultCode"`
	Message      string `json:"message"`
	PayType      string `json:"payType"`
	ResponseTime int64  `json:"responseTime"`
	ExtraData    string `json:"extraData"`
	Signature    string `json:"signature" binding:"required"`
}

// CreateRawSignature builds the canonical string signed on an outbound
// create-payment request. The field order is fixed by the gateway protocol.
func CreateRawSignature(cfg *Config, req CreateRequest) string {
	return fmt.Sprintf(
		"accessKey=%s&amount=%d&extraData=%s&ipnUrl=%s&orderId=%s&orderInfo=%s&partnerCode=%s&redirectUrl=%s&requestId=%s&requestType=%s",
		cfg.AccessKey,
		req.Amount,
		req.ExtraData,
		req.IPNURL,
		req.OrderID,
		req.OrderInfo,
		req.PartnerCode,
		req.RedirectURL,
		req.RequestID,
		req.RequestType,
	)
}

// IPNRawSignature rebuilds the canonical string for an inbound notification.
// The field order is fixed by the gateway protocol.
func IPNRawSignature(accessKey string, n IPNRequest) string {
	return fmt.Sprintf(
		"accessKey=%s&amount=%d&extraData=%s&message=%s&orderId=%s&orderInfo=%s&orderType=%s&partnerCode=%s&payType=%s&requestId=%s&responseTime=%d&resultCode=%d&transId=%d",
		accessKey,
		n.Amount,
		n.ExtraData,
		n.Message,
		n.OrderID,
		n.OrderInfo,
		n.OrderType,
		n.PartnerCode,
		n.PayType,
		n.RequestID,
		n.ResponseTime,
		n.ResultCode,
		n.TransID,
	)
}

// Sign computes the hex HMAC-SHA256 of the canonical string.
func Sign(raw, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(raw))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyIPN reports whether a notification carries a valid signature. The
// order referenced by an unverified payload must never be touched.
func VerifyIPN(cfg *Config, n IPNRequest) bool {
	expected := Sign(IPNRawSignature(cfg.AccessKey, n), cfg.SecretKey)
	return hmac.Equal([]byte(expected), []byte(n.Signature))
}
