package momo

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client submits signed payment requests to the MoMo gateway.
type Client struct {
	cfg  *Config
	http *resty.Client
}

func NewClient(cfg *Config) *Client {
	return &Client{
		cfg:  cfg,
		http: resty.New().SetTimeout(30 * time.Second),
	}
}

func (c *Client) Config() *Config {
	return c.cfg
}

// CreatePayment signs and submits a create-payment request and returns the
// gateway response carrying the pay URL for the payer redirect.
func (c *Client) CreatePayment(orderCode string, amount int64, orderInfo, extraData string) (*CreateResponse, error) {
	request := CreateRequest{
		PartnerCode: c.cfg.PartnerCode,
		RequestID:   orderCode,
		Amount:      amount,
		OrderID:     orderCode,
		OrderInfo:   orderInfo,
		RedirectURL: c.cfg.RedirectURL,
		IPNURL:      c.cfg.IPNURL,
		RequestType: c.cfg.RequestType,
		ExtraData:   extraData,
		Lang:        "vi",
	}
	request.Signature = Sign(CreateRawSignature(c.cfg, request), c.cfg.SecretKey)

	var response CreateResponse
	resp, err := c.http.R().
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetBody(request).
		SetResult(&response).
		Post(c.cfg.Endpoint)

	if err != nil {
		return nil, fmt.Errorf("momo create payment request failed: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("momo create payment failed with status %d: %s", resp.StatusCode(), string(resp.Body()))
	}
	if response.ResultCode != 0 {
		return nil, fmt.Errorf("momo rejected payment request (code %d): %s", response.ResultCode, response.Message)
	}
	if response.PayURL == "" {
		return nil, fmt.Errorf("momo response did not include a pay URL")
	}

	return &response, nil
}
