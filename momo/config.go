package momo

import (
	"os"
	"strconv"
)

// Config holds the MoMo gateway settings. It is constructed once at startup
// and passed by reference into the client and payment handlers, so tests can
// substitute alternate secrets and endpoints.
type Config struct {
	PartnerCode        string
	AccessKey          string
	SecretKey          string
	Endpoint           string
	RedirectURL        string
	IPNURL             string
	RequestType        string
	OrderExpireMinutes int
}

// LoadConfig reads the gateway settings from the environment, falling back to
// the MoMo sandbox defaults.
func LoadConfig() *Config {
	return &Config{
		PartnerCode:        getEnv("MOMO_PARTNER_CODE", "MOMO"),
		AccessKey:          getEnv("MOMO_ACCESS_KEY", "F8BBA842ECF85"),
		SecretKey:          getEnv("MOMO_SECRET_KEY", "K951B6PE1waDMi640xX08PD3vg6EkVlz"),
		Endpoint:           getEnv("MOMO_ENDPOINT", "https://test-payment.momo.vn/v2/gateway/api/create"),
		RedirectURL:        getEnv("MOMO_REDIRECT_URL", "http://localhost:8080/payment/momo/callback"),
		IPNURL:             getEnv("MOMO_IPN_URL", "http://localhost:8080/payment/momo/ipn"),
		RequestType:        getEnv("MOMO_REQUEST_TYPE", "payWithMethod"),
		OrderExpireMinutes: getEnvInt("MOMO_ORDER_EXPIRE_MINUTES", 15),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
