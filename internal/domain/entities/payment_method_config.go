package entities

import "time"

// PaymentMethodConfig holds the merchant preferences a payment method is built with.
type PaymentMethodConfig struct {
	SecretKey      string
	PublishableKey string
	BaseURL        string
	Timeout        time.Duration
}
