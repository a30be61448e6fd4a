package response

import (
	"time"

	"webpay_billing/internal/domain/entities"
)

// PaymentSourceResponse never echoes the one-time token back; HasCardToken tells whether it is still pending.
type PaymentSourceResponse struct {
	ID                       string    `json:"id"`
	SourceID                 string    `json:"source_id"`
	Brand                    string    `json:"brand"`
	HasCardToken             bool      `json:"has_card_token"`
	GatewayCustomerProfileID string    `json:"gateway_customer_profile_id,omitempty"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}

func FromPaymentSource(s entities.PaymentSource) PaymentSourceResponse {
	return PaymentSourceResponse{
		ID:                       s.ID,
		SourceID:                 s.ID,
		Brand:                    s.Brand,
		HasCardToken:             s.GatewayPaymentProfileID != "",
		GatewayCustomerProfileID: s.GatewayCustomerProfileID,
		CreatedAt:                s.CreatedAt,
		UpdatedAt:                s.UpdatedAt,
	}
}

type SupportsResponse struct {
	SourceID  string `json:"source_id"`
	Supported bool   `json:"supported"`
}
