package entities

import "time"

// Card brands accepted on a PaymentSource.
const (
	CardBrandVisa            = "visa"
	CardBrandMaster          = "master"
	CardBrandDinersClub      = "diners_club"
	CardBrandAmericanExpress = "american_express"
	CardBrandDiscover        = "discover"
	CardBrandJCB             = "jcb"
)

// PaymentSource is the stored credit card the host charges against.
//
// Gateway fields:
//   - GatewayPaymentProfileID holds the one-time card token issued by WebPay.js.
//     It is single use and is cleared once a customer profile has consumed it.
//   - GatewayCustomerProfileID holds the WebPay customer id once a profile exists.
//
// Storage model (DynamoDB):
//   - PK: id

type PaymentSource struct {
	ID                       string    `json:"id"`
	Brand                    string    `json:"brand"`
	GatewayPaymentProfileID  string    `json:"gateway_payment_profile_id,omitempty"`
	GatewayCustomerProfileID string    `json:"gateway_customer_profile_id,omitempty"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}

func (s PaymentSource) HasCustomerProfile() bool {
	return s.GatewayCustomerProfileID != ""
}

// Order carries the order attributes a customer profile is created with.
type Order struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}
