package request

import (
	"strings"

	"webpay_billing/internal/domain/entities"
)

// PaymentSourceRequest registers a card tokenized in the browser with the publishable key.
type PaymentSourceRequest struct {
	Brand string `json:"brand" binding:"required"`
	Token string `json:"token" binding:"required"`
}

func (r PaymentSourceRequest) ResolveBrand() string {
	return strings.ToLower(strings.TrimSpace(r.Brand))
}

func (r PaymentSourceRequest) ResolveToken() string {
	return strings.TrimSpace(r.Token)
}

// CustomerProfileRequest carries the order attributes used for the gateway customer.
type CustomerProfileRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (r CustomerProfileRequest) ToOrder() entities.Order {
	return entities.Order{
		Email: strings.TrimSpace(r.Email),
		Name:  strings.TrimSpace(r.Name),
	}
}
