package interfaces

import (
	"context"
	"webpay_billing/internal/domain/entities"
)

// GatewayErrorFunc receives non-fatal gateway errors that have no ChargeResult to travel in.
type GatewayErrorFunc func(message string)

// IPaymentMethod is the contract a card gateway implements for the payment framework.
//
// Gateway failures never surface as Go errors: they come back as a failed
// ChargeResult, or through GatewayErrorFunc for CreateProfile.
//
// Implementations may cache remote state per instance and are not safe for
// concurrent use; build one per request.
//
//go:generate mockgen -source payment_method_interface.go -destination mocks/payment_method_mock.go -package mock_interfaces
type IPaymentMethod interface {
	MethodType() string
	PaymentProfilesSupported() bool
	SourceRequired() bool

	Supports(ctx context.Context, source entities.PaymentSource) bool
	Authorize(ctx context.Context, amount int64, source entities.PaymentSource) entities.ChargeResult
	Purchase(ctx context.Context, amount int64, source entities.PaymentSource) entities.ChargeResult
	Capture(ctx context.Context, amount int64, authorization string) entities.ChargeResult
	Void(ctx context.Context, authorization string) entities.ChargeResult
	Refund(ctx context.Context, amount int64, identification string) entities.ChargeResult
	Credit(ctx context.Context, amount int64, identification string) entities.ChargeResult
	CreateProfile(ctx context.Context, source *entities.PaymentSource, order entities.Order, onGatewayError GatewayErrorFunc)
}
