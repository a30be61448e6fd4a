package interfaces

import (
	"context"
	"webpay_billing/internal/domain/entities"
)

// IPaymentSourceRepository abstracts DynamoDB persistence for PaymentSource.
//
// GetByID returns a zero PaymentSource (empty ID) when nothing is stored.
//
//go:generate mockgen -source payment_source_repository_interface.go -destination mocks/payment_source_repository_mock.go -package mock_interfaces
type IPaymentSourceRepository interface {
	Create(ctx context.Context, s entities.PaymentSource) (entities.PaymentSource, error)
	GetByID(ctx context.Context, id string) (entities.PaymentSource, error)
	UpdateGatewayProfile(ctx context.Context, s entities.PaymentSource) (entities.PaymentSource, error)
}
