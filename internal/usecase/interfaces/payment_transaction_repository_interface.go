package interfaces

import (
	"context"
	"webpay_billing/internal/domain/entities"
)

// IPaymentTransactionRepository abstracts DynamoDB persistence for PaymentTransaction.

//go:generate mockgen -source payment_transaction_repository_interface.go -destination mocks/payment_transaction_repository_mock.go -package mock_interfaces
type IPaymentTransactionRepository interface {
	Create(ctx context.Context, t entities.PaymentTransaction) (entities.PaymentTransaction, error)
	ListByAuthorization(ctx context.Context, authorization string) ([]entities.PaymentTransaction, error)
}
