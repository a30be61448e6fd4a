package payments

import (
	"errors"
	"testing"

	"webpay_billing/internal/domain/entities"
	"webpay_billing/internal/infrastructure/payments/webpay"
	"webpay_billing/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_New(t *testing.T) {
	t.Run("default registry builds webpay", func(t *testing.T) {
		r := NewDefaultRegistry()

		m, err := r.New(" WebPay ", entities.PaymentMethodConfig{SecretKey: "sk"})
		require.NoError(t, err)
		assert.Equal(t, MethodTypeWebPay, m.MethodType())
		assert.Equal(t, []string{MethodTypeWebPay}, r.MethodTypes())
	})

	t.Run("unknown method type", func(t *testing.T) {
		_, err := NewDefaultRegistry().New("paypal", entities.PaymentMethodConfig{})
		assert.True(t, errors.Is(err, ErrUnknownPaymentMethod))
	})

	t.Run("instances are independent", func(t *testing.T) {
		r := NewDefaultRegistry()
		a, err := r.New(MethodTypeWebPay, entities.PaymentMethodConfig{})
		require.NoError(t, err)
		b, err := r.New(MethodTypeWebPay, entities.PaymentMethodConfig{})
		require.NoError(t, err)
		assert.NotSame(t, a, b)
	})

	t.Run("gateway options reach every instance", func(t *testing.T) {
		var built []entities.PaymentMethodConfig
		r := NewDefaultRegistry(WithClientFactory(func(cfg entities.PaymentMethodConfig) webpay.IClient {
			built = append(built, cfg)
			return DefaultClientFactory(cfg)
		}))

		m, err := r.New(MethodTypeWebPay, entities.PaymentMethodConfig{SecretKey: "sk_1"})
		require.NoError(t, err)
		gw, ok := m.(*WebPayGateway)
		require.True(t, ok)
		gw.client()

		require.Len(t, built, 1)
		assert.Equal(t, "sk_1", built[0].SecretKey)
	})

	t.Run("custom registration", func(t *testing.T) {
		r := NewRegistry()
		r.Register("stub", func(cfg entities.PaymentMethodConfig) interfaces.IPaymentMethod {
			return NewWebPayGateway(cfg)
		})
		_, err := r.New("STUB", entities.PaymentMethodConfig{})
		require.NoError(t, err)
	})
}
