package payments

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"webpay_billing/internal/domain/entities"
	"webpay_billing/internal/usecase/interfaces"
)

var ErrUnknownPaymentMethod = errors.New("unknown payment method type")

// Factory builds a payment method for a merchant configuration.
type Factory func(cfg entities.PaymentMethodConfig) interfaces.IPaymentMethod

// Registry maps method-type names (e.g. "webpay") to payment method factories.
type Registry struct {
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: map[string]Factory{}}
}

// NewDefaultRegistry registers the built-in WebPay method. Extra gateway options
// (such as an instrumented client factory) are applied to every WebPay instance.
func NewDefaultRegistry(opts ...GatewayOption) *Registry {
	r := NewRegistry()
	r.Register(MethodTypeWebPay, func(cfg entities.PaymentMethodConfig) interfaces.IPaymentMethod {
		return NewWebPayGateway(cfg, opts...)
	})
	return r
}

func (r *Registry) Register(methodType string, f Factory) {
	r.factories[normalizeMethodType(methodType)] = f
}

func (r *Registry) New(methodType string, cfg entities.PaymentMethodConfig) (interfaces.IPaymentMethod, error) {
	f, ok := r.factories[normalizeMethodType(methodType)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPaymentMethod, methodType)
	}
	return f(cfg), nil
}

func (r *Registry) MethodTypes() []string {
	out := make([]string, 0, len(r.factories))
	for k := range r.factories {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func normalizeMethodType(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
