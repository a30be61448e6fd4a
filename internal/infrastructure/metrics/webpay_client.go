package metrics

import (
	"context"
	"errors"
	"time"

	"webpay_billing/internal/infrastructure/payments/webpay"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeOK              = "ok"
	OutcomeAPIError        = "api_error"
	OutcomeConnectionError = "connection_error"
	OutcomeError           = "error"
)

// GatewayMetrics counts and times calls made to the WebPay API.
type GatewayMetrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

func NewGatewayMetrics(reg prometheus.Registerer) *GatewayMetrics {
	m := &GatewayMetrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "billing",
				Subsystem: "webpay",
				Name:      "requests_total",
				Help:      "Total number of WebPay API calls",
			},
			[]string{"operation", "outcome"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "billing",
				Subsystem: "webpay",
				Name:      "request_duration_seconds",
				Help:      "WebPay API call latency in seconds",
				Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
			},
			[]string{"operation"},
		),
	}
	reg.MustRegister(m.RequestsTotal, m.RequestDuration)
	return m
}

func (m *GatewayMetrics) observe(operation string, start time.Time, err error) {
	m.RequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	m.RequestsTotal.WithLabelValues(operation, outcome(err)).Inc()
}

func outcome(err error) string {
	if err == nil {
		return OutcomeOK
	}
	var apiErr *webpay.APIError
	switch {
	case errors.As(err, &apiErr):
		return OutcomeAPIError
	case webpay.IsConnectionError(err):
		return OutcomeConnectionError
	default:
		return OutcomeError
	}
}

// InstrumentedClient decorates a webpay.IClient with GatewayMetrics.
type InstrumentedClient struct {
	next    webpay.IClient
	metrics *GatewayMetrics
}

var _ webpay.IClient = (*InstrumentedClient)(nil)

func InstrumentClient(next webpay.IClient, m *GatewayMetrics) webpay.IClient {
	if m == nil {
		return next
	}
	return &InstrumentedClient{next: next, metrics: m}
}

func (c *InstrumentedClient) CreateCharge(ctx context.Context, params webpay.ChargeCreateParams) (*webpay.Charge, error) {
	start := time.Now()
	ch, err := c.next.CreateCharge(ctx, params)
	c.metrics.observe("charge_create", start, err)
	return ch, err
}

func (c *InstrumentedClient) RetrieveCharge(ctx context.Context, id string) (*webpay.Charge, error) {
	start := time.Now()
	ch, err := c.next.RetrieveCharge(ctx, id)
	c.metrics.observe("charge_retrieve", start, err)
	return ch, err
}

func (c *InstrumentedClient) CaptureCharge(ctx context.Context, id string, params webpay.ChargeCaptureParams) (*webpay.Charge, error) {
	start := time.Now()
	ch, err := c.next.CaptureCharge(ctx, id, params)
	c.metrics.observe("charge_capture", start, err)
	return ch, err
}

func (c *InstrumentedClient) RefundCharge(ctx context.Context, id string, params webpay.ChargeRefundParams) (*webpay.Charge, error) {
	start := time.Now()
	ch, err := c.next.RefundCharge(ctx, id, params)
	c.metrics.observe("charge_refund", start, err)
	return ch, err
}

func (c *InstrumentedClient) CreateCustomer(ctx context.Context, params webpay.CustomerCreateParams) (*webpay.Customer, error) {
	start := time.Now()
	cus, err := c.next.CreateCustomer(ctx, params)
	c.metrics.observe("customer_create", start, err)
	return cus, err
}

func (c *InstrumentedClient) RetrieveAccount(ctx context.Context) (*webpay.Account, error) {
	start := time.Now()
	acc, err := c.next.RetrieveAccount(ctx)
	c.metrics.observe("account_retrieve", start, err)
	return acc, err
}
