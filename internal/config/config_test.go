package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "webpay", cfg.PaymentMethodType)
	assert.Equal(t, "https://api.webpay.jp/v1", cfg.WebPayAPIBase)
	assert.Equal(t, 30*time.Second, cfg.WebPayTimeout)
	assert.Equal(t, "payment_sources", cfg.PaymentSourcesTable)
	assert.Equal(t, "payment_transactions", cfg.PaymentTransactionsTable)
}

func TestNew_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("WEBPAY_SECRET_KEY", "test_secret_abc")
	t.Setenv("WEBPAY_PUBLISHABLE_KEY", "test_public_abc")
	t.Setenv("WEBPAY_API_BASE", "http://localhost:4010/v1")
	t.Setenv("WEBPAY_TIMEOUT", "5s")
	t.Setenv("DYNAMODB_ENDPOINT", "http://localhost:8000")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "http://localhost:8000", cfg.DynamoDBEndpoint)

	pm := cfg.PaymentMethod()
	assert.Equal(t, "test_secret_abc", pm.SecretKey)
	assert.Equal(t, "test_public_abc", pm.PublishableKey)
	assert.Equal(t, "http://localhost:4010/v1", pm.BaseURL)
	assert.Equal(t, 5*time.Second, pm.Timeout)
}

func TestNew_InvalidTimeout(t *testing.T) {
	t.Setenv("WEBPAY_TIMEOUT", "soon")

	_, err := New()
	assert.Error(t, err)
}
