package config

import (
	"time"

	"webpay_billing/internal/domain/entities"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port int `env:"PORT" envDefault:"8080"`

	PaymentMethodType    string        `env:"PAYMENT_METHOD_TYPE" envDefault:"webpay"`
	WebPaySecretKey      string        `env:"WEBPAY_SECRET_KEY"`
	WebPayPublishableKey string        `env:"WEBPAY_PUBLISHABLE_KEY"`
	WebPayAPIBase        string        `env:"WEBPAY_API_BASE" envDefault:"https://api.webpay.jp/v1"`
	WebPayTimeout        time.Duration `env:"WEBPAY_TIMEOUT" envDefault:"30s"`

	AWSRegion          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	DynamoDBEndpoint   string `env:"DYNAMODB_ENDPOINT"`

	PaymentSourcesTable      string `env:"PAYMENT_SOURCES_TABLE" envDefault:"payment_sources"`
	PaymentTransactionsTable string `env:"PAYMENT_TRANSACTIONS_TABLE" envDefault:"payment_transactions"`
}

func New() (Config, error) {
	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}
	return c, nil
}

// PaymentMethod returns the merchant preferences handed to the payment method factory.
func (c Config) PaymentMethod() entities.PaymentMethodConfig {
	return entities.PaymentMethodConfig{
		SecretKey:      c.WebPaySecretKey,
		PublishableKey: c.WebPayPublishableKey,
		BaseURL:        c.WebPayAPIBase,
		Timeout:        c.WebPayTimeout,
	}
}
