package webpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://api.webpay.jp/v1"
	defaultTimeout = 30 * time.Second
)

// IClient is the subset of the WebPay REST API used by the payment method.
//
//go:generate mockgen -source client.go -destination mocks/client_mock.go -package mock_webpay
type IClient interface {
	CreateCharge(ctx context.Context, params ChargeCreateParams) (*Charge, error)
	RetrieveCharge(ctx context.Context, id string) (*Charge, error)
	CaptureCharge(ctx context.Context, id string, params ChargeCaptureParams) (*Charge, error)
	RefundCharge(ctx context.Context, id string, params ChargeRefundParams) (*Charge, error)
	CreateCustomer(ctx context.Context, params CustomerCreateParams) (*Customer, error)
	RetrieveAccount(ctx context.Context) (*Account, error)
}

// Client talks JSON over HTTPS to WebPay, authenticated by the merchant secret key.
type Client struct {
	secretKey string
	baseURL   string
	http      *http.Client
}

var _ IClient = (*Client)(nil)

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if v := strings.TrimRight(strings.TrimSpace(baseURL), "/"); v != "" {
			c.baseURL = v
		}
	}
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http = &http.Client{Timeout: d}
		}
	}
}

func NewClient(secretKey string, opts ...Option) *Client {
	c := &Client{
		secretKey: secretKey,
		baseURL:   DefaultBaseURL,
		http:      &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) CreateCharge(ctx context.Context, params ChargeCreateParams) (*Charge, error) {
	var ch Charge
	raw, err := c.do(ctx, http.MethodPost, "/charges", params, &ch)
	if err != nil {
		return nil, err
	}
	ch.Raw = raw
	return &ch, nil
}

func (c *Client) RetrieveCharge(ctx context.Context, id string) (*Charge, error) {
	var ch Charge
	raw, err := c.do(ctx, http.MethodGet, "/charges/"+url.PathEscape(id), nil, &ch)
	if err != nil {
		return nil, err
	}
	ch.Raw = raw
	return &ch, nil
}

func (c *Client) CaptureCharge(ctx context.Context, id string, params ChargeCaptureParams) (*Charge, error) {
	var ch Charge
	raw, err := c.do(ctx, http.MethodPost, "/charges/"+url.PathEscape(id)+"/capture", params, &ch)
	if err != nil {
		return nil, err
	}
	ch.Raw = raw
	return &ch, nil
}

func (c *Client) RefundCharge(ctx context.Context, id string, params ChargeRefundParams) (*Charge, error) {
	var ch Charge
	raw, err := c.do(ctx, http.MethodPost, "/charges/"+url.PathEscape(id)+"/refund", params, &ch)
	if err != nil {
		return nil, err
	}
	ch.Raw = raw
	return &ch, nil
}

func (c *Client) CreateCustomer(ctx context.Context, params CustomerCreateParams) (*Customer, error) {
	var cus Customer
	raw, err := c.do(ctx, http.MethodPost, "/customers", params, &cus)
	if err != nil {
		return nil, err
	}
	cus.Raw = raw
	return &cus, nil
}

func (c *Client) RetrieveAccount(ctx context.Context) (*Account, error) {
	var acc Account
	raw, err := c.do(ctx, http.MethodGet, "/account", nil, &acc)
	if err != nil {
		return nil, err
	}
	acc.Raw = raw
	return &acc, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[webpay][client] %s %s transport failed err=%v", method, path, err)
		return nil, &ConnectionError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[webpay][client] %s %s read body failed err=%v", method, path, err)
		return nil, &ConnectionError{Err: err}
	}

	if resp.StatusCode/100 != 2 {
		apiErr := &APIError{Status: resp.StatusCode, Body: string(raw)}
		var data ErrorData
		if err := json.Unmarshal(raw, &data); err == nil && data.Error != (ErrorDetail{}) {
			apiErr.Data = &data
		}
		log.Printf("[webpay][client] %s %s status=%d error_type=%s", method, path, resp.StatusCode, errorType(apiErr))
		return nil, apiErr
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return nil, fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	log.Printf("[webpay][client] %s %s status=%d", method, path, resp.StatusCode)
	return json.RawMessage(raw), nil
}

func errorType(e *APIError) string {
	if e.Data == nil {
		return "unknown"
	}
	return e.Data.Error.Type
}
