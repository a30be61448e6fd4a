package webpay

import "encoding/json"

const CurrencyJPY = "jpy"

type Card struct {
	Object      string `json:"object"`
	ExpYear     int    `json:"exp_year"`
	ExpMonth    int    `json:"exp_month"`
	Fingerprint string `json:"fingerprint"`
	Name        string `json:"name"`
	Country     string `json:"country"`
	Type        string `json:"type"`
	CVCCheck    string `json:"cvc_check"`
	Last4       string `json:"last4"`
}

// Charge mirrors the WebPay charge resource.
// Raw keeps the response body as received.
type Charge struct {
	ID             string `json:"id"`
	Object         string `json:"object"`
	Livemode       bool   `json:"livemode"`
	Currency       string `json:"currency"`
	Description    string `json:"description"`
	Amount         int64  `json:"amount"`
	AmountRefunded int64  `json:"amount_refunded"`
	Customer       string `json:"customer"`
	Created        int64  `json:"created"`
	Paid           bool   `json:"paid"`
	Refunded       bool   `json:"refunded"`
	Captured       bool   `json:"captured"`
	FailureMessage string `json:"failure_message"`
	ExpireTime     int64  `json:"expire_time"`
	Card           *Card  `json:"card"`

	Raw json.RawMessage `json:"-"`
}

func (c *Charge) CVCCheck() string {
	if c == nil || c.Card == nil {
		return ""
	}
	return c.Card.CVCCheck
}

type Customer struct {
	ID          string `json:"id"`
	Object      string `json:"object"`
	Livemode    bool   `json:"livemode"`
	Created     int64  `json:"created"`
	Email       string `json:"email"`
	Description string `json:"description"`
	ActiveCard  *Card  `json:"active_card"`

	Raw json.RawMessage `json:"-"`
}

type Account struct {
	ID                  string   `json:"id"`
	Object              string   `json:"object"`
	ChargeEnabled       bool     `json:"charge_enabled"`
	CurrenciesSupported []string `json:"currencies_supported"`
	CardTypesSupported  []string `json:"card_types_supported"`
	DetailsSubmitted    bool     `json:"details_submitted"`
	Email               string   `json:"email"`
	StatementDescriptor string   `json:"statement_descriptor"`

	Raw json.RawMessage `json:"-"`
}

func (a *Account) SupportsCardType(name string) bool {
	if a == nil || name == "" {
		return false
	}
	for _, t := range a.CardTypesSupported {
		if t == name {
			return true
		}
	}
	return false
}

// ChargeCreateParams is the body of POST /charges. Exactly one of Card or Customer is set.
type ChargeCreateParams struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Card     string `json:"card,omitempty"`
	Customer string `json:"customer,omitempty"`
	Capture  bool   `json:"capture"`
}

// ChargeCaptureParams always sends amount; WebPay reads an empty body as a full capture.
type ChargeCaptureParams struct {
	Amount int64 `json:"amount"`
}

// ChargeRefundParams with a nil Amount refunds the whole charge.
type ChargeRefundParams struct {
	Amount *int64 `json:"amount,omitempty"`
}

type CustomerCreateParams struct {
	Card        string `json:"card,omitempty"`
	Description string `json:"description,omitempty"`
	Email       string `json:"email,omitempty"`
}

// RawParams decodes a raw response body into a generic map. Invalid JSON yields nil.
func RawParams(raw json.RawMessage) map[string]any {
	if len(raw) == 0 {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}
	return m
}
