package entities

import (
	"encoding/json"
	"time"
)

// PaymentAction names the gateway operation a transaction was recorded for.

type PaymentAction string

const (
	PaymentActionAuthorize PaymentAction = "authorize"
	PaymentActionPurchase  PaymentAction = "purchase"
	PaymentActionCapture   PaymentAction = "capture"
	PaymentActionVoid      PaymentAction = "void"
	PaymentActionRefund    PaymentAction = "refund"
	PaymentActionCredit    PaymentAction = "credit"
)

// PaymentTransaction is the log entry persisted for every gateway call.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (authorization-index): authorization
//
// ParamsRaw keeps the provider body for audit; Params is the parsed view.

type PaymentTransaction struct {
	ID            string        `json:"id"`
	Action        PaymentAction `json:"action"`
	SourceID      string        `json:"source_id,omitempty"`
	Amount        int64         `json:"amount"`
	Authorization string        `json:"authorization,omitempty"`
	Success       bool          `json:"success"`
	Message       string        `json:"message"`
	Test          bool          `json:"test"`
	CVVCode       string        `json:"cvv_code,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`

	ParamsRaw json.RawMessage `json:"params_raw,omitempty"`
	Params    map[string]any  `json:"params,omitempty"`
}
