package response

import (
	"time"

	"webpay_billing/internal/domain/entities"
)

type PaymentTransactionResponse struct {
	TransactionID string    `json:"transaction_id"`
	ID            string    `json:"id"`
	Action        string    `json:"action"`
	SourceID      string    `json:"source_id,omitempty"`
	Amount        int64     `json:"amount"`
	Authorization string    `json:"authorization,omitempty"`
	Success       bool      `json:"success"`
	Message       string    `json:"message"`
	Test          bool      `json:"test"`
	CVVCode       string    `json:"cvv_code,omitempty"`
	Date          time.Time `json:"date"`

	ParamsRaw string         `json:"params_raw,omitempty"`
	Params    map[string]any `json:"params,omitempty"`
}

func FromPaymentTransaction(t entities.PaymentTransaction) PaymentTransactionResponse {
	return PaymentTransactionResponse{
		TransactionID: t.ID,
		ID:            t.ID,
		Action:        string(t.Action),
		SourceID:      t.SourceID,
		Amount:        t.Amount,
		Authorization: t.Authorization,
		Success:       t.Success,
		Message:       t.Message,
		Test:          t.Test,
		CVVCode:       t.CVVCode,
		Date:          t.CreatedAt,
		ParamsRaw:     string(t.ParamsRaw),
		Params:        t.Params,
	}
}

func FromPaymentTransactions(ts []entities.PaymentTransaction) []PaymentTransactionResponse {
	out := make([]PaymentTransactionResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, FromPaymentTransaction(t))
	}
	return out
}
