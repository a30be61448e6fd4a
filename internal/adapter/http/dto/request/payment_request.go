package request

import "strings"

// ChargeRequest is the payload for authorize and purchase.
// Amount is in the currency's minor unit (yen).
type ChargeRequest struct {
	SourceID string `json:"source_id" binding:"required"`
	Amount   int64  `json:"amount" binding:"required"`
}

func (r ChargeRequest) ResolveSourceID() string {
	return strings.TrimSpace(r.SourceID)
}

// AmountRequest is the payload for capture, refund and credit.
type AmountRequest struct {
	Amount int64 `json:"amount"`
}
