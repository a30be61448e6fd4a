package response

import (
	"encoding/json"
	"testing"
	"time"

	"webpay_billing/internal/domain/entities"
)

func TestFromPaymentTransaction(t *testing.T) {
	now := time.Now().UTC()
	params := map[string]any{"id": "ch_1"}
	raw := json.RawMessage(`{"id":"ch_1"}`)

	tx := entities.PaymentTransaction{
		ID:            "tx-1",
		Action:        entities.PaymentActionAuthorize,
		SourceID:      "src-1",
		Amount:        1500,
		Authorization: "ch_1",
		Success:       true,
		Message:       "Transaction approved",
		Test:          true,
		CVVCode:       "M",
		CreatedAt:     now,
		ParamsRaw:     raw,
		Params:        params,
	}

	res := FromPaymentTransaction(tx)
	if res.ID != "tx-1" || res.TransactionID != "tx-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Action != "authorize" || res.Amount != 1500 || res.Authorization != "ch_1" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if !res.Success || !res.Test || res.CVVCode != "M" || res.Message != "Transaction approved" {
		t.Fatalf("unexpected result fields: %+v", res)
	}
	if !res.Date.Equal(now) {
		t.Fatalf("unexpected date: %+v", res)
	}
	if res.ParamsRaw != string(raw) {
		t.Fatalf("unexpected raw payload: %s", res.ParamsRaw)
	}
	if res.Params["id"] != "ch_1" {
		t.Fatalf("unexpected parsed payload: %+v", res.Params)
	}

	list := FromPaymentTransactions([]entities.PaymentTransaction{tx, tx})
	if len(list) != 2 {
		t.Fatalf("expected 2 items, got %d", len(list))
	}
}
