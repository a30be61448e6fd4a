package request

import "testing"

func TestPaymentSourceRequest_Resolve(t *testing.T) {
	r := PaymentSourceRequest{Brand: " VISA ", Token: " tok_abc "}
	if got := r.ResolveBrand(); got != "visa" {
		t.Fatalf("expected visa, got %q", got)
	}
	if got := r.ResolveToken(); got != "tok_abc" {
		t.Fatalf("expected tok_abc, got %q", got)
	}

	r2 := PaymentSourceRequest{Brand: "  ", Token: "  "}
	if got := r2.ResolveBrand(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
	if got := r2.ResolveToken(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestCustomerProfileRequest_ToOrder(t *testing.T) {
	o := CustomerProfileRequest{Email: " customer@example.com ", Name: " John Doe "}.ToOrder()
	if o.Email != "customer@example.com" || o.Name != "John Doe" {
		t.Fatalf("unexpected order: %+v", o)
	}
}
