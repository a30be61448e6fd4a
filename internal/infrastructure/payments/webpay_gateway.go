package payments

import (
	"context"
	"errors"
	"log"

	"webpay_billing/internal/domain/entities"
	"webpay_billing/internal/infrastructure/payments/webpay"
	"webpay_billing/internal/usecase/interfaces"
)

const (
	MethodTypeWebPay = "webpay"

	messageApproved       = "Transaction approved"
	messageNoPaySource    = "payment source has no card token or customer id"
	messageRefundExceeded = "refund amount exceeds refundable balance"
)

var brandNames = map[string]string{
	entities.CardBrandVisa:            "Visa",
	entities.CardBrandMaster:          "MasterCard",
	entities.CardBrandDinersClub:      "Diners Club",
	entities.CardBrandAmericanExpress: "American Express",
	entities.CardBrandDiscover:        "Discover",
	entities.CardBrandJCB:             "JCB",
}

var cvcCodes = map[string]string{
	"pass":      entities.CVVCodeMatch,
	"fail":      entities.CVVCodeNoMatch,
	"unchecked": entities.CVVCodeNotProcessed,
}

// ClientFactory builds the WebPay client for a merchant configuration.
type ClientFactory func(cfg entities.PaymentMethodConfig) webpay.IClient

// WebPayGateway is the WebPay payment method.
//
// The client handle and the account snapshot are created on first use and
// kept for the lifetime of the instance. Neither is guarded: an instance must
// not be shared between goroutines or reused after the secret key changes.
type WebPayGateway struct {
	cfg       entities.PaymentMethodConfig
	newClient ClientFactory
	apiClient webpay.IClient
	account   *webpay.Account
}

var _ interfaces.IPaymentMethod = (*WebPayGateway)(nil)

type GatewayOption func(*WebPayGateway)

func WithClientFactory(f ClientFactory) GatewayOption {
	return func(g *WebPayGateway) {
		if f != nil {
			g.newClient = f
		}
	}
}

func NewWebPayGateway(cfg entities.PaymentMethodConfig, opts ...GatewayOption) *WebPayGateway {
	g := &WebPayGateway{cfg: cfg, newClient: DefaultClientFactory}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// DefaultClientFactory uses the secret key as the API login.
func DefaultClientFactory(cfg entities.PaymentMethodConfig) webpay.IClient {
	return webpay.NewClient(cfg.SecretKey, webpay.WithBaseURL(cfg.BaseURL), webpay.WithTimeout(cfg.Timeout))
}

func (g *WebPayGateway) MethodType() string { return MethodTypeWebPay }
func (g *WebPayGateway) PaymentProfilesSupported() bool { return true }
func (g *WebPayGateway) SourceRequired() bool { return true }

func (g *WebPayGateway) client() webpay.IClient {
	if g.apiClient == nil {
		g.apiClient = g.newClient(g.cfg)
	}
	return g.apiClient
}

func (g *WebPayGateway) Supports(ctx context.Context, source entities.PaymentSource) bool {
	brandName, ok := brandNames[source.Brand]
	if !ok {
		log.Printf("[payment][gateway] supports brand=%q unmapped", source.Brand)
		return false
	}
	if g.account == nil {
		acc, err := g.client().RetrieveAccount(ctx)
		if err != nil {
			log.Printf("[payment][gateway] account retrieve failed err=%v", err)
			return false
		}
		g.account = acc
	}
	return g.account.SupportsCardType(brandName)
}

func (g *WebPayGateway) Authorize(ctx context.Context, amount int64, source entities.PaymentSource) entities.ChargeResult {
	return g.createCharge(ctx, amount, source, false)
}

func (g *WebPayGateway) Purchase(ctx context.Context, amount int64, source entities.PaymentSource) entities.ChargeResult {
	return g.createCharge(ctx, amount, source, true)
}

func (g *WebPayGateway) createCharge(ctx context.Context, amount int64, source entities.PaymentSource, capture bool) entities.ChargeResult {
	params := webpay.ChargeCreateParams{
		Amount:   amount,
		Currency: webpay.CurrencyJPY,
		Capture:  capture,
	}
	switch {
	case source.GatewayPaymentProfileID != "":
		params.Card = source.GatewayPaymentProfileID
	case source.GatewayCustomerProfileID != "":
		params.Customer = source.GatewayCustomerProfileID
	default:
		log.Printf("[payment][gateway] create charge rejected source_id=%s reason=no-card-or-customer", source.ID)
		return entities.ChargeResult{Success: false, Message: messageNoPaySource}
	}
	log.Printf("[payment][gateway] create charge start amount=%d capture=%t by_customer=%t", amount, capture, params.Customer != "")

	ch, err := g.client().CreateCharge(ctx, params)
	if err != nil {
		return errorResult(err)
	}
	return chargeResult(ch)
}

func (g *WebPayGateway) Capture(ctx context.Context, amount int64, authorization string) entities.ChargeResult {
	log.Printf("[payment][gateway] capture start charge_id=%s amount=%d", authorization, amount)
	ch, err := g.client().CaptureCharge(ctx, authorization, webpay.ChargeCaptureParams{Amount: amount})
	if err != nil {
		return errorResult(err)
	}
	return chargeResult(ch)
}

// Void refunds the whole charge; the gateway has no separate cancel endpoint.
func (g *WebPayGateway) Void(ctx context.Context, authorization string) entities.ChargeResult {
	log.Printf("[payment][gateway] void start charge_id=%s", authorization)
	ch, err := g.client().RefundCharge(ctx, authorization, webpay.ChargeRefundParams{})
	if err != nil {
		return errorResult(err)
	}
	return chargeResult(ch)
}

// Refund sends charge.amount - charge.amount_refunded - amount to the refund
// endpoint, where amount is what the caller wants left on the charge.
func (g *WebPayGateway) Refund(ctx context.Context, amount int64, identification string) entities.ChargeResult {
	log.Printf("[payment][gateway] refund start charge_id=%s amount=%d", identification, amount)
	ch, err := g.client().RetrieveCharge(ctx, identification)
	if err != nil {
		log.Printf("[payment][gateway] refund retrieve failed charge_id=%s err=%v", identification, err)
		return errorResult(err)
	}

	refundAmount := RefundAmount(ch.Amount, ch.AmountRefunded, amount)
	if refundAmount < 0 {
		log.Printf("[payment][gateway] refund rejected charge_id=%s computed=%d", identification, refundAmount)
		return entities.ChargeResult{Success: false, Message: messageRefundExceeded, Authorization: identification}
	}

	refunded, err := g.client().RefundCharge(ctx, identification, webpay.ChargeRefundParams{Amount: &refundAmount})
	if err != nil {
		return errorResult(err)
	}
	return chargeResult(refunded)
}

func (g *WebPayGateway) Credit(ctx context.Context, amount int64, identification string) entities.ChargeResult {
	return g.Refund(ctx, amount, identification)
}

// RefundAmount is the value handed to the refund endpoint for a credit request.
func RefundAmount(chargeAmount, alreadyRefunded, requested int64) int64 {
	return chargeAmount - alreadyRefunded - requested
}

func (g *WebPayGateway) CreateProfile(ctx context.Context, source *entities.PaymentSource, order entities.Order, onGatewayError interfaces.GatewayErrorFunc) {
	if source == nil || source.HasCustomerProfile() {
		return
	}
	log.Printf("[payment][gateway] create customer start source_id=%s", source.ID)

	cus, err := g.client().CreateCustomer(ctx, webpay.CustomerCreateParams{
		Card:        source.GatewayPaymentProfileID,
		Description: order.Name,
		Email:       order.Email,
	})
	if err != nil {
		log.Printf("[payment][gateway] create customer failed source_id=%s err=%v", source.ID, err)
		if onGatewayError != nil {
			onGatewayError(errorMessage(err))
		}
		return
	}

	source.GatewayCustomerProfileID = cus.ID
	source.GatewayPaymentProfileID = ""
	log.Printf("[payment][gateway] create customer success source_id=%s customer_id=%s", source.ID, cus.ID)
}

func chargeResult(ch *webpay.Charge) entities.ChargeResult {
	msg := messageApproved
	if ch.FailureMessage != "" {
		msg = ch.FailureMessage
	}
	var cvv entities.CVVResult
	if code, ok := cvcCodes[ch.CVCCheck()]; ok {
		cvv = entities.NewCVVResult(code)
	}
	log.Printf("[payment][gateway] charge response charge_id=%s success=%t livemode=%t", ch.ID, ch.FailureMessage == "", ch.Livemode)
	return entities.ChargeResult{
		Success:       ch.FailureMessage == "",
		Message:       msg,
		Params:        webpay.RawParams(ch.Raw),
		Test:          !ch.Livemode,
		Authorization: ch.ID,
		CVVResult:     cvv,
	}
}

func errorResult(err error) entities.ChargeResult {
	log.Printf("[payment][gateway] request failed err=%v", err)
	res := entities.ChargeResult{Success: false, Message: errorMessage(err)}
	var apiErr *webpay.APIError
	if errors.As(err, &apiErr) {
		res.Authorization = apiErr.ChargeID()
	}
	return res
}

func errorMessage(err error) string {
	var apiErr *webpay.APIError
	if errors.As(err, &apiErr) && apiErr.Message() != "" {
		return apiErr.Message()
	}
	return err.Error()
}
