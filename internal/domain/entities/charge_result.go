package entities

// ChargeResult is the normalized outcome of a gateway operation, shaped after
// the generic billing response the host payment framework consumes.
//
// Authorization is empty when the gateway did not return a charge reference.

type ChargeResult struct {
	Success       bool           `json:"success"`
	Message       string         `json:"message"`
	Params        map[string]any `json:"params,omitempty"`
	Test          bool           `json:"test"`
	Authorization string         `json:"authorization,omitempty"`
	AVSResult     AVSResult      `json:"avs_result"`
	CVVResult     CVVResult      `json:"cvv_result"`
}

// AVSResult is always empty: WebPay does not perform address verification.
type AVSResult struct {
	Code        *string `json:"code"`
	Message     *string `json:"message"`
	StreetMatch *string `json:"street_match"`
	PostalMatch *string `json:"postal_match"`
}

type CVVResult struct {
	Code    *string `json:"code"`
	Message *string `json:"message"`
}

const (
	CVVCodeMatch        = "M"
	CVVCodeNoMatch      = "N"
	CVVCodeNotProcessed = "P"
)

var cvvMessages = map[string]string{
	CVVCodeMatch:        "CVV matches",
	CVVCodeNoMatch:      "CVV does not match",
	CVVCodeNotProcessed: "Not Processed",
}

// NewCVVResult builds a CVVResult for a known code; unknown or empty codes give an empty result.
func NewCVVResult(code string) CVVResult {
	msg, ok := cvvMessages[code]
	if !ok {
		return CVVResult{}
	}
	c := code
	return CVVResult{Code: &c, Message: &msg}
}

// CodeString returns the CVV code or "" when absent.
func (r CVVResult) CodeString() string {
	if r.Code == nil {
		return ""
	}
	return *r.Code
}
