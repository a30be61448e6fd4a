package webpay

import (
	"errors"
	"fmt"
)

// ErrorDetail is the "error" object WebPay returns with non-2xx responses.
type ErrorDetail struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Param   string `json:"param,omitempty"`
	Charge  string `json:"charge,omitempty"`
}

type ErrorData struct {
	Error ErrorDetail `json:"error"`
}

// APIError is returned when WebPay answered with a non-2xx status.
// Data is nil when the body carried no decodable error object.
type APIError struct {
	Status int
	Data   *ErrorData
	Body   string
}

func (e *APIError) Error() string {
	if msg := e.Message(); msg != "" {
		return msg
	}
	return fmt.Sprintf("API request failed with status %d", e.Status)
}

// Message returns the structured error message, or "" without one.
func (e *APIError) Message() string {
	if e == nil || e.Data == nil {
		return ""
	}
	return e.Data.Error.Message
}

// ChargeID returns the charge the error refers to, or "".
func (e *APIError) ChargeID() string {
	if e == nil || e.Data == nil {
		return ""
	}
	return e.Data.Error.Charge
}

// ConnectionError is returned when no response was received (dial, timeout, read).
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return "API request failed with " + e.Err.Error()
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

func IsConnectionError(err error) bool {
	var ce *ConnectionError
	return errors.As(err, &ce)
}
