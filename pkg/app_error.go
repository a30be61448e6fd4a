package pkg

import "fmt"

// AppError is an error with a stable code and the HTTP status it maps to.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

type HTTPError struct {
	Error HTTPErrorBody `json:"error"`
}

type HTTPErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return NewDomainError(code, message, nil, httpStatus)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ToHTTPError renders the error body. Wrapped causes are never exposed.
func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Error: HTTPErrorBody{Code: e.Code, Message: e.Message}}
}
