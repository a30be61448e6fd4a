package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	request "webpay_billing/internal/adapter/http/dto/request"
	response "webpay_billing/internal/adapter/http/dto/response"
	"webpay_billing/internal/domain/entities"
	"webpay_billing/internal/usecase"
	"webpay_billing/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidChargePayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// PaymentHandler handles HTTP requests for gateway payment operations.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// Authorize reserves funds on a stored payment source without capturing them.
func (h *PaymentHandler) Authorize(c *gin.Context) {
	h.charge(c, entities.PaymentActionAuthorize)
}

// Purchase authorizes and captures in one gateway call.
func (h *PaymentHandler) Purchase(c *gin.Context) {
	h.charge(c, entities.PaymentActionPurchase)
}

func (h *PaymentHandler) charge(c *gin.Context, action entities.PaymentAction) {
	var payload request.ChargeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] %s invalid payload err=%v", action, err)
		c.JSON(errInvalidChargePayload.HTTPStatus, errInvalidChargePayload.ToHTTPError())
		return
	}

	var (
		tx  entities.PaymentTransaction
		err error
	)
	if action == entities.PaymentActionPurchase {
		tx, err = h.usecase.Purchase(c.Request.Context(), payload.ResolveSourceID(), payload.Amount)
	} else {
		tx, err = h.usecase.Authorize(c.Request.Context(), payload.ResolveSourceID(), payload.Amount)
	}
	h.respond(c, action, tx, err)
}

func (h *PaymentHandler) Capture(c *gin.Context) {
	authorization := c.Param("authorization")
	payload, err := readAmountPayload(c)
	if err != nil {
		log.Printf("[payment][handler] capture invalid payload authorization=%s err=%v", authorization, err)
		c.JSON(errInvalidChargePayload.HTTPStatus, errInvalidChargePayload.ToHTTPError())
		return
	}
	tx, err := h.usecase.Capture(c.Request.Context(), authorization, payload.Amount)
	h.respond(c, entities.PaymentActionCapture, tx, err)
}

func (h *PaymentHandler) Void(c *gin.Context) {
	tx, err := h.usecase.Void(c.Request.Context(), c.Param("authorization"))
	h.respond(c, entities.PaymentActionVoid, tx, err)
}

func (h *PaymentHandler) Refund(c *gin.Context) {
	h.refund(c, entities.PaymentActionRefund)
}

func (h *PaymentHandler) Credit(c *gin.Context) {
	h.refund(c, entities.PaymentActionCredit)
}

func (h *PaymentHandler) refund(c *gin.Context, action entities.PaymentAction) {
	authorization := c.Param("authorization")
	payload, err := readAmountPayload(c)
	if err != nil {
		log.Printf("[payment][handler] %s invalid payload authorization=%s err=%v", action, authorization, err)
		c.JSON(errInvalidChargePayload.HTTPStatus, errInvalidChargePayload.ToHTTPError())
		return
	}

	var tx entities.PaymentTransaction
	if action == entities.PaymentActionCredit {
		tx, err = h.usecase.Credit(c.Request.Context(), authorization, payload.Amount)
	} else {
		tx, err = h.usecase.Refund(c.Request.Context(), authorization, payload.Amount)
	}
	h.respond(c, action, tx, err)
}

// ListByAuthorization returns every transaction recorded for a charge.
func (h *PaymentHandler) ListByAuthorization(c *gin.Context) {
	authorization := c.Param("authorization")
	txs, err := h.usecase.ListByAuthorization(c.Request.Context(), authorization)
	if err != nil {
		log.Printf("[payment][handler] list failed authorization=%s err=%v", authorization, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if len(txs) == 0 {
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentTransactions(txs))
}

// respond answers 200 for approved results and 402 for gateway declines or failures.
func (h *PaymentHandler) respond(c *gin.Context, action entities.PaymentAction, tx entities.PaymentTransaction, err error) {
	if err != nil {
		log.Printf("[payment][handler] %s failed err=%v", action, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] %s done transaction_id=%s authorization=%s success=%t", action, tx.ID, tx.Authorization, tx.Success)
	if !tx.Success {
		c.JSON(http.StatusPaymentRequired, response.FromPaymentTransaction(tx))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentTransaction(tx))
}

func readAmountPayload(c *gin.Context) (request.AmountRequest, error) {
	var payload request.AmountRequest
	raw, err := c.GetRawData()
	if err != nil {
		return payload, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return payload, nil
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return payload, errors.New("request body is not valid json")
	}
	return payload, nil
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAmount), errors.Is(err, usecase.ErrInvalidAuthorization), errors.Is(err, usecase.ErrInvalidSourceID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentSourceNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_SOURCE_NOT_FOUND", "Payment source not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSourceNotSupported):
		return pkg.NewDomainErrorSimple("PAYMENT_SOURCE_NOT_SUPPORTED", "Card brand not supported by the payment method", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPaymentMethodNotConfigured):
		return pkg.NewDomainError("PAYMENT_METHOD_NOT_CONFIGURED", "Payment method not configured", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
