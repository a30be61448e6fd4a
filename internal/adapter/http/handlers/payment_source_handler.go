package handlers

import (
	"errors"
	"log"
	"net/http"

	request "webpay_billing/internal/adapter/http/dto/request"
	response "webpay_billing/internal/adapter/http/dto/response"
	"webpay_billing/internal/usecase"
	"webpay_billing/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSourcePayload = pkg.NewDomainErrorSimple("INVALID_SOURCE_INPUT", "Invalid payment source payload", http.StatusBadRequest)
)

// PaymentSourceHandler handles HTTP requests for stored cards.

type PaymentSourceHandler struct {
	usecase usecase.IPaymentSourceUseCase
}

func NewPaymentSourceHandler(uc usecase.IPaymentSourceUseCase) *PaymentSourceHandler {
	return &PaymentSourceHandler{usecase: uc}
}

// CreateSource stores a card token obtained client-side with the publishable key.
func (h *PaymentSourceHandler) CreateSource(c *gin.Context) {
	var payload request.PaymentSourceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSourcePayload.HTTPStatus, errInvalidSourcePayload.ToHTTPError())
		return
	}

	source, err := h.usecase.Register(c.Request.Context(), payload.ResolveBrand(), payload.ResolveToken())
	if err != nil {
		appErr := mapSourceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPaymentSource(source))
}

func (h *PaymentSourceHandler) GetSource(c *gin.Context) {
	source, err := h.usecase.GetByID(c.Request.Context(), c.Param("source_id"))
	if err != nil {
		appErr := mapSourceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentSource(source))
}

func (h *PaymentSourceHandler) Supports(c *gin.Context) {
	sourceID := c.Param("source_id")
	supported, err := h.usecase.Supports(c.Request.Context(), sourceID)
	if err != nil {
		appErr := mapSourceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.SupportsResponse{SourceID: sourceID, Supported: supported})
}

// CreateProfile creates the gateway customer for a source; the card token is consumed.
func (h *PaymentSourceHandler) CreateProfile(c *gin.Context) {
	sourceID := c.Param("source_id")
	var payload request.CustomerProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSourcePayload.HTTPStatus, errInvalidSourcePayload.ToHTTPError())
		return
	}

	source, err := h.usecase.CreateProfile(c.Request.Context(), sourceID, payload.ToOrder())
	if err != nil {
		log.Printf("[source][handler] create profile failed source_id=%s err=%v", sourceID, err)
		appErr := mapSourceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentSource(source))
}

func mapSourceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSourceID), errors.Is(err, usecase.ErrInvalidCardBrand), errors.Is(err, usecase.ErrInvalidCardToken):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentSourceNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_SOURCE_NOT_FOUND", "Payment source not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrGatewayProfileFailed):
		return pkg.NewDomainError("GATEWAY_ERROR", gatewayMessage(err), err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentMethodNotConfigured):
		return pkg.NewDomainError("PAYMENT_METHOD_NOT_CONFIGURED", "Payment method not configured", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// gatewayMessage returns the provider message so it reaches the client.
func gatewayMessage(err error) string {
	var profileErr *usecase.GatewayProfileError
	if errors.As(err, &profileErr) && profileErr.Message != "" {
		return profileErr.Message
	}
	return "Gateway profile creation failed"
}
