package routes

import (
	"webpay_billing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSources  = "/sources"
	PathPayments = "/payments"
)

func addSourceRoutes(rg *gin.RouterGroup, sourceHandler *handlers.PaymentSourceHandler) {
	sources := rg.Group(PathSources)
	{
		sources.POST("", sourceHandler.CreateSource)
		sources.GET("/:source_id", sourceHandler.GetSource)
		sources.GET("/:source_id/supports", sourceHandler.Supports)
		sources.POST("/:source_id/profile", sourceHandler.CreateProfile)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/authorize", paymentHandler.Authorize)
		payments.POST("/purchase", paymentHandler.Purchase)

		// :authorization is the gateway charge id returned by authorize/purchase.
		payments.GET("/:authorization", paymentHandler.ListByAuthorization)
		payments.POST("/:authorization/capture", paymentHandler.Capture)
		payments.POST("/:authorization/void", paymentHandler.Void)
		payments.POST("/:authorization/refund", paymentHandler.Refund)
		payments.POST("/:authorization/credit", paymentHandler.Credit)
	}
}
