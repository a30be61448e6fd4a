package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"webpay_billing/internal/adapter/http/handlers"
	"webpay_billing/internal/adapter/http/handlers/mocks"
	"webpay_billing/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPingRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	addPingRoutes(r.Group("/v1"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestPaymentRoutes_StaticAndParamPaths(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentUseCase(ctrl)

	r := gin.New()
	v1 := r.Group("/v1")
	addPaymentRoutes(v1, handlers.NewPaymentHandler(uc))

	uc.EXPECT().Void(gomock.Any(), "ch_1").Return(entities.PaymentTransaction{ID: "tx-1", Success: true}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/payments/ch_1/void", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/payments/authorize", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
