package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"webpay_billing/internal/adapter/http/handlers/mocks"
	"webpay_billing/internal/domain/entities"
	"webpay_billing/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newSourceRouter(h *PaymentSourceHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/sources", h.CreateSource)
	r.GET("/v1/sources/:source_id", h.GetSource)
	r.GET("/v1/sources/:source_id/supports", h.Supports)
	r.POST("/v1/sources/:source_id/profile", h.CreateProfile)
	return r
}

func TestPaymentSourceHandler_CreateSource(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentSourceUseCase(ctrl)
		r := newSourceRouter(NewPaymentSourceHandler(uc))

		w := doJSON(r, http.MethodPost, "/v1/sources", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentSourceUseCase(ctrl)
		r := newSourceRouter(NewPaymentSourceHandler(uc))

		w := doJSON(r, http.MethodPost, "/v1/sources", `{"brand":"visa"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("blank brand", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentSourceUseCase(ctrl)
		r := newSourceRouter(NewPaymentSourceHandler(uc))

		uc.EXPECT().Register(gomock.Any(), "", "tok_1").Return(entities.PaymentSource{}, usecase.ErrInvalidCardBrand)

		w := doJSON(r, http.MethodPost, "/v1/sources", `{"brand":"   ","token":"tok_1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentSourceUseCase(ctrl)
		r := newSourceRouter(NewPaymentSourceHandler(uc))

		now := time.Now().UTC()
		uc.EXPECT().Register(gomock.Any(), "visa", "tok_1").Return(entities.PaymentSource{
			ID:                      "src-1",
			Brand:                   entities.CardBrandVisa,
			GatewayPaymentProfileID: "tok_1",
			CreatedAt:               now,
			UpdatedAt:               now,
		}, nil)

		w := doJSON(r, http.MethodPost, "/v1/sources", `{"brand":" VISA ","token":" tok_1 "}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["id"] != "src-1" || body["has_card_token"] != true {
			t.Fatalf("unexpected body: %v", body)
		}
		if _, ok := body["token"]; ok {
			t.Fatalf("token must not be echoed: %v", body)
		}
	})
}

func TestPaymentSourceHandler_GetSource(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentSourceUseCase(ctrl)
		r := newSourceRouter(NewPaymentSourceHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "src-404").Return(entities.PaymentSource{}, usecase.ErrPaymentSourceNotFound)

		w := doJSON(r, http.MethodGet, "/v1/sources/src-404", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentSourceUseCase(ctrl)
		r := newSourceRouter(NewPaymentSourceHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "src-1").Return(entities.PaymentSource{ID: "src-1", Brand: entities.CardBrandJCB}, nil)

		w := doJSON(r, http.MethodGet, "/v1/sources/src-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPaymentSourceHandler_Supports(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentSourceUseCase(ctrl)
	r := newSourceRouter(NewPaymentSourceHandler(uc))

	uc.EXPECT().Supports(gomock.Any(), "src-1").Return(false, nil)

	w := doJSON(r, http.MethodGet, "/v1/sources/src-1/supports", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["supported"] != false || body["source_id"] != "src-1" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestPaymentSourceHandler_CreateProfile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("gateway error surfaces provider message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentSourceUseCase(ctrl)
		r := newSourceRouter(NewPaymentSourceHandler(uc))

		order := entities.Order{Email: "customer@example.com", Name: "John Doe"}
		uc.EXPECT().CreateProfile(gomock.Any(), "src-1", order).
			Return(entities.PaymentSource{}, &usecase.GatewayProfileError{Message: "The card number is invalid."})

		w := doJSON(r, http.MethodPost, "/v1/sources/src-1/profile", `{"email":"customer@example.com","name":"John Doe"}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		var body struct {
			Error struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body.Error.Code != "GATEWAY_ERROR" || body.Error.Message != "The card number is invalid." {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("gateway error without provider message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentSourceUseCase(ctrl)
		r := newSourceRouter(NewPaymentSourceHandler(uc))

		uc.EXPECT().CreateProfile(gomock.Any(), "src-1", gomock.Any()).Return(entities.PaymentSource{}, usecase.ErrGatewayProfileFailed)

		w := doJSON(r, http.MethodPost, "/v1/sources/src-1/profile", `{}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		var body map[string]map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["error"]["message"] != "Gateway profile creation failed" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentSourceUseCase(ctrl)
		r := newSourceRouter(NewPaymentSourceHandler(uc))

		uc.EXPECT().CreateProfile(gomock.Any(), "src-1", entities.Order{Email: "customer@example.com"}).
			Return(entities.PaymentSource{ID: "src-1", GatewayCustomerProfileID: "cus_1"}, nil)

		w := doJSON(r, http.MethodPost, "/v1/sources/src-1/profile", `{"email":"customer@example.com"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["gateway_customer_profile_id"] != "cus_1" || body["has_card_token"] != false {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}
