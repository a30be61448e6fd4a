package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"webpay_billing/internal/domain/entities"
	"webpay_billing/internal/usecase/interfaces"
	mock_interfaces "webpay_billing/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPaymentSourceUseCase_Register(t *testing.T) {
	t.Run("validations", func(t *testing.T) {
		uc := NewPaymentSourceUseCase(nil, nil)
		if _, err := uc.Register(context.Background(), " ", "tok_1"); !errors.Is(err, ErrInvalidCardBrand) {
			t.Fatalf("expected ErrInvalidCardBrand, got %v", err)
		}
		if _, err := uc.Register(context.Background(), "visa", " "); !errors.Is(err, ErrInvalidCardToken) {
			t.Fatalf("expected ErrInvalidCardToken, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentSourceRepository(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.PaymentSource) (entities.PaymentSource, error) {
			return s, nil
		})

		uc := NewPaymentSourceUseCase(repo, nil)
		s, err := uc.Register(context.Background(), " VISA ", " tok_1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.ID == "" || s.Brand != entities.CardBrandVisa || s.GatewayPaymentProfileID != "tok_1" {
			t.Fatalf("unexpected source: %+v", s)
		}
		if s.CreatedAt.IsZero() || s.HasCustomerProfile() {
			t.Fatalf("unexpected source: %+v", s)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentSourceRepository(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PaymentSource{}, errors.New("boom"))

		uc := NewPaymentSourceUseCase(repo, nil)
		if _, err := uc.Register(context.Background(), "visa", "tok_1"); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestPaymentSourceUseCase_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPaymentSourceRepository(ctrl)
	repo.EXPECT().GetByID(gomock.Any(), "src-404").Return(entities.PaymentSource{}, nil)

	uc := NewPaymentSourceUseCase(repo, nil)
	if _, err := uc.GetByID(context.Background(), " "); !errors.Is(err, ErrInvalidSourceID) {
		t.Fatalf("expected ErrInvalidSourceID, got %v", err)
	}
	if _, err := uc.GetByID(context.Background(), "src-404"); !errors.Is(err, ErrPaymentSourceNotFound) {
		t.Fatalf("expected ErrPaymentSourceNotFound, got %v", err)
	}
}

func TestPaymentSourceUseCase_Supports(t *testing.T) {
	t.Run("method not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentSourceRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "src-1").Return(entities.PaymentSource{ID: "src-1"}, nil)

		uc := NewPaymentSourceUseCase(repo, nil)
		if _, err := uc.Supports(context.Background(), "src-1"); !errors.Is(err, ErrPaymentMethodNotConfigured) {
			t.Fatalf("expected ErrPaymentMethodNotConfigured, got %v", err)
		}
	})

	t.Run("delegates to payment method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentSourceRepository(ctrl)
		method := mock_interfaces.NewMockIPaymentMethod(ctrl)
		source := entities.PaymentSource{ID: "src-1", Brand: entities.CardBrandJCB}
		repo.EXPECT().GetByID(gomock.Any(), "src-1").Return(source, nil)
		method.EXPECT().Supports(gomock.Any(), source).Return(false)

		uc := NewPaymentSourceUseCase(repo, methodProvider(method))
		ok, err := uc.Supports(context.Background(), "src-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Fatalf("expected jcb to be unsupported")
		}
	})
}

func TestPaymentSourceUseCase_CreateProfile(t *testing.T) {
	order := entities.Order{Email: "customer@example.com", Name: "John Doe"}

	t.Run("existing customer is returned unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentSourceRepository(ctrl)
		method := mock_interfaces.NewMockIPaymentMethod(ctrl)
		source := entities.PaymentSource{ID: "src-1", GatewayCustomerProfileID: "cus_1"}
		repo.EXPECT().GetByID(gomock.Any(), "src-1").Return(source, nil)
		method.EXPECT().PaymentProfilesSupported().Return(true)

		uc := NewPaymentSourceUseCase(repo, methodProvider(method))
		s, err := uc.CreateProfile(context.Background(), "src-1", order)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.GatewayCustomerProfileID != "cus_1" {
			t.Fatalf("unexpected source: %+v", s)
		}
	})

	t.Run("gateway error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentSourceRepository(ctrl)
		method := mock_interfaces.NewMockIPaymentMethod(ctrl)
		source := entities.PaymentSource{ID: "src-1", GatewayPaymentProfileID: "tok_1"}
		repo.EXPECT().GetByID(gomock.Any(), "src-1").Return(source, nil)
		method.EXPECT().PaymentProfilesSupported().Return(true)
		method.EXPECT().CreateProfile(gomock.Any(), gomock.Any(), order, gomock.Any()).
			Do(func(_ context.Context, _ *entities.PaymentSource, _ entities.Order, onGatewayError interfaces.GatewayErrorFunc) {
				onGatewayError("The card number is invalid. Make sure the number entered matches your credit card.")
			})

		uc := NewPaymentSourceUseCase(repo, methodProvider(method))
		_, err := uc.CreateProfile(context.Background(), "src-1", order)
		if !errors.Is(err, ErrGatewayProfileFailed) {
			t.Fatalf("expected ErrGatewayProfileFailed, got %v", err)
		}
		if !strings.Contains(err.Error(), "The card number is invalid.") {
			t.Fatalf("expected provider message, got %v", err)
		}
		var profileErr *GatewayProfileError
		if !errors.As(err, &profileErr) || profileErr.Message != "The card number is invalid. Make sure the number entered matches your credit card." {
			t.Fatalf("expected GatewayProfileError with provider message, got %v", err)
		}
	})

	t.Run("success persists customer and clears token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentSourceRepository(ctrl)
		method := mock_interfaces.NewMockIPaymentMethod(ctrl)
		source := entities.PaymentSource{ID: "src-1", GatewayPaymentProfileID: "tok_1"}
		repo.EXPECT().GetByID(gomock.Any(), "src-1").Return(source, nil)
		method.EXPECT().PaymentProfilesSupported().Return(true)
		method.EXPECT().CreateProfile(gomock.Any(), gomock.Any(), order, gomock.Any()).
			Do(func(_ context.Context, s *entities.PaymentSource, _ entities.Order, _ interfaces.GatewayErrorFunc) {
				s.GatewayCustomerProfileID = "cus_1"
				s.GatewayPaymentProfileID = ""
			})
		repo.EXPECT().UpdateGatewayProfile(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.PaymentSource) (entities.PaymentSource, error) {
			if s.GatewayCustomerProfileID != "cus_1" || s.GatewayPaymentProfileID != "" {
				t.Fatalf("unexpected source to persist: %+v", s)
			}
			return s, nil
		})

		uc := NewPaymentSourceUseCase(repo, methodProvider(method))
		s, err := uc.CreateProfile(context.Background(), "src-1", order)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.GatewayCustomerProfileID != "cus_1" {
			t.Fatalf("unexpected source: %+v", s)
		}
	})

	t.Run("source disappeared before update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentSourceRepository(ctrl)
		method := mock_interfaces.NewMockIPaymentMethod(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "src-1").Return(entities.PaymentSource{ID: "src-1", GatewayPaymentProfileID: "tok_1"}, nil)
		method.EXPECT().PaymentProfilesSupported().Return(true)
		method.EXPECT().CreateProfile(gomock.Any(), gomock.Any(), order, gomock.Any()).
			Do(func(_ context.Context, s *entities.PaymentSource, _ entities.Order, _ interfaces.GatewayErrorFunc) {
				s.GatewayCustomerProfileID = "cus_1"
			})
		repo.EXPECT().UpdateGatewayProfile(gomock.Any(), gomock.Any()).Return(entities.PaymentSource{}, nil)

		uc := NewPaymentSourceUseCase(repo, methodProvider(method))
		if _, err := uc.CreateProfile(context.Background(), "src-1", order); !errors.Is(err, ErrPaymentSourceNotFound) {
			t.Fatalf("expected ErrPaymentSourceNotFound, got %v", err)
		}
	})
}
