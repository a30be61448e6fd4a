package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"webpay_billing/internal/domain/entities"
	"webpay_billing/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidSourceID            = errors.New("invalid source id")
	ErrInvalidCardBrand           = errors.New("invalid card brand")
	ErrInvalidCardToken           = errors.New("invalid card token")
	ErrPaymentSourceNotFound      = errors.New("payment source not found")
	ErrPaymentMethodNotConfigured = errors.New("payment method not configured")
	ErrGatewayProfileFailed       = errors.New("gateway profile creation failed")
)

// GatewayProfileError carries the provider message of a rejected customer profile.
type GatewayProfileError struct {
	Message string
}

func (e *GatewayProfileError) Error() string {
	return ErrGatewayProfileFailed.Error() + ": " + e.Message
}

func (e *GatewayProfileError) Unwrap() error {
	return ErrGatewayProfileFailed
}

// PaymentMethodProvider returns a fresh payment method for the current request.
type PaymentMethodProvider func() (interfaces.IPaymentMethod, error)

// IPaymentSourceUseCase manages stored cards and their gateway customer profiles.
//
//go:generate mockgen -source payment_source_usecase.go -destination ../adapter/http/handlers/mocks/payment_source_usecase_mock.go -package mocks
type IPaymentSourceUseCase interface {
	Register(ctx context.Context, brand, token string) (entities.PaymentSource, error)
	GetByID(ctx context.Context, id string) (entities.PaymentSource, error)
	Supports(ctx context.Context, id string) (bool, error)
	CreateProfile(ctx context.Context, id string, order entities.Order) (entities.PaymentSource, error)
}

type PaymentSourceUseCase struct {
	repo      interfaces.IPaymentSourceRepository
	newMethod PaymentMethodProvider
}

var _ IPaymentSourceUseCase = (*PaymentSourceUseCase)(nil)

func NewPaymentSourceUseCase(repo interfaces.IPaymentSourceRepository, newMethod PaymentMethodProvider) *PaymentSourceUseCase {
	return &PaymentSourceUseCase{repo: repo, newMethod: newMethod}
}

func (u *PaymentSourceUseCase) Register(ctx context.Context, brand, token string) (entities.PaymentSource, error) {
	brand = strings.ToLower(strings.TrimSpace(brand))
	if brand == "" {
		return entities.PaymentSource{}, ErrInvalidCardBrand
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.PaymentSource{}, ErrInvalidCardToken
	}

	now := time.Now().UTC()
	s := entities.PaymentSource{
		ID:                      uuid.NewString(),
		Brand:                   brand,
		GatewayPaymentProfileID: token,
		CreatedAt:               now,
		UpdatedAt:               now,
	}
	created, err := u.repo.Create(ctx, s)
	if err != nil {
		log.Printf("[source][usecase] create failed source_id=%s err=%v", s.ID, err)
		return entities.PaymentSource{}, err
	}
	log.Printf("[source][usecase] registered source_id=%s brand=%s", created.ID, created.Brand)
	return created, nil
}

func (u *PaymentSourceUseCase) GetByID(ctx context.Context, id string) (entities.PaymentSource, error) {
	return loadSource(ctx, u.repo, id)
}

func (u *PaymentSourceUseCase) Supports(ctx context.Context, id string) (bool, error) {
	s, err := loadSource(ctx, u.repo, id)
	if err != nil {
		return false, err
	}
	method, err := resolveMethod(u.newMethod)
	if err != nil {
		return false, err
	}
	return method.Supports(ctx, s), nil
}

// CreateProfile turns the one-time token of a source into a gateway customer.
// Sources that already have a customer profile are returned unchanged.
func (u *PaymentSourceUseCase) CreateProfile(ctx context.Context, id string, order entities.Order) (entities.PaymentSource, error) {
	s, err := loadSource(ctx, u.repo, id)
	if err != nil {
		return entities.PaymentSource{}, err
	}
	method, err := resolveMethod(u.newMethod)
	if err != nil {
		return entities.PaymentSource{}, err
	}
	if !method.PaymentProfilesSupported() || s.HasCustomerProfile() {
		return s, nil
	}

	var gatewayErr string
	method.CreateProfile(ctx, &s, order, func(message string) {
		gatewayErr = message
	})
	if gatewayErr != "" {
		log.Printf("[source][usecase] create profile failed source_id=%s message=%q", s.ID, gatewayErr)
		return entities.PaymentSource{}, &GatewayProfileError{Message: gatewayErr}
	}
	if !s.HasCustomerProfile() {
		return s, nil
	}

	updated, err := u.repo.UpdateGatewayProfile(ctx, s)
	if err != nil {
		log.Printf("[source][usecase] update profile failed source_id=%s err=%v", s.ID, err)
		return entities.PaymentSource{}, err
	}
	if updated.ID == "" {
		return entities.PaymentSource{}, ErrPaymentSourceNotFound
	}
	log.Printf("[source][usecase] profile created source_id=%s customer_id=%s", updated.ID, updated.GatewayCustomerProfileID)
	return updated, nil
}

func loadSource(ctx context.Context, repo interfaces.IPaymentSourceRepository, id string) (entities.PaymentSource, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PaymentSource{}, ErrInvalidSourceID
	}
	s, err := repo.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentSource{}, err
	}
	if s.ID == "" {
		return entities.PaymentSource{}, ErrPaymentSourceNotFound
	}
	return s, nil
}

func resolveMethod(newMethod PaymentMethodProvider) (interfaces.IPaymentMethod, error) {
	if newMethod == nil {
		return nil, ErrPaymentMethodNotConfigured
	}
	m, err := newMethod()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPaymentMethodNotConfigured, err)
	}
	return m, nil
}
