package usecase

import (
	"context"
	"encoding/json"
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
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrInvalidAuthorization = errors.New("invalid authorization")
	ErrSourceNotSupported   = errors.New("payment source not supported by payment method")

	errTransactionRepoNotConfigured = errors.New("payment transaction repository not configured")
)

// IPaymentUseCase runs gateway operations and records each one as a PaymentTransaction.
//
// A declined or failed gateway call is not an error: the returned transaction
// has Success=false. Errors are reserved for validation, lookup and storage.
//
//go:generate mockgen -source payment_usecase.go -destination ../adapter/http/handlers/mocks/payment_usecase_mock.go -package mocks
type IPaymentUseCase interface {
	Authorize(ctx context.Context, sourceID string, amount int64) (entities.PaymentTransaction, error)
	Purchase(ctx context.Context, sourceID string, amount int64) (entities.PaymentTransaction, error)
	Capture(ctx context.Context, authorization string, amount int64) (entities.PaymentTransaction, error)
	Void(ctx context.Context, authorization string) (entities.PaymentTransaction, error)
	Refund(ctx context.Context, authorization string, amount int64) (entities.PaymentTransaction, error)
	Credit(ctx context.Context, authorization string, amount int64) (entities.PaymentTransaction, error)
	ListByAuthorization(ctx context.Context, authorization string) ([]entities.PaymentTransaction, error)
}

type PaymentUseCase struct {
	repo       interfaces.IPaymentTransactionRepository
	sourceRepo interfaces.IPaymentSourceRepository
	newMethod  PaymentMethodProvider
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentTransactionRepository, sourceRepo interfaces.IPaymentSourceRepository, newMethod PaymentMethodProvider) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, sourceRepo: sourceRepo, newMethod: newMethod}
}

func (u *PaymentUseCase) Authorize(ctx context.Context, sourceID string, amount int64) (entities.PaymentTransaction, error) {
	return u.charge(ctx, entities.PaymentActionAuthorize, sourceID, amount)
}

func (u *PaymentUseCase) Purchase(ctx context.Context, sourceID string, amount int64) (entities.PaymentTransaction, error) {
	return u.charge(ctx, entities.PaymentActionPurchase, sourceID, amount)
}

func (u *PaymentUseCase) charge(ctx context.Context, action entities.PaymentAction, sourceID string, amount int64) (entities.PaymentTransaction, error) {
	log.Printf("[payment][usecase] %s start source_id=%q amount=%d", action, sourceID, amount)
	if amount <= 0 {
		return entities.PaymentTransaction{}, ErrInvalidAmount
	}
	if u.repo == nil {
		return entities.PaymentTransaction{}, errTransactionRepoNotConfigured
	}
	if u.sourceRepo == nil {
		return entities.PaymentTransaction{}, errors.New("payment source repository not configured")
	}
	source, err := loadSource(ctx, u.sourceRepo, sourceID)
	if err != nil {
		log.Printf("[payment][usecase] %s source lookup failed source_id=%q err=%v", action, sourceID, err)
		return entities.PaymentTransaction{}, err
	}
	method, err := resolveMethod(u.newMethod)
	if err != nil {
		return entities.PaymentTransaction{}, err
	}
	if !method.Supports(ctx, source) {
		log.Printf("[payment][usecase] %s source not supported source_id=%s brand=%s", action, source.ID, source.Brand)
		return entities.PaymentTransaction{}, ErrSourceNotSupported
	}

	var res entities.ChargeResult
	if action == entities.PaymentActionPurchase {
		res = method.Purchase(ctx, amount, source)
	} else {
		res = method.Authorize(ctx, amount, source)
	}
	return u.record(ctx, action, source.ID, amount, res)
}

func (u *PaymentUseCase) Capture(ctx context.Context, authorization string, amount int64) (entities.PaymentTransaction, error) {
	authorization = strings.TrimSpace(authorization)
	if authorization == "" {
		return entities.PaymentTransaction{}, ErrInvalidAuthorization
	}
	if amount <= 0 {
		return entities.PaymentTransaction{}, ErrInvalidAmount
	}
	if u.repo == nil {
		return entities.PaymentTransaction{}, errTransactionRepoNotConfigured
	}
	method, err := resolveMethod(u.newMethod)
	if err != nil {
		return entities.PaymentTransaction{}, err
	}
	res := method.Capture(ctx, amount, authorization)
	return u.record(ctx, entities.PaymentActionCapture, "", amount, withAuthorization(res, authorization))
}

func (u *PaymentUseCase) Void(ctx context.Context, authorization string) (entities.PaymentTransaction, error) {
	authorization = strings.TrimSpace(authorization)
	if authorization == "" {
		return entities.PaymentTransaction{}, ErrInvalidAuthorization
	}
	if u.repo == nil {
		return entities.PaymentTransaction{}, errTransactionRepoNotConfigured
	}
	method, err := resolveMethod(u.newMethod)
	if err != nil {
		return entities.PaymentTransaction{}, err
	}
	res := method.Void(ctx, authorization)
	return u.record(ctx, entities.PaymentActionVoid, "", 0, withAuthorization(res, authorization))
}

// Refund passes amount through to the payment method unchanged; see
// payments.RefundAmount for how the gateway amount is derived from it.
func (u *PaymentUseCase) Refund(ctx context.Context, authorization string, amount int64) (entities.PaymentTransaction, error) {
	return u.refund(ctx, entities.PaymentActionRefund, authorization, amount)
}

func (u *PaymentUseCase) Credit(ctx context.Context, authorization string, amount int64) (entities.PaymentTransaction, error) {
	return u.refund(ctx, entities.PaymentActionCredit, authorization, amount)
}

func (u *PaymentUseCase) refund(ctx context.Context, action entities.PaymentAction, authorization string, amount int64) (entities.PaymentTransaction, error) {
	authorization = strings.TrimSpace(authorization)
	if authorization == "" {
		return entities.PaymentTransaction{}, ErrInvalidAuthorization
	}
	if amount < 0 {
		return entities.PaymentTransaction{}, ErrInvalidAmount
	}
	if u.repo == nil {
		return entities.PaymentTransaction{}, errTransactionRepoNotConfigured
	}
	method, err := resolveMethod(u.newMethod)
	if err != nil {
		return entities.PaymentTransaction{}, err
	}
	var res entities.ChargeResult
	if action == entities.PaymentActionCredit {
		res = method.Credit(ctx, amount, authorization)
	} else {
		res = method.Refund(ctx, amount, authorization)
	}
	return u.record(ctx, action, "", amount, withAuthorization(res, authorization))
}

func (u *PaymentUseCase) ListByAuthorization(ctx context.Context, authorization string) ([]entities.PaymentTransaction, error) {
	authorization = strings.TrimSpace(authorization)
	if authorization == "" {
		return nil, ErrInvalidAuthorization
	}
	if u.repo == nil {
		return nil, errTransactionRepoNotConfigured
	}
	return u.repo.ListByAuthorization(ctx, authorization)
}

func (u *PaymentUseCase) record(ctx context.Context, action entities.PaymentAction, sourceID string, amount int64, res entities.ChargeResult) (entities.PaymentTransaction, error) {
	tx := entities.PaymentTransaction{
		ID:            uuid.NewString(),
		Action:        action,
		SourceID:      sourceID,
		Amount:        amount,
		Authorization: res.Authorization,
		Success:       res.Success,
		Message:       res.Message,
		Test:          res.Test,
		CVVCode:       res.CVVResult.CodeString(),
		CreatedAt:     time.Now().UTC(),
		Params:        res.Params,
	}
	if len(res.Params) > 0 {
		if b, err := json.Marshal(res.Params); err == nil {
			tx.ParamsRaw = b
		}
	}
	log.Printf("[payment][usecase] %s result authorization=%s success=%t message=%q", action, tx.Authorization, tx.Success, tx.Message)

	created, err := u.repo.Create(ctx, tx)
	if err != nil {
		log.Printf("[payment][usecase] transaction create failed transaction_id=%s err=%v", tx.ID, err)
		return tx, fmt.Errorf("record %s transaction: %w", action, err)
	}
	return created, nil
}

// withAuthorization keeps follow-up transactions reachable by the charge they act on.
func withAuthorization(res entities.ChargeResult, authorization string) entities.ChargeResult {
	if res.Authorization == "" {
		res.Authorization = authorization
	}
	return res
}
