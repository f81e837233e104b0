package services

import (
	"context"

	"github.com/SscSPs/property_backoffice/internal/core/domain"
	"github.com/SscSPs/property_backoffice/internal/dto"
)

// ManualPaymentSvc defines operations on staff-entered payments
type ManualPaymentSvc interface {
	// RecordManualPayment stores the payment and announces it to subscribers.
	RecordManualPayment(ctx context.Context, req dto.CreateManualPaymentRequest, creatorUserID string) (*domain.ManualPayment, error)
	ListManualPayments(ctx context.Context, tenantID string) ([]domain.ManualPayment, error)
	DeleteManualPayment(ctx context.Context, paymentID string) error
}

// DepositSvc defines operations on security deposits
type DepositSvc interface {
	RecordDeposit(ctx context.Context, req dto.RecordDepositRequest, creatorUserID string) (*domain.Deposit, error)
	ListDeposits(ctx context.Context, tenantID string) ([]domain.Deposit, error)
}

// PaymentSvcFacade combines manual payments and deposits
type PaymentSvcFacade interface {
	ManualPaymentSvc
	DepositSvc
}

// BankSvcFacade defines the bank-import pipeline
type BankSvcFacade interface {
	// ImportTransactions validates raw rows and stores the good ones. Bad rows are
	// reported in the result, never returned as an error.
	ImportTransactions(ctx context.Context, rows []map[string]any) (*domain.ImportResult, error)
	ListTransactions(ctx context.Context, window domain.Window) ([]domain.BankTransaction, error)
}

// UtilitySvcFacade defines operations on utility bills
type UtilitySvcFacade interface {
	CreateUtilityCharge(ctx context.Context, req dto.CreateUtilityChargeRequest, creatorUserID string) (*domain.UtilityCharge, error)
	ListUtilityCharges(ctx context.Context, tenantID string) ([]domain.UtilityCharge, error)
	DeleteUtilityCharge(ctx context.Context, chargeID string) error
}
