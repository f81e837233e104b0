package repositories

import (
	"context"

	"github.com/SscSPs/property_backoffice/internal/core/domain"
)

// BankTransactionReader defines read operations for imported bank rows
type BankTransactionReader interface {
	// ListBankTransactions returns every imported row. Callers filter by date.
	ListBankTransactions(ctx context.Context) ([]domain.BankTransaction, error)
}

// BankTransactionWriter defines write operations for imported bank rows
type BankTransactionWriter interface {
	// SaveBankTransactions appends rows, skipping any whose transaction id is already
	// stored. Returns how many were added and how many were skipped as duplicates.
	SaveBankTransactions(ctx context.Context, txns []domain.BankTransaction) (added int, duplicates int, err error)
}

// BankTransactionRepositoryFacade combines all bank-import repository interfaces
type BankTransactionRepositoryFacade interface {
	BankTransactionReader
	BankTransactionWriter
}

// ManualPaymentReader defines read operations for manual payments
type ManualPaymentReader interface {
	ListManualPayments(ctx context.Context) ([]domain.ManualPayment, error)
	ListManualPaymentsByTenant(ctx context.Context, tenantID string) ([]domain.ManualPayment, error)
}

// ManualPaymentWriter defines write operations for manual payments
type ManualPaymentWriter interface {
	SaveManualPayment(ctx context.Context, payment domain.ManualPayment) error
	DeleteManualPayment(ctx context.Context, paymentID string) error
}

// ManualPaymentRepositoryFacade combines all manual-payment repository interfaces
type ManualPaymentRepositoryFacade interface {
	ManualPaymentReader
	ManualPaymentWriter
}

// DepositReader defines read operations for security deposits
type DepositReader interface {
	ListDeposits(ctx context.Context) ([]domain.Deposit, error)
	ListDepositsByTenant(ctx context.Context, tenantID string) ([]domain.Deposit, error)
}

// DepositWriter defines write operations for security deposits
type DepositWriter interface {
	SaveDeposit(ctx context.Context, deposit domain.Deposit) error
}

// DepositRepositoryFacade combines all deposit repository interfaces
type DepositRepositoryFacade interface {
	DepositReader
	DepositWriter
}
