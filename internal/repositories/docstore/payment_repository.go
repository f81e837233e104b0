package docstore

import (
	"context"

	"github.com/SscSPs/property_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/property_backoffice/internal/core/ports/repositories"
)

type DocBankTransactionRepository struct {
	txns *Collection[domain.BankTransaction]
}

func newDocBankTransactionRepository(store Store) portsrepo.BankTransactionRepositoryFacade {
	return &DocBankTransactionRepository{
		txns: NewCollection(store, BankTransactionsKey, func(t domain.BankTransaction) string { return t.TransactionID }),
	}
}

var _ portsrepo.BankTransactionRepositoryFacade = (*DocBankTransactionRepository)(nil)

func (r *DocBankTransactionRepository) ListBankTransactions(ctx context.Context) ([]domain.BankTransaction, error) {
	return r.txns.List(ctx)
}

func (r *DocBankTransactionRepository) SaveBankTransactions(ctx context.Context, txns []domain.BankTransaction) (int, int, error) {
	return r.txns.AppendNew(ctx, txns)
}

type DocManualPaymentRepository struct {
	payments *Collection[domain.ManualPayment]
}

func newDocManualPaymentRepository(store Store) portsrepo.ManualPaymentRepositoryFacade {
	return &DocManualPaymentRepository{
		payments: NewCollection(store, ManualPaymentsKey, func(p domain.ManualPayment) string { return p.PaymentID }),
	}
}

var _ portsrepo.ManualPaymentRepositoryFacade = (*DocManualPaymentRepository)(nil)

func (r *DocManualPaymentRepository) ListManualPayments(ctx context.Context) ([]domain.ManualPayment, error) {
	return r.payments.List(ctx)
}

func (r *DocManualPaymentRepository) ListManualPaymentsByTenant(ctx context.Context, tenantID string) ([]domain.ManualPayment, error) {
	id := domain.NormalizeTenantID(tenantID)
	return r.payments.Filter(ctx, func(p domain.ManualPayment) bool {
		return domain.NormalizeTenantID(p.TenantID) == id
	})
}

func (r *DocManualPaymentRepository) SaveManualPayment(ctx context.Context, payment domain.ManualPayment) error {
	return r.payments.Append(ctx, payment)
}

func (r *DocManualPaymentRepository) DeleteManualPayment(ctx context.Context, paymentID string) error {
	return r.payments.Delete(ctx, paymentID)
}

type DocDepositRepository struct {
	deposits *Collection[domain.Deposit]
}

func newDocDepositRepository(store Store) portsrepo.DepositRepositoryFacade {
	return &DocDepositRepository{
		deposits: NewCollection(store, DepositsKey, func(d domain.Deposit) string { return d.DepositID }),
	}
}

var _ portsrepo.DepositRepositoryFacade = (*DocDepositRepository)(nil)

func (r *DocDepositRepository) ListDeposits(ctx context.Context) ([]domain.Deposit, error) {
	return r.deposits.List(ctx)
}

func (r *DocDepositRepository) ListDepositsByTenant(ctx context.Context, tenantID string) ([]domain.Deposit, error) {
	id := domain.NormalizeTenantID(tenantID)
	return r.deposits.Filter(ctx, func(d domain.Deposit) bool {
		return domain.NormalizeTenantID(d.TenantID) == id
	})
}

func (r *DocDepositRepository) SaveDeposit(ctx context.Context, deposit domain.Deposit) error {
	return r.deposits.Append(ctx, deposit)
}
