package docstore

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/property_backoffice/internal/apperrors"
	"github.com/SscSPs/property_backoffice/internal/core/domain"
)

func TestRepositoryProvider_TenantRoundTrip(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositoryProvider(NewMemoryStore())

	tenant := domain.Tenant{TenantID: "10", Name: "Jane Doe", MonthlyRent: decimal.RequireFromString("1250.50"), DueDay: 5}
	require.NoError(t, repos.TenantRepo.SaveTenant(ctx, tenant))
	assert.ErrorIs(t, repos.TenantRepo.SaveTenant(ctx, tenant), apperrors.ErrDuplicate)

	got, err := repos.TenantRepo.FindTenantByID(ctx, "10.0")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", got.Name)
	assert.True(t, got.MonthlyRent.Equal(tenant.MonthlyRent))

	require.NoError(t, repos.TenantRepo.DeleteTenant(ctx, "10"))
	_, err = repos.TenantRepo.FindTenantByID(ctx, "10")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRepositoryProvider_ByTenantFilters(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositoryProvider(NewMemoryStore())

	require.NoError(t, repos.ManualPaymentRepo.SaveManualPayment(ctx, domain.ManualPayment{PaymentID: "m1", TenantID: "10", Date: "2024-01-02", Amount: decimal.NewFromInt(5)}))
	require.NoError(t, repos.ManualPaymentRepo.SaveManualPayment(ctx, domain.ManualPayment{PaymentID: "m2", TenantID: "11", Date: "2024-01-02", Amount: decimal.NewFromInt(5)}))
	require.NoError(t, repos.DepositRepo.SaveDeposit(ctx, domain.Deposit{DepositID: "d1", TenantID: "10.0", Kind: domain.DepositReceived}))
	require.NoError(t, repos.UtilityRepo.SaveUtilityCharge(ctx, domain.UtilityCharge{ChargeID: "u1", TenantID: "11"}))

	payments, err := repos.ManualPaymentRepo.ListManualPaymentsByTenant(ctx, "10")
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, "m1", payments[0].PaymentID)

	deposits, err := repos.DepositRepo.ListDepositsByTenant(ctx, "10")
	require.NoError(t, err)
	assert.Len(t, deposits, 1)

	bills, err := repos.UtilityRepo.ListUtilityChargesByTenant(ctx, "10")
	require.NoError(t, err)
	assert.Empty(t, bills)
}

func TestRepositoryProvider_BankImportDeduplicates(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositoryProvider(NewMemoryStore())

	batch := []domain.BankTransaction{
		{TransactionID: "b1", Date: "2024-01-02", Amount: decimal.NewFromInt(100)},
		{TransactionID: "b2", Date: "2024-01-03", Amount: decimal.NewFromInt(100)},
	}
	added, dups, err := repos.BankRepo.SaveBankTransactions(ctx, batch)
	require.NoError(t, err)
	assert.Equal(t, 2, added)
	assert.Equal(t, 0, dups)

	added, dups, err = repos.BankRepo.SaveBankTransactions(ctx, batch)
	require.NoError(t, err)
	assert.Equal(t, 0, added)
	assert.Equal(t, 2, dups)
}
