package fixtures_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/property_backoffice/internal/apperrors"
	"github.com/SscSPs/property_backoffice/internal/core/domain"
	"github.com/SscSPs/property_backoffice/internal/core/services"
	"github.com/SscSPs/property_backoffice/internal/events"
	"github.com/SscSPs/property_backoffice/internal/fixtures"
	"github.com/SscSPs/property_backoffice/internal/platform/config"
	"github.com/SscSPs/property_backoffice/internal/repositories/docstore"
)

const sample = `
tenants:
  - id: "10"
    name: Jane Doe
    property_id: P1
    unit: 4B
    monthly_rent: "1200.00"
    due_day: 5
  - id: "11"
    name: Former Tenant
    monthly_rent: "800"
    is_active: false
leases:
  - tenant_id: "10"
    unit: 4B
    deposit: "500"
    start_date: 2024-08-01
bank_transactions:
  - transaction_id: tx1
    date: 2024-08-02
    amount: 1200
    tenant_id: "10.0"
  - transaction_id: tx2
    date: not-a-date
    amount: 50
manual_payments:
  - tenant_id: "10"
    date: 2024-09-20
    amount: "100"
    method: cash
utility_charges:
  - tenant_id: "10"
    date: 2024-08-31
    amount: "45.20"
    type: water
`

func TestApply(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{OverdueLookbackMonths: 12}
	repos := docstore.NewRepositoryProvider(docstore.NewMemoryStore())
	container := services.NewServiceContainer(cfg, repos, events.LogPublisher{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})

	f, err := fixtures.Load(strings.NewReader(sample))
	require.NoError(t, err)

	sum, err := fixtures.Apply(ctx, container, f, "seed", slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	assert.Equal(t, fixtures.Summary{Tenants: 2, Leases: 1, BankImported: 1, BankRejected: 1, ManualPayments: 1, UtilityCharges: 1}, sum)

	former, err := container.Tenant.GetTenantByID(ctx, "11")
	require.NoError(t, err)
	assert.False(t, former.IsActive)

	window, err := domain.ParseWindow("2024-08-01", "2024-09-30")
	require.NoError(t, err)
	report, err := container.Reporting.TenantLedger(ctx, "10", window, domain.LedgerOptions{})
	require.NoError(t, err)
	assert.Equal(t, "1100", report.Statement.Totals.FinalBalance.String())
}

func TestApply_StopsOnInvalidRecord(t *testing.T) {
	ctx := context.Background()
	repos := docstore.NewRepositoryProvider(docstore.NewMemoryStore())
	container := services.NewServiceContainer(&config.Config{}, repos, events.LogPublisher{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})

	f, err := fixtures.Load(strings.NewReader(`
manual_payments:
  - tenant_id: "99"
    date: 2024-09-20
    amount: "100"
`))
	require.NoError(t, err)

	sum, err := fixtures.Apply(ctx, container, f, "seed", slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.ErrorIs(t, err, apperrors.ErrValidation, "payments for unknown tenants are refused")
	assert.Zero(t, sum.ManualPayments)
}

func TestLoad_RejectsUnknownFields(t *testing.T) {
	_, err := fixtures.Load(strings.NewReader("tenants:\n  - id: \"1\"\n    rent: 10\n"))
	assert.Error(t, err)

	f, err := fixtures.Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, f.Tenants)

	_, err = fixtures.Load(strings.NewReader("tenants:\n  - id: \"1\"\n    name: A\n    monthly_rent: abc\n"))
	require.NoError(t, err, "amounts are checked when applied")
}
