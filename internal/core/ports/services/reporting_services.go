package services

import (
	"context"
	"time"

	"github.com/SscSPs/property_backoffice/internal/core/domain"
)

// ReportingSvc defines the financial reports built on the statement engine
type ReportingSvc interface {
	// TenantLedger nets a tenant's rent against bank and manual payments, and
	// optionally deposits, over the window.
	TenantLedger(ctx context.Context, tenantID string, window domain.Window, opts domain.LedgerOptions) (*domain.LedgerReport, error)

	// DepositsReport lists deposit movements per tenant. An empty propertyID covers all properties.
	DepositsReport(ctx context.Context, window domain.Window, propertyID string) (*domain.DepositsReport, error)

	// UtilityChargesReport returns a running total of a tenant's utility bills.
	UtilityChargesReport(ctx context.Context, tenantID string, window domain.Window) (*domain.LedgerReport, error)

	// UnitFinancials returns each unit's rent position for the window.
	UnitFinancials(ctx context.Context, propertyID string, window domain.Window) (*domain.UnitFinancialsReport, error)

	// OverdueRent lists tenants with a positive balance as of a day.
	OverdueRent(ctx context.Context, asOf time.Time, propertyID string) (*domain.OverdueReport, error)
}
