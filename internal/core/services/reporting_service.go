package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/property_backoffice/internal/apperrors"
	"github.com/SscSPs/property_backoffice/internal/core/domain"
	"github.com/SscSPs/property_backoffice/internal/core/ledger"
	portsrepo "github.com/SscSPs/property_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/property_backoffice/internal/core/ports/services"
	"github.com/SscSPs/property_backoffice/internal/platform/metrics"
	"github.com/shopspring/decimal"
)

// Report names used as metric labels.
const (
	reportLedger         = "ledger"
	reportDeposits       = "deposits"
	reportUtilities      = "utility_charges"
	reportUnitFinancials = "unit_financials"
	reportOverdue        = "overdue"
)

const defaultOverdueLookbackMonths = 12

// reportingService implements the ReportingSvc interface
type reportingService struct {
	BaseService
	repos          portsrepo.RepositoryProvider
	lookbackMonths int
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithClock sets the clock used for synthetic deposit dates.
func WithClock(clock func() time.Time) ReportingServiceOption {
	return func(s *reportingService) {
		s.Clock = clock
	}
}

// WithOverdueLookback sets how far back the overdue report looks for tenants without a lease.
func WithOverdueLookback(months int) ReportingServiceOption {
	return func(s *reportingService) {
		if months > 0 {
			s.lookbackMonths = months
		}
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(repos portsrepo.RepositoryProvider, options ...ReportingServiceOption) portssvc.ReportingSvc {
	svc := &reportingService{
		repos:          repos,
		lookbackMonths: defaultOverdueLookbackMonths,
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingSvc interface
var _ portssvc.ReportingSvc = (*reportingService)(nil)

// observe records the outcome of one report build.
func observe(report string, started time.Time, empty bool, err error) {
	result := metrics.ResultSuccess
	switch {
	case err != nil:
		result = metrics.ResultError
	case empty:
		result = metrics.ResultEmpty
	}
	metrics.ObserveStatementBuild(report, result, time.Since(started))
}

// paymentSources holds every stored payment, fetched once per report.
type paymentSources struct {
	resolver       *ledger.Resolver
	bankByTenant   map[string][]domain.BankTransaction
	bankRejections []domain.Rejection
	manual         []domain.ManualPayment
}

func (s *reportingService) loadPaymentSources(ctx context.Context, tenants []domain.Tenant) (*paymentSources, error) {
	bank, err := s.repos.BankRepo.ListBankTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load bank transactions: %w", err)
	}
	manual, err := s.repos.ManualPaymentRepo.ListManualPayments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load manual payments: %w", err)
	}
	resolver := ledger.NewResolver(tenants)
	byTenant, rejections := resolver.Partition(bank)
	return &paymentSources{
		resolver:       resolver,
		bankByTenant:   byTenant,
		bankRejections: rejections,
		manual:         manual,
	}, nil
}

// paymentsFor collects a tenant's bank and manual payment events inside the window.
func (p *paymentSources) paymentsFor(tenant domain.Tenant, window domain.Window) ([]domain.PaymentEvent, []domain.Rejection) {
	id := tenant.CanonicalID()
	payments, rejections := ledger.NormalizeBank(p.bankByTenant[id], window)

	var own []domain.ManualPayment
	for _, m := range p.manual {
		if domain.NormalizeTenantID(m.TenantID) == id {
			own = append(own, m)
		}
	}
	manualEvents, manualRejections := ledger.NormalizeManual(own, window)
	payments = append(payments, manualEvents...)
	rejections = append(rejections, manualRejections...)
	return payments, rejections
}

// ambiguousFor returns ambiguous bank rows that name the tenant as a candidate.
func (p *paymentSources) ambiguousFor(tenant domain.Tenant) []domain.Rejection {
	id := tenant.CanonicalID()
	var out []domain.Rejection
	for _, r := range p.bankRejections {
		if r.Reason == domain.RejectAmbiguousTenant && slices.Contains(r.Candidates, id) {
			out = append(out, r)
		}
	}
	return out
}

func (s *reportingService) TenantLedger(ctx context.Context, tenantID string, window domain.Window, opts domain.LedgerOptions) (report *domain.LedgerReport, err error) {
	started := time.Now()
	defer func() { observe(reportLedger, started, report != nil && len(report.Statement.Rows) == 0, err) }()

	tenants, err := s.repos.TenantRepo.ListTenants(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load tenants for ledger")
		return nil, fmt.Errorf("failed to load tenants: %w", err)
	}
	sources, err := s.loadPaymentSources(ctx, tenants)
	if err != nil {
		s.LogError(ctx, err, "Failed to load payments for ledger", slog.String("tenant_id", tenantID))
		return nil, err
	}
	tenant, ok := sources.resolver.ByID(tenantID)
	if !ok {
		return nil, fmt.Errorf("failed to build ledger: %w: tenant %s", apperrors.ErrNotFound, tenantID)
	}

	payments, rejections := sources.paymentsFor(tenant, window)
	rejections = append(rejections, sources.ambiguousFor(tenant)...)

	if opts.IncludeDeposits {
		deposits, err := s.repos.DepositRepo.ListDepositsByTenant(ctx, tenant.TenantID)
		if err != nil {
			return nil, fmt.Errorf("failed to load deposits: %w", err)
		}
		leases, err := s.repos.LeaseRepo.ListLeases(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load leases: %w", err)
		}
		payments = append(payments, ledger.NormalizeDeposits(tenant, deposits, leases, window, s.Now())...)
	}

	stmt, err := ledger.BuildStatement(tenant, window, payments)
	if err != nil {
		return nil, err
	}
	recordRejections(rejections)
	if rejections == nil {
		rejections = []domain.Rejection{}
	}

	s.LogDebug(ctx, "Tenant ledger built",
		slog.String("tenant_id", stmt.TenantID),
		slog.String("window", window.String()),
		slog.Int("rows", len(stmt.Rows)),
		slog.Int("rejections", len(rejections)))
	return &domain.LedgerReport{Statement: stmt, Rejections: rejections}, nil
}

func (s *reportingService) UtilityChargesReport(ctx context.Context, tenantID string, window domain.Window) (report *domain.LedgerReport, err error) {
	started := time.Now()
	defer func() { observe(reportUtilities, started, report != nil && len(report.Statement.Rows) == 0, err) }()

	tenant, err := s.repos.TenantRepo.FindTenantByID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to build utility report: %w", err)
	}
	bills, err := s.repos.UtilityRepo.ListUtilityChargesByTenant(ctx, tenant.TenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load utility charges", slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("failed to load utility charges: %w", err)
	}

	charges, rejections := ledger.UtilityChargeEvents(bills, window)
	stmt, err := ledger.Assemble(*tenant, window.Start, window.End, nil, charges)
	if err != nil {
		return nil, err
	}
	recordRejections(rejections)
	if rejections == nil {
		rejections = []domain.Rejection{}
	}
	return &domain.LedgerReport{Statement: stmt, Rejections: rejections}, nil
}

// tenantsIn returns tenants of a property, or every tenant for an empty property id,
// ordered by property, unit and name.
func (s *reportingService) tenantsIn(ctx context.Context, propertyID string) ([]domain.Tenant, error) {
	all, err := s.repos.TenantRepo.ListTenants(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tenants: %w", err)
	}
	out := make([]domain.Tenant, 0, len(all))
	for _, t := range all {
		if propertyID == "" || strings.EqualFold(t.PropertyID, propertyID) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.PropertyID != b.PropertyID {
			return a.PropertyID < b.PropertyID
		}
		if a.Unit != b.Unit {
			return a.Unit < b.Unit
		}
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	})
	return out, nil
}

func (s *reportingService) DepositsReport(ctx context.Context, window domain.Window, propertyID string) (report *domain.DepositsReport, err error) {
	started := time.Now()
	defer func() { observe(reportDeposits, started, report != nil && len(report.Tenants) == 0, err) }()

	tenants, err := s.tenantsIn(ctx, propertyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load tenants for deposits report")
		return nil, err
	}
	deposits, err := s.repos.DepositRepo.ListDeposits(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load deposits: %w", err)
	}
	leases, err := s.repos.LeaseRepo.ListLeases(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load leases: %w", err)
	}

	byTenant := make(map[string][]domain.Deposit)
	for _, d := range deposits {
		id := domain.NormalizeTenantID(d.TenantID)
		byTenant[id] = append(byTenant[id], d)
	}

	report = &domain.DepositsReport{
		Window:        window,
		Tenants:       []domain.TenantDeposits{},
		TotalReceived: decimal.Zero,
		TotalReturned: decimal.Zero,
		TotalHeld:     decimal.Zero,
	}
	now := s.Now()
	var rejected []domain.Rejection
	for _, t := range tenants {
		stored := byTenant[t.CanonicalID()]
		entries, bad := depositEntries(t, stored, leases, window, now)
		rejected = append(rejected, bad...)
		if len(entries) == 0 {
			continue
		}

		td := domain.TenantDeposits{
			TenantID:   t.CanonicalID(),
			TenantName: t.Name,
			PropertyID: t.PropertyID,
			Unit:       t.Unit,
			Entries:    entries,
			Received:   decimal.Zero,
			Returned:   decimal.Zero,
		}
		for _, e := range entries {
			if e.Kind == domain.DepositReceived {
				td.Received = td.Received.Add(e.Amount)
			} else {
				td.Returned = td.Returned.Add(e.Amount)
			}
		}
		td.Received = td.Received.Round(2)
		td.Returned = td.Returned.Round(2)
		td.Held = td.Received.Sub(td.Returned)

		report.Tenants = append(report.Tenants, td)
		report.TotalReceived = report.TotalReceived.Add(td.Received)
		report.TotalReturned = report.TotalReturned.Add(td.Returned)
	}
	report.TotalHeld = report.TotalReceived.Sub(report.TotalReturned)
	recordRejections(rejected)
	return report, nil
}

// depositEntries lists one tenant's deposit movements in the window. Stored records win;
// a tenant without any gets the lease deposit as a single synthetic receipt.
func depositEntries(tenant domain.Tenant, stored []domain.Deposit, leases []domain.Lease, window domain.Window, now time.Time) ([]domain.DepositEntry, []domain.Rejection) {
	var entries []domain.DepositEntry
	if len(stored) == 0 {
		for _, ev := range ledger.NormalizeDeposits(tenant, nil, leases, window, now) {
			entries = append(entries, domain.DepositEntry{
				Date:        ev.Date,
				Amount:      ev.Amount.Round(2),
				Kind:        domain.DepositReceived,
				Description: ev.Description,
				Synthetic:   true,
			})
		}
		return entries, nil
	}

	var rejected []domain.Rejection
	for _, d := range stored {
		day, err := domain.ParseDay(d.Date)
		if err != nil {
			rejected = append(rejected, domain.Rejection{
				Source: domain.SourceDeposit, RecordID: d.DepositID,
				Reason: domain.RejectInvalidDate, Detail: d.Date,
			})
			continue
		}
		if !window.Contains(day) || !d.Amount.IsPositive() {
			continue
		}
		desc := d.Description
		if desc == "" {
			desc = "Security deposit " + string(d.Kind)
		}
		entries = append(entries, domain.DepositEntry{
			Date:        day,
			Amount:      d.Amount.Round(2),
			Kind:        d.Kind,
			Description: desc,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
	return entries, rejected
}

func (s *reportingService) UnitFinancials(ctx context.Context, propertyID string, window domain.Window) (report *domain.UnitFinancialsReport, err error) {
	started := time.Now()
	defer func() { observe(reportUnitFinancials, started, report != nil && len(report.Units) == 0, err) }()

	tenants, err := s.tenantsIn(ctx, propertyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load tenants for unit financials")
		return nil, err
	}
	// The resolver needs the full portfolio, not just this property, to match bank rows.
	all, err := s.repos.TenantRepo.ListTenants(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tenants: %w", err)
	}
	sources, err := s.loadPaymentSources(ctx, all)
	if err != nil {
		return nil, err
	}

	report = &domain.UnitFinancialsReport{
		PropertyID: propertyID,
		Window:     window,
		Units:      []domain.UnitFinancials{},
		Totals: domain.StatementTotals{
			TotalCharges:  decimal.Zero,
			TotalPayments: decimal.Zero,
			FinalBalance:  decimal.Zero,
		},
	}
	var rejected []domain.Rejection
	for _, t := range tenants {
		payments, bad := sources.paymentsFor(t, window)
		rejected = append(rejected, bad...)
		stmt, err := ledger.BuildStatement(t, window, payments)
		if err != nil {
			return nil, err
		}
		if len(stmt.Rows) == 0 {
			continue
		}
		report.Units = append(report.Units, domain.UnitFinancials{
			PropertyID:    t.PropertyID,
			Unit:          t.Unit,
			TenantID:      stmt.TenantID,
			TenantName:    stmt.TenantName,
			TotalCharges:  stmt.Totals.TotalCharges,
			TotalPayments: stmt.Totals.TotalPayments,
			Balance:       stmt.Totals.FinalBalance,
		})
		report.Totals.TotalCharges = report.Totals.TotalCharges.Add(stmt.Totals.TotalCharges)
		report.Totals.TotalPayments = report.Totals.TotalPayments.Add(stmt.Totals.TotalPayments)
	}
	report.Totals.FinalBalance = report.Totals.TotalCharges.Sub(report.Totals.TotalPayments)
	recordRejections(rejected)
	return report, nil
}

func (s *reportingService) OverdueRent(ctx context.Context, asOf time.Time, propertyID string) (report *domain.OverdueReport, err error) {
	started := time.Now()
	defer func() { observe(reportOverdue, started, report != nil && len(report.Items) == 0, err) }()

	asOf = domain.Day(asOf)
	tenants, err := s.tenantsIn(ctx, propertyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load tenants for overdue report")
		return nil, err
	}
	all, err := s.repos.TenantRepo.ListTenants(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tenants: %w", err)
	}
	sources, err := s.loadPaymentSources(ctx, all)
	if err != nil {
		return nil, err
	}
	leases, err := s.repos.LeaseRepo.ListLeases(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load leases: %w", err)
	}

	report = &domain.OverdueReport{
		AsOf:         asOf,
		PropertyID:   propertyID,
		Items:        []domain.OverdueItem{},
		TotalOverdue: decimal.Zero,
	}
	var rejected []domain.Rejection
	for _, t := range tenants {
		if !t.IsActive {
			continue
		}
		start := asOf.AddDate(0, -s.lookbackMonths, 0)
		if lease, ok := ledger.LeaseFor(t, leases); ok {
			if leaseStart, ok := lease.Start(); ok {
				start = leaseStart
			}
		}
		if start.After(asOf) {
			continue
		}
		window, err := domain.NewWindow(start, asOf)
		if err != nil {
			return nil, err
		}
		payments, bad := sources.paymentsFor(t, window)
		rejected = append(rejected, bad...)
		stmt, err := ledger.BuildStatement(t, window, payments)
		if err != nil {
			return nil, err
		}
		if !stmt.Totals.FinalBalance.IsPositive() {
			continue
		}
		oldest, _ := ledger.OldestUnpaidCharge(stmt)
		report.Items = append(report.Items, domain.OverdueItem{
			TenantID:         stmt.TenantID,
			TenantName:       stmt.TenantName,
			PropertyID:       t.PropertyID,
			Unit:             t.Unit,
			MonthlyRent:      t.MonthlyRent,
			Balance:          stmt.Totals.FinalBalance,
			OldestUnpaidDate: oldest,
			DaysOverdue:      int(asOf.Sub(oldest).Hours() / 24),
		})
		report.TotalOverdue = report.TotalOverdue.Add(stmt.Totals.FinalBalance)
	}

	sort.SliceStable(report.Items, func(i, j int) bool {
		a, b := report.Items[i], report.Items[j]
		if a.DaysOverdue != b.DaysOverdue {
			return a.DaysOverdue > b.DaysOverdue
		}
		if !a.Balance.Equal(b.Balance) {
			return a.Balance.GreaterThan(b.Balance)
		}
		return a.TenantID < b.TenantID
	})
	recordRejections(rejected)
	return report, nil
}
