// Package fixtures loads back-office data from YAML files, for seeding a new
// store and for running reports from the command line.
package fixtures

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	portssvc "github.com/SscSPs/property_backoffice/internal/core/ports/services"
	"github.com/SscSPs/property_backoffice/internal/dto"
)

// File is the on-disk layout. Amounts are strings so no precision is lost
// to YAML floats.
type File struct {
	Tenants          []Tenant         `yaml:"tenants"`
	Leases           []Lease          `yaml:"leases"`
	BankTransactions []map[string]any `yaml:"bank_transactions"`
	ManualPayments   []Payment        `yaml:"manual_payments"`
	Deposits         []Deposit        `yaml:"deposits"`
	UtilityCharges   []Utility        `yaml:"utility_charges"`
}

type Tenant struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	PropertyID  string `yaml:"property_id"`
	Unit        string `yaml:"unit"`
	Reference   string `yaml:"reference"`
	Email       string `yaml:"email"`
	Phone       string `yaml:"phone"`
	MonthlyRent string `yaml:"monthly_rent"`
	DueDay      int    `yaml:"due_day"`
	IsActive    *bool  `yaml:"is_active"` // Defaults to true
}

type Lease struct {
	TenantID   string `yaml:"tenant_id"`
	PropertyID string `yaml:"property_id"`
	Unit       string `yaml:"unit"`
	Deposit    string `yaml:"deposit"`
	StartDate  string `yaml:"start_date"`
	EndDate    string `yaml:"end_date"`
	Status     string `yaml:"status"`
}

type Payment struct {
	TenantID    string `yaml:"tenant_id"`
	Date        string `yaml:"date"`
	Amount      string `yaml:"amount"`
	Description string `yaml:"description"`
	Method      string `yaml:"method"`
}

type Deposit struct {
	TenantID    string `yaml:"tenant_id"`
	LeaseID     string `yaml:"lease_id"`
	Date        string `yaml:"date"`
	Amount      string `yaml:"amount"`
	Kind        string `yaml:"kind"`
	Description string `yaml:"description"`
}

type Utility struct {
	TenantID    string `yaml:"tenant_id"`
	Date        string `yaml:"date"`
	Amount      string `yaml:"amount"`
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
}

// Summary counts what Apply stored.
type Summary struct {
	Tenants        int
	Leases         int
	BankImported   int
	BankRejected   int
	BankDuplicates int
	ManualPayments int
	Deposits       int
	UtilityCharges int
}

// Load decodes a fixture file.
func Load(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to decode fixtures: %w", err)
	}
	return &f, nil
}

func amount(field, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q: %w", field, s, err)
	}
	return d, nil
}

// Apply stores the fixtures through the services, so every record passes the
// same validation as the API. Tenants go first since every other record refers
// to one. The first failing record stops the run.
func Apply(ctx context.Context, svc *portssvc.ServiceContainer, f *File, actor string, logger *slog.Logger) (Summary, error) {
	var sum Summary

	for _, t := range f.Tenants {
		rent, err := amount("monthly_rent", t.MonthlyRent)
		if err != nil {
			return sum, fmt.Errorf("tenant %s: %w", t.ID, err)
		}
		created, err := svc.Tenant.CreateTenant(ctx, dto.CreateTenantRequest{
			TenantID:    t.ID,
			Name:        t.Name,
			PropertyID:  t.PropertyID,
			Unit:        t.Unit,
			Reference:   t.Reference,
			Email:       t.Email,
			Phone:       t.Phone,
			MonthlyRent: rent,
			DueDay:      t.DueDay,
		}, actor)
		if err != nil {
			return sum, fmt.Errorf("tenant %s: %w", t.ID, err)
		}
		if t.IsActive != nil && !*t.IsActive {
			if _, err := svc.Tenant.UpdateTenant(ctx, created.TenantID, dto.UpdateTenantRequest{IsActive: t.IsActive}, actor); err != nil {
				return sum, fmt.Errorf("tenant %s: %w", t.ID, err)
			}
		}
		sum.Tenants++
	}

	for _, l := range f.Leases {
		deposit, err := amount("deposit", l.Deposit)
		if err != nil {
			return sum, fmt.Errorf("lease for tenant %s: %w", l.TenantID, err)
		}
		if _, err := svc.Lease.CreateLease(ctx, dto.CreateLeaseRequest{
			TenantID:   l.TenantID,
			PropertyID: l.PropertyID,
			Unit:       l.Unit,
			Deposit:    deposit,
			StartDate:  l.StartDate,
			EndDate:    l.EndDate,
			Status:     l.Status,
		}, actor); err != nil {
			return sum, fmt.Errorf("lease for tenant %s: %w", l.TenantID, err)
		}
		sum.Leases++
	}

	if len(f.BankTransactions) > 0 {
		result, err := svc.Bank.ImportTransactions(ctx, f.BankTransactions)
		if err != nil {
			return sum, fmt.Errorf("bank transactions: %w", err)
		}
		sum.BankImported = result.Imported
		sum.BankDuplicates = result.Duplicates
		sum.BankRejected = len(result.Rejections)
		for _, r := range result.Rejections {
			logger.Warn("Bank row rejected",
				slog.String("record_id", r.RecordID),
				slog.String("reason", string(r.Reason)),
				slog.String("detail", r.Detail))
		}
	}

	for _, p := range f.ManualPayments {
		amt, err := amount("amount", p.Amount)
		if err != nil {
			return sum, fmt.Errorf("payment for tenant %s: %w", p.TenantID, err)
		}
		if _, err := svc.Payment.RecordManualPayment(ctx, dto.CreateManualPaymentRequest{
			TenantID:    p.TenantID,
			Date:        p.Date,
			Amount:      amt,
			Description: p.Description,
			Method:      p.Method,
		}, actor); err != nil {
			return sum, fmt.Errorf("payment for tenant %s: %w", p.TenantID, err)
		}
		sum.ManualPayments++
	}

	for _, d := range f.Deposits {
		amt, err := amount("amount", d.Amount)
		if err != nil {
			return sum, fmt.Errorf("deposit for tenant %s: %w", d.TenantID, err)
		}
		if _, err := svc.Payment.RecordDeposit(ctx, dto.RecordDepositRequest{
			TenantID:    d.TenantID,
			LeaseID:     d.LeaseID,
			Date:        d.Date,
			Amount:      amt,
			Kind:        d.Kind,
			Description: d.Description,
		}, actor); err != nil {
			return sum, fmt.Errorf("deposit for tenant %s: %w", d.TenantID, err)
		}
		sum.Deposits++
	}

	for _, u := range f.UtilityCharges {
		amt, err := amount("amount", u.Amount)
		if err != nil {
			return sum, fmt.Errorf("utility charge for tenant %s: %w", u.TenantID, err)
		}
		if _, err := svc.Utility.CreateUtilityCharge(ctx, dto.CreateUtilityChargeRequest{
			TenantID:    u.TenantID,
			Date:        u.Date,
			Amount:      amt,
			UtilityType: u.Type,
			Description: u.Description,
		}, actor); err != nil {
			return sum, fmt.Errorf("utility charge for tenant %s: %w", u.TenantID, err)
		}
		sum.UtilityCharges++
	}

	return sum, nil
}
