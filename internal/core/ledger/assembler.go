package ledger

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/property_backoffice/internal/apperrors"
	"github.com/SscSPs/property_backoffice/internal/core/domain"
)

// moneyPlaces is the precision every amount and balance is rounded to.
const moneyPlaces = 2

// sourceRank orders same-day, same-side events so output never depends on input order.
var sourceRank = map[domain.Source]int{
	domain.SourceRent:    0,
	domain.SourceUtility: 1,
	domain.SourceDeposit: 2,
	domain.SourceBank:    3,
	domain.SourceManual:  4,
}

type event struct {
	day         time.Time
	entry       domain.EntryType
	amount      decimal.Decimal
	description string
	source      domain.Source
}

func (e event) less(o event) bool {
	if !e.day.Equal(o.day) {
		return e.day.Before(o.day)
	}
	if e.entry != o.entry {
		return e.entry == domain.EntryCharge
	}
	if ra, rb := sourceRank[e.source], sourceRank[o.source]; ra != rb {
		return ra < rb
	}
	if !e.amount.Equal(o.amount) {
		return e.amount.GreaterThan(o.amount)
	}
	return e.description < o.description
}

// Assemble merges charge and payment events into a statement with a running balance.
//
// Events are ordered by calendar day and, within a day, charges come before payments
// so a same-day payment is netted against a charge already on the books. Amounts are
// rounded to cents before folding, which keeps FinalBalance equal to
// TotalCharges - TotalPayments exactly.
func Assemble(tenant domain.Tenant, start, end time.Time, payments []domain.PaymentEvent, charges []domain.ChargeEvent) (domain.Statement, error) {
	window, err := domain.NewWindow(start, end)
	if err != nil {
		return domain.Statement{}, err
	}
	tenantID := tenant.CanonicalID()
	if tenantID == "" {
		return domain.Statement{}, fmt.Errorf("%w: tenant id is required", apperrors.ErrValidation)
	}

	events := make([]event, 0, len(charges)+len(payments))
	for _, c := range charges {
		events = append(events, event{
			day:         domain.Day(c.Date),
			entry:       domain.EntryCharge,
			amount:      c.Amount.Round(moneyPlaces),
			description: c.Description,
			source:      c.Source,
		})
	}
	for _, p := range payments {
		events = append(events, event{
			day:         domain.Day(p.Date),
			entry:       domain.EntryPayment,
			amount:      p.Amount.Round(moneyPlaces),
			description: p.Description,
			source:      p.Source,
		})
	}
	sort.SliceStable(events, func(i, j int) bool { return events[i].less(events[j]) })

	rows := make([]domain.StatementRow, 0, len(events))
	balance, totalCharges, totalPayments := decimal.Zero, decimal.Zero, decimal.Zero
	for _, e := range events {
		row := domain.StatementRow{
			Date:        e.day,
			EntryType:   e.entry,
			Description: e.description,
			Charge:      decimal.Zero,
			Payment:     decimal.Zero,
			Source:      e.source,
		}
		if e.entry == domain.EntryCharge {
			balance = balance.Add(e.amount)
			totalCharges = totalCharges.Add(e.amount)
			row.Charge = e.amount
		} else {
			balance = balance.Sub(e.amount)
			totalPayments = totalPayments.Add(e.amount)
			row.Payment = e.amount
		}
		row.RunningBalance = balance.Round(moneyPlaces)
		rows = append(rows, row)
	}

	final := decimal.Zero
	if len(rows) > 0 {
		final = rows[len(rows)-1].RunningBalance
	}
	return domain.Statement{
		TenantID:   tenantID,
		TenantName: tenant.Name,
		Window:     window,
		Rows:       rows,
		Totals: domain.StatementTotals{
			TotalCharges:  totalCharges,
			TotalPayments: totalPayments,
			FinalBalance:  final,
		},
	}, nil
}

// BuildStatement generates the tenant's rent charges for the window and assembles
// them against the supplied payments.
func BuildStatement(tenant domain.Tenant, window domain.Window, payments []domain.PaymentEvent) (domain.Statement, error) {
	return Assemble(tenant, window.Start, window.End, payments, GenerateCharges(tenant, window))
}

// OldestUnpaidCharge applies the statement's payments to its charges first-in-first-out
// and returns the date of the earliest charge not fully covered.
func OldestUnpaidCharge(stmt domain.Statement) (time.Time, bool) {
	remaining := stmt.Totals.TotalPayments
	for _, row := range stmt.Rows {
		if row.EntryType != domain.EntryCharge {
			continue
		}
		if remaining.GreaterThanOrEqual(row.Charge) {
			remaining = remaining.Sub(row.Charge)
			continue
		}
		return row.Date, true
	}
	return time.Time{}, false
}
