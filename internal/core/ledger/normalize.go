package ledger

import (
	"strings"
	"time"

	"github.com/SscSPs/property_backoffice/internal/core/domain"
)

// NormalizeBank converts tenant-matched bank rows into payment events inside the window.
// Rows with unreadable dates are dropped and reported.
func NormalizeBank(rows []domain.BankTransaction, window domain.Window) ([]domain.PaymentEvent, []domain.Rejection) {
	events := []domain.PaymentEvent{}
	var rejections []domain.Rejection
	for _, row := range rows {
		day, err := domain.ParseDay(row.Date)
		if err != nil {
			rejections = append(rejections, domain.Rejection{
				Source: domain.SourceBank, RecordID: row.TransactionID,
				Reason: domain.RejectInvalidDate, Detail: row.Date,
			})
			continue
		}
		if !window.Contains(day) {
			continue
		}
		desc := strings.TrimSpace(row.Description)
		if desc == "" {
			desc = "Bank payment"
		}
		events = append(events, domain.PaymentEvent{
			Date:        day,
			Amount:      row.Amount,
			Description: desc,
			Source:      domain.SourceBank,
			RecordID:    row.TransactionID,
		})
	}
	return events, rejections
}

// NormalizeManual converts manual payments into payment events inside the window.
func NormalizeManual(payments []domain.ManualPayment, window domain.Window) ([]domain.PaymentEvent, []domain.Rejection) {
	events := []domain.PaymentEvent{}
	var rejections []domain.Rejection
	for _, p := range payments {
		day, err := domain.ParseDay(p.Date)
		if err != nil {
			rejections = append(rejections, domain.Rejection{
				Source: domain.SourceManual, RecordID: p.PaymentID,
				Reason: domain.RejectInvalidDate, Detail: p.Date,
			})
			continue
		}
		if !window.Contains(day) {
			continue
		}
		desc := strings.TrimSpace(p.Description)
		if desc == "" {
			desc = domain.DefaultManualPaymentDescription
		}
		events = append(events, domain.PaymentEvent{
			Date:        day,
			Amount:      p.Amount,
			Description: desc,
			Source:      domain.SourceManual,
			RecordID:    p.PaymentID,
		})
	}
	return events, rejections
}

// NormalizeDeposits returns the deposit payments for one tenant.
//
// Stored deposit records win: when the tenant has any, only their "received"
// entries inside the window are emitted. Otherwise a single synthetic event is
// derived from the tenant's lease if it carries a positive deposit, dated at the
// lease start, or at now when the start cannot be parsed.
func NormalizeDeposits(tenant domain.Tenant, deposits []domain.Deposit, leases []domain.Lease, window domain.Window, now time.Time) []domain.PaymentEvent {
	events := []domain.PaymentEvent{}
	tenantID := tenant.CanonicalID()

	stored := false
	for _, d := range deposits {
		if domain.NormalizeTenantID(d.TenantID) != tenantID {
			continue
		}
		stored = true
		if d.Kind != domain.DepositReceived {
			continue
		}
		day, err := domain.ParseDay(d.Date)
		if err != nil || !window.Contains(day) {
			continue
		}
		desc := d.Description
		if desc == "" {
			desc = "Security deposit received"
		}
		events = append(events, domain.PaymentEvent{
			Date:        day,
			Amount:      d.Amount,
			Description: desc,
			Source:      domain.SourceDeposit,
			RecordID:    d.DepositID,
		})
	}
	if stored {
		return events
	}

	lease, ok := LeaseFor(tenant, leases)
	if !ok || !lease.Deposit.IsPositive() {
		return events
	}
	day, ok := lease.Start()
	if !ok {
		day = domain.Day(now)
	}
	if !window.Contains(day) {
		return events
	}
	return append(events, domain.PaymentEvent{
		Date:        day,
		Amount:      lease.Deposit,
		Description: "Security deposit (lease " + lease.LeaseID + ")",
		Source:      domain.SourceDeposit,
		RecordID:    lease.LeaseID,
	})
}

// LeaseFor picks the lease belonging to a tenant. A lease matches by tenant id, or by
// property and unit when it names no tenant. Active leases are preferred.
func LeaseFor(tenant domain.Tenant, leases []domain.Lease) (domain.Lease, bool) {
	tenantID := tenant.CanonicalID()
	tenantKey := UnitKey(tenant.PropertyID, tenant.Unit)

	var found domain.Lease
	matched := false
	for _, l := range leases {
		var belongs bool
		if l.TenantID != "" {
			belongs = domain.NormalizeTenantID(l.TenantID) == tenantID
		} else {
			belongs = tenant.Unit != "" && UnitKey(l.PropertyID, l.Unit) == tenantKey
		}
		if !belongs {
			continue
		}
		if !matched || (found.Status != domain.LeaseActive && l.Status == domain.LeaseActive) {
			found = l
			matched = true
		}
	}
	return found, matched
}
