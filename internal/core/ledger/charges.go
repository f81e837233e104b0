package ledger

import (
	"time"

	"github.com/SscSPs/property_backoffice/internal/core/domain"
)

// GenerateCharges produces one rent charge per calendar month whose due date lies
// inside the window. The due day is clamped to the month length, so a tenant billed
// on the 31st is charged on Feb 28/29. Zero or negative rent yields no charges.
func GenerateCharges(tenant domain.Tenant, window domain.Window) []domain.ChargeEvent {
	charges := []domain.ChargeEvent{}
	rent := tenant.MonthlyRent
	if !rent.IsPositive() {
		return charges
	}

	start, end := domain.Day(window.Start), domain.Day(window.End)
	if start.After(end) {
		return charges
	}

	dueDay := tenant.BillingDay()
	month := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !month.After(last) {
		day := min(dueDay, domain.DaysInMonth(month.Year(), month.Month()))
		due := time.Date(month.Year(), month.Month(), day, 0, 0, 0, 0, time.UTC)
		if !due.Before(start) && !due.After(end) {
			charges = append(charges, domain.ChargeEvent{
				Date:        due,
				Amount:      rent,
				Description: "Rent " + due.Format("January 2006"),
				Source:      domain.SourceRent,
			})
		}
		month = month.AddDate(0, 1, 0)
	}
	return charges
}

// UtilityChargeEvents turns stored utility bills into charge events inside the window.
// Bills with unreadable dates or non-positive amounts are skipped and reported.
func UtilityChargeEvents(bills []domain.UtilityCharge, window domain.Window) ([]domain.ChargeEvent, []domain.Rejection) {
	charges := []domain.ChargeEvent{}
	var rejections []domain.Rejection
	for _, bill := range bills {
		day, err := domain.ParseDay(bill.Date)
		if err != nil {
			rejections = append(rejections, domain.Rejection{
				Source: domain.SourceUtility, RecordID: bill.ChargeID,
				Reason: domain.RejectInvalidDate, Detail: bill.Date,
			})
			continue
		}
		if !bill.Amount.IsPositive() {
			rejections = append(rejections, domain.Rejection{
				Source: domain.SourceUtility, RecordID: bill.ChargeID,
				Reason: domain.RejectNonPositiveAmount, Detail: bill.Amount.String(),
			})
			continue
		}
		if !window.Contains(day) {
			continue
		}
		desc := bill.Description
		if desc == "" {
			desc = "Utility: " + bill.UtilityType
		}
		charges = append(charges, domain.ChargeEvent{
			Date:        day,
			Amount:      bill.Amount,
			Description: desc,
			Source:      domain.SourceUtility,
		})
	}
	return charges, rejections
}
