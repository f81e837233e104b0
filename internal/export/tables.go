package export

import (
	"fmt"

	"github.com/SscSPs/property_backoffice/internal/core/domain"
)

// StatementColumns is the row shape shared by every statement export.
var StatementColumns = []string{"date", "type", "description", "charge", "payment", "balance", "source"}

// StatementTable flattens a tenant statement.
func StatementTable(title string, stmt domain.Statement) Table {
	rows := make([][]any, 0, len(stmt.Rows))
	for _, r := range stmt.Rows {
		rows = append(rows, []any{r.Date, string(r.EntryType), r.Description, r.Charge, r.Payment, r.RunningBalance, string(r.Source)})
	}
	return Table{
		Title: title,
		Details: []string{
			fmt.Sprintf("Tenant: %s (%s)", stmt.TenantName, stmt.TenantID),
			"Period: " + domain.FormatDay(stmt.Window.Start) + " to " + domain.FormatDay(stmt.Window.End),
		},
		Columns: StatementColumns,
		Rows:    rows,
		Footer:  []any{"", "", "Totals", stmt.Totals.TotalCharges, stmt.Totals.TotalPayments, stmt.Totals.FinalBalance, ""},
	}
}

// DepositsTable flattens a deposits report, one row per deposit movement.
func DepositsTable(report domain.DepositsReport) Table {
	var rows [][]any
	for _, t := range report.Tenants {
		for _, e := range t.Entries {
			rows = append(rows, []any{e.Date, t.TenantID, t.TenantName, t.PropertyID, t.Unit, string(e.Kind), e.Description, e.Amount})
		}
	}
	return Table{
		Title:   "Security Deposits",
		Details: []string{"Period: " + report.Window.String()},
		Columns: []string{"date", "tenantID", "tenant", "property", "unit", "kind", "description", "amount"},
		Rows:    rows,
		Footer:  []any{"", "", "Held", "", "", "", "", report.TotalHeld},
	}
}

// UnitFinancialsTable flattens a unit financials report.
func UnitFinancialsTable(report domain.UnitFinancialsReport) Table {
	rows := make([][]any, 0, len(report.Units))
	for _, u := range report.Units {
		rows = append(rows, []any{u.PropertyID, u.Unit, u.TenantID, u.TenantName, u.TotalCharges, u.TotalPayments, u.Balance})
	}
	details := []string{"Period: " + report.Window.String()}
	if report.PropertyID != "" {
		details = append(details, "Property: "+report.PropertyID)
	}
	return Table{
		Title:   "Unit Financials",
		Details: details,
		Columns: []string{"property", "unit", "tenantID", "tenant", "charges", "payments", "balance"},
		Rows:    rows,
		Footer:  []any{"", "", "", "Totals", report.Totals.TotalCharges, report.Totals.TotalPayments, report.Totals.FinalBalance},
	}
}

// OverdueTable flattens an overdue rent report.
func OverdueTable(report domain.OverdueReport) Table {
	rows := make([][]any, 0, len(report.Items))
	for _, it := range report.Items {
		rows = append(rows, []any{it.TenantID, it.TenantName, it.PropertyID, it.Unit, it.MonthlyRent, it.Balance, it.OldestUnpaidDate, it.DaysOverdue})
	}
	return Table{
		Title:   "Overdue Rent",
		Details: []string{"As of: " + domain.FormatDay(report.AsOf)},
		Columns: []string{"tenantID", "tenant", "property", "unit", "monthlyRent", "balance", "oldestUnpaid", "daysOverdue"},
		Rows:    rows,
		Footer:  []any{"", "Total", "", "", "", report.TotalOverdue, "", ""},
	}
}
