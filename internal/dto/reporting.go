package dto

import (
	"github.com/SscSPs/property_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EmptyReportMessage is shown in place of an empty table.
const EmptyReportMessage = "no activity for this selection"

// WindowQuery binds the from/to query parameters shared by windowed reports.
type WindowQuery struct {
	From string `form:"from" binding:"required,isodate"`
	To   string `form:"to" binding:"required,isodate"`
}

// StatementRowResponse is one line of a statement, the same shape every export uses.
type StatementRowResponse struct {
	Date           string          `json:"date"`
	Type           string          `json:"type"`
	Description    string          `json:"description"`
	Charge         decimal.Decimal `json:"charge"`
	Payment        decimal.Decimal `json:"payment"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
	Source         string          `json:"source"`
}

// StatementTotalsResponse mirrors domain.StatementTotals
type StatementTotalsResponse struct {
	TotalCharges  decimal.Decimal `json:"totalCharges"`
	TotalPayments decimal.Decimal `json:"totalPayments"`
	FinalBalance  decimal.Decimal `json:"finalBalance"`
}

// RejectionResponse describes a source record left out of a report.
type RejectionResponse struct {
	Source     string   `json:"source"`
	RecordID   string   `json:"recordID,omitempty"`
	Reason     string   `json:"reason"`
	Detail     string   `json:"detail,omitempty"`
	Candidates []string `json:"candidates,omitempty"`
}

// StatementResponse is the JSON form of a tenant statement.
type StatementResponse struct {
	TenantID   string                  `json:"tenantID"`
	TenantName string                  `json:"tenantName"`
	From       string                  `json:"from"`
	To         string                  `json:"to"`
	Rows       []StatementRowResponse  `json:"rows"`
	Totals     StatementTotalsResponse `json:"totals"`
	Rejections []RejectionResponse     `json:"rejections,omitempty"`
	Message    string                  `json:"message,omitempty"`
}

// DepositEntryResponse is one deposit movement.
type DepositEntryResponse struct {
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Kind        string          `json:"kind"`
	Description string          `json:"description"`
	Synthetic   bool            `json:"synthetic"`
}

// TenantDepositsResponse summarises one tenant's deposits.
type TenantDepositsResponse struct {
	TenantID   string                 `json:"tenantID"`
	TenantName string                 `json:"tenantName"`
	PropertyID string                 `json:"propertyID,omitempty"`
	Unit       string                 `json:"unit,omitempty"`
	Entries    []DepositEntryResponse `json:"entries"`
	Received   decimal.Decimal        `json:"received"`
	Returned   decimal.Decimal        `json:"returned"`
	Held       decimal.Decimal        `json:"held"`
}

// DepositsResponse is the deposits report.
type DepositsResponse struct {
	From          string                   `json:"from"`
	To            string                   `json:"to"`
	Tenants       []TenantDepositsResponse `json:"tenants"`
	TotalReceived decimal.Decimal          `json:"totalReceived"`
	TotalReturned decimal.Decimal          `json:"totalReturned"`
	TotalHeld     decimal.Decimal          `json:"totalHeld"`
	Message       string                   `json:"message,omitempty"`
}

// UnitFinancialsResponse is the unit financials report.
type UnitFinancialsResponse struct {
	PropertyID string                  `json:"propertyID,omitempty"`
	From       string                  `json:"from"`
	To         string                  `json:"to"`
	Units      []domain.UnitFinancials `json:"units"`
	Totals     StatementTotalsResponse `json:"totals"`
	Message    string                  `json:"message,omitempty"`
}

// OverdueItemResponse is a tenant in arrears.
type OverdueItemResponse struct {
	TenantID         string          `json:"tenantID"`
	TenantName       string          `json:"tenantName"`
	PropertyID       string          `json:"propertyID,omitempty"`
	Unit             string          `json:"unit,omitempty"`
	MonthlyRent      decimal.Decimal `json:"monthlyRent"`
	Balance          decimal.Decimal `json:"balance"`
	OldestUnpaidDate string          `json:"oldestUnpaidDate,omitempty"`
	DaysOverdue      int             `json:"daysOverdue"`
}

// OverdueResponse is the overdue rent report.
type OverdueResponse struct {
	AsOf         string                `json:"asOf"`
	PropertyID   string                `json:"propertyID,omitempty"`
	Items        []OverdueItemResponse `json:"items"`
	TotalOverdue decimal.Decimal       `json:"totalOverdue"`
	Message      string                `json:"message,omitempty"`
}

// ImportResponse summarises a bank-import batch.
type ImportResponse struct {
	Received   int                 `json:"received"`
	Imported   int                 `json:"imported"`
	Duplicates int                 `json:"duplicates"`
	Rejections []RejectionResponse `json:"rejections"`
}

func emptyMessage(n int) string {
	if n == 0 {
		return EmptyReportMessage
	}
	return ""
}

func totalsResponse(t domain.StatementTotals) StatementTotalsResponse {
	return StatementTotalsResponse{
		TotalCharges:  t.TotalCharges,
		TotalPayments: t.TotalPayments,
		FinalBalance:  t.FinalBalance,
	}
}

// ToStatementRowResponses converts statement rows to their wire shape.
func ToStatementRowResponses(rows []domain.StatementRow) []StatementRowResponse {
	out := make([]StatementRowResponse, len(rows))
	for i, r := range rows {
		out[i] = StatementRowResponse{
			Date:           domain.FormatDay(r.Date),
			Type:           string(r.EntryType),
			Description:    r.Description,
			Charge:         r.Charge,
			Payment:        r.Payment,
			RunningBalance: r.RunningBalance,
			Source:         string(r.Source),
		}
	}
	return out
}

// ToRejectionResponses converts skipped-record notes.
func ToRejectionResponses(rejections []domain.Rejection) []RejectionResponse {
	out := make([]RejectionResponse, len(rejections))
	for i, r := range rejections {
		out[i] = RejectionResponse{
			Source:     string(r.Source),
			RecordID:   r.RecordID,
			Reason:     string(r.Reason),
			Detail:     r.Detail,
			Candidates: r.Candidates,
		}
	}
	return out
}

// ToStatementResponse converts a ledger report to its JSON form.
func ToStatementResponse(report *domain.LedgerReport) StatementResponse {
	stmt := report.Statement
	resp := StatementResponse{
		TenantID:   stmt.TenantID,
		TenantName: stmt.TenantName,
		From:       domain.FormatDay(stmt.Window.Start),
		To:         domain.FormatDay(stmt.Window.End),
		Rows:       ToStatementRowResponses(stmt.Rows),
		Totals:     totalsResponse(stmt.Totals),
		Message:    emptyMessage(len(stmt.Rows)),
	}
	if len(report.Rejections) > 0 {
		resp.Rejections = ToRejectionResponses(report.Rejections)
	}
	return resp
}

// ToDepositsResponse converts the deposits report.
func ToDepositsResponse(report *domain.DepositsReport) DepositsResponse {
	resp := DepositsResponse{
		From:          domain.FormatDay(report.Window.Start),
		To:            domain.FormatDay(report.Window.End),
		Tenants:       make([]TenantDepositsResponse, len(report.Tenants)),
		TotalReceived: report.TotalReceived,
		TotalReturned: report.TotalReturned,
		TotalHeld:     report.TotalHeld,
		Message:       emptyMessage(len(report.Tenants)),
	}
	for i, t := range report.Tenants {
		entries := make([]DepositEntryResponse, len(t.Entries))
		for j, e := range t.Entries {
			entries[j] = DepositEntryResponse{
				Date:        domain.FormatDay(e.Date),
				Amount:      e.Amount,
				Kind:        string(e.Kind),
				Description: e.Description,
				Synthetic:   e.Synthetic,
			}
		}
		resp.Tenants[i] = TenantDepositsResponse{
			TenantID:   t.TenantID,
			TenantName: t.TenantName,
			PropertyID: t.PropertyID,
			Unit:       t.Unit,
			Entries:    entries,
			Received:   t.Received,
			Returned:   t.Returned,
			Held:       t.Held,
		}
	}
	return resp
}

// ToUnitFinancialsResponse converts the unit financials report.
func ToUnitFinancialsResponse(report *domain.UnitFinancialsReport) UnitFinancialsResponse {
	return UnitFinancialsResponse{
		PropertyID: report.PropertyID,
		From:       domain.FormatDay(report.Window.Start),
		To:         domain.FormatDay(report.Window.End),
		Units:      report.Units,
		Totals:     totalsResponse(report.Totals),
		Message:    emptyMessage(len(report.Units)),
	}
}

// ToOverdueResponse converts the overdue rent report.
func ToOverdueResponse(report *domain.OverdueReport) OverdueResponse {
	resp := OverdueResponse{
		AsOf:         domain.FormatDay(report.AsOf),
		PropertyID:   report.PropertyID,
		Items:        make([]OverdueItemResponse, len(report.Items)),
		TotalOverdue: report.TotalOverdue,
		Message:      emptyMessage(len(report.Items)),
	}
	for i, it := range report.Items {
		item := OverdueItemResponse{
			TenantID:    it.TenantID,
			TenantName:  it.TenantName,
			PropertyID:  it.PropertyID,
			Unit:        it.Unit,
			MonthlyRent: it.MonthlyRent,
			Balance:     it.Balance,
			DaysOverdue: it.DaysOverdue,
		}
		if !it.OldestUnpaidDate.IsZero() {
			item.OldestUnpaidDate = domain.FormatDay(it.OldestUnpaidDate)
		}
		resp.Items[i] = item
	}
	return resp
}

// ToImportResponse converts a bank-import summary.
func ToImportResponse(result *domain.ImportResult) ImportResponse {
	return ImportResponse{
		Received:   result.Received,
		Imported:   result.Imported,
		Duplicates: result.Duplicates,
		Rejections: ToRejectionResponses(result.Rejections),
	}
}
