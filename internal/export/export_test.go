package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/SscSPs/property_backoffice/internal/apperrors"
	"github.com/SscSPs/property_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleStatement() domain.Statement {
	d := func(day int) time.Time { return time.Date(2024, 8, day, 0, 0, 0, 0, time.UTC) }
	return domain.Statement{
		TenantID:   "10",
		TenantName: "Jane Doe",
		Window:     domain.Window{Start: d(1), End: d(31)},
		Rows: []domain.StatementRow{
			{Date: d(2), EntryType: domain.EntryPayment, Description: "Bank payment, thanks", Charge: decimal.Zero, Payment: decimal.NewFromInt(1200), RunningBalance: decimal.NewFromInt(-1200), Source: domain.SourceBank},
			{Date: d(5), EntryType: domain.EntryCharge, Description: "Rent August 2024", Charge: decimal.NewFromInt(1200), Payment: decimal.Zero, RunningBalance: decimal.Zero, Source: domain.SourceRent},
		},
		Totals: domain.StatementTotals{TotalCharges: decimal.NewFromInt(1200), TotalPayments: decimal.NewFromInt(1200), FinalBalance: decimal.Zero},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatJSON, false},
		{"CSV", FormatCSV, false},
		{" pdf ", FormatPDF, false},
		{"xlsx", FormatXLSX, false},
		{"docx", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCSV_StatementRowShape(t *testing.T) {
	out, err := CSV(StatementTable("Tenant Ledger", sampleStatement()))
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "Header plus one line per row, no totals")
	assert.Equal(t, []string{"date", "type", "description", "charge", "payment", "balance", "source"}, records[0])
	assert.Equal(t, []string{"2024-08-02", "payment", "Bank payment, thanks", "0.00", "1200.00", "-1200.00", "bank"}, records[1])
	assert.Equal(t, []string{"2024-08-05", "charge", "Rent August 2024", "1200.00", "0.00", "0.00", "rent"}, records[2])
}

func TestCSV_EmptyStatementHasHeader(t *testing.T) {
	stmt := sampleStatement()
	stmt.Rows = nil
	out, err := CSV(StatementTable("Tenant Ledger", stmt))
	require.NoError(t, err)
	assert.Equal(t, "date,type,description,charge,payment,balance,source\n", string(out))
}

func TestPDF(t *testing.T) {
	out, err := Render(FormatPDF, StatementTable("Tenant Ledger", sampleStatement()), Options{CurrencySymbol: "$"})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestXLSX(t *testing.T) {
	out, err := Render(FormatXLSX, StatementTable("Tenant Ledger", sampleStatement()), Options{})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue(summarySheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Tenant Ledger", title)

	rows, err := f.GetRows(rowsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4, "Header, two rows and totals")
	assert.Equal(t, "description", rows[0][2])
	assert.Equal(t, "2024-08-02", rows[1][0])
	assert.Equal(t, "1200", rows[1][4])
	assert.Equal(t, "Totals", rows[3][2])
}

func TestRender_RejectsJSON(t *testing.T) {
	_, err := Render(FormatJSON, Table{}, Options{})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestReportTables(t *testing.T) {
	window := domain.Window{Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), End: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)}

	deposits := DepositsTable(domain.DepositsReport{
		Window: window,
		Tenants: []domain.TenantDeposits{{
			TenantID: "10", TenantName: "Jane",
			Entries: []domain.DepositEntry{
				{Date: window.Start, Amount: decimal.NewFromInt(500), Kind: domain.DepositReceived},
				{Date: window.End, Amount: decimal.NewFromInt(200), Kind: domain.DepositRefunded},
			},
		}},
		TotalHeld: decimal.NewFromInt(300),
	})
	assert.Len(t, deposits.Rows, 2)
	assert.Len(t, deposits.Footer, len(deposits.Columns))

	units := UnitFinancialsTable(domain.UnitFinancialsReport{Window: window, PropertyID: "P1", Units: []domain.UnitFinancials{{TenantID: "10"}}})
	assert.Len(t, units.Rows, 1)
	assert.Contains(t, units.Details, "Property: P1")

	overdue := OverdueTable(domain.OverdueReport{AsOf: window.End, Items: []domain.OverdueItem{{TenantID: "10", DaysOverdue: 45}}})
	out, err := CSV(overdue)
	require.NoError(t, err)
	assert.Contains(t, string(out), ",45\n")
}

func TestFileName(t *testing.T) {
	window := domain.Window{Start: time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC), End: time.Date(2024, 9, 30, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, "ledger-10-2024-08-01_2024-09-30.csv", FileName("ledger-10", window, FormatCSV))
	assert.Equal(t, "ledger-a-b-2024-08-01_2024-09-30.pdf", FileName("ledger-a/b", window, FormatPDF))
}
