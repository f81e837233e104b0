package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/property_backoffice/internal/core/domain"
	"github.com/SscSPs/property_backoffice/internal/core/ledger"
)

func day(s string) time.Time {
	t, err := domain.ParseDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

func window(t *testing.T, start, end string) domain.Window {
	t.Helper()
	w, err := domain.ParseWindow(start, end)
	require.NoError(t, err)
	return w
}

func chargeDates(charges []domain.ChargeEvent) []string {
	out := make([]string, 0, len(charges))
	for _, c := range charges {
		out = append(out, domain.FormatDay(c.Date))
	}
	return out
}

func TestGenerateCharges(t *testing.T) {
	tests := []struct {
		name   string
		rent   decimal.Decimal
		dueDay int
		start  string
		end    string
		want   []string
	}{
		{
			name:   "one charge per month on the due day",
			rent:   decimal.NewFromInt(1000),
			dueDay: 5,
			start:  "2024-05-01",
			end:    "2024-07-31",
			want:   []string{"2024-05-05", "2024-06-05", "2024-07-05"},
		},
		{
			name:   "due day clamped to short months in a leap year",
			rent:   decimal.NewFromInt(800),
			dueDay: 31,
			start:  "2024-01-01",
			end:    "2024-04-30",
			want:   []string{"2024-01-31", "2024-02-29", "2024-03-31", "2024-04-30"},
		},
		{
			name:   "due day clamped to February in a common year",
			rent:   decimal.NewFromInt(800),
			dueDay: 30,
			start:  "2023-02-01",
			end:    "2023-02-28",
			want:   []string{"2023-02-28"},
		},
		{
			name:   "charges on both window boundaries are included",
			rent:   decimal.NewFromInt(500),
			dueDay: 15,
			start:  "2024-03-15",
			end:    "2024-05-15",
			want:   []string{"2024-03-15", "2024-04-15", "2024-05-15"},
		},
		{
			name:   "charges one day outside the boundaries are excluded",
			rent:   decimal.NewFromInt(500),
			dueDay: 15,
			start:  "2024-03-16",
			end:    "2024-05-14",
			want:   []string{"2024-04-15"},
		},
		{
			name:   "invalid due day falls back to the first",
			rent:   decimal.NewFromInt(500),
			dueDay: 0,
			start:  "2024-01-01",
			end:    "2024-02-15",
			want:   []string{"2024-01-01", "2024-02-01"},
		},
		{
			name:   "window across a year boundary",
			rent:   decimal.NewFromInt(500),
			dueDay: 10,
			start:  "2023-12-01",
			end:    "2024-01-31",
			want:   []string{"2023-12-10", "2024-01-10"},
		},
		{
			name:   "zero rent generates nothing",
			rent:   decimal.Zero,
			dueDay: 5,
			start:  "2024-01-01",
			end:    "2024-12-31",
			want:   []string{},
		},
		{
			name:   "negative rent generates nothing",
			rent:   decimal.NewFromInt(-10),
			dueDay: 5,
			start:  "2024-01-01",
			end:    "2024-12-31",
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tenant := domain.Tenant{TenantID: "t1", MonthlyRent: tt.rent, DueDay: tt.dueDay}
			charges := ledger.GenerateCharges(tenant, window(t, tt.start, tt.end))
			assert.Equal(t, tt.want, chargeDates(charges))
			for _, c := range charges {
				assert.True(t, c.Amount.Equal(tt.rent), "amount should be the monthly rent verbatim")
				assert.Equal(t, domain.SourceRent, c.Source)
			}
		})
	}
}

func TestGenerateCharges_Description(t *testing.T) {
	tenant := domain.Tenant{TenantID: "t1", MonthlyRent: decimal.NewFromInt(1000), DueDay: 5}
	charges := ledger.GenerateCharges(tenant, window(t, "2024-05-01", "2024-05-31"))
	require.Len(t, charges, 1)
	assert.Equal(t, "Rent May 2024", charges[0].Description)
}

func TestGenerateCharges_IgnoresTimeOfDay(t *testing.T) {
	tenant := domain.Tenant{TenantID: "t1", MonthlyRent: decimal.NewFromInt(1000), DueDay: 5}
	w := domain.Window{
		Start: time.Date(2024, 5, 5, 23, 59, 0, 0, time.UTC),
		End:   time.Date(2024, 6, 5, 0, 0, 1, 0, time.UTC),
	}
	assert.Equal(t, []string{"2024-05-05", "2024-06-05"}, chargeDates(ledger.GenerateCharges(tenant, w)))
}

func TestUtilityChargeEvents(t *testing.T) {
	bills := []domain.UtilityCharge{
		{ChargeID: "u1", TenantID: "t1", Date: "2024-03-10", Amount: decimal.NewFromInt(40), UtilityType: "water"},
		{ChargeID: "u2", TenantID: "t1", Date: "not-a-date", Amount: decimal.NewFromInt(40), UtilityType: "water"},
		{ChargeID: "u3", TenantID: "t1", Date: "2024-03-12", Amount: decimal.Zero, UtilityType: "gas"},
		{ChargeID: "u4", TenantID: "t1", Date: "2024-05-01", Amount: decimal.NewFromInt(15), UtilityType: "gas"},
	}

	charges, rejections := ledger.UtilityChargeEvents(bills, window(t, "2024-03-01", "2024-03-31"))

	require.Len(t, charges, 1)
	assert.Equal(t, "Utility: water", charges[0].Description)
	assert.Equal(t, domain.SourceUtility, charges[0].Source)
	require.Len(t, rejections, 2)
	assert.Equal(t, domain.RejectInvalidDate, rejections[0].Reason)
	assert.Equal(t, "u2", rejections[0].RecordID)
	assert.Equal(t, domain.RejectNonPositiveAmount, rejections[1].Reason)
}
