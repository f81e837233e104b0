package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/property_backoffice/internal/core/domain"
	"github.com/SscSPs/property_backoffice/internal/core/ledger"
)

func sampleTenants() []domain.Tenant {
	return []domain.Tenant{
		{TenantID: "10", Name: "Jane Doe", PropertyID: "Maple", Unit: "4B", Reference: "JD-778", MonthlyRent: decimal.NewFromInt(1000)},
		{TenantID: "11", Name: "Omar Haddad", PropertyID: "Maple", Unit: "1A"},
		{TenantID: "12", Name: "Li Wei", PropertyID: "Oak", Unit: "1A"},
		{TenantID: "13", Name: "Ann Lee", PropertyID: "Oak", Unit: "7"},
		{TenantID: "14", Name: "Ann Leeson", PropertyID: "Oak", Unit: "8"},
	}
}

func TestResolver_Resolve(t *testing.T) {
	r := ledger.NewResolver(sampleTenants())

	tests := []struct {
		name       string
		in         ledger.MatchInput
		wantStatus ledger.MatchStatus
		wantMethod ledger.MatchMethod
		wantTenant string
		wantCands  []string
	}{
		{
			name:       "exact id after normalization",
			in:         ledger.MatchInput{TenantID: "10.0"},
			wantStatus: ledger.MatchMatched,
			wantMethod: ledger.MethodTenantID,
			wantTenant: "10",
		},
		{
			name:       "unknown id does not fall back to the unit",
			in:         ledger.MatchInput{TenantID: "99", PropertyID: "Maple", Unit: "4B"},
			wantStatus: ledger.MatchUnmatched,
			wantMethod: ledger.MethodTenantID,
		},
		{
			name:       "property and unit key, case-insensitive",
			in:         ledger.MatchInput{PropertyID: "maple", Unit: "1a"},
			wantStatus: ledger.MatchMatched,
			wantMethod: ledger.MethodPropertyUnit,
			wantTenant: "11",
		},
		{
			name:       "unit only when unique",
			in:         ledger.MatchInput{Unit: "4b"},
			wantStatus: ledger.MatchMatched,
			wantMethod: ledger.MethodUnit,
			wantTenant: "10",
		},
		{
			name:       "unit shared across properties is ambiguous",
			in:         ledger.MatchInput{Unit: "1A"},
			wantStatus: ledger.MatchAmbiguous,
			wantMethod: ledger.MethodUnit,
			wantCands:  []string{"11", "12"},
		},
		{
			name:       "unknown property falls back to the unit",
			in:         ledger.MatchInput{PropertyID: "Elm", Unit: "4B"},
			wantStatus: ledger.MatchMatched,
			wantMethod: ledger.MethodUnit,
			wantTenant: "10",
		},
		{
			name:       "reference in description",
			in:         ledger.MatchInput{Description: "FPS CREDIT jd-778 RENT"},
			wantStatus: ledger.MatchMatched,
			wantMethod: ledger.MethodDescription,
			wantTenant: "10",
		},
		{
			name:       "name in description",
			in:         ledger.MatchInput{Description: "Payment from OMAR HADDAD"},
			wantStatus: ledger.MatchMatched,
			wantMethod: ledger.MethodDescription,
			wantTenant: "11",
		},
		{
			name:       "longer name wins over its prefix",
			in:         ledger.MatchInput{Description: "ann leeson october"},
			wantStatus: ledger.MatchMatched,
			wantMethod: ledger.MethodDescription,
			wantTenant: "14",
		},
		{
			name:       "nothing recognisable",
			in:         ledger.MatchInput{Description: "ATM withdrawal"},
			wantStatus: ledger.MatchUnmatched,
		},
		{
			name:       "empty record",
			in:         ledger.MatchInput{},
			wantStatus: ledger.MatchUnmatched,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := r.Resolve(tt.in)
			assert.Equal(t, tt.wantStatus, res.Status)
			assert.Equal(t, tt.wantMethod, res.Method)
			if tt.wantTenant != "" {
				assert.Equal(t, tt.wantTenant, res.Tenant.TenantID)
			}
			if tt.wantCands != nil {
				assert.ElementsMatch(t, tt.wantCands, res.CandidateIDs())
			}
		})
	}
}

func TestResolver_AmbiguousDescription(t *testing.T) {
	r := ledger.NewResolver([]domain.Tenant{
		{TenantID: "2", Name: "Sam Lee", Unit: "3"},
		{TenantID: "1", Name: "Sam Lee", Unit: "9"},
	})

	res := r.Resolve(ledger.MatchInput{Description: "rent SAM LEE"})

	assert.Equal(t, ledger.MatchAmbiguous, res.Status)
	assert.False(t, res.Matched())
	assert.Equal(t, []string{"1", "2"}, res.CandidateIDs(), "tied candidates ordered by id")
}

func TestResolver_Candidates(t *testing.T) {
	r := ledger.NewResolver([]domain.Tenant{
		{TenantID: "1", Name: "Jane Doe", Unit: "4B", Reference: "JD-778"},
		{TenantID: "2", Name: "Al", Unit: "12"},
		{TenantID: "3", Name: "Bob Stone", Unit: "Flat 2"},
	})

	t.Run("strongest match per tenant, ranked", func(t *testing.T) {
		cands := r.Candidates("JD-778 Jane Doe flat 2")
		require.Len(t, cands, 2)
		assert.Equal(t, "1", cands[0].Tenant.TenantID)
		assert.Equal(t, "reference", cands[0].MatchedOn)
		assert.Equal(t, ledger.ConfidenceReference, cands[0].Confidence)
		assert.Equal(t, "3", cands[1].Tenant.TenantID)
		assert.Equal(t, "unit", cands[1].MatchedOn)
	})

	t.Run("short names never match", func(t *testing.T) {
		assert.Empty(t, r.Candidates("royal bank transfer"))
	})

	t.Run("unit must be a whole token", func(t *testing.T) {
		assert.Empty(t, r.Candidates("invoice 4BX"))
		cands := r.Candidates("unit 12 rent")
		require.Len(t, cands, 1)
		assert.Equal(t, "2", cands[0].Tenant.TenantID)
	})

	t.Run("blank description", func(t *testing.T) {
		assert.Nil(t, r.Candidates("   "))
	})
}

func TestResolver_Partition(t *testing.T) {
	r := ledger.NewResolver(sampleTenants())
	rows := []domain.BankTransaction{
		{TransactionID: "b1", Date: "2024-08-02", Amount: decimal.NewFromInt(1200), Description: "Jane Doe rent"},
		{TransactionID: "b2", Date: "2024-08-03", Amount: decimal.NewFromInt(100), TenantID: "10.0"},
		{TransactionID: "b3", Date: "2024-08-04", Amount: decimal.NewFromInt(100), Unit: "1A"},
		{TransactionID: "b4", Date: "2024-08-05", Amount: decimal.NewFromInt(100), Description: "interest"},
		{TransactionID: "b5", Date: "2024-08-06", Amount: decimal.NewFromInt(100), PropertyID: "Oak", Unit: "1A"},
	}

	byTenant, rejections := r.Partition(rows)

	require.Len(t, byTenant["10"], 2)
	assert.Equal(t, "10", byTenant["10"][0].TenantID, "matched rows carry the canonical tenant id")
	assert.Equal(t, "10", byTenant["10"][1].TenantID)
	require.Len(t, byTenant["12"], 1)
	assert.Equal(t, "b5", byTenant["12"][0].TransactionID)

	require.Len(t, rejections, 2)
	assert.Equal(t, "b3", rejections[0].RecordID)
	assert.Equal(t, domain.RejectAmbiguousTenant, rejections[0].Reason)
	assert.ElementsMatch(t, []string{"11", "12"}, rejections[0].Candidates)
	assert.Equal(t, "b4", rejections[1].RecordID)
	assert.Equal(t, domain.RejectUnmatchedTenant, rejections[1].Reason)
}
