package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// RejectionReason names why a source record was left out of a computation.
type RejectionReason string

const (
	RejectInvalidDate       RejectionReason = "invalid_date"
	RejectInvalidAmount     RejectionReason = "invalid_amount"
	RejectNonPositiveAmount RejectionReason = "non_positive_amount"
	RejectMissingField      RejectionReason = "missing_field"
	RejectUnmatchedTenant   RejectionReason = "unmatched_tenant"
	RejectAmbiguousTenant   RejectionReason = "ambiguous_tenant"
)

// Rejection records a skipped record. Skips are not errors; they shrink the output set.
type Rejection struct {
	Source     Source          `json:"source"`
	RecordID   string          `json:"recordID,omitempty"`
	Reason     RejectionReason `json:"reason"`
	Detail     string          `json:"detail,omitempty"`
	Candidates []string        `json:"candidates,omitempty"`
}

// ParseResult carries either a validated value or the reason it was rejected.
type ParseResult[T any] struct {
	Value     T
	Rejection *Rejection
}

// OK reports whether the value was accepted.
func (p ParseResult[T]) OK() bool {
	return p.Rejection == nil
}

// Accept wraps a validated value.
func Accept[T any](v T) ParseResult[T] {
	return ParseResult[T]{Value: v}
}

// Reject wraps a rejection.
func Reject[T any](r Rejection) ParseResult[T] {
	return ParseResult[T]{Rejection: &r}
}

// ParseBankRow validates one raw bank-import row.
// Recognised keys are matched case-insensitively with '_' ignored, so
// "tenant_id", "tenantId" and "TenantID" are the same field.
func ParseBankRow(raw map[string]any) ParseResult[BankTransaction] {
	fields := make(map[string]any, len(raw))
	for k, v := range raw {
		fields[strings.ToLower(strings.ReplaceAll(k, "_", ""))] = v
	}
	pick := func(names ...string) (any, bool) {
		for _, n := range names {
			if v, ok := fields[n]; ok && v != nil {
				return v, true
			}
		}
		return nil, false
	}

	id := NormalizeTenantID(valueOr(pick("transactionid", "id")))
	reject := func(reason RejectionReason, detail string) ParseResult[BankTransaction] {
		return Reject[BankTransaction](Rejection{Source: SourceBank, RecordID: id, Reason: reason, Detail: detail})
	}

	rawDate, ok := pick("date", "postedat", "transactiondate")
	if !ok {
		return reject(RejectMissingField, "date")
	}
	day, err := ParseDay(fmt.Sprint(rawDate))
	if err != nil {
		return reject(RejectInvalidDate, err.Error())
	}

	rawAmount, ok := pick("amount")
	if !ok {
		return reject(RejectMissingField, "amount")
	}
	amount, err := ParseAmount(rawAmount)
	if err != nil {
		return reject(RejectInvalidAmount, err.Error())
	}
	if !amount.IsPositive() {
		return reject(RejectNonPositiveAmount, amount.String())
	}

	return Accept(BankTransaction{
		TransactionID: id,
		Date:          FormatDay(day),
		Amount:        amount,
		Description:   strings.TrimSpace(stringOf(pick("description", "memo", "narrative"))),
		TenantID:      NormalizeTenantID(valueOr(pick("tenantid", "tenant"))),
		PropertyID:    strings.TrimSpace(stringOf(pick("propertyid", "property", "building"))),
		Unit:          strings.TrimSpace(stringOf(pick("unit", "unitlabel"))),
	})
}

// ParseAmount accepts numbers and currency strings such as "$1,200.50".
func ParseAmount(v any) (decimal.Decimal, error) {
	switch a := v.(type) {
	case float64:
		return decimal.NewFromFloat(a), nil
	case float32:
		return decimal.NewFromFloat32(a), nil
	case int:
		return decimal.NewFromInt(int64(a)), nil
	case int64:
		return decimal.NewFromInt(a), nil
	case json.Number:
		return decimal.NewFromString(a.String())
	case decimal.Decimal:
		return a, nil
	case string:
		cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(strings.TrimSpace(a))
		if cleaned == "" {
			return decimal.Zero, fmt.Errorf("empty amount")
		}
		return decimal.NewFromString(cleaned)
	default:
		return decimal.Zero, fmt.Errorf("unsupported amount type %T", v)
	}
}

func valueOr(v any, _ bool) any {
	return v
}

func stringOf(v any, ok bool) string {
	if !ok {
		return ""
	}
	if s, isString := v.(string); isString {
		return s
	}
	return fmt.Sprint(v)
}
