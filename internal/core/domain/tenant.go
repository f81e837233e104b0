package domain

import (
	"github.com/shopspring/decimal"
)

// DefaultDueDay is used whenever a tenant's billing day is missing or out of range.
const DefaultDueDay = 1

// Tenant is a person or business renting a unit.
type Tenant struct {
	TenantID    string          `json:"tenantID"`
	Name        string          `json:"name"`
	PropertyID  string          `json:"propertyID,omitempty"`
	Unit        string          `json:"unit,omitempty"`
	Reference   string          `json:"reference,omitempty"` // External reference, e.g. a bank payee code
	Email       string          `json:"email,omitempty"`
	Phone       string          `json:"phone,omitempty"`
	MonthlyRent decimal.Decimal `json:"monthlyRent"`
	DueDay      int             `json:"dueDay"`
	IsActive    bool            `json:"isActive"`
	AuditFields
}

// BillingDay returns the due day of month, falling back to DefaultDueDay when invalid.
func (t Tenant) BillingDay() int {
	if t.DueDay < 1 || t.DueDay > 31 {
		return DefaultDueDay
	}
	return t.DueDay
}

// CanonicalID returns the normalized tenant id.
func (t Tenant) CanonicalID() string {
	return NormalizeTenantID(t.TenantID)
}
