package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LeaseStatus tracks where a lease is in its lifecycle.
type LeaseStatus string

const (
	LeasePending LeaseStatus = "pending"
	LeaseActive  LeaseStatus = "active"
	LeaseEnded   LeaseStatus = "ended"
)

// Lease ties a unit to a tenant for a period. Dates are kept as entered and parsed on read.
type Lease struct {
	LeaseID    string          `json:"leaseID"`
	TenantID   string          `json:"tenantID,omitempty"`
	PropertyID string          `json:"propertyID,omitempty"`
	Unit       string          `json:"unit"`
	Deposit    decimal.Decimal `json:"deposit"`
	StartDate  string          `json:"startDate"`
	EndDate    string          `json:"endDate,omitempty"`
	Status     LeaseStatus     `json:"status"`
	AuditFields
}

// Start parses the lease start date.
func (l Lease) Start() (time.Time, bool) {
	t, err := ParseDay(l.StartDate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
