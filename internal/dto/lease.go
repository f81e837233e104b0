package dto

import (
	"github.com/SscSPs/property_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLeaseRequest defines the data needed to create a lease.
type CreateLeaseRequest struct {
	TenantID   string          `json:"tenantID"`
	PropertyID string          `json:"propertyID"`
	Unit       string          `json:"unit" binding:"required"`
	Deposit    decimal.Decimal `json:"deposit"`
	StartDate  string          `json:"startDate" binding:"required,isodate"`
	EndDate    string          `json:"endDate" binding:"omitempty,isodate"`
	Status     string          `json:"status" binding:"omitempty,oneof=pending active ended"`
}

// LeaseResponse defines the data returned for a lease.
type LeaseResponse struct {
	LeaseID    string          `json:"leaseID"`
	TenantID   string          `json:"tenantID,omitempty"`
	PropertyID string          `json:"propertyID,omitempty"`
	Unit       string          `json:"unit"`
	Deposit    decimal.Decimal `json:"deposit"`
	StartDate  string          `json:"startDate"`
	EndDate    string          `json:"endDate,omitempty"`
	Status     string          `json:"status"`
}

func ToLeaseResponse(l *domain.Lease) LeaseResponse {
	return LeaseResponse{
		LeaseID:    l.LeaseID,
		TenantID:   l.TenantID,
		PropertyID: l.PropertyID,
		Unit:       l.Unit,
		Deposit:    l.Deposit,
		StartDate:  l.StartDate,
		EndDate:    l.EndDate,
		Status:     string(l.Status),
	}
}

func ToLeaseResponses(leases []domain.Lease) []LeaseResponse {
	out := make([]LeaseResponse, len(leases))
	for i := range leases {
		out[i] = ToLeaseResponse(&leases[i])
	}
	return out
}
