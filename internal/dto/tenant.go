package dto

import (
	"time"

	"github.com/SscSPs/property_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTenantRequest defines the data needed to create a new tenant.
type CreateTenantRequest struct {
	TenantID    string          `json:"tenantID"` // Optional, generated when empty
	Name        string          `json:"name" binding:"required"`
	PropertyID  string          `json:"propertyID"`
	Unit        string          `json:"unit"`
	Reference   string          `json:"reference"`
	Email       string          `json:"email" binding:"omitempty,email"`
	Phone       string          `json:"phone"`
	MonthlyRent decimal.Decimal `json:"monthlyRent"`
	DueDay      int             `json:"dueDay" binding:"omitempty,dueday"`
}

// UpdateTenantRequest defines the data allowed for updating a tenant.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateTenantRequest struct {
	Name        *string          `json:"name"`
	PropertyID  *string          `json:"propertyID"`
	Unit        *string          `json:"unit"`
	Reference   *string          `json:"reference"`
	Email       *string          `json:"email" binding:"omitempty,email"`
	Phone       *string          `json:"phone"`
	MonthlyRent *decimal.Decimal `json:"monthlyRent"`
	DueDay      *int             `json:"dueDay" binding:"omitempty,dueday"`
	IsActive    *bool            `json:"isActive"`
}

// ListTenantsParams defines the query parameters for listing tenants.
type ListTenantsParams struct {
	PropertyID string `form:"propertyID"`
	Limit      int    `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken  string `form:"nextToken"`
}

// TenantResponse defines the data returned for a tenant.
type TenantResponse struct {
	TenantID      string          `json:"tenantID"`
	Name          string          `json:"name"`
	PropertyID    string          `json:"propertyID,omitempty"`
	Unit          string          `json:"unit,omitempty"`
	Reference     string          `json:"reference,omitempty"`
	Email         string          `json:"email,omitempty"`
	Phone         string          `json:"phone,omitempty"`
	MonthlyRent   decimal.Decimal `json:"monthlyRent"`
	DueDay        int             `json:"dueDay"`
	IsActive      bool            `json:"isActive"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

// ListTenantsResponse wraps a page of tenants.
type ListTenantsResponse struct {
	Tenants   []TenantResponse `json:"tenants"`
	NextToken *string          `json:"nextToken,omitempty"`
}

// ToTenantResponse converts a domain.Tenant to TenantResponse DTO
func ToTenantResponse(t *domain.Tenant) TenantResponse {
	return TenantResponse{
		TenantID:      t.TenantID,
		Name:          t.Name,
		PropertyID:    t.PropertyID,
		Unit:          t.Unit,
		Reference:     t.Reference,
		Email:         t.Email,
		Phone:         t.Phone,
		MonthlyRent:   t.MonthlyRent,
		DueDay:        t.BillingDay(),
		IsActive:      t.IsActive,
		CreatedAt:     t.CreatedAt,
		CreatedBy:     t.CreatedBy,
		LastUpdatedAt: t.LastUpdatedAt,
		LastUpdatedBy: t.LastUpdatedBy,
	}
}

// ToListTenantsResponse converts a page of tenants
func ToListTenantsResponse(tenants []domain.Tenant, nextToken *string) ListTenantsResponse {
	resp := ListTenantsResponse{Tenants: make([]TenantResponse, len(tenants)), NextToken: nextToken}
	for i := range tenants {
		resp.Tenants[i] = ToTenantResponse(&tenants[i])
	}
	return resp
}
