package services

import (
	"context"

	"github.com/SscSPs/property_backoffice/internal/core/domain"
	"github.com/SscSPs/property_backoffice/internal/dto"
)

// TenantReaderSvc defines read operations for tenants
type TenantReaderSvc interface {
	GetTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error)

	// ListTenants returns one page of tenants ordered by name, and the token for
	// the next page when there is one.
	ListTenants(ctx context.Context, params dto.ListTenantsParams) ([]domain.Tenant, *string, error)
}

// TenantWriterSvc defines write operations for tenants
type TenantWriterSvc interface {
	CreateTenant(ctx context.Context, req dto.CreateTenantRequest, creatorUserID string) (*domain.Tenant, error)
	UpdateTenant(ctx context.Context, tenantID string, req dto.UpdateTenantRequest, userID string) (*domain.Tenant, error)
	DeleteTenant(ctx context.Context, tenantID string) error
}

// TenantSvcFacade combines all tenant-related service interfaces
type TenantSvcFacade interface {
	TenantReaderSvc
	TenantWriterSvc
}

// LeaseSvcFacade defines lease operations
type LeaseSvcFacade interface {
	CreateLease(ctx context.Context, req dto.CreateLeaseRequest, creatorUserID string) (*domain.Lease, error)

	// ListLeases returns the leases of one tenant, or all leases when tenantID is empty.
	ListLeases(ctx context.Context, tenantID string) ([]domain.Lease, error)
	DeleteLease(ctx context.Context, leaseID string) error
}
