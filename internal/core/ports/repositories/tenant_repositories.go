package repositories

import (
	"context"

	"github.com/SscSPs/property_backoffice/internal/core/domain"
)

// TenantReader defines read operations for tenant data
type TenantReader interface {
	// FindTenantByID retrieves a tenant by any representation of its id.
	FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error)

	// ListTenants returns every tenant. The slice is a copy owned by the caller.
	ListTenants(ctx context.Context) ([]domain.Tenant, error)
}

// TenantWriter defines write operations for tenant data
type TenantWriter interface {
	// SaveTenant persists a new tenant. Returns apperrors.ErrDuplicate if the id is taken.
	SaveTenant(ctx context.Context, tenant domain.Tenant) error

	// UpdateTenant replaces an existing tenant. Returns apperrors.ErrNotFound if missing.
	UpdateTenant(ctx context.Context, tenant domain.Tenant) error

	DeleteTenant(ctx context.Context, tenantID string) error
}

// TenantRepositoryFacade combines all tenant-related repository interfaces
type TenantRepositoryFacade interface {
	TenantReader
	TenantWriter
}
