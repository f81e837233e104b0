package docstore

import (
	"context"

	"github.com/SscSPs/property_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/property_backoffice/internal/core/ports/repositories"
)

type DocTenantRepository struct {
	tenants *Collection[domain.Tenant]
}

// newDocTenantRepository creates a new repository for tenant data.
func newDocTenantRepository(store Store) portsrepo.TenantRepositoryFacade {
	return &DocTenantRepository{
		tenants: NewCollection(store, TenantsKey, func(t domain.Tenant) string { return t.CanonicalID() }),
	}
}

// Ensure implementation matches interface
var _ portsrepo.TenantRepositoryFacade = (*DocTenantRepository)(nil)

func (r *DocTenantRepository) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	return r.tenants.Find(ctx, domain.NormalizeTenantID(tenantID))
}

func (r *DocTenantRepository) ListTenants(ctx context.Context) ([]domain.Tenant, error) {
	return r.tenants.List(ctx)
}

func (r *DocTenantRepository) SaveTenant(ctx context.Context, tenant domain.Tenant) error {
	return r.tenants.Append(ctx, tenant)
}

func (r *DocTenantRepository) UpdateTenant(ctx context.Context, tenant domain.Tenant) error {
	return r.tenants.Replace(ctx, tenant)
}

func (r *DocTenantRepository) DeleteTenant(ctx context.Context, tenantID string) error {
	return r.tenants.Delete(ctx, domain.NormalizeTenantID(tenantID))
}
