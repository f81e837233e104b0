package docstore

import (
	"context"

	"github.com/SscSPs/property_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/property_backoffice/internal/core/ports/repositories"
)

type DocUtilityChargeRepository struct {
	charges *Collection[domain.UtilityCharge]
}

func newDocUtilityChargeRepository(store Store) portsrepo.UtilityChargeRepositoryFacade {
	return &DocUtilityChargeRepository{
		charges: NewCollection(store, UtilityChargesKey, func(c domain.UtilityCharge) string { return c.ChargeID }),
	}
}

var _ portsrepo.UtilityChargeRepositoryFacade = (*DocUtilityChargeRepository)(nil)

func (r *DocUtilityChargeRepository) ListUtilityCharges(ctx context.Context) ([]domain.UtilityCharge, error) {
	return r.charges.List(ctx)
}

func (r *DocUtilityChargeRepository) ListUtilityChargesByTenant(ctx context.Context, tenantID string) ([]domain.UtilityCharge, error) {
	id := domain.NormalizeTenantID(tenantID)
	return r.charges.Filter(ctx, func(c domain.UtilityCharge) bool {
		return domain.NormalizeTenantID(c.TenantID) == id
	})
}

func (r *DocUtilityChargeRepository) SaveUtilityCharge(ctx context.Context, charge domain.UtilityCharge) error {
	return r.charges.Append(ctx, charge)
}

func (r *DocUtilityChargeRepository) DeleteUtilityCharge(ctx context.Context, chargeID string) error {
	return r.charges.Delete(ctx, chargeID)
}
