package docstore

import (
	"context"

	"github.com/SscSPs/property_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/property_backoffice/internal/core/ports/repositories"
)

type DocLeaseRepository struct {
	leases *Collection[domain.Lease]
}

func newDocLeaseRepository(store Store) portsrepo.LeaseRepositoryFacade {
	return &DocLeaseRepository{
		leases: NewCollection(store, LeasesKey, func(l domain.Lease) string { return l.LeaseID }),
	}
}

var _ portsrepo.LeaseRepositoryFacade = (*DocLeaseRepository)(nil)

func (r *DocLeaseRepository) FindLeaseByID(ctx context.Context, leaseID string) (*domain.Lease, error) {
	return r.leases.Find(ctx, leaseID)
}

func (r *DocLeaseRepository) ListLeases(ctx context.Context) ([]domain.Lease, error) {
	return r.leases.List(ctx)
}

func (r *DocLeaseRepository) SaveLease(ctx context.Context, lease domain.Lease) error {
	return r.leases.Append(ctx, lease)
}

func (r *DocLeaseRepository) DeleteLease(ctx context.Context, leaseID string) error {
	return r.leases.Delete(ctx, leaseID)
}
