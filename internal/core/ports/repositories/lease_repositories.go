package repositories

import (
	"context"

	"github.com/SscSPs/property_backoffice/internal/core/domain"
)

// LeaseReader defines read operations for lease data
type LeaseReader interface {
	FindLeaseByID(ctx context.Context, leaseID string) (*domain.Lease, error)
	ListLeases(ctx context.Context) ([]domain.Lease, error)
}

// LeaseWriter defines write operations for lease data
type LeaseWriter interface {
	SaveLease(ctx context.Context, lease domain.Lease) error
	DeleteLease(ctx context.Context, leaseID string) error
}

// LeaseRepositoryFacade combines all lease-related repository interfaces
type LeaseRepositoryFacade interface {
	LeaseReader
	LeaseWriter
}
