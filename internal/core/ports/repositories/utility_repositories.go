package repositories

import (
	"context"

	"github.com/SscSPs/property_backoffice/internal/core/domain"
)

// UtilityChargeReader defines read operations for utility bills
type UtilityChargeReader interface {
	ListUtilityCharges(ctx context.Context) ([]domain.UtilityCharge, error)
	ListUtilityChargesByTenant(ctx context.Context, tenantID string) ([]domain.UtilityCharge, error)
}

// UtilityChargeWriter defines write operations for utility bills
type UtilityChargeWriter interface {
	SaveUtilityCharge(ctx context.Context, charge domain.UtilityCharge) error
	DeleteUtilityCharge(ctx context.Context, chargeID string) error
}

// UtilityChargeRepositoryFacade combines all utility repository interfaces
type UtilityChargeRepositoryFacade interface {
	UtilityChargeReader
	UtilityChargeWriter
}
