package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/SscSPs/property_backoffice/internal/apperrors"
	"github.com/SscSPs/property_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/property_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/property_backoffice/internal/core/ports/services"
	"github.com/SscSPs/property_backoffice/internal/dto"
	"github.com/google/uuid"
)

// utilityService implements the UtilitySvcFacade interface
type utilityService struct {
	BaseService
	utilityRepo portsrepo.UtilityChargeRepositoryFacade
	tenantRepo  portsrepo.TenantReader
}

// NewUtilityService creates a new utility charge service
func NewUtilityService(repo portsrepo.UtilityChargeRepositoryFacade, tenantRepo portsrepo.TenantReader) portssvc.UtilitySvcFacade {
	return &utilityService{utilityRepo: repo, tenantRepo: tenantRepo}
}

var _ portssvc.UtilitySvcFacade = (*utilityService)(nil)

func (s *utilityService) CreateUtilityCharge(ctx context.Context, req dto.CreateUtilityChargeRequest, creatorUserID string) (*domain.UtilityCharge, error) {
	date, err := validatePayment(req.Date, req.Amount)
	if err != nil {
		return nil, err
	}
	utilityType := strings.ToLower(strings.TrimSpace(req.UtilityType))
	if utilityType == "" {
		return nil, fmt.Errorf("%w: utility type is required", apperrors.ErrValidation)
	}
	tenant, err := s.tenantRepo.FindTenantByID(ctx, req.TenantID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown tenant %s", apperrors.ErrValidation, req.TenantID)
		}
		return nil, fmt.Errorf("failed to look up tenant: %w", err)
	}

	charge := domain.UtilityCharge{
		ChargeID:    uuid.NewString(),
		TenantID:    tenant.CanonicalID(),
		Date:        date,
		Amount:      req.Amount,
		UtilityType: utilityType,
		Description: strings.TrimSpace(req.Description),
	}
	charge.Touch(creatorUserID, s.Now())

	if err := s.utilityRepo.SaveUtilityCharge(ctx, charge); err != nil {
		s.LogError(ctx, err, "Failed to save utility charge", slog.String("tenant_id", charge.TenantID))
		return nil, fmt.Errorf("failed to create utility charge: %w", err)
	}
	s.LogInfo(ctx, "Utility charge created",
		slog.String("charge_id", charge.ChargeID),
		slog.String("tenant_id", charge.TenantID),
		slog.String("utility_type", utilityType))
	return &charge, nil
}

func (s *utilityService) ListUtilityCharges(ctx context.Context, tenantID string) ([]domain.UtilityCharge, error) {
	var (
		charges []domain.UtilityCharge
		err     error
	)
	if tenantID == "" {
		charges, err = s.utilityRepo.ListUtilityCharges(ctx)
	} else {
		charges, err = s.utilityRepo.ListUtilityChargesByTenant(ctx, tenantID)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to list utility charges", slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("failed to list utility charges: %w", err)
	}
	sort.SliceStable(charges, func(i, j int) bool {
		return charges[i].Date < charges[j].Date
	})
	return charges, nil
}

func (s *utilityService) DeleteUtilityCharge(ctx context.Context, chargeID string) error {
	if err := s.utilityRepo.DeleteUtilityCharge(ctx, chargeID); err != nil {
		return fmt.Errorf("failed to delete utility charge %s: %w", chargeID, err)
	}
	s.LogInfo(ctx, "Utility charge deleted", slog.String("charge_id", chargeID))
	return nil
}
