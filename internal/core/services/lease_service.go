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

// leaseService implements the LeaseSvcFacade interface
type leaseService struct {
	BaseService
	leaseRepo  portsrepo.LeaseRepositoryFacade
	tenantRepo portsrepo.TenantReader
}

// NewLeaseService creates a new lease service
func NewLeaseService(leaseRepo portsrepo.LeaseRepositoryFacade, tenantRepo portsrepo.TenantReader) portssvc.LeaseSvcFacade {
	return &leaseService{leaseRepo: leaseRepo, tenantRepo: tenantRepo}
}

var _ portssvc.LeaseSvcFacade = (*leaseService)(nil)

func (s *leaseService) CreateLease(ctx context.Context, req dto.CreateLeaseRequest, creatorUserID string) (*domain.Lease, error) {
	start, err := domain.ParseDay(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: start date: %v", apperrors.ErrValidation, err)
	}
	endDate := ""
	if req.EndDate != "" {
		end, err := domain.ParseDay(req.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: end date: %v", apperrors.ErrValidation, err)
		}
		if _, err := domain.NewWindow(start, end); err != nil {
			return nil, err
		}
		endDate = domain.FormatDay(end)
	}
	if req.Deposit.IsNegative() {
		return nil, fmt.Errorf("%w: deposit cannot be negative", apperrors.ErrValidation)
	}

	lease := domain.Lease{
		LeaseID:    uuid.NewString(),
		PropertyID: strings.TrimSpace(req.PropertyID),
		Unit:       strings.TrimSpace(req.Unit),
		Deposit:    req.Deposit,
		StartDate:  domain.FormatDay(start),
		EndDate:    endDate,
		Status:     domain.LeaseStatus(req.Status),
	}
	if lease.Status == "" {
		lease.Status = domain.LeaseActive
	}

	if req.TenantID != "" {
		tenant, err := s.tenantRepo.FindTenantByID(ctx, req.TenantID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: unknown tenant %s", apperrors.ErrValidation, req.TenantID)
			}
			return nil, fmt.Errorf("failed to look up tenant: %w", err)
		}
		lease.TenantID = tenant.CanonicalID()
		if lease.PropertyID == "" {
			lease.PropertyID = tenant.PropertyID
		}
	}
	lease.Touch(creatorUserID, s.Now())

	if err := s.leaseRepo.SaveLease(ctx, lease); err != nil {
		s.LogError(ctx, err, "Failed to save lease", slog.String("lease_id", lease.LeaseID))
		return nil, fmt.Errorf("failed to create lease: %w", err)
	}
	s.LogInfo(ctx, "Lease created",
		slog.String("lease_id", lease.LeaseID),
		slog.String("tenant_id", lease.TenantID),
		slog.String("unit", lease.Unit))
	return &lease, nil
}

func (s *leaseService) ListLeases(ctx context.Context, tenantID string) ([]domain.Lease, error) {
	leases, err := s.leaseRepo.ListLeases(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list leases")
		return nil, fmt.Errorf("failed to list leases: %w", err)
	}
	if tenantID != "" {
		want := domain.NormalizeTenantID(tenantID)
		filtered := leases[:0]
		for _, l := range leases {
			if domain.NormalizeTenantID(l.TenantID) == want {
				filtered = append(filtered, l)
			}
		}
		leases = filtered
	}
	sort.SliceStable(leases, func(i, j int) bool {
		return leases[i].StartDate < leases[j].StartDate
	})
	return leases, nil
}

func (s *leaseService) DeleteLease(ctx context.Context, leaseID string) error {
	if err := s.leaseRepo.DeleteLease(ctx, leaseID); err != nil {
		return fmt.Errorf("failed to delete lease %s: %w", leaseID, err)
	}
	s.LogInfo(ctx, "Lease deleted", slog.String("lease_id", leaseID))
	return nil
}
