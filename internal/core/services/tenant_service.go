package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/property_backoffice/internal/apperrors"
	"github.com/SscSPs/property_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/property_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/property_backoffice/internal/core/ports/services"
	"github.com/SscSPs/property_backoffice/internal/dto"
	"github.com/SscSPs/property_backoffice/internal/utils/pagination"
	"github.com/google/uuid"
)

const maxTenantPageSize = 100

// tenantService implements the TenantSvcFacade interface
type tenantService struct {
	BaseService
	tenantRepo portsrepo.TenantRepositoryFacade
}

// TenantServiceOption is a functional option for configuring the tenant service
type TenantServiceOption func(*tenantService)

// WithTenantClock sets the clock used for audit timestamps.
func WithTenantClock(clock func() time.Time) TenantServiceOption {
	return func(s *tenantService) {
		s.Clock = clock
	}
}

// NewTenantService creates a new tenant service with the provided options
func NewTenantService(repo portsrepo.TenantRepositoryFacade, options ...TenantServiceOption) portssvc.TenantSvcFacade {
	svc := &tenantService{tenantRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TenantSvcFacade = (*tenantService)(nil)

func (s *tenantService) CreateTenant(ctx context.Context, req dto.CreateTenantRequest, creatorUserID string) (*domain.Tenant, error) {
	if req.MonthlyRent.IsNegative() {
		return nil, fmt.Errorf("%w: monthly rent cannot be negative", apperrors.ErrValidation)
	}

	tenantID := domain.NormalizeTenantID(req.TenantID)
	if tenantID == "" {
		tenantID = uuid.NewString()
	}
	dueDay := req.DueDay
	if dueDay == 0 {
		dueDay = domain.DefaultDueDay
	}

	tenant := domain.Tenant{
		TenantID:    tenantID,
		Name:        strings.TrimSpace(req.Name),
		PropertyID:  strings.TrimSpace(req.PropertyID),
		Unit:        strings.TrimSpace(req.Unit),
		Reference:   strings.TrimSpace(req.Reference),
		Email:       req.Email,
		Phone:       req.Phone,
		MonthlyRent: req.MonthlyRent,
		DueDay:      dueDay,
		IsActive:    true,
	}
	tenant.Touch(creatorUserID, s.Now())

	if err := s.tenantRepo.SaveTenant(ctx, tenant); err != nil {
		s.LogError(ctx, err, "Failed to save tenant", slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	s.LogInfo(ctx, "Tenant created",
		slog.String("tenant_id", tenantID),
		slog.String("property_id", tenant.PropertyID),
		slog.String("unit", tenant.Unit))
	return &tenant, nil
}

func (s *tenantService) GetTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	tenant, err := s.tenantRepo.FindTenantByID(ctx, tenantID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get tenant", slog.String("tenant_id", tenantID))
		}
		return nil, fmt.Errorf("failed to get tenant %s: %w", tenantID, err)
	}
	return tenant, nil
}

// ListTenants orders tenants by lowercased name then id, so the cursor stays stable
// while tenants are added.
func (s *tenantService) ListTenants(ctx context.Context, params dto.ListTenantsParams) ([]domain.Tenant, *string, error) {
	all, err := s.tenantRepo.ListTenants(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list tenants")
		return nil, nil, fmt.Errorf("failed to list tenants: %w", err)
	}

	filtered := make([]domain.Tenant, 0, len(all))
	for _, t := range all {
		if params.PropertyID != "" && !strings.EqualFold(t.PropertyID, params.PropertyID) {
			continue
		}
		filtered = append(filtered, t)
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return tenantSortLess(filtered[i], filtered[j])
	})

	if params.NextToken != "" {
		lastID, lastName, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		cursor := domain.Tenant{TenantID: lastID, Name: lastName}
		start := sort.Search(len(filtered), func(i int) bool {
			return tenantSortLess(cursor, filtered[i])
		})
		filtered = filtered[start:]
	}

	limit := pagination.Limit(params.Limit, maxTenantPageSize)
	if len(filtered) <= limit {
		return filtered, nil, nil
	}
	page := filtered[:limit]
	last := page[len(page)-1]
	token := pagination.EncodeToken(last.CanonicalID(), strings.ToLower(last.Name))
	return page, &token, nil
}

func tenantSortLess(a, b domain.Tenant) bool {
	an, bn := strings.ToLower(a.Name), strings.ToLower(b.Name)
	if an != bn {
		return an < bn
	}
	return a.CanonicalID() < b.CanonicalID()
}

func (s *tenantService) UpdateTenant(ctx context.Context, tenantID string, req dto.UpdateTenantRequest, userID string) (*domain.Tenant, error) {
	tenant, err := s.GetTenantByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		tenant.Name = strings.TrimSpace(*req.Name)
	}
	if req.PropertyID != nil {
		tenant.PropertyID = strings.TrimSpace(*req.PropertyID)
	}
	if req.Unit != nil {
		tenant.Unit = strings.TrimSpace(*req.Unit)
	}
	if req.Reference != nil {
		tenant.Reference = strings.TrimSpace(*req.Reference)
	}
	if req.Email != nil {
		tenant.Email = *req.Email
	}
	if req.Phone != nil {
		tenant.Phone = *req.Phone
	}
	if req.MonthlyRent != nil {
		if req.MonthlyRent.IsNegative() {
			return nil, fmt.Errorf("%w: monthly rent cannot be negative", apperrors.ErrValidation)
		}
		tenant.MonthlyRent = *req.MonthlyRent
	}
	if req.DueDay != nil {
		tenant.DueDay = *req.DueDay
	}
	if req.IsActive != nil {
		tenant.IsActive = *req.IsActive
	}
	tenant.Touch(userID, s.Now())

	if err := s.tenantRepo.UpdateTenant(ctx, *tenant); err != nil {
		s.LogError(ctx, err, "Failed to update tenant", slog.String("tenant_id", tenant.TenantID))
		return nil, fmt.Errorf("failed to update tenant: %w", err)
	}
	s.LogInfo(ctx, "Tenant updated", slog.String("tenant_id", tenant.TenantID), slog.String("user_id", userID))
	return tenant, nil
}

func (s *tenantService) DeleteTenant(ctx context.Context, tenantID string) error {
	if err := s.tenantRepo.DeleteTenant(ctx, tenantID); err != nil {
		return fmt.Errorf("failed to delete tenant %s: %w", tenantID, err)
	}
	s.LogInfo(ctx, "Tenant deleted", slog.String("tenant_id", tenantID))
	return nil
}
