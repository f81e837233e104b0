package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/property_backoffice/internal/apperrors"
	"github.com/SscSPs/property_backoffice/internal/core/domain"
	portssvc "github.com/SscSPs/property_backoffice/internal/core/ports/services"
	"github.com/SscSPs/property_backoffice/internal/core/services"
	"github.com/SscSPs/property_backoffice/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TenantRepository ---
type MockTenantRepository struct {
	mock.Mock
}

func (m *MockTenantRepository) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantRepository) ListTenants(ctx context.Context) ([]domain.Tenant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tenant), args.Error(1)
}

func (m *MockTenantRepository) SaveTenant(ctx context.Context, tenant domain.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

func (m *MockTenantRepository) UpdateTenant(ctx context.Context, tenant domain.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

func (m *MockTenantRepository) DeleteTenant(ctx context.Context, tenantID string) error {
	args := m.Called(ctx, tenantID)
	return args.Error(0)
}

// --- Test Suite ---
type TenantServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTenantRepository
	service  portssvc.TenantSvcFacade
	now      time.Time
}

func (suite *TenantServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTenantRepository)
	suite.now = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	suite.service = services.NewTenantService(suite.mockRepo, services.WithTenantClock(func() time.Time { return suite.now }))
}

func TestTenantServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TenantServiceTestSuite))
}

// --- Test Cases ---

func (suite *TenantServiceTestSuite) TestCreateTenant_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateTenantRequest{
		TenantID:    "10.0",
		Name:        "  Jane Doe ",
		PropertyID:  "P1",
		Unit:        "4B",
		MonthlyRent: decimal.NewFromInt(1200),
	}

	suite.mockRepo.On("SaveTenant", ctx, mock.MatchedBy(func(t domain.Tenant) bool {
		return t.TenantID == "10" && t.Name == "Jane Doe" && t.DueDay == domain.DefaultDueDay &&
			t.IsActive && t.CreatedBy == creatorUserID && t.CreatedAt.Equal(suite.now)
	})).Return(nil).Once()

	tenant, err := suite.service.CreateTenant(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(tenant)
	suite.Equal("10", tenant.TenantID)
	suite.Equal(creatorUserID, tenant.LastUpdatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TenantServiceTestSuite) TestCreateTenant_GeneratesID() {
	ctx := context.Background()
	suite.mockRepo.On("SaveTenant", ctx, mock.MatchedBy(func(t domain.Tenant) bool {
		_, err := uuid.Parse(t.TenantID)
		return err == nil
	})).Return(nil).Once()

	tenant, err := suite.service.CreateTenant(ctx, dto.CreateTenantRequest{Name: "No ID", DueDay: 15}, "user")

	suite.Require().NoError(err)
	suite.Equal(15, tenant.DueDay)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TenantServiceTestSuite) TestCreateTenant_NegativeRent() {
	req := dto.CreateTenantRequest{Name: "Bad", MonthlyRent: decimal.NewFromInt(-1)}

	tenant, err := suite.service.CreateTenant(context.Background(), req, "user")

	suite.Require().Error(err)
	suite.Nil(tenant)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTenant", mock.Anything, mock.Anything)
}

func (suite *TenantServiceTestSuite) TestCreateTenant_Duplicate() {
	ctx := context.Background()
	suite.mockRepo.On("SaveTenant", ctx, mock.AnythingOfType("domain.Tenant")).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateTenant(ctx, dto.CreateTenantRequest{TenantID: "10", Name: "Dup"}, "user")

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *TenantServiceTestSuite) TestGetTenantByID_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindTenantByID", ctx, "404").Return(nil, apperrors.ErrNotFound).Once()

	tenant, err := suite.service.GetTenantByID(ctx, "404")

	suite.Nil(tenant)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TenantServiceTestSuite) TestListTenants_Paginates() {
	ctx := context.Background()
	suite.mockRepo.On("ListTenants", ctx).Return([]domain.Tenant{
		{TenantID: "3", Name: "Charlie", PropertyID: "P1"},
		{TenantID: "1", Name: "alice", PropertyID: "P1"},
		{TenantID: "2", Name: "Bob", PropertyID: "P2"},
		{TenantID: "4", Name: "Bob", PropertyID: "P1"},
	}, nil)

	page, next, err := suite.service.ListTenants(ctx, dto.ListTenantsParams{Limit: 2})
	suite.Require().NoError(err)
	suite.Require().NotNil(next)
	suite.Equal([]string{"1", "2"}, tenantIDs(page))

	// Same name, ordered by id
	page, next, err = suite.service.ListTenants(ctx, dto.ListTenantsParams{Limit: 2, NextToken: *next})
	suite.Require().NoError(err)
	suite.Nil(next, "Last page carries no token")
	suite.Equal([]string{"4", "3"}, tenantIDs(page))
}

func (suite *TenantServiceTestSuite) TestListTenants_FilterByProperty() {
	ctx := context.Background()
	suite.mockRepo.On("ListTenants", ctx).Return([]domain.Tenant{
		{TenantID: "1", Name: "alice", PropertyID: "P1"},
		{TenantID: "2", Name: "Bob", PropertyID: "P2"},
	}, nil)

	page, next, err := suite.service.ListTenants(ctx, dto.ListTenantsParams{PropertyID: "p2"})

	suite.Require().NoError(err)
	suite.Nil(next)
	suite.Equal([]string{"2"}, tenantIDs(page))
}

func (suite *TenantServiceTestSuite) TestListTenants_BadToken() {
	ctx := context.Background()
	suite.mockRepo.On("ListTenants", ctx).Return([]domain.Tenant{}, nil)

	_, _, err := suite.service.ListTenants(ctx, dto.ListTenantsParams{NextToken: "%%%"})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TenantServiceTestSuite) TestUpdateTenant_AppliesFields() {
	ctx := context.Background()
	existing := &domain.Tenant{TenantID: "10", Name: "Jane", MonthlyRent: decimal.NewFromInt(1000), DueDay: 1, IsActive: true}
	suite.mockRepo.On("FindTenantByID", ctx, "10").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateTenant", ctx, mock.MatchedBy(func(t domain.Tenant) bool {
		return t.Name == "Jane Smith" && t.MonthlyRent.Equal(decimal.NewFromInt(1100)) && !t.IsActive && t.LastUpdatedBy == "editor"
	})).Return(nil).Once()

	name := "Jane Smith"
	rent := decimal.NewFromInt(1100)
	active := false
	tenant, err := suite.service.UpdateTenant(ctx, "10", dto.UpdateTenantRequest{Name: &name, MonthlyRent: &rent, IsActive: &active}, "editor")

	suite.Require().NoError(err)
	suite.Equal("Jane Smith", tenant.Name)
	suite.Equal(1, tenant.DueDay)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TenantServiceTestSuite) TestDeleteTenant_PropagatesNotFound() {
	ctx := context.Background()
	suite.mockRepo.On("DeleteTenant", ctx, "10").Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteTenant(ctx, "10")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func tenantIDs(tenants []domain.Tenant) []string {
	ids := make([]string, len(tenants))
	for i, t := range tenants {
		ids[i] = t.TenantID
	}
	return ids
}
