package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/property_backoffice/internal/apperrors"
	"github.com/SscSPs/property_backoffice/internal/core/domain"
	portssvc "github.com/SscSPs/property_backoffice/internal/core/ports/services"
	"github.com/SscSPs/property_backoffice/internal/core/services"
	"github.com/SscSPs/property_backoffice/internal/dto"
	"github.com/SscSPs/property_backoffice/internal/events"
	"github.com/SscSPs/property_backoffice/internal/handlers"
	"github.com/SscSPs/property_backoffice/internal/platform/config"
	"github.com/SscSPs/property_backoffice/internal/repositories/docstore"
	"github.com/SscSPs/property_backoffice/internal/utils"
)

const (
	testSecret = "handler-test-secret"
	testAPIKey = "bank-pipeline-key"
)

type HandlersTestSuite struct {
	suite.Suite
	router *gin.Engine
	token  string
}

func newConfig(t require.TestingT) *config.Config {
	hash, err := utils.HashSecret(testAPIKey)
	require.NoError(t, err)
	return &config.Config{
		JWTSecret:             testSecret,
		BankImportAPIKeyHash:  hash,
		IsProduction:          true,
		KafkaPaymentsTopic:    events.TopicPaymentRecorded,
		OverdueLookbackMonths: 12,
		CurrencySymbol:        "$",
	}
}

func newEngine(cfg *config.Config, container *portssvc.ServiceContainer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers.RegisterRoutes(r, cfg, container)
	return r
}

func (s *HandlersTestSuite) SetupTest() {
	cfg := newConfig(s.T())
	repos := docstore.NewRepositoryProvider(docstore.NewMemoryStore())
	container := services.NewServiceContainer(cfg, repos, events.LogPublisher{})
	s.router = newEngine(cfg, container)

	token, err := utils.GenerateJWT("clerk-1", testSecret, time.Hour, "test")
	s.Require().NoError(err)
	s.token = token
}

func (s *HandlersTestSuite) do(method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlersTestSuite) authed(method, path string, body any) *httptest.ResponseRecorder {
	return s.do(method, path, body, map[string]string{"Authorization": "Bearer " + s.token})
}

func (s *HandlersTestSuite) createJane() {
	w := s.authed(http.MethodPost, "/api/v1/tenants", dto.CreateTenantRequest{
		TenantID:    "10",
		Name:        "Jane Doe",
		PropertyID:  "P1",
		Unit:        "4B",
		MonthlyRent: decimal.NewFromInt(1200),
		DueDay:      5,
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
}

func (s *HandlersTestSuite) TestHealth() {
	w := s.do(http.MethodGet, "/health", nil, nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("OK", w.Body.String())
}

func (s *HandlersTestSuite) TestAPIRequiresToken() {
	w := s.do(http.MethodGet, "/api/v1/tenants", nil, nil)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *HandlersTestSuite) TestSwaggerHiddenInProduction() {
	w := s.do(http.MethodGet, "/swagger/index.html", nil, nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlersTestSuite) TestCreateTenant_Validation() {
	w := s.authed(http.MethodPost, "/api/v1/tenants", map[string]any{"name": "Bad Day", "dueDay": 40})
	s.Equal(http.StatusBadRequest, w.Code)

	s.createJane()
	w = s.authed(http.MethodPost, "/api/v1/tenants", dto.CreateTenantRequest{TenantID: "10.0", Name: "Again"})
	s.Equal(http.StatusConflict, w.Code, "10.0 normalizes to the existing tenant 10")

	w = s.authed(http.MethodGet, "/api/v1/tenants/404", nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlersTestSuite) TestLedgerFlow() {
	s.createJane()

	batch := dto.BankImportRequest{Transactions: []map[string]any{
		{"transaction_id": "tx1", "date": "2024-08-02", "amount": "1200", "tenant_id": "10.0"},
		{"transaction_id": "tx2", "date": "someday", "amount": "50", "tenant_id": "10"},
	}}
	w := s.do(http.MethodPost, "/hooks/bank/transactions", batch, map[string]string{"X-API-Key": testAPIKey})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var imported dto.ImportResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &imported))
	s.Equal(1, imported.Imported)
	s.Require().Len(imported.Rejections, 1)
	s.Equal("tx2", imported.Rejections[0].RecordID)

	w = s.authed(http.MethodGet, "/api/v1/reports/tenants/10/ledger?from=2024-08-01&to=2024-09-30", nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var stmt dto.StatementResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &stmt))
	s.Len(stmt.Rows, 3)
	s.True(stmt.Totals.TotalCharges.Equal(decimal.NewFromInt(2400)))
	s.True(stmt.Totals.TotalPayments.Equal(decimal.NewFromInt(1200)))
	s.True(stmt.Totals.FinalBalance.Equal(decimal.NewFromInt(1200)))
	s.Empty(stmt.Message)

	w = s.authed(http.MethodGet, "/api/v1/reports/tenants/10/ledger?from=2024-08-01&to=2024-09-30&format=csv", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Contains(w.Header().Get("Content-Type"), "text/csv")
	s.Contains(w.Header().Get("Content-Disposition"), "attachment")
	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	s.Require().Len(lines, 4)
	s.Equal("date,type,description,charge,payment,balance,source", strings.TrimSpace(lines[0]))
	s.True(strings.HasPrefix(lines[1], "2024-08-02,payment"), lines[1])
}

func (s *HandlersTestSuite) TestLedger_EmptyWindowHasMessage() {
	s.createJane()
	w := s.authed(http.MethodGet, "/api/v1/reports/tenants/10/ledger?from=2024-08-01&to=2024-08-03", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var stmt dto.StatementResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &stmt))
	s.Empty(stmt.Rows)
	s.Equal(dto.EmptyReportMessage, stmt.Message)
}

func (s *HandlersTestSuite) TestLedger_BadInput() {
	s.createJane()
	tests := []struct {
		name   string
		query  string
		status int
	}{
		{"missing window", "", http.StatusBadRequest},
		{"not a date", "?from=2024-13-01&to=2024-12-01", http.StatusBadRequest},
		{"reversed window", "?from=2024-09-01&to=2024-08-01", http.StatusBadRequest},
		{"unknown format", "?from=2024-08-01&to=2024-08-31&format=docx", http.StatusBadRequest},
	}
	for _, tc := range tests {
		s.Run(tc.name, func() {
			w := s.authed(http.MethodGet, "/api/v1/reports/tenants/10/ledger"+tc.query, nil)
			s.Equal(tc.status, w.Code, w.Body.String())
		})
	}

	w := s.authed(http.MethodGet, "/api/v1/reports/tenants/99/ledger?from=2024-08-01&to=2024-08-31", nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlersTestSuite) TestWebhookRejectsWrongKey() {
	w := s.do(http.MethodPost, "/hooks/bank/transactions", dto.BankImportRequest{}, map[string]string{"X-API-Key": "nope"})
	s.Equal(http.StatusUnauthorized, w.Code)
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

// MockReportingService stands in for the reporting service where the error path matters.
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) TenantLedger(ctx context.Context, tenantID string, window domain.Window, opts domain.LedgerOptions) (*domain.LedgerReport, error) {
	args := m.Called(ctx, tenantID, window, opts)
	report, _ := args.Get(0).(*domain.LedgerReport)
	return report, args.Error(1)
}

func (m *MockReportingService) DepositsReport(ctx context.Context, window domain.Window, propertyID string) (*domain.DepositsReport, error) {
	args := m.Called(ctx, window, propertyID)
	report, _ := args.Get(0).(*domain.DepositsReport)
	return report, args.Error(1)
}

func (m *MockReportingService) UtilityChargesReport(ctx context.Context, tenantID string, window domain.Window) (*domain.LedgerReport, error) {
	args := m.Called(ctx, tenantID, window)
	report, _ := args.Get(0).(*domain.LedgerReport)
	return report, args.Error(1)
}

func (m *MockReportingService) UnitFinancials(ctx context.Context, propertyID string, window domain.Window) (*domain.UnitFinancialsReport, error) {
	args := m.Called(ctx, propertyID, window)
	report, _ := args.Get(0).(*domain.UnitFinancialsReport)
	return report, args.Error(1)
}

func (m *MockReportingService) OverdueRent(ctx context.Context, asOf time.Time, propertyID string) (*domain.OverdueReport, error) {
	args := m.Called(ctx, asOf, propertyID)
	report, _ := args.Get(0).(*domain.OverdueReport)
	return report, args.Error(1)
}

func TestReportingErrorsMapToStatus(t *testing.T) {
	token, err := utils.GenerateJWT("clerk-1", testSecret, time.Hour, "test")
	require.NoError(t, err)

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid range", fmt.Errorf("wrap: %w", apperrors.ErrInvalidRange), http.StatusBadRequest},
		{"not found", fmt.Errorf("wrap: %w", apperrors.ErrNotFound), http.StatusNotFound},
		{"app error", apperrors.NewAppError(http.StatusServiceUnavailable, "store down", nil), http.StatusServiceUnavailable},
		{"unexpected", fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reporting := new(MockReportingService)
			reporting.On("UnitFinancials", mock.Anything, "P1", mock.Anything).Return(nil, tc.err).Once()
			r := newEngine(newConfig(t), &portssvc.ServiceContainer{Reporting: reporting})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/unit-financials?from=2024-01-01&to=2024-01-31&propertyID=P1", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)
			if tc.status == http.StatusInternalServerError {
				assert.NotContains(t, w.Body.String(), "boom", "server errors do not leak their cause")
			}
			reporting.AssertExpectations(t)
		})
	}
}

func TestOverdueDefaultsAsOfToToday(t *testing.T) {
	token, err := utils.GenerateJWT("clerk-1", testSecret, time.Hour, "test")
	require.NoError(t, err)
	today := domain.Day(time.Now())

	reporting := new(MockReportingService)
	reporting.On("OverdueRent", mock.Anything, mock.MatchedBy(func(asOf time.Time) bool {
		return asOf.Equal(today) || asOf.Equal(today.AddDate(0, 0, 1))
	}), "").Return(&domain.OverdueReport{AsOf: today, TotalOverdue: decimal.Zero}, nil).Once()
	r := newEngine(newConfig(t), &portssvc.ServiceContainer{Reporting: reporting})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/overdue", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.OverdueResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.EmptyReportMessage, resp.Message)
	reporting.AssertExpectations(t)
}
