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
	"github.com/SscSPs/property_backoffice/internal/events"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// paymentService implements the PaymentSvcFacade interface
type paymentService struct {
	BaseService
	manualRepo  portsrepo.ManualPaymentRepositoryFacade
	depositRepo portsrepo.DepositRepositoryFacade
	tenantRepo  portsrepo.TenantReader
	publisher   events.Publisher
	topic       string
}

// PaymentServiceOption is a functional option for configuring the payment service
type PaymentServiceOption func(*paymentService)

// WithPaymentPublisher announces recorded payments on topic.
func WithPaymentPublisher(publisher events.Publisher, topic string) PaymentServiceOption {
	return func(s *paymentService) {
		s.publisher = publisher
		if topic != "" {
			s.topic = topic
		}
	}
}

// NewPaymentService creates a new payment service with the provided options
func NewPaymentService(
	manualRepo portsrepo.ManualPaymentRepositoryFacade,
	depositRepo portsrepo.DepositRepositoryFacade,
	tenantRepo portsrepo.TenantReader,
	options ...PaymentServiceOption,
) portssvc.PaymentSvcFacade {
	svc := &paymentService{
		manualRepo:  manualRepo,
		depositRepo: depositRepo,
		tenantRepo:  tenantRepo,
		topic:       events.TopicPaymentRecorded,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// requireTenant resolves the tenant a record is booked against. An unknown tenant is
// a validation failure of the request, not a missing resource.
func (s *paymentService) requireTenant(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	tenant, err := s.tenantRepo.FindTenantByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown tenant %s", apperrors.ErrValidation, tenantID)
		}
		return nil, fmt.Errorf("failed to look up tenant: %w", err)
	}
	return tenant, nil
}

func validatePayment(date string, amount decimal.Decimal) (string, error) {
	day, err := domain.ParseDay(date)
	if err != nil {
		return "", fmt.Errorf("%w: date: %v", apperrors.ErrValidation, err)
	}
	if !amount.IsPositive() {
		return "", fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	return domain.FormatDay(day), nil
}

func (s *paymentService) RecordManualPayment(ctx context.Context, req dto.CreateManualPaymentRequest, creatorUserID string) (*domain.ManualPayment, error) {
	date, err := validatePayment(req.Date, req.Amount)
	if err != nil {
		return nil, err
	}
	tenant, err := s.requireTenant(ctx, req.TenantID)
	if err != nil {
		return nil, err
	}

	payment := domain.ManualPayment{
		PaymentID:   uuid.NewString(),
		TenantID:    tenant.CanonicalID(),
		Date:        date,
		Amount:      req.Amount,
		Description: strings.TrimSpace(req.Description),
		Method:      req.Method,
	}
	now := s.Now()
	payment.Touch(creatorUserID, now)

	if err := s.manualRepo.SaveManualPayment(ctx, payment); err != nil {
		s.LogError(ctx, err, "Failed to save manual payment", slog.String("tenant_id", payment.TenantID))
		return nil, fmt.Errorf("failed to record manual payment: %w", err)
	}
	s.LogInfo(ctx, "Manual payment recorded",
		slog.String("payment_id", payment.PaymentID),
		slog.String("tenant_id", payment.TenantID),
		slog.String("amount", payment.Amount.String()))

	s.announce(ctx, events.PaymentRecorded{
		PaymentID:  payment.PaymentID,
		TenantID:   payment.TenantID,
		Source:     string(domain.SourceManual),
		Amount:     payment.Amount,
		Date:       payment.Date,
		RecordedBy: creatorUserID,
		OccurredAt: now,
	})
	return &payment, nil
}

// announce publishes an event. The payment is already stored, so a failed publish is
// logged rather than returned.
func (s *paymentService) announce(ctx context.Context, event events.PaymentRecorded) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, s.topic, event); err != nil {
		s.LogError(ctx, err, "Failed to publish payment event",
			slog.String("topic", s.topic),
			slog.String("payment_id", event.PaymentID))
	}
}

func (s *paymentService) ListManualPayments(ctx context.Context, tenantID string) ([]domain.ManualPayment, error) {
	var (
		payments []domain.ManualPayment
		err      error
	)
	if tenantID == "" {
		payments, err = s.manualRepo.ListManualPayments(ctx)
	} else {
		payments, err = s.manualRepo.ListManualPaymentsByTenant(ctx, tenantID)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to list manual payments", slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("failed to list manual payments: %w", err)
	}
	sort.SliceStable(payments, func(i, j int) bool {
		return payments[i].Date < payments[j].Date
	})
	return payments, nil
}

func (s *paymentService) DeleteManualPayment(ctx context.Context, paymentID string) error {
	if err := s.manualRepo.DeleteManualPayment(ctx, paymentID); err != nil {
		return fmt.Errorf("failed to delete manual payment %s: %w", paymentID, err)
	}
	s.LogInfo(ctx, "Manual payment deleted", slog.String("payment_id", paymentID))
	return nil
}

func (s *paymentService) RecordDeposit(ctx context.Context, req dto.RecordDepositRequest, creatorUserID string) (*domain.Deposit, error) {
	date, err := validatePayment(req.Date, req.Amount)
	if err != nil {
		return nil, err
	}
	kind := domain.DepositKind(req.Kind)
	switch kind {
	case domain.DepositReceived, domain.DepositRefunded, domain.DepositApplied:
	default:
		return nil, fmt.Errorf("%w: unknown deposit kind %q", apperrors.ErrValidation, req.Kind)
	}
	tenant, err := s.requireTenant(ctx, req.TenantID)
	if err != nil {
		return nil, err
	}

	deposit := domain.Deposit{
		DepositID:   uuid.NewString(),
		TenantID:    tenant.CanonicalID(),
		LeaseID:     req.LeaseID,
		Date:        date,
		Amount:      req.Amount,
		Kind:        kind,
		Description: strings.TrimSpace(req.Description),
	}
	now := s.Now()
	deposit.Touch(creatorUserID, now)

	if err := s.depositRepo.SaveDeposit(ctx, deposit); err != nil {
		s.LogError(ctx, err, "Failed to save deposit", slog.String("tenant_id", deposit.TenantID))
		return nil, fmt.Errorf("failed to record deposit: %w", err)
	}
	s.LogInfo(ctx, "Deposit recorded",
		slog.String("deposit_id", deposit.DepositID),
		slog.String("tenant_id", deposit.TenantID),
		slog.String("kind", string(kind)))

	if kind == domain.DepositReceived {
		s.announce(ctx, events.PaymentRecorded{
			PaymentID:  deposit.DepositID,
			TenantID:   deposit.TenantID,
			Source:     string(domain.SourceDeposit),
			Amount:     deposit.Amount,
			Date:       deposit.Date,
			RecordedBy: creatorUserID,
			OccurredAt: now,
		})
	}
	return &deposit, nil
}

func (s *paymentService) ListDeposits(ctx context.Context, tenantID string) ([]domain.Deposit, error) {
	var (
		deposits []domain.Deposit
		err      error
	)
	if tenantID == "" {
		deposits, err = s.depositRepo.ListDeposits(ctx)
	} else {
		deposits, err = s.depositRepo.ListDepositsByTenant(ctx, tenantID)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to list deposits", slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("failed to list deposits: %w", err)
	}
	sort.SliceStable(deposits, func(i, j int) bool {
		return deposits[i].Date < deposits[j].Date
	})
	return deposits, nil
}
