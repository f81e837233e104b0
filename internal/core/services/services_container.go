package services

import (
	portsrepo "github.com/SscSPs/property_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/property_backoffice/internal/core/ports/services"
	"github.com/SscSPs/property_backoffice/internal/events"
	"github.com/SscSPs/property_backoffice/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, publisher events.Publisher) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Tenant = NewTenantService(repos.TenantRepo)
	container.Lease = NewLeaseService(repos.LeaseRepo, repos.TenantRepo)
	container.Payment = NewPaymentService(
		repos.ManualPaymentRepo,
		repos.DepositRepo,
		repos.TenantRepo,
		WithPaymentPublisher(publisher, cfg.KafkaPaymentsTopic),
	)
	container.Bank = NewBankService(repos.BankRepo)
	container.Utility = NewUtilityService(repos.UtilityRepo, repos.TenantRepo)
	container.Reporting = NewReportingService(repos, WithOverdueLookback(cfg.OverdueLookbackMonths))

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.TenantSvcFacade  = (*tenantService)(nil)
	_ portssvc.PaymentSvcFacade = (*paymentService)(nil)
	_ portssvc.ReportingSvc     = (*reportingService)(nil)
)
