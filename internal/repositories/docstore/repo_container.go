package docstore

import (
	portsrepo "github.com/SscSPs/property_backoffice/internal/core/ports/repositories"
)

func NewRepositoryProvider(store Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TenantRepo:        newDocTenantRepository(store),
		LeaseRepo:         newDocLeaseRepository(store),
		BankRepo:          newDocBankTransactionRepository(store),
		ManualPaymentRepo: newDocManualPaymentRepository(store),
		DepositRepo:       newDocDepositRepository(store),
		UtilityRepo:       newDocUtilityChargeRepository(store),
	}
}
