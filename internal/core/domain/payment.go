package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Source tags where a ledger event originated.
type Source string

const (
	SourceRent    Source = "rent"
	SourceUtility Source = "utility"
	SourceBank    Source = "bank"
	SourceManual  Source = "manual"
	SourceDeposit Source = "deposit"
)

// BankTransaction is one row from the bank-import pipeline.
// TenantID is optional; rows without it are matched by unit or description.
type BankTransaction struct {
	TransactionID string          `json:"transactionID"`
	Date          string          `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	TenantID      string          `json:"tenantID,omitempty"`
	PropertyID    string          `json:"propertyID,omitempty"`
	Unit          string          `json:"unit,omitempty"`
	ImportedAt    time.Time       `json:"importedAt"`
}

// DefaultManualPaymentDescription labels manual payments entered without a note.
const DefaultManualPaymentDescription = "Manual payment"

// ManualPayment is a payment keyed in by staff (cash, cheque, money order).
type ManualPayment struct {
	PaymentID   string          `json:"paymentID"`
	TenantID    string          `json:"tenantID"`
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	Method      string          `json:"method,omitempty"`
	AuditFields
}

// DepositKind distinguishes money coming in from money going back out.
type DepositKind string

const (
	DepositReceived DepositKind = "received"
	DepositRefunded DepositKind = "refunded"
	DepositApplied  DepositKind = "applied"
)

// Deposit is a stored security-deposit transaction.
type Deposit struct {
	DepositID   string          `json:"depositID"`
	TenantID    string          `json:"tenantID"`
	LeaseID     string          `json:"leaseID,omitempty"`
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Kind        DepositKind     `json:"kind"`
	Description string          `json:"description,omitempty"`
	AuditFields
}

// UtilityCharge is a metered or flat utility bill passed through to a tenant.
type UtilityCharge struct {
	ChargeID    string          `json:"chargeID"`
	TenantID    string          `json:"tenantID"`
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	UtilityType string          `json:"utilityType"`
	Description string          `json:"description,omitempty"`
	AuditFields
}
