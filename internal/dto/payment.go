package dto

import (
	"github.com/SscSPs/property_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateManualPaymentRequest defines a staff-entered payment.
type CreateManualPaymentRequest struct {
	TenantID    string          `json:"tenantID" binding:"required"`
	Date        string          `json:"date" binding:"required,isodate"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Method      string          `json:"method" binding:"omitempty,oneof=cash cheque card transfer money_order other"`
}

// RecordDepositRequest defines a security-deposit movement.
type RecordDepositRequest struct {
	TenantID    string          `json:"tenantID" binding:"required"`
	LeaseID     string          `json:"leaseID"`
	Date        string          `json:"date" binding:"required,isodate"`
	Amount      decimal.Decimal `json:"amount"`
	Kind        string          `json:"kind" binding:"required,oneof=received refunded applied"`
	Description string          `json:"description"`
}

// CreateUtilityChargeRequest defines a utility bill passed through to a tenant.
type CreateUtilityChargeRequest struct {
	TenantID    string          `json:"tenantID" binding:"required"`
	Date        string          `json:"date" binding:"required,isodate"`
	Amount      decimal.Decimal `json:"amount"`
	UtilityType string          `json:"utilityType" binding:"required"`
	Description string          `json:"description"`
}

// BankImportRequest carries raw rows from the bank-import pipeline. Rows are
// untyped on purpose and validated one by one.
type BankImportRequest struct {
	Transactions []map[string]any `json:"transactions" binding:"required"`
}

// ManualPaymentResponse defines the data returned for a manual payment.
type ManualPaymentResponse struct {
	PaymentID   string          `json:"paymentID"`
	TenantID    string          `json:"tenantID"`
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Method      string          `json:"method,omitempty"`
	CreatedBy   string          `json:"createdBy"`
}

func ToManualPaymentResponse(p *domain.ManualPayment) ManualPaymentResponse {
	return ManualPaymentResponse{
		PaymentID:   p.PaymentID,
		TenantID:    p.TenantID,
		Date:        p.Date,
		Amount:      p.Amount,
		Description: p.Description,
		Method:      p.Method,
		CreatedBy:   p.CreatedBy,
	}
}

func ToManualPaymentResponses(payments []domain.ManualPayment) []ManualPaymentResponse {
	out := make([]ManualPaymentResponse, len(payments))
	for i := range payments {
		out[i] = ToManualPaymentResponse(&payments[i])
	}
	return out
}

// DepositResponse defines the data returned for a deposit movement.
type DepositResponse struct {
	DepositID   string          `json:"depositID"`
	TenantID    string          `json:"tenantID"`
	LeaseID     string          `json:"leaseID,omitempty"`
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Kind        string          `json:"kind"`
	Description string          `json:"description,omitempty"`
}

func ToDepositResponse(d *domain.Deposit) DepositResponse {
	return DepositResponse{
		DepositID:   d.DepositID,
		TenantID:    d.TenantID,
		LeaseID:     d.LeaseID,
		Date:        d.Date,
		Amount:      d.Amount,
		Kind:        string(d.Kind),
		Description: d.Description,
	}
}

func ToDepositResponses(deposits []domain.Deposit) []DepositResponse {
	out := make([]DepositResponse, len(deposits))
	for i := range deposits {
		out[i] = ToDepositResponse(&deposits[i])
	}
	return out
}

// UtilityChargeResponse defines the data returned for a utility bill.
type UtilityChargeResponse struct {
	ChargeID    string          `json:"chargeID"`
	TenantID    string          `json:"tenantID"`
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	UtilityType string          `json:"utilityType"`
	Description string          `json:"description,omitempty"`
}

func ToUtilityChargeResponse(c *domain.UtilityCharge) UtilityChargeResponse {
	return UtilityChargeResponse{
		ChargeID:    c.ChargeID,
		TenantID:    c.TenantID,
		Date:        c.Date,
		Amount:      c.Amount,
		UtilityType: c.UtilityType,
		Description: c.Description,
	}
}

func ToUtilityChargeResponses(charges []domain.UtilityCharge) []UtilityChargeResponse {
	out := make([]UtilityChargeResponse, len(charges))
	for i := range charges {
		out[i] = ToUtilityChargeResponse(&charges[i])
	}
	return out
}

// BankTransactionResponse defines the data returned for an imported bank row.
type BankTransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	Date          string          `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description,omitempty"`
	TenantID      string          `json:"tenantID,omitempty"`
	PropertyID    string          `json:"propertyID,omitempty"`
	Unit          string          `json:"unit,omitempty"`
}

func ToBankTransactionResponses(txns []domain.BankTransaction) []BankTransactionResponse {
	out := make([]BankTransactionResponse, len(txns))
	for i, t := range txns {
		out[i] = BankTransactionResponse{
			TransactionID: t.TransactionID,
			Date:          t.Date,
			Amount:        t.Amount,
			Description:   t.Description,
			TenantID:      t.TenantID,
			PropertyID:    t.PropertyID,
			Unit:          t.Unit,
		}
	}
	return out
}
