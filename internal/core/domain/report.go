package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerOptions tunes which payment sources a tenant ledger nets against rent.
type LedgerOptions struct {
	IncludeDeposits bool
}

// LedgerReport is a tenant statement plus the records that could not be used.
type LedgerReport struct {
	Statement  Statement   `json:"statement"`
	Rejections []Rejection `json:"rejections"`
}

// DepositEntry is one movement of a security deposit.
type DepositEntry struct {
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Kind        DepositKind     `json:"kind"`
	Description string          `json:"description"`
	Synthetic   bool            `json:"synthetic"` // Derived from a lease, no stored record
}

// TenantDeposits summarises deposit movements for one tenant.
type TenantDeposits struct {
	TenantID   string          `json:"tenantID"`
	TenantName string          `json:"tenantName"`
	PropertyID string          `json:"propertyID,omitempty"`
	Unit       string          `json:"unit,omitempty"`
	Entries    []DepositEntry  `json:"entries"`
	Received   decimal.Decimal `json:"received"`
	Returned   decimal.Decimal `json:"returned"` // Refunded plus applied to arrears
	Held       decimal.Decimal `json:"held"`
}

// DepositsReport covers all tenants with deposit activity in a window.
type DepositsReport struct {
	Window        Window           `json:"window"`
	Tenants       []TenantDeposits `json:"tenants"`
	TotalReceived decimal.Decimal  `json:"totalReceived"`
	TotalReturned decimal.Decimal  `json:"totalReturned"`
	TotalHeld     decimal.Decimal  `json:"totalHeld"`
}

// UnitFinancials is the rent position of one occupied unit.
type UnitFinancials struct {
	PropertyID    string          `json:"propertyID,omitempty"`
	Unit          string          `json:"unit,omitempty"`
	TenantID      string          `json:"tenantID"`
	TenantName    string          `json:"tenantName"`
	TotalCharges  decimal.Decimal `json:"totalCharges"`
	TotalPayments decimal.Decimal `json:"totalPayments"`
	Balance       decimal.Decimal `json:"balance"`
}

// UnitFinancialsReport rolls unit positions up for a property (or the whole portfolio).
type UnitFinancialsReport struct {
	PropertyID string           `json:"propertyID,omitempty"`
	Window     Window           `json:"window"`
	Units      []UnitFinancials `json:"units"`
	Totals     StatementTotals  `json:"totals"`
}

// OverdueItem is a tenant carrying a positive balance.
type OverdueItem struct {
	TenantID         string          `json:"tenantID"`
	TenantName       string          `json:"tenantName"`
	PropertyID       string          `json:"propertyID,omitempty"`
	Unit             string          `json:"unit,omitempty"`
	MonthlyRent      decimal.Decimal `json:"monthlyRent"`
	Balance          decimal.Decimal `json:"balance"`
	OldestUnpaidDate time.Time       `json:"oldestUnpaidDate"`
	DaysOverdue      int             `json:"daysOverdue"`
}

// OverdueReport lists tenants in arrears as of a day, most overdue first.
type OverdueReport struct {
	AsOf         time.Time       `json:"asOf"`
	PropertyID   string          `json:"propertyID,omitempty"`
	Items        []OverdueItem   `json:"items"`
	TotalOverdue decimal.Decimal `json:"totalOverdue"`
}

// ImportResult summarises a bank-import batch.
type ImportResult struct {
	Received   int         `json:"received"`
	Imported   int         `json:"imported"`
	Duplicates int         `json:"duplicates"`
	Rejections []Rejection `json:"rejections"`
}
