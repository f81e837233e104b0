package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType says which side of the balance a statement row moves.
type EntryType string

const (
	EntryCharge  EntryType = "charge"
	EntryPayment EntryType = "payment"
)

// ChargeEvent is a synthetic obligation for one billing cycle. Never persisted.
type ChargeEvent struct {
	Date        time.Time
	Amount      decimal.Decimal
	Description string
	Source      Source
}

// PaymentEvent is money received from any source, always netted against charges.
type PaymentEvent struct {
	Date        time.Time
	Amount      decimal.Decimal
	Description string
	Source      Source
	RecordID    string
}

// StatementRow is one line of an assembled statement.
// Exactly one of Charge and Payment is non-zero.
type StatementRow struct {
	Date           time.Time       `json:"date"`
	EntryType      EntryType       `json:"entryType"`
	Description    string          `json:"description"`
	Charge         decimal.Decimal `json:"charge"`
	Payment        decimal.Decimal `json:"payment"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
	Source         Source          `json:"source"`
}

// StatementTotals folds a statement. FinalBalance == TotalCharges - TotalPayments.
type StatementTotals struct {
	TotalCharges  decimal.Decimal `json:"totalCharges"`
	TotalPayments decimal.Decimal `json:"totalPayments"`
	FinalBalance  decimal.Decimal `json:"finalBalance"`
}

// Statement is the ledger for one tenant over one window.
type Statement struct {
	TenantID   string          `json:"tenantID"`
	TenantName string          `json:"tenantName"`
	Window     Window          `json:"window"`
	Rows       []StatementRow  `json:"rows"`
	Totals     StatementTotals `json:"totals"`
}
