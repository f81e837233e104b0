// Package events announces ledger-affecting changes to other systems.
package events

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
)

// TopicPaymentRecorded is the default topic for PaymentRecorded events.
const TopicPaymentRecorded = "payment.recorded"

// Publisher delivers an event to a topic.
type Publisher interface {
	Publish(ctx context.Context, topic string, event any) error
}

// PaymentRecorded is emitted whenever money is booked against a tenant outside the bank feed.
type PaymentRecorded struct {
	PaymentID  string          `json:"payment_id"`
	TenantID   string          `json:"tenant_id"`
	Source     string          `json:"source"`
	Amount     decimal.Decimal `json:"amount"`
	Date       string          `json:"date"`
	RecordedBy string          `json:"recorded_by"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// LogPublisher writes events to the structured log. Used when no broker is configured.
type LogPublisher struct {
	Logger *slog.Logger
}

func (p LogPublisher) Publish(ctx context.Context, topic string, event any) error {
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.InfoContext(ctx, "Event published", slog.String("topic", topic), slog.Any("event", event))
	return nil
}

var _ Publisher = LogPublisher{}
