package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/SscSPs/property_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/property_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/property_backoffice/internal/core/ports/services"
	"github.com/SscSPs/property_backoffice/internal/platform/metrics"
	"github.com/google/uuid"
)

// bankService implements the BankSvcFacade interface
type bankService struct {
	BaseService
	bankRepo portsrepo.BankTransactionRepositoryFacade
}

// NewBankService creates a new bank-import service
func NewBankService(repo portsrepo.BankTransactionRepositoryFacade) portssvc.BankSvcFacade {
	return &bankService{bankRepo: repo}
}

var _ portssvc.BankSvcFacade = (*bankService)(nil)

// bankFingerprint is the content of a row the bank sent without an id.
func bankFingerprint(txn domain.BankTransaction) string {
	return strings.Join([]string{
		txn.Date,
		txn.Amount.StringFixed(2),
		strings.ToLower(txn.Description),
		txn.TenantID,
		strings.ToLower(txn.PropertyID),
		strings.ToLower(txn.Unit),
	}, "|")
}

// bankTransactionID derives a stable id from the fingerprint and the row's
// occurrence among identical rows in its batch (1 for the first). A replayed
// batch maps to the same ids, while repeated payments inside one batch stay distinct.
func bankTransactionID(fingerprint string, occurrence int) string {
	name := fmt.Sprintf("bank-transaction:%s#%d", fingerprint, occurrence)
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String()
}

func (s *bankService) ImportTransactions(ctx context.Context, rows []map[string]any) (*domain.ImportResult, error) {
	result := &domain.ImportResult{Received: len(rows), Rejections: []domain.Rejection{}}
	now := s.Now()

	accepted := make([]domain.BankTransaction, 0, len(rows))
	seen := make(map[string]int)
	for _, raw := range rows {
		parsed := domain.ParseBankRow(raw)
		if !parsed.OK() {
			result.Rejections = append(result.Rejections, *parsed.Rejection)
			continue
		}
		txn := parsed.Value
		if txn.TransactionID == "" {
			fingerprint := bankFingerprint(txn)
			seen[fingerprint]++
			txn.TransactionID = bankTransactionID(fingerprint, seen[fingerprint])
		}
		txn.ImportedAt = now
		accepted = append(accepted, txn)
	}

	if len(accepted) > 0 {
		added, duplicates, err := s.bankRepo.SaveBankTransactions(ctx, accepted)
		if err != nil {
			s.LogError(ctx, err, "Failed to store bank transactions", slog.Int("rows", len(accepted)))
			return nil, fmt.Errorf("failed to import bank transactions: %w", err)
		}
		result.Imported = added
		result.Duplicates = duplicates
	}

	recordRejections(result.Rejections)
	s.LogInfo(ctx, "Bank transactions imported",
		slog.Int("received", result.Received),
		slog.Int("imported", result.Imported),
		slog.Int("duplicates", result.Duplicates),
		slog.Int("rejected", len(result.Rejections)))
	return result, nil
}

func (s *bankService) ListTransactions(ctx context.Context, window domain.Window) ([]domain.BankTransaction, error) {
	rows, err := s.bankRepo.ListBankTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list bank transactions")
		return nil, fmt.Errorf("failed to list bank transactions: %w", err)
	}
	inWindow := make([]domain.BankTransaction, 0, len(rows))
	for _, r := range rows {
		day, err := domain.ParseDay(r.Date)
		if err != nil || !window.Contains(day) {
			continue
		}
		inWindow = append(inWindow, r)
	}
	sort.SliceStable(inWindow, func(i, j int) bool {
		return inWindow[i].Date < inWindow[j].Date
	})
	return inWindow, nil
}

// recordRejections counts rejections per source and reason.
func recordRejections(rejections []domain.Rejection) {
	type key struct{ source, reason string }
	counts := make(map[key]int)
	for _, r := range rejections {
		counts[key{string(r.Source), string(r.Reason)}]++
	}
	for k, n := range counts {
		metrics.AddRejected(k.source, k.reason, n)
	}
}
