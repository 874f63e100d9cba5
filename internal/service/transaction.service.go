package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"fintrack/internal/cache"
	"fintrack/internal/db/models/postgres/public/model"
	"fintrack/internal/domain"
	"fintrack/internal/logger"
	"fintrack/internal/repository"
	"fintrack/internal/util"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionService wraps ledger entry writes so every mutation also
// drops the user's cached insights, which are all derived from the ledger.
type TransactionService interface {
	AddEntry(ctx context.Context, entry model.LedgerEntry) (*model.LedgerEntry, error)
	ListEntries(ctx context.Context, filter repository.LedgerEntryListFilter) ([]domain.LedgerEntry, error)
	DeleteEntry(ctx context.Context, userID, ledgerEntryID uuid.UUID) error
	// ImportCsv bulk-loads entries from csv bytes with a
	// date,amount,kind,category,note header. The whole file is validated
	// before anything is written; one bad row rejects the import.
	ImportCsv(ctx context.Context, userID uuid.UUID, csvBytes []byte) (int, error)
}

type transactionServiceHandler struct {
	LedgerEntryRepository repository.LedgerEntryRepository
	InsightCache          *cache.InsightCache
}

func NewTransactionService(
	ledgerEntryRepository repository.LedgerEntryRepository,
	insightCache *cache.InsightCache,
) TransactionService {
	return transactionServiceHandler{
		LedgerEntryRepository: ledgerEntryRepository,
		InsightCache:          insightCache,
	}
}

func (h transactionServiceHandler) AddEntry(ctx context.Context, entry model.LedgerEntry) (*model.LedgerEntry, error) {
	out, err := h.LedgerEntryRepository.Add(nil, entry)
	if err != nil {
		return nil, err
	}
	h.InsightCache.Invalidate(entry.UserID)
	return out, nil
}

func (h transactionServiceHandler) ListEntries(ctx context.Context, filter repository.LedgerEntryListFilter) ([]domain.LedgerEntry, error) {
	return h.LedgerEntryRepository.List(filter)
}

func (h transactionServiceHandler) DeleteEntry(ctx context.Context, userID, ledgerEntryID uuid.UUID) error {
	err := h.LedgerEntryRepository.Delete(nil, userID, ledgerEntryID)
	if err != nil {
		return err
	}
	h.InsightCache.Invalidate(userID)
	return nil
}

type csvLedgerRow struct {
	Date     string `csv:"date"`
	Amount   string `csv:"amount"`
	Kind     string `csv:"kind"`
	Category string `csv:"category"`
	Note     string `csv:"note"`
}

func (h transactionServiceHandler) ImportCsv(ctx context.Context, userID uuid.UUID, csvBytes []byte) (int, error) {
	rows := []csvLedgerRow{}
	err := gocsv.Unmarshal(bytes.NewReader(csvBytes), &rows)
	if err != nil {
		return 0, fmt.Errorf("failed to parse csv: %w", err)
	}
	if len(rows) == 0 {
		return 0, fmt.Errorf("csv contains no rows")
	}

	entries := make([]model.LedgerEntry, 0, len(rows))
	for i, row := range rows {
		entry, err := ledgerEntryFromCsvRow(userID, row)
		if err != nil {
			return 0, fmt.Errorf("row %d: %w", i+1, err)
		}
		entries = append(entries, *entry)
	}

	err = h.LedgerEntryRepository.AddMany(nil, entries)
	if err != nil {
		return 0, err
	}
	h.InsightCache.Invalidate(userID)
	logger.FromContext(ctx).Infof("imported %d ledger entries for %s", len(entries), userID)

	return len(entries), nil
}

func ledgerEntryFromCsvRow(userID uuid.UUID, row csvLedgerRow) (*model.LedgerEntry, error) {
	date, err := time.Parse(time.DateOnly, row.Date)
	if err != nil {
		return nil, fmt.Errorf("unparseable date %q", row.Date)
	}
	amount, err := decimal.NewFromString(row.Amount)
	if err != nil {
		return nil, fmt.Errorf("unparseable amount %q", row.Amount)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive, got %s", amount)
	}
	kind, err := domain.NewEntryKind(row.Kind)
	if err != nil {
		return nil, err
	}

	entry := model.LedgerEntry{
		UserID:   userID,
		Date:     date.UTC(),
		Amount:   amount,
		Kind:     string(*kind),
		Category: row.Category,
	}
	if row.Note != "" {
		entry.Note = util.StringPointer(row.Note)
	}

	return &entry, nil
}
