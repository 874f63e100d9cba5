package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EntryKind string

const (
	EntryKind_Income  EntryKind = "INCOME"
	EntryKind_Expense EntryKind = "EXPENSE"
)

func NewEntryKind(s string) (*EntryKind, error) {
	switch EntryKind(s) {
	case EntryKind_Income:
		k := EntryKind_Income
		return &k, nil
	case EntryKind_Expense:
		k := EntryKind_Expense
		return &k, nil
	}
	return nil, fmt.Errorf("unknown ledger entry kind %q", s)
}

// LedgerEntry is a single recorded income or expense transaction.
// It's an immutable historical fact - the calculators only read it.
type LedgerEntry struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Date     time.Time
	Amount   decimal.Decimal
	Kind     EntryKind
	Category string
	Note     *string
}

// MonthKey truncates the entry date to UTC year+month granularity. Entries
// sharing a key land in the same averaging bucket.
func (e LedgerEntry) MonthKey() string {
	return e.Date.UTC().Format("2006-01")
}

type HistoricalAverages struct {
	AvgMonthlyIncome   decimal.Decimal `json:"avgMonthlyIncome"`
	AvgMonthlyExpenses decimal.Decimal `json:"avgMonthlyExpenses"`
	MonthsCovered      int             `json:"monthsCovered"`
}
