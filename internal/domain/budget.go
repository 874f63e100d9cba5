package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget is a per-category monthly spending limit.
type Budget struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Category string
	Limit    decimal.Decimal
	Currency Currency
}

// BudgetStatus is derived for the current month from ledger entries,
// normalized to the budget's currency.
type BudgetStatus struct {
	BudgetID  uuid.UUID       `json:"budgetID"`
	Category  string          `json:"category"`
	Limit     decimal.Decimal `json:"limit"`
	Spent     decimal.Decimal `json:"spent"`
	Remaining decimal.Decimal `json:"remaining"` // negative when over budget
	Currency  Currency        `json:"currency"`
}
