package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type InsightType string

const (
	InsightType_Spending InsightType = "SPENDING"
	InsightType_Savings  InsightType = "SAVINGS"
	InsightType_Cashflow InsightType = "CASHFLOW"
)

func NewInsightType(s string) (*InsightType, error) {
	switch InsightType(s) {
	case InsightType_Spending, InsightType_Savings, InsightType_Cashflow:
		t := InsightType(s)
		return &t, nil
	}
	return nil, fmt.Errorf("unknown insight type %q", s)
}

type Insight struct {
	Type        InsightType `json:"type"`
	UserID      uuid.UUID   `json:"userID"`
	Summary     string      `json:"summary"`
	GeneratedAt time.Time   `json:"generatedAt"`
}

// FinancialSummary is the numeric digest handed to the insight generator.
// All figures are normalized to the user's base currency before it's built.
type FinancialSummary struct {
	AvgMonthlyIncome        decimal.Decimal            `json:"avgMonthlyIncome"`
	AvgMonthlyExpenses      decimal.Decimal            `json:"avgMonthlyExpenses"`
	MonthsCovered           int                        `json:"monthsCovered"`
	ExpenseVolatility       float64                    `json:"expenseVolatility"`
	CategoryTotals          map[string]decimal.Decimal `json:"categoryTotals"`
	TopExpenseCategory      string                     `json:"topExpenseCategory"`
	CurrentMonthVsAvgExpPct float64                    `json:"currentMonthVsAvgExpensesPercent"`
}
