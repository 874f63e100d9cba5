package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlannedExpense is a user-supplied one-shot future expense. It lands in
// exactly the projection month matching its date's year+month. Date stays
// in wire format (YYYY-MM-DD) so the validator can report malformed input
// alongside the other violations.
type PlannedExpense struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date"`
}

func (p PlannedExpense) ParsedDate() (time.Time, error) {
	return time.Parse(time.DateOnly, p.Date)
}

type ForecastParameters struct {
	PeriodMonths                int              `json:"periodMonths"`
	ExpectedIncomeChangePercent *decimal.Decimal `json:"expectedIncomeChangePercent,omitempty"`
	ExpectedReturnAnnualPercent *decimal.Decimal `json:"expectedReturnAnnualPercent,omitempty"`
	PlannedExpenses             []PlannedExpense `json:"plannedExpenses,omitempty"`
}

// MonthlyProjection is one simulated month. Later rows depend on earlier
// ones - the running balance carries forward.
type MonthlyProjection struct {
	Date                    string           `json:"date"` // YYYY-MM-DD, first simulated day of month
	ProjectedIncome         decimal.Decimal  `json:"projectedIncome"`
	ProjectedExpenses       decimal.Decimal  `json:"projectedExpenses"`
	ProjectedBalance        decimal.Decimal  `json:"projectedBalance"`
	ProjectedPortfolioValue *decimal.Decimal `json:"projectedPortfolioValue,omitempty"`
}

type ForecastResult struct {
	Projections            []MonthlyProjection `json:"projections"`
	AverageMonthlyIncome   decimal.Decimal     `json:"averageMonthlyIncome"`
	AverageMonthlyExpenses decimal.Decimal     `json:"averageMonthlyExpenses"`
	TotalProjectedIncome   decimal.Decimal     `json:"totalProjectedIncome"`
	TotalProjectedExpenses decimal.Decimal     `json:"totalProjectedExpenses"`
	FinalBalance           decimal.Decimal     `json:"finalBalance"`
	HasInsufficientData    bool                `json:"hasInsufficientData"`
}

// ValidationResult collects every violated constraint in one pass, not just
// the first, so callers can present the complete list.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}
