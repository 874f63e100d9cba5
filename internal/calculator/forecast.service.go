package calculator

import (
	"fintrack/internal/domain"
	"fintrack/internal/util"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// below this many months of history the forecast is flagged as low
	// confidence, but still produced
	minMonthsOfHistory = 2

	maxPeriodMonths = 60

	minIncomeChangePercent = -100
	maxIncomeChangePercent = 1000

	minReturnAnnualPercent = -100
	maxReturnAnnualPercent = 100
)

var (
	oneHundred = decimal.NewFromInt(100)
	twelve     = decimal.NewFromInt(12)
)

// ComputeHistoricalAverages reduces ledger history into monthly income and
// expense averages. Entries are bucketed by UTC year+month; the divisor is
// the number of buckets that contain at least one entry, so months with no
// activity don't dilute the average with zeros.
func ComputeHistoricalAverages(entries []domain.LedgerEntry) domain.HistoricalAverages {
	if len(entries) == 0 {
		return domain.HistoricalAverages{
			AvgMonthlyIncome:   decimal.Zero,
			AvgMonthlyExpenses: decimal.Zero,
			MonthsCovered:      0,
		}
	}

	type monthBucket struct {
		income   decimal.Decimal
		expenses decimal.Decimal
	}

	buckets := map[string]*monthBucket{}
	for _, entry := range entries {
		key := entry.MonthKey()
		if _, ok := buckets[key]; !ok {
			buckets[key] = &monthBucket{
				income:   decimal.Zero,
				expenses: decimal.Zero,
			}
		}
		switch entry.Kind {
		case domain.EntryKind_Income:
			buckets[key].income = buckets[key].income.Add(entry.Amount)
		case domain.EntryKind_Expense:
			buckets[key].expenses = buckets[key].expenses.Add(entry.Amount)
		}
	}

	totalIncome := decimal.Zero
	totalExpenses := decimal.Zero
	for _, b := range buckets {
		totalIncome = totalIncome.Add(b.income)
		totalExpenses = totalExpenses.Add(b.expenses)
	}

	monthsCovered := decimal.NewFromInt(int64(len(buckets)))

	return domain.HistoricalAverages{
		AvgMonthlyIncome:   totalIncome.Div(monthsCovered),
		AvgMonthlyExpenses: totalExpenses.Div(monthsCovered),
		MonthsCovered:      len(buckets),
	}
}

// GenerateForecast runs the month-by-month balance simulation. It assumes
// params already passed ValidateForecastParameters and does not re-check
// them; an out-of-range periodMonths just degenerates to an empty
// projection list with finalBalance == currentBalance.
//
// now is the reference time for the simulation - callers pass the clock so
// results stay deterministic.
func GenerateForecast(
	entries []domain.LedgerEntry,
	currentBalance decimal.Decimal,
	params domain.ForecastParameters,
	currentPortfolioValue *decimal.Decimal,
	now time.Time,
) domain.ForecastResult {
	averages := ComputeHistoricalAverages(entries)

	incomeChange := decimal.Zero
	if params.ExpectedIncomeChangePercent != nil {
		incomeChange = *params.ExpectedIncomeChangePercent
	}
	adjustedIncome := averages.AvgMonthlyIncome.Mul(
		decimal.NewFromInt(1).Add(incomeChange.Div(oneHundred)),
	)

	var monthlyGrowth *decimal.Decimal
	var runningPortfolioValue decimal.Decimal
	if currentPortfolioValue != nil && params.ExpectedReturnAnnualPercent != nil {
		g := decimal.NewFromInt(1).Add(
			params.ExpectedReturnAnnualPercent.Div(oneHundred).Div(twelve),
		)
		monthlyGrowth = &g
		runningPortfolioValue = *currentPortfolioValue
	}

	projections := []domain.MonthlyProjection{}
	runningBalance := currentBalance

	for month := 1; month <= params.PeriodMonths; month++ {
		projectionDate := util.AddMonths(now, month)

		projectedExpenses := averages.AvgMonthlyExpenses
		for _, planned := range params.PlannedExpenses {
			plannedDate, err := planned.ParsedDate()
			if err != nil {
				continue
			}
			if util.SameYearMonth(plannedDate, projectionDate) {
				projectedExpenses = projectedExpenses.Add(planned.Amount)
			}
		}

		// income and expenses land as one combined delta per month
		runningBalance = runningBalance.Add(adjustedIncome.Sub(projectedExpenses))

		projection := domain.MonthlyProjection{
			Date:              projectionDate.Format(time.DateOnly),
			ProjectedIncome:   adjustedIncome,
			ProjectedExpenses: projectedExpenses,
			ProjectedBalance:  runningBalance,
		}

		if monthlyGrowth != nil {
			runningPortfolioValue = runningPortfolioValue.Mul(*monthlyGrowth)
			v := runningPortfolioValue
			projection.ProjectedPortfolioValue = &v
		}

		projections = append(projections, projection)
	}

	period := decimal.NewFromInt(int64(params.PeriodMonths))
	totalProjectedExpenses := averages.AvgMonthlyExpenses.Mul(period)
	// every planned expense counts once here, even if its month fell
	// outside the projection window
	for _, planned := range params.PlannedExpenses {
		totalProjectedExpenses = totalProjectedExpenses.Add(planned.Amount)
	}

	return domain.ForecastResult{
		Projections:            projections,
		AverageMonthlyIncome:   adjustedIncome,
		AverageMonthlyExpenses: averages.AvgMonthlyExpenses,
		TotalProjectedIncome:   adjustedIncome.Mul(period),
		TotalProjectedExpenses: totalProjectedExpenses,
		FinalBalance:           runningBalance,
		HasInsufficientData:    averages.MonthsCovered < minMonthsOfHistory,
	}
}

// ValidateForecastParameters checks every constraint and collects all
// violations in one pass, so the caller can show the user the complete
// list instead of the first failure.
func ValidateForecastParameters(params domain.ForecastParameters) domain.ValidationResult {
	errors := []string{}

	if params.PeriodMonths < 1 || params.PeriodMonths > maxPeriodMonths {
		errors = append(errors, fmt.Sprintf("periodMonths must be between 1 and %d, got %d", maxPeriodMonths, params.PeriodMonths))
	}

	if params.ExpectedIncomeChangePercent != nil {
		v := *params.ExpectedIncomeChangePercent
		if v.LessThan(decimal.NewFromInt(minIncomeChangePercent)) || v.GreaterThan(decimal.NewFromInt(maxIncomeChangePercent)) {
			errors = append(errors, fmt.Sprintf("expectedIncomeChangePercent must be between %d and %d, got %s", minIncomeChangePercent, maxIncomeChangePercent, v.String()))
		}
	}

	if params.ExpectedReturnAnnualPercent != nil {
		v := *params.ExpectedReturnAnnualPercent
		if v.LessThan(decimal.NewFromInt(minReturnAnnualPercent)) || v.GreaterThan(decimal.NewFromInt(maxReturnAnnualPercent)) {
			errors = append(errors, fmt.Sprintf("expectedReturnAnnualPercent must be between %d and %d, got %s", minReturnAnnualPercent, maxReturnAnnualPercent, v.String()))
		}
	}

	for i, planned := range params.PlannedExpenses {
		if planned.Name == "" {
			errors = append(errors, fmt.Sprintf("plannedExpenses[%d]: name must not be empty", i))
		}
		if !planned.Amount.IsPositive() {
			errors = append(errors, fmt.Sprintf("plannedExpenses[%d]: amount must be positive, got %s", i, planned.Amount.String()))
		}
		if _, err := planned.ParsedDate(); err != nil {
			errors = append(errors, fmt.Sprintf("plannedExpenses[%d]: date %q is not a valid YYYY-MM-DD date", i, planned.Date))
		}
	}

	return domain.ValidationResult{
		Valid:  len(errors) == 0,
		Errors: errors,
	}
}
