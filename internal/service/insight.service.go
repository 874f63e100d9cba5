package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"fintrack/internal/cache"
	"fintrack/internal/calculator"
	"fintrack/internal/domain"
	"fintrack/internal/logger"
	"fintrack/internal/repository"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

// InsightService builds a numeric digest of the user's ledger and asks the
// gpt repository for a narrative. Results are cached per (user, type) so
// repeated reads inside the TTL skip the generation call entirely. Two
// concurrent misses for the same key can both generate and both write; the
// value is idempotent so the second write is just redundant work.
type InsightService interface {
	GetInsight(ctx context.Context, userID uuid.UUID, insightType domain.InsightType, now time.Time) (*domain.Insight, error)
	BuildFinancialSummary(entries []domain.LedgerEntry, now time.Time) domain.FinancialSummary
}

type insightServiceHandler struct {
	LedgerEntryRepository repository.LedgerEntryRepository
	GptRepository         repository.GptRepository
	InsightCache          *cache.InsightCache
}

func NewInsightService(
	ledgerEntryRepository repository.LedgerEntryRepository,
	gptRepository repository.GptRepository,
	insightCache *cache.InsightCache,
) InsightService {
	return insightServiceHandler{
		LedgerEntryRepository: ledgerEntryRepository,
		GptRepository:         gptRepository,
		InsightCache:          insightCache,
	}
}

func (h insightServiceHandler) GetInsight(ctx context.Context, userID uuid.UUID, insightType domain.InsightType, now time.Time) (*domain.Insight, error) {
	if cached, found := h.InsightCache.Get(userID, insightType); found {
		logger.FromContext(ctx).Infof("insight cache hit for %s/%s", userID, insightType)
		return cached, nil
	}

	entries, err := h.LedgerEntryRepository.List(repository.LedgerEntryListFilter{
		UserID: userID,
	})
	if err != nil {
		return nil, err
	}

	summary := h.BuildFinancialSummary(entries, now)

	narrative, err := h.GptRepository.GenerateInsight(ctx, insightType, summary)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s insight for %s: %w", insightType, userID, err)
	}

	insight := domain.Insight{
		Type:        insightType,
		UserID:      userID,
		Summary:     narrative,
		GeneratedAt: now,
	}
	h.InsightCache.Set(insight)

	return &insight, nil
}

func (h insightServiceHandler) BuildFinancialSummary(entries []domain.LedgerEntry, now time.Time) domain.FinancialSummary {
	averages := calculator.ComputeHistoricalAverages(entries)

	categoryTotals := map[string]decimal.Decimal{}
	monthlyExpenses := map[string]decimal.Decimal{}
	currentMonthExpenses := decimal.Zero
	currentMonthKey := now.UTC().Format("2006-01")
	for _, entry := range entries {
		if entry.Kind != domain.EntryKind_Expense {
			continue
		}
		category := entry.Category
		if category == "" {
			category = "uncategorized"
		}
		categoryTotals[category] = categoryTotals[category].Add(entry.Amount)

		monthKey := entry.MonthKey()
		monthlyExpenses[monthKey] = monthlyExpenses[monthKey].Add(entry.Amount)
		if monthKey == currentMonthKey {
			currentMonthExpenses = currentMonthExpenses.Add(entry.Amount)
		}
	}

	topCategory := ""
	topTotal := decimal.Zero
	for category, total := range categoryTotals {
		if topCategory == "" || total.GreaterThan(topTotal) {
			topCategory = category
			topTotal = total
		}
	}

	currentVsAvg := 0.0
	if averages.AvgMonthlyExpenses.IsPositive() {
		currentVsAvg = currentMonthExpenses.
			Sub(averages.AvgMonthlyExpenses).
			Div(averages.AvgMonthlyExpenses).
			Mul(decimal.NewFromInt(100)).
			InexactFloat64()
	}

	return domain.FinancialSummary{
		AvgMonthlyIncome:        averages.AvgMonthlyIncome,
		AvgMonthlyExpenses:      averages.AvgMonthlyExpenses,
		MonthsCovered:           averages.MonthsCovered,
		ExpenseVolatility:       expenseVolatility(monthlyExpenses),
		CategoryTotals:          categoryTotals,
		TopExpenseCategory:      topCategory,
		CurrentMonthVsAvgExpPct: currentVsAvg,
	}
}

// expenseVolatility is the annualized sample stdev of month-over-month
// percent changes in total expenses. Needs three populated months to say
// anything; below that it reports 0.
func expenseVolatility(monthlyExpenses map[string]decimal.Decimal) float64 {
	if len(monthlyExpenses) < 3 {
		return 0
	}

	months := make([]string, 0, len(monthlyExpenses))
	for month := range monthlyExpenses {
		months = append(months, month)
	}
	sort.Strings(months)

	changes := make([]float64, 0, len(months)-1)
	for i := 1; i < len(months); i++ {
		prev := monthlyExpenses[months[i-1]]
		if prev.IsZero() {
			continue
		}
		change := monthlyExpenses[months[i]].
			Sub(prev).
			Div(prev).
			Mul(decimal.NewFromInt(100)).
			InexactFloat64()
		changes = append(changes, change)
	}
	if len(changes) < 2 {
		return 0
	}

	stdev, err := stats.StandardDeviationSample(changes)
	if err != nil {
		return 0
	}

	return stdev * math.Sqrt(12)
}
