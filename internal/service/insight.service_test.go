package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"fintrack/internal/cache"
	"fintrack/internal/domain"
	"fintrack/internal/repository"
	mock_repository "fintrack/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func expenseEntry(userID uuid.UUID, date time.Time, amount float64, category string) domain.LedgerEntry {
	return domain.LedgerEntry{
		ID:       uuid.New(),
		UserID:   userID,
		Date:     date,
		Amount:   decimal.NewFromFloat(amount),
		Kind:     domain.EntryKind_Expense,
		Category: category,
	}
}

func incomeEntry(userID uuid.UUID, date time.Time, amount float64) domain.LedgerEntry {
	return domain.LedgerEntry{
		ID:     uuid.New(),
		UserID: userID,
		Date:   date,
		Amount: decimal.NewFromFloat(amount),
		Kind:   domain.EntryKind_Income,
	}
}

func Test_insightService_GetInsight(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	t.Run("generates, caches, then serves from cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ledgerRepository := mock_repository.NewMockLedgerEntryRepository(ctrl)
		gptRepository := mock_repository.NewMockGptRepository(ctrl)
		insightCache := cache.NewInsightCache(time.Minute)
		handler := NewInsightService(ledgerRepository, gptRepository, insightCache)

		ledgerRepository.EXPECT().
			List(repository.LedgerEntryListFilter{UserID: userID}).
			Return([]domain.LedgerEntry{
				incomeEntry(userID, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), 3000),
				expenseEntry(userID, time.Date(2025, 5, 3, 0, 0, 0, 0, time.UTC), 900, "rent"),
			}, nil).
			Times(1)
		gptRepository.EXPECT().
			GenerateInsight(gomock.Any(), domain.InsightType_Spending, gomock.Any()).
			Return("rent dominates your spending", nil).
			Times(1)

		first, err := handler.GetInsight(context.Background(), userID, domain.InsightType_Spending, now)
		require.NoError(t, err)
		require.Equal(t, "rent dominates your spending", first.Summary)
		require.Equal(t, now, first.GeneratedAt)

		// second call must not touch the collaborators again
		second, err := handler.GetInsight(context.Background(), userID, domain.InsightType_Spending, now)
		require.NoError(t, err)
		require.Equal(t, *first, *second)
	})

	t.Run("generation failure is not cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ledgerRepository := mock_repository.NewMockLedgerEntryRepository(ctrl)
		gptRepository := mock_repository.NewMockGptRepository(ctrl)
		insightCache := cache.NewInsightCache(time.Minute)
		handler := NewInsightService(ledgerRepository, gptRepository, insightCache)

		ledgerRepository.EXPECT().
			List(gomock.Any()).
			Return([]domain.LedgerEntry{}, nil).
			Times(2)
		gptRepository.EXPECT().
			GenerateInsight(gomock.Any(), domain.InsightType_Savings, gomock.Any()).
			Return("", errors.New("gpt unavailable")).
			Times(1)
		gptRepository.EXPECT().
			GenerateInsight(gomock.Any(), domain.InsightType_Savings, gomock.Any()).
			Return("spend less than you earn", nil).
			Times(1)

		_, err := handler.GetInsight(context.Background(), userID, domain.InsightType_Savings, now)
		require.Error(t, err)

		recovered, err := handler.GetInsight(context.Background(), userID, domain.InsightType_Savings, now)
		require.NoError(t, err)
		require.Equal(t, "spend less than you earn", recovered.Summary)
	})
}

func Test_insightService_BuildFinancialSummary(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()
	handler := insightServiceHandler{}

	t.Run("empty ledger yields zeroed summary", func(t *testing.T) {
		summary := handler.BuildFinancialSummary(nil, now)
		require.True(t, summary.AvgMonthlyIncome.IsZero())
		require.True(t, summary.AvgMonthlyExpenses.IsZero())
		require.Equal(t, 0, summary.MonthsCovered)
		require.Zero(t, summary.ExpenseVolatility)
		require.Empty(t, summary.CategoryTotals)
		require.Empty(t, summary.TopExpenseCategory)
	})

	t.Run("category totals and top category", func(t *testing.T) {
		entries := []domain.LedgerEntry{
			expenseEntry(userID, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), 1200, "rent"),
			expenseEntry(userID, time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC), 300, "groceries"),
			expenseEntry(userID, time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC), 250, "groceries"),
			expenseEntry(userID, time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC), 80, ""),
		}

		summary := handler.BuildFinancialSummary(entries, now)
		require.Equal(t, "rent", summary.TopExpenseCategory)
		require.Equal(t, "1200", summary.CategoryTotals["rent"].String())
		require.Equal(t, "550", summary.CategoryTotals["groceries"].String())
		require.Equal(t, "80", summary.CategoryTotals["uncategorized"].String())
	})

	t.Run("current month compared against the average", func(t *testing.T) {
		entries := []domain.LedgerEntry{
			expenseEntry(userID, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), 1000, "rent"),
			expenseEntry(userID, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), 1000, "rent"),
			expenseEntry(userID, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), 1000, "rent"),
			expenseEntry(userID, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), 500, "travel"),
		}

		summary := handler.BuildFinancialSummary(entries, now)
		// avg = 3500/3, current month = 1500, ~+28.57%
		require.InDelta(t, 28.57, summary.CurrentMonthVsAvgExpPct, 0.01)
	})

	t.Run("volatility requires three populated months", func(t *testing.T) {
		entries := []domain.LedgerEntry{
			expenseEntry(userID, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), 1000, "rent"),
			expenseEntry(userID, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), 1100, "rent"),
		}

		summary := handler.BuildFinancialSummary(entries, now)
		require.Zero(t, summary.ExpenseVolatility)
	})

	t.Run("volatility is zero for perfectly steady spending", func(t *testing.T) {
		entries := []domain.LedgerEntry{
			expenseEntry(userID, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), 1000, "rent"),
			expenseEntry(userID, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), 1000, "rent"),
			expenseEntry(userID, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), 1000, "rent"),
		}

		summary := handler.BuildFinancialSummary(entries, now)
		require.Zero(t, summary.ExpenseVolatility)
	})

	t.Run("volatility positive for swinging spending", func(t *testing.T) {
		entries := []domain.LedgerEntry{
			expenseEntry(userID, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), 1000, "rent"),
			expenseEntry(userID, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), 2000, "rent"),
			expenseEntry(userID, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), 500, "rent"),
			expenseEntry(userID, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), 1500, "rent"),
		}

		summary := handler.BuildFinancialSummary(entries, now)
		require.Greater(t, summary.ExpenseVolatility, 0.0)
	})
}
