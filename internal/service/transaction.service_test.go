package service

import (
	"context"
	"testing"
	"time"

	"fintrack/internal/cache"
	"fintrack/internal/db/models/postgres/public/model"
	"fintrack/internal/domain"
	mock_repository "fintrack/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_transactionService_ImportCsv(t *testing.T) {
	userID := uuid.New()

	t.Run("parses and bulk inserts valid rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ledgerRepository := mock_repository.NewMockLedgerEntryRepository(ctrl)
		handler := NewTransactionService(ledgerRepository, cache.NewInsightCache(time.Minute))

		csv := `date,amount,kind,category,note
2025-05-01,3000,INCOME,salary,
2025-05-03,950.50,EXPENSE,rent,may rent
2025-05-07,42.10,EXPENSE,groceries,
`
		ledgerRepository.EXPECT().
			AddMany(gomock.Nil(), gomock.Any()).
			DoAndReturn(func(_ any, entries []model.LedgerEntry) error {
				require.Len(t, entries, 3)
				require.Equal(t, userID, entries[0].UserID)
				require.Equal(t, string(domain.EntryKind_Income), entries[0].Kind)
				require.Equal(t, "3000", entries[0].Amount.String())
				require.Nil(t, entries[0].Note)
				require.Equal(t, "950.5", entries[1].Amount.String())
				require.NotNil(t, entries[1].Note)
				require.Equal(t, "may rent", *entries[1].Note)
				require.Equal(t, time.Date(2025, 5, 7, 0, 0, 0, 0, time.UTC), entries[2].Date)
				return nil
			})

		count, err := handler.ImportCsv(context.Background(), userID, []byte(csv))
		require.NoError(t, err)
		require.Equal(t, 3, count)
	})

	t.Run("one bad row rejects the whole file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ledgerRepository := mock_repository.NewMockLedgerEntryRepository(ctrl)
		handler := NewTransactionService(ledgerRepository, cache.NewInsightCache(time.Minute))

		csv := `date,amount,kind,category,note
2025-05-01,3000,INCOME,salary,
05/03/2025,950.50,EXPENSE,rent,
`
		_, err := handler.ImportCsv(context.Background(), userID, []byte(csv))
		require.ErrorContains(t, err, "row 2")
		require.ErrorContains(t, err, "unparseable date")
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ledgerRepository := mock_repository.NewMockLedgerEntryRepository(ctrl)
		handler := NewTransactionService(ledgerRepository, cache.NewInsightCache(time.Minute))

		csv := `date,amount,kind,category,note
2025-05-01,-15,EXPENSE,misc,
`
		_, err := handler.ImportCsv(context.Background(), userID, []byte(csv))
		require.ErrorContains(t, err, "amount must be positive")
	})

	t.Run("rejects unknown entry kinds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ledgerRepository := mock_repository.NewMockLedgerEntryRepository(ctrl)
		handler := NewTransactionService(ledgerRepository, cache.NewInsightCache(time.Minute))

		csv := `date,amount,kind,category,note
2025-05-01,15,TRANSFER,misc,
`
		_, err := handler.ImportCsv(context.Background(), userID, []byte(csv))
		require.ErrorContains(t, err, "unknown ledger entry kind")
	})

	t.Run("empty file is an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ledgerRepository := mock_repository.NewMockLedgerEntryRepository(ctrl)
		handler := NewTransactionService(ledgerRepository, cache.NewInsightCache(time.Minute))

		_, err := handler.ImportCsv(context.Background(), userID, []byte("date,amount,kind,category,note\n"))
		require.ErrorContains(t, err, "no rows")
	})
}

func Test_transactionService_AddEntry_invalidatesInsights(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledgerRepository := mock_repository.NewMockLedgerEntryRepository(ctrl)
	insightCache := cache.NewInsightCache(time.Minute)
	handler := NewTransactionService(ledgerRepository, insightCache)

	userID := uuid.New()
	insightCache.Set(domain.Insight{
		Type:    domain.InsightType_Spending,
		UserID:  userID,
		Summary: "stale",
	})

	entry := model.LedgerEntry{UserID: userID, Kind: string(domain.EntryKind_Expense)}
	ledgerRepository.EXPECT().Add(gomock.Nil(), entry).Return(&entry, nil)

	_, err := handler.AddEntry(context.Background(), entry)
	require.NoError(t, err)

	_, found := insightCache.Get(userID, domain.InsightType_Spending)
	require.False(t, found)
}
