package service

import (
	"context"
	"testing"
	"time"

	"fintrack/internal/domain"
	mock_repository "fintrack/internal/repository/mocks"
	mock_service "fintrack/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_portfolioService_GetSummary(t *testing.T) {
	userID := uuid.New()

	t.Run("mixed securities and cash, normalized to base", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		assetRepository := mock_repository.NewMockPortfolioAssetRepository(ctrl)
		alpacaRepository := mock_repository.NewMockAlpacaRepository(ctrl)
		currencyService := mock_service.NewMockCurrencyService(ctrl)
		handler := NewPortfolioService(assetRepository, alpacaRepository, currencyService)

		securityID := uuid.New()
		cashID := uuid.New()
		assetRepository.EXPECT().
			List(userID).
			Return([]domain.PortfolioAsset{
				{
					ID:       securityID,
					UserID:   userID,
					Kind:     domain.AssetKind_Security,
					Symbol:   "VTI",
					Quantity: decimal.NewFromInt(10),
					Currency: domain.Currency_USD,
				},
				{
					ID:       cashID,
					UserID:   userID,
					Kind:     domain.AssetKind_Cash,
					Symbol:   "EUR",
					Quantity: decimal.NewFromInt(500),
					Currency: domain.Currency_EUR,
				},
			}, nil)
		pricedAt := time.Date(2025, 6, 13, 20, 0, 0, 0, time.UTC)
		alpacaRepository.EXPECT().
			GetLatestPricesWithTs([]string{"VTI"}).
			Return(map[string]domain.AssetPrice{
				"VTI": {Symbol: "VTI", Price: decimal.NewFromInt(250), Date: pricedAt},
			}, nil)
		currencyService.EXPECT().
			Convert(gomock.Any(), decimal.NewFromInt(2500), domain.Currency_USD, domain.Currency_USD, gomock.Nil()).
			Return(decimal.NewFromInt(2500), nil)
		currencyService.EXPECT().
			Convert(gomock.Any(), decimal.NewFromInt(500), domain.Currency_EUR, domain.Currency_USD, gomock.Nil()).
			Return(decimal.NewFromInt(540), nil)

		summary, err := handler.GetSummary(context.Background(), userID, domain.Currency_USD)
		require.NoError(t, err)
		require.Equal(t, domain.Currency_USD, summary.BaseCurrency)
		require.Len(t, summary.Assets, 2)
		require.Equal(t, "3040", summary.TotalValue.String())

		security := summary.Assets[0]
		require.Equal(t, securityID, security.AssetID)
		require.Equal(t, "250", security.UnitPrice.String())
		require.Equal(t, "2500", security.Value.String())
		require.NotNil(t, security.PricedAt)
		require.Equal(t, pricedAt, *security.PricedAt)

		cash := summary.Assets[1]
		require.Equal(t, cashID, cash.AssetID)
		require.Equal(t, "1", cash.UnitPrice.String())
		require.Equal(t, "500", cash.Value.String())
		require.Equal(t, "540", cash.ValueBase.String())
		require.Nil(t, cash.PricedAt)
	})

	t.Run("empty portfolio skips the price fetch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		assetRepository := mock_repository.NewMockPortfolioAssetRepository(ctrl)
		alpacaRepository := mock_repository.NewMockAlpacaRepository(ctrl)
		currencyService := mock_service.NewMockCurrencyService(ctrl)
		handler := NewPortfolioService(assetRepository, alpacaRepository, currencyService)

		assetRepository.EXPECT().List(userID).Return([]domain.PortfolioAsset{}, nil)

		summary, err := handler.GetSummary(context.Background(), userID, domain.Currency_EUR)
		require.NoError(t, err)
		require.Empty(t, summary.Assets)
		require.True(t, summary.TotalValue.IsZero())
	})

	t.Run("missing price fails the summary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		assetRepository := mock_repository.NewMockPortfolioAssetRepository(ctrl)
		alpacaRepository := mock_repository.NewMockAlpacaRepository(ctrl)
		currencyService := mock_service.NewMockCurrencyService(ctrl)
		handler := NewPortfolioService(assetRepository, alpacaRepository, currencyService)

		assetRepository.EXPECT().
			List(userID).
			Return([]domain.PortfolioAsset{{
				ID:       uuid.New(),
				UserID:   userID,
				Kind:     domain.AssetKind_Security,
				Symbol:   "VTI",
				Quantity: decimal.NewFromInt(1),
				Currency: domain.Currency_USD,
			}}, nil)
		alpacaRepository.EXPECT().
			GetLatestPricesWithTs([]string{"VTI"}).
			Return(map[string]domain.AssetPrice{}, nil)

		_, err := handler.GetSummary(context.Background(), userID, domain.Currency_USD)
		require.ErrorContains(t, err, "no price for symbol VTI")
	})
}
