package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"fintrack/internal/domain"
	mock_repository "fintrack/internal/repository/mocks"
	mock_exchangerate_client "fintrack/pkg/exchangerate/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_currencyService_GetLatestRate(t *testing.T) {
	t.Run("same currency short-circuits without collaborator calls", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rateRepository := mock_repository.NewMockExchangeRateRepository(ctrl)
		fetcher := mock_exchangerate_client.NewMockFetcher(ctrl)
		handler := NewCurrencyService(rateRepository, fetcher)

		rate, err := handler.GetLatestRate(context.Background(), domain.Currency_USD, domain.Currency_USD)
		require.NoError(t, err)
		require.Equal(t, "1", rate.String())
	})

	t.Run("returns stored rate without fetching", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rateRepository := mock_repository.NewMockExchangeRateRepository(ctrl)
		fetcher := mock_exchangerate_client.NewMockFetcher(ctrl)
		handler := NewCurrencyService(rateRepository, fetcher)

		rateRepository.EXPECT().
			Find(domain.Currency_USD, domain.Currency_EUR, gomock.Any()).
			Return(&domain.ExchangeRate{
				FromCurrency: domain.Currency_USD,
				ToCurrency:   domain.Currency_EUR,
				Rate:         decimal.NewFromFloat(0.92),
			}, nil)

		rate, err := handler.GetLatestRate(context.Background(), domain.Currency_USD, domain.Currency_EUR)
		require.NoError(t, err)
		require.Equal(t, "0.92", rate.String())
	})

	t.Run("store lookup uses the injected clock's calendar day", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rateRepository := mock_repository.NewMockExchangeRateRepository(ctrl)
		fetcher := mock_exchangerate_client.NewMockFetcher(ctrl)
		handler := currencyServiceHandler{
			ExchangeRateRepository: rateRepository,
			Fetcher:                fetcher,
			nowFn: func() time.Time {
				return time.Date(2025, 6, 15, 23, 45, 12, 0, time.UTC)
			},
		}

		rateRepository.EXPECT().
			Find(domain.Currency_USD, domain.Currency_EUR, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)).
			Return(&domain.ExchangeRate{
				FromCurrency: domain.Currency_USD,
				ToCurrency:   domain.Currency_EUR,
				Rate:         decimal.NewFromFloat(0.92),
			}, nil)

		rate, err := handler.GetLatestRate(context.Background(), domain.Currency_USD, domain.Currency_EUR)
		require.NoError(t, err)
		require.Equal(t, "0.92", rate.String())
	})

	t.Run("fetches and persists on store miss", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rateRepository := mock_repository.NewMockExchangeRateRepository(ctrl)
		fetcher := mock_exchangerate_client.NewMockFetcher(ctrl)
		handler := NewCurrencyService(rateRepository, fetcher)

		rateRepository.EXPECT().
			Find(domain.Currency_GBP, domain.Currency_USD, gomock.Any()).
			Return(nil, nil)
		fetcher.EXPECT().
			FetchLatestRate("GBP", "USD").
			Return(decimal.NewFromFloat(1.27), nil)
		rateRepository.EXPECT().
			Add(gomock.Any()).
			Return(nil)

		rate, err := handler.GetLatestRate(context.Background(), domain.Currency_GBP, domain.Currency_USD)
		require.NoError(t, err)
		require.Equal(t, "1.27", rate.String())
	})

	t.Run("falls back to latest stored rate when fetch fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rateRepository := mock_repository.NewMockExchangeRateRepository(ctrl)
		fetcher := mock_exchangerate_client.NewMockFetcher(ctrl)
		handler := NewCurrencyService(rateRepository, fetcher)

		rateRepository.EXPECT().
			Find(domain.Currency_EUR, domain.Currency_USD, gomock.Any()).
			Return(nil, nil)
		fetcher.EXPECT().
			FetchLatestRate("EUR", "USD").
			Return(decimal.Zero, errors.New("api down"))
		rateRepository.EXPECT().
			Latest(domain.Currency_EUR, domain.Currency_USD).
			Return(&domain.ExchangeRate{Rate: decimal.NewFromFloat(1.08)}, nil)

		rate, err := handler.GetLatestRate(context.Background(), domain.Currency_EUR, domain.Currency_USD)
		require.NoError(t, err)
		require.Equal(t, "1.08", rate.String())
	})

	t.Run("rate unavailable when everything fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rateRepository := mock_repository.NewMockExchangeRateRepository(ctrl)
		fetcher := mock_exchangerate_client.NewMockFetcher(ctrl)
		handler := NewCurrencyService(rateRepository, fetcher)

		rateRepository.EXPECT().
			Find(domain.Currency_EUR, domain.Currency_GBP, gomock.Any()).
			Return(nil, nil)
		fetcher.EXPECT().
			FetchLatestRate("EUR", "GBP").
			Return(decimal.Zero, errors.New("api down"))
		rateRepository.EXPECT().
			Latest(domain.Currency_EUR, domain.Currency_GBP).
			Return(nil, nil)

		_, err := handler.GetLatestRate(context.Background(), domain.Currency_EUR, domain.Currency_GBP)
		require.ErrorIs(t, err, ErrRateUnavailable)
	})
}

func Test_currencyService_GetHistoricalRate(t *testing.T) {
	date := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	t.Run("exact day store hit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rateRepository := mock_repository.NewMockExchangeRateRepository(ctrl)
		fetcher := mock_exchangerate_client.NewMockFetcher(ctrl)
		handler := NewCurrencyService(rateRepository, fetcher)

		rateRepository.EXPECT().
			Find(domain.Currency_USD, domain.Currency_GBP, date).
			Return(&domain.ExchangeRate{Rate: decimal.NewFromFloat(0.79)}, nil)

		rate, err := handler.GetHistoricalRate(context.Background(), domain.Currency_USD, domain.Currency_GBP, date)
		require.NoError(t, err)
		require.Equal(t, "0.79", rate.String())
	})

	t.Run("fetches historical rate and persists on miss", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rateRepository := mock_repository.NewMockExchangeRateRepository(ctrl)
		fetcher := mock_exchangerate_client.NewMockFetcher(ctrl)
		handler := NewCurrencyService(rateRepository, fetcher)

		rateRepository.EXPECT().
			Find(domain.Currency_USD, domain.Currency_GBP, date).
			Return(nil, nil)
		fetcher.EXPECT().
			FetchHistoricalRate("USD", "GBP", date).
			Return(decimal.NewFromFloat(0.78), nil)
		rateRepository.EXPECT().
			Add(gomock.Any()).
			Return(nil)

		rate, err := handler.GetHistoricalRate(context.Background(), domain.Currency_USD, domain.Currency_GBP, date)
		require.NoError(t, err)
		require.Equal(t, "0.78", rate.String())
	})

	t.Run("failed historical fetch degrades to latest rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rateRepository := mock_repository.NewMockExchangeRateRepository(ctrl)
		fetcher := mock_exchangerate_client.NewMockFetcher(ctrl)
		handler := NewCurrencyService(rateRepository, fetcher)

		rateRepository.EXPECT().
			Find(domain.Currency_USD, domain.Currency_EUR, date).
			Return(nil, nil)
		fetcher.EXPECT().
			FetchHistoricalRate("USD", "EUR", date).
			Return(decimal.Zero, errors.New("no data for day"))
		// latest-rate path after the degrade
		rateRepository.EXPECT().
			Find(domain.Currency_USD, domain.Currency_EUR, gomock.Any()).
			Return(nil, nil)
		fetcher.EXPECT().
			FetchLatestRate("USD", "EUR").
			Return(decimal.NewFromFloat(0.93), nil)
		rateRepository.EXPECT().
			Add(gomock.Any()).
			Return(nil)

		rate, err := handler.GetHistoricalRate(context.Background(), domain.Currency_USD, domain.Currency_EUR, date)
		require.NoError(t, err)
		require.Equal(t, "0.93", rate.String())
	})
}

func Test_currencyService_Convert(t *testing.T) {
	t.Run("same currency returns amount unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rateRepository := mock_repository.NewMockExchangeRateRepository(ctrl)
		fetcher := mock_exchangerate_client.NewMockFetcher(ctrl)
		handler := NewCurrencyService(rateRepository, fetcher)

		amount := decimal.NewFromFloat(123.45)
		converted, err := handler.Convert(context.Background(), amount, domain.Currency_EUR, domain.Currency_EUR, nil)
		require.NoError(t, err)
		require.True(t, amount.Equal(converted))
	})

	t.Run("multiplies by the resolved rate with no rounding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rateRepository := mock_repository.NewMockExchangeRateRepository(ctrl)
		fetcher := mock_exchangerate_client.NewMockFetcher(ctrl)
		handler := NewCurrencyService(rateRepository, fetcher)

		rateRepository.EXPECT().
			Find(domain.Currency_USD, domain.Currency_EUR, gomock.Any()).
			Return(&domain.ExchangeRate{Rate: decimal.NewFromFloat(0.9173)}, nil)

		converted, err := handler.Convert(context.Background(), decimal.NewFromFloat(100.01), domain.Currency_USD, domain.Currency_EUR, nil)
		require.NoError(t, err)
		require.Equal(t, "91.739173", converted.String())
	})

	t.Run("propagates rate unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rateRepository := mock_repository.NewMockExchangeRateRepository(ctrl)
		fetcher := mock_exchangerate_client.NewMockFetcher(ctrl)
		handler := NewCurrencyService(rateRepository, fetcher)

		rateRepository.EXPECT().
			Find(domain.Currency_GBP, domain.Currency_EUR, gomock.Any()).
			Return(nil, nil)
		fetcher.EXPECT().
			FetchLatestRate("GBP", "EUR").
			Return(decimal.Zero, errors.New("api down"))
		rateRepository.EXPECT().
			Latest(domain.Currency_GBP, domain.Currency_EUR).
			Return(nil, nil)

		_, err := handler.Convert(context.Background(), decimal.NewFromInt(50), domain.Currency_GBP, domain.Currency_EUR, nil)
		require.ErrorIs(t, err, ErrRateUnavailable)
	})
}
