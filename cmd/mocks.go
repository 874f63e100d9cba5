package cmd

import (
	"fintrack/internal/domain"
	"fintrack/internal/repository"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const UseMockMarketData = false

// canned market data so the api can run locally without alpaca keys or
// a live exchange rate provider

type mockAlpacaRepositoryHandler struct{}

func NewMockAlpacaRepository() repository.AlpacaRepository {
	return mockAlpacaRepositoryHandler{}
}

var mockPrices = map[string]decimal.Decimal{
	"AAPL": decimal.NewFromInt(190),
	"VOO":  decimal.NewFromInt(470),
	"BND":  decimal.NewFromInt(72),
}

func (m mockAlpacaRepositoryHandler) GetLatestPricesWithTs(symbols []string) (map[string]domain.AssetPrice, error) {
	out := map[string]domain.AssetPrice{}
	for _, symbol := range symbols {
		price, ok := mockPrices[symbol]
		if !ok {
			price = decimal.NewFromInt(100)
		}
		out[symbol] = domain.AssetPrice{
			Symbol: symbol,
			Price:  price,
			Date:   time.Now().UTC(),
		}
	}
	return out, nil
}

type mockRateFetcherHandler struct{}

func NewMockRateFetcher() mockRateFetcherHandler {
	return mockRateFetcherHandler{}
}

var mockRates = map[string]decimal.Decimal{
	"USD/EUR": decimal.NewFromFloat(0.92),
	"EUR/USD": decimal.NewFromFloat(1.09),
	"USD/GBP": decimal.NewFromFloat(0.79),
	"GBP/USD": decimal.NewFromFloat(1.27),
	"EUR/GBP": decimal.NewFromFloat(0.86),
	"GBP/EUR": decimal.NewFromFloat(1.16),
}

func (m mockRateFetcherHandler) FetchLatestRate(from, to string) (decimal.Decimal, error) {
	rate, ok := mockRates[from+"/"+to]
	if !ok {
		return decimal.Zero, fmt.Errorf("no mock rate for %s/%s", from, to)
	}
	return rate, nil
}

func (m mockRateFetcherHandler) FetchHistoricalRate(from, to string, date time.Time) (decimal.Decimal, error) {
	return m.FetchLatestRate(from, to)
}
