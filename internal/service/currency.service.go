package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fintrack/internal/db/models/postgres/public/model"
	"fintrack/internal/domain"
	"fintrack/internal/logger"
	"fintrack/internal/repository"
	exchangerate_client "fintrack/pkg/exchangerate"

	"github.com/shopspring/decimal"
)

// ErrRateUnavailable is returned when the store, the live fetch, and the
// latest-rate fallback all fail to produce a rate for a pair.
var ErrRateUnavailable = errors.New("exchange rate unavailable")

// CurrencyService resolves exchange rates with a store-first policy:
// same currency short-circuits to 1, then the persisted rate for the exact
// calendar day, then a live fetch which is persisted before returning so
// repeated calls for the same day hit the store. A failed historical fetch
// degrades to the latest available rate instead of failing the caller.
type CurrencyService interface {
	GetLatestRate(ctx context.Context, from, to domain.Currency) (decimal.Decimal, error)
	GetHistoricalRate(ctx context.Context, from, to domain.Currency, date time.Time) (decimal.Decimal, error)
	// Convert applies the resolved rate with no rounding. A nil date means
	// the latest rate.
	Convert(ctx context.Context, amount decimal.Decimal, from, to domain.Currency, date *time.Time) (decimal.Decimal, error)
}

type currencyServiceHandler struct {
	ExchangeRateRepository repository.ExchangeRateRepository
	Fetcher                exchangerate_client.Fetcher
	// nowFn supplies the reference time for "today" so tests can pin
	// the calendar day
	nowFn func() time.Time
}

func NewCurrencyService(
	exchangeRateRepository repository.ExchangeRateRepository,
	fetcher exchangerate_client.Fetcher,
) CurrencyService {
	return currencyServiceHandler{
		ExchangeRateRepository: exchangeRateRepository,
		Fetcher:                fetcher,
		nowFn:                  time.Now,
	}
}

func (h currencyServiceHandler) GetLatestRate(ctx context.Context, from, to domain.Currency) (decimal.Decimal, error) {
	if from == to {
		return decimal.NewFromInt(1), nil
	}

	today := truncateToDay(h.nowFn().UTC())
	stored, err := h.ExchangeRateRepository.Find(from, to, today)
	if err != nil {
		return decimal.Zero, err
	}
	if stored != nil {
		return stored.Rate, nil
	}

	rate, fetchErr := h.Fetcher.FetchLatestRate(string(from), string(to))
	if fetchErr == nil {
		h.persistRate(ctx, from, to, rate, today)
		return rate, nil
	}
	logger.FromContext(ctx).Warnf("latest rate fetch failed for %s/%s: %v", from, to, fetchErr)

	return h.latestStoredRate(from, to, fetchErr)
}

func (h currencyServiceHandler) GetHistoricalRate(ctx context.Context, from, to domain.Currency, date time.Time) (decimal.Decimal, error) {
	if from == to {
		return decimal.NewFromInt(1), nil
	}

	day := truncateToDay(date.UTC())
	stored, err := h.ExchangeRateRepository.Find(from, to, day)
	if err != nil {
		return decimal.Zero, err
	}
	if stored != nil {
		return stored.Rate, nil
	}

	rate, fetchErr := h.Fetcher.FetchHistoricalRate(string(from), string(to), day)
	if fetchErr == nil {
		h.persistRate(ctx, from, to, rate, day)
		return rate, nil
	}
	logger.FromContext(ctx).Warnf("historical rate fetch failed for %s/%s on %s, falling back to latest: %v", from, to, day.Format(time.DateOnly), fetchErr)

	// historical accuracy is sacrificed for availability
	return h.GetLatestRate(ctx, from, to)
}

func (h currencyServiceHandler) Convert(ctx context.Context, amount decimal.Decimal, from, to domain.Currency, date *time.Time) (decimal.Decimal, error) {
	if from == to {
		return amount, nil
	}

	var rate decimal.Decimal
	var err error
	if date == nil {
		rate, err = h.GetLatestRate(ctx, from, to)
	} else {
		rate, err = h.GetHistoricalRate(ctx, from, to, *date)
	}
	if err != nil {
		return decimal.Zero, err
	}

	return amount.Mul(rate), nil
}

// persistRate stores a freshly fetched rate. A write failure is logged
// rather than surfaced since the caller already holds a usable rate.
func (h currencyServiceHandler) persistRate(ctx context.Context, from, to domain.Currency, rate decimal.Decimal, date time.Time) {
	err := h.ExchangeRateRepository.Add(model.ExchangeRate{
		FromCurrency: string(from),
		ToCurrency:   string(to),
		Rate:         rate,
		Date:         date,
	})
	if err != nil {
		logger.FromContext(ctx).Warnf("failed to persist rate %s/%s on %s: %v", from, to, date.Format(time.DateOnly), err)
	}
}

func (h currencyServiceHandler) latestStoredRate(from, to domain.Currency, fetchErr error) (decimal.Decimal, error) {
	stored, err := h.ExchangeRateRepository.Latest(from, to)
	if err != nil {
		return decimal.Zero, err
	}
	if stored == nil {
		return decimal.Zero, fmt.Errorf("no rate for %s/%s after fetch failure (%s): %w", from, to, fetchErr.Error(), ErrRateUnavailable)
	}
	return stored.Rate, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
