package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fintrack/internal/db/models/postgres/public/model"
	"fintrack/internal/db/models/postgres/public/table"
	"fintrack/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type ExchangeRateRepository interface {
	// Add upserts the rate for (from, to, date). Two requests racing on
	// the same missing day both fetch, but the second write lands on the
	// conflict clause instead of creating a duplicate row.
	Add(er model.ExchangeRate) error
	// Find returns nil when no rate is stored for that exact calendar day.
	Find(from, to domain.Currency, date time.Time) (*domain.ExchangeRate, error)
	// Latest returns the most recent stored rate for the pair, nil when
	// the pair has never been stored.
	Latest(from, to domain.Currency) (*domain.ExchangeRate, error)
}

type exchangeRateRepositoryHandler struct {
	Db *sql.DB
}

func NewExchangeRateRepository(db *sql.DB) ExchangeRateRepository {
	return exchangeRateRepositoryHandler{Db: db}
}

func (h exchangeRateRepositoryHandler) Add(er model.ExchangeRate) error {
	er.ExchangeRateID = uuid.New()
	er.CreatedAt = time.Now().UTC()

	query := table.ExchangeRate.
		INSERT(table.ExchangeRate.AllColumns).
		MODEL(er).
		ON_CONFLICT(
			table.ExchangeRate.FromCurrency, table.ExchangeRate.ToCurrency, table.ExchangeRate.Date,
		).DO_UPDATE(
		postgres.SET(
			table.ExchangeRate.Rate.SET(table.ExchangeRate.EXCLUDED.Rate),
		),
	)

	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to add exchange rate to db: %w", err)
	}

	return nil
}

func (h exchangeRateRepositoryHandler) Find(from, to domain.Currency, date time.Time) (*domain.ExchangeRate, error) {
	query := table.ExchangeRate.
		SELECT(table.ExchangeRate.AllColumns).
		WHERE(postgres.AND(
			table.ExchangeRate.FromCurrency.EQ(postgres.String(string(from))),
			table.ExchangeRate.ToCurrency.EQ(postgres.String(string(to))),
			table.ExchangeRate.Date.EQ(postgres.DateT(date)),
		))

	result := model.ExchangeRate{}
	err := query.Query(h.Db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to query rate %s/%s on %s: %w", from, to, date.Format(time.DateOnly), err)
	}

	return exchangeRateFromModel(result), nil
}

func (h exchangeRateRepositoryHandler) Latest(from, to domain.Currency) (*domain.ExchangeRate, error) {
	query := table.ExchangeRate.
		SELECT(table.ExchangeRate.AllColumns).
		WHERE(postgres.AND(
			table.ExchangeRate.FromCurrency.EQ(postgres.String(string(from))),
			table.ExchangeRate.ToCurrency.EQ(postgres.String(string(to))),
		)).
		ORDER_BY(table.ExchangeRate.Date.DESC()).
		LIMIT(1)

	result := model.ExchangeRate{}
	err := query.Query(h.Db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to query latest rate %s/%s: %w", from, to, err)
	}

	return exchangeRateFromModel(result), nil
}

func exchangeRateFromModel(m model.ExchangeRate) *domain.ExchangeRate {
	return &domain.ExchangeRate{
		FromCurrency: domain.Currency(m.FromCurrency),
		ToCurrency:   domain.Currency(m.ToCurrency),
		Rate:         m.Rate,
		Date:         m.Date,
	}
}
