package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Currency string

const (
	Currency_USD Currency = "USD"
	Currency_EUR Currency = "EUR"
	Currency_GBP Currency = "GBP"
)

func NewCurrency(s string) (*Currency, error) {
	switch Currency(s) {
	case Currency_USD, Currency_EUR, Currency_GBP:
		c := Currency(s)
		return &c, nil
	}
	return nil, fmt.Errorf("unsupported currency %q", s)
}

// ExchangeRate is one rate per currency pair per calendar day. Rows are
// append-only once written for a given day.
type ExchangeRate struct {
	FromCurrency Currency
	ToCurrency   Currency
	Rate         decimal.Decimal
	Date         time.Time
}
