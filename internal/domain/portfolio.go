package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AssetKind string

const (
	AssetKind_Security AssetKind = "SECURITY"
	AssetKind_Cash     AssetKind = "CASH"
)

func NewAssetKind(s string) (*AssetKind, error) {
	switch AssetKind(s) {
	case AssetKind_Security, AssetKind_Cash:
		k := AssetKind(s)
		return &k, nil
	}
	return nil, fmt.Errorf("unknown asset kind %q", s)
}

// PortfolioAsset is a single holding. Securities are priced by symbol via
// the market data repository; cash holdings are taken at face value in
// their own currency.
type PortfolioAsset struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Kind     AssetKind
	Symbol   string
	Quantity decimal.Decimal
	Currency Currency
}

type AssetValuation struct {
	AssetID   uuid.UUID       `json:"assetID"`
	Symbol    string          `json:"symbol"`
	Kind      AssetKind       `json:"kind"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Currency  Currency        `json:"currency"`
	Value     decimal.Decimal `json:"value"`     // in the asset's own currency
	ValueBase decimal.Decimal `json:"valueBase"` // normalized to the requested base currency
	PricedAt  *time.Time      `json:"pricedAt,omitempty"`
}

type PortfolioSummary struct {
	BaseCurrency Currency         `json:"baseCurrency"`
	Assets       []AssetValuation `json:"assets"`
	TotalValue   decimal.Decimal  `json:"totalValue"`
}

type AssetPrice struct {
	Symbol string
	Price  decimal.Decimal
	Date   time.Time
}
