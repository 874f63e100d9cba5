package service

import (
	"context"
	"fmt"

	"fintrack/internal/domain"
	"fintrack/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PortfolioService values a user's holdings. Securities are priced with
// the latest market quote (assumed USD), cash is taken at face value, and
// everything is normalized to the requested base currency. No rounding
// happens here; display-time rounding belongs to the client.
type PortfolioService interface {
	GetSummary(ctx context.Context, userID uuid.UUID, baseCurrency domain.Currency) (*domain.PortfolioSummary, error)
}

type portfolioServiceHandler struct {
	PortfolioAssetRepository repository.PortfolioAssetRepository
	AlpacaRepository         repository.AlpacaRepository
	CurrencyService          CurrencyService
}

func NewPortfolioService(
	portfolioAssetRepository repository.PortfolioAssetRepository,
	alpacaRepository repository.AlpacaRepository,
	currencyService CurrencyService,
) PortfolioService {
	return portfolioServiceHandler{
		PortfolioAssetRepository: portfolioAssetRepository,
		AlpacaRepository:         alpacaRepository,
		CurrencyService:          currencyService,
	}
}

func (h portfolioServiceHandler) GetSummary(ctx context.Context, userID uuid.UUID, baseCurrency domain.Currency) (*domain.PortfolioSummary, error) {
	assets, err := h.PortfolioAssetRepository.List(userID)
	if err != nil {
		return nil, err
	}

	symbols := []string{}
	for _, asset := range assets {
		if asset.Kind == domain.AssetKind_Security {
			symbols = append(symbols, asset.Symbol)
		}
	}

	prices := map[string]domain.AssetPrice{}
	if len(symbols) > 0 {
		prices, err = h.AlpacaRepository.GetLatestPricesWithTs(symbols)
		if err != nil {
			return nil, err
		}
	}

	summary := &domain.PortfolioSummary{
		BaseCurrency: baseCurrency,
		Assets:       []domain.AssetValuation{},
		TotalValue:   decimal.Zero,
	}
	for _, asset := range assets {
		valuation, err := h.valueAsset(ctx, asset, prices, baseCurrency)
		if err != nil {
			return nil, err
		}
		summary.Assets = append(summary.Assets, *valuation)
		summary.TotalValue = summary.TotalValue.Add(valuation.ValueBase)
	}

	return summary, nil
}

func (h portfolioServiceHandler) valueAsset(
	ctx context.Context,
	asset domain.PortfolioAsset,
	prices map[string]domain.AssetPrice,
	baseCurrency domain.Currency,
) (*domain.AssetValuation, error) {
	valuation := domain.AssetValuation{
		AssetID:  asset.ID,
		Symbol:   asset.Symbol,
		Kind:     asset.Kind,
		Quantity: asset.Quantity,
		Currency: asset.Currency,
	}

	switch asset.Kind {
	case domain.AssetKind_Cash:
		valuation.UnitPrice = decimal.NewFromInt(1)
		valuation.Value = asset.Quantity
	case domain.AssetKind_Security:
		price, ok := prices[asset.Symbol]
		if !ok {
			return nil, fmt.Errorf("no price for symbol %s", asset.Symbol)
		}
		valuation.UnitPrice = price.Price
		valuation.Value = asset.Quantity.Mul(price.Price)
		pricedAt := price.Date
		valuation.PricedAt = &pricedAt
	default:
		return nil, fmt.Errorf("unknown asset kind %q", asset.Kind)
	}

	valueBase, err := h.CurrencyService.Convert(ctx, valuation.Value, asset.Currency, baseCurrency, nil)
	if err != nil {
		return nil, err
	}
	valuation.ValueBase = valueBase

	return &valuation, nil
}
