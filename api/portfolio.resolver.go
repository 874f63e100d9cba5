package api

import (
	"fmt"

	"fintrack/internal/db/models/postgres/public/model"
	"fintrack/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (h ApiHandler) portfolioSummary(c *gin.Context) {
	userID, err := uuid.Parse(c.Query("userID"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid userID: %w", err), c, 400)
		return
	}

	baseCurrency := domain.Currency_USD
	if base := c.Query("base"); base != "" {
		parsed, err := domain.NewCurrency(base)
		if err != nil {
			returnErrorJsonCode(err, c, 400)
			return
		}
		baseCurrency = *parsed
	}

	summary, err := h.PortfolioService.GetSummary(c, userID, baseCurrency)
	if err != nil {
		returnCurrencyError(err, c)
		return
	}

	c.JSON(200, summary)
}

type addPortfolioAssetRequest struct {
	UserID   string          `json:"userID"`
	Kind     string          `json:"kind"`
	Symbol   string          `json:"symbol"`
	Quantity decimal.Decimal `json:"quantity"`
	Currency string          `json:"currency"`
}

func (h ApiHandler) addPortfolioAsset(c *gin.Context) {
	var requestBody addPortfolioAssetRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	userID, err := uuid.Parse(requestBody.UserID)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	kind, err := domain.NewAssetKind(requestBody.Kind)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	currency, err := domain.NewCurrency(requestBody.Currency)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if requestBody.Symbol == "" {
		returnErrorJsonCode(fmt.Errorf("symbol must not be empty"), c, 400)
		return
	}
	if !requestBody.Quantity.IsPositive() {
		returnErrorJsonCode(fmt.Errorf("quantity must be positive"), c, 400)
		return
	}

	asset, err := h.PortfolioAssetRepository.Add(nil, model.PortfolioAsset{
		UserID:   userID,
		Kind:     string(*kind),
		Symbol:   requestBody.Symbol,
		Quantity: requestBody.Quantity,
		Currency: string(*currency),
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, asset)
}

func (h ApiHandler) deletePortfolioAsset(c *gin.Context) {
	userID, err := uuid.Parse(c.Query("userID"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid userID: %w", err), c, 400)
		return
	}
	assetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid asset id: %w", err), c, 400)
		return
	}

	err = h.PortfolioAssetRepository.Delete(nil, userID, assetID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, map[string]string{"message": "ok"})
}
