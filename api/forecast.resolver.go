package api

import (
	"time"

	"fintrack/internal/calculator"
	"fintrack/internal/domain"
	"fintrack/internal/logger"
	"fintrack/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type forecastRequest struct {
	UserID                string                    `json:"userID"`
	CurrentBalance        decimal.Decimal           `json:"currentBalance"`
	CurrentPortfolioValue *decimal.Decimal          `json:"currentPortfolioValue,omitempty"`
	Parameters            domain.ForecastParameters `json:"parameters"`
}

func (h ApiHandler) forecast(c *gin.Context) {
	var requestBody forecastRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	userID, err := uuid.Parse(requestBody.UserID)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	validation := calculator.ValidateForecastParameters(requestBody.Parameters)
	if !validation.Valid {
		returnValidationErrors(validation, c)
		return
	}

	profile, endProfile := domain.NewProfile()
	defer endProfile()

	_, endSpan := profile.StartNewSpan("list ledger entries")
	entries, err := h.TransactionService.ListEntries(c, repository.LedgerEntryListFilter{
		UserID: userID,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	endSpan()

	_, endSpan = profile.StartNewSpan("generate forecast")
	result := calculator.GenerateForecast(
		entries,
		requestBody.CurrentBalance,
		requestBody.Parameters,
		requestBody.CurrentPortfolioValue,
		time.Now().UTC(),
	)
	endSpan()

	endProfile()
	if profileBytes, err := profile.ToJsonBytes(); err == nil {
		logger.FromContext(c).Infof("forecast profile: %s", string(profileBytes))
	}

	c.JSON(200, result)
}

func (h ApiHandler) validateForecastParameters(c *gin.Context) {
	var params domain.ForecastParameters
	if err := c.ShouldBindJSON(&params); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	c.JSON(200, calculator.ValidateForecastParameters(params))
}
