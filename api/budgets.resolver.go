package api

import (
	"fmt"
	"time"

	"fintrack/internal/db/models/postgres/public/model"
	"fintrack/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type addBudgetRequest struct {
	UserID   string          `json:"userID"`
	Category string          `json:"category"`
	Limit    decimal.Decimal `json:"limit"`
	Currency string          `json:"currency"`
}

func (h ApiHandler) addBudget(c *gin.Context) {
	var requestBody addBudgetRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	userID, err := uuid.Parse(requestBody.UserID)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if requestBody.Category == "" {
		returnErrorJsonCode(fmt.Errorf("category must not be empty"), c, 400)
		return
	}
	if !requestBody.Limit.IsPositive() {
		returnErrorJsonCode(fmt.Errorf("limit must be positive"), c, 400)
		return
	}
	currency, err := domain.NewCurrency(requestBody.Currency)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	budget, err := h.BudgetRepository.Add(nil, model.Budget{
		UserID:      userID,
		Category:    requestBody.Category,
		LimitAmount: requestBody.Limit,
		Currency:    string(*currency),
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, budget)
}

func (h ApiHandler) budgetStatuses(c *gin.Context) {
	userID, err := uuid.Parse(c.Query("userID"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid userID: %w", err), c, 400)
		return
	}

	statuses, err := h.BudgetService.GetStatuses(c, userID, time.Now().UTC())
	if err != nil {
		returnCurrencyError(err, c)
		return
	}

	c.JSON(200, statuses)
}

func (h ApiHandler) deleteBudget(c *gin.Context) {
	userID, err := uuid.Parse(c.Query("userID"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid userID: %w", err), c, 400)
		return
	}
	budgetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid budget id: %w", err), c, 400)
		return
	}

	err = h.BudgetRepository.Delete(nil, userID, budgetID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, map[string]string{"message": "ok"})
}
