package api

import (
	"fmt"
	"time"

	"fintrack/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func (h ApiHandler) getRate(c *gin.Context) {
	from, err := domain.NewCurrency(c.Query("from"))
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	to, err := domain.NewCurrency(c.Query("to"))
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	var rate decimal.Decimal
	if dateParam := c.Query("date"); dateParam != "" {
		date, err := time.Parse(time.DateOnly, dateParam)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("unparseable date %q", dateParam), c, 400)
			return
		}
		rate, err = h.CurrencyService.GetHistoricalRate(c, *from, *to, date)
		if err != nil {
			returnCurrencyError(err, c)
			return
		}
	} else {
		rate, err = h.CurrencyService.GetLatestRate(c, *from, *to)
		if err != nil {
			returnCurrencyError(err, c)
			return
		}
	}

	c.JSON(200, gin.H{
		"from": *from,
		"to":   *to,
		"rate": rate,
	})
}

type convertRequest struct {
	Amount decimal.Decimal `json:"amount"`
	From   string          `json:"from"`
	To     string          `json:"to"`
	Date   *string         `json:"date,omitempty"`
}

func (h ApiHandler) convert(c *gin.Context) {
	var requestBody convertRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	from, err := domain.NewCurrency(requestBody.From)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	to, err := domain.NewCurrency(requestBody.To)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	var date *time.Time
	if requestBody.Date != nil {
		parsed, err := time.Parse(time.DateOnly, *requestBody.Date)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("unparseable date %q", *requestBody.Date), c, 400)
			return
		}
		date = &parsed
	}

	converted, err := h.CurrencyService.Convert(c, requestBody.Amount, *from, *to, date)
	if err != nil {
		returnCurrencyError(err, c)
		return
	}

	c.JSON(200, gin.H{
		"amount":    requestBody.Amount,
		"from":      *from,
		"to":        *to,
		"converted": converted,
	})
}
