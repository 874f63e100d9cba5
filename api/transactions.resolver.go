package api

import (
	"fmt"
	"io"
	"time"

	"fintrack/internal/db/models/postgres/public/model"
	"fintrack/internal/domain"
	"fintrack/internal/repository"
	"fintrack/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type addTransactionRequest struct {
	UserID   string          `json:"userID"`
	Date     string          `json:"date"`
	Amount   decimal.Decimal `json:"amount"`
	Kind     string          `json:"kind"`
	Category string          `json:"category"`
	Note     *string         `json:"note,omitempty"`
}

func (h ApiHandler) addTransaction(c *gin.Context) {
	var requestBody addTransactionRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	userID, err := uuid.Parse(requestBody.UserID)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	date, err := time.Parse(time.DateOnly, requestBody.Date)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("unparseable date %q", requestBody.Date), c, 400)
		return
	}
	if !requestBody.Amount.IsPositive() {
		returnErrorJsonCode(fmt.Errorf("amount must be positive"), c, 400)
		return
	}
	kind, err := domain.NewEntryKind(requestBody.Kind)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	entry, err := h.TransactionService.AddEntry(c, model.LedgerEntry{
		UserID:   userID,
		Date:     date.UTC(),
		Amount:   requestBody.Amount,
		Kind:     string(*kind),
		Category: requestBody.Category,
		Note:     requestBody.Note,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, entry)
}

func (h ApiHandler) listTransactions(c *gin.Context) {
	userID, err := uuid.Parse(c.Query("userID"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid userID: %w", err), c, 400)
		return
	}

	filter := repository.LedgerEntryListFilter{UserID: userID}
	if category := c.Query("category"); category != "" {
		filter.Category = util.StringPointer(category)
	}
	if minDate := c.Query("minDate"); minDate != "" {
		parsed, err := time.Parse(time.DateOnly, minDate)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("unparseable minDate %q", minDate), c, 400)
			return
		}
		filter.MinDate = &parsed
	}
	if maxDate := c.Query("maxDate"); maxDate != "" {
		parsed, err := time.Parse(time.DateOnly, maxDate)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("unparseable maxDate %q", maxDate), c, 400)
			return
		}
		filter.MaxDate = &parsed
	}

	entries, err := h.TransactionService.ListEntries(c, filter)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, entries)
}

func (h ApiHandler) deleteTransaction(c *gin.Context) {
	userID, err := uuid.Parse(c.Query("userID"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid userID: %w", err), c, 400)
		return
	}
	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid transaction id: %w", err), c, 400)
		return
	}

	err = h.TransactionService.DeleteEntry(c, userID, entryID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, map[string]string{"message": "ok"})
}

func (h ApiHandler) importTransactions(c *gin.Context) {
	userID, err := uuid.Parse(c.Query("userID"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid userID: %w", err), c, 400)
		return
	}

	file, _, err := c.Request.FormFile("file")
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("missing csv file: %w", err), c, 400)
		return
	}
	defer file.Close()

	csvBytes, err := io.ReadAll(file)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	count, err := h.TransactionService.ImportCsv(c, userID, csvBytes)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	c.JSON(200, map[string]int{"imported": count})
}
