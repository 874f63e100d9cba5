package api

import (
	"fmt"
	"time"

	"fintrack/internal/db/models/postgres/public/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type addJournalEntryRequest struct {
	UserID string `json:"userID"`
	Date   string `json:"date"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

func (h ApiHandler) addJournalEntry(c *gin.Context) {
	var requestBody addJournalEntryRequest
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
	if requestBody.Title == "" {
		returnErrorJsonCode(fmt.Errorf("title must not be empty"), c, 400)
		return
	}
	if len(requestBody.Body) > 10000 {
		returnErrorJsonCode(fmt.Errorf("body too long - must be < 10000 characters"), c, 400)
		return
	}

	entry, err := h.JournalEntryRepository.Add(nil, model.JournalEntry{
		UserID: userID,
		Date:   date.UTC(),
		Title:  requestBody.Title,
		Body:   requestBody.Body,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, entry)
}

func (h ApiHandler) listJournalEntries(c *gin.Context) {
	userID, err := uuid.Parse(c.Query("userID"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid userID: %w", err), c, 400)
		return
	}

	entries, err := h.JournalEntryRepository.List(userID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, entries)
}

func (h ApiHandler) deleteJournalEntry(c *gin.Context) {
	userID, err := uuid.Parse(c.Query("userID"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid userID: %w", err), c, 400)
		return
	}
	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid journal entry id: %w", err), c, 400)
		return
	}

	err = h.JournalEntryRepository.Delete(nil, userID, entryID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, map[string]string{"message": "ok"})
}
