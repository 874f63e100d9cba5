package api

import (
	"fmt"
	"time"

	"fintrack/internal/db/models/postgres/public/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type addAlertRuleRequest struct {
	UserID     string  `json:"userID"`
	Name       string  `json:"name"`
	Expression string  `json:"expression"`
	Enabled    *bool   `json:"enabled,omitempty"`
	Email      *string `json:"email,omitempty"`
}

func (h ApiHandler) addAlertRule(c *gin.Context) {
	var requestBody addAlertRuleRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	userID, err := uuid.Parse(requestBody.UserID)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if requestBody.Name == "" {
		returnErrorJsonCode(fmt.Errorf("alert name must not be empty"), c, 400)
		return
	}
	if requestBody.Expression == "" {
		returnErrorJsonCode(fmt.Errorf("alert expression must not be empty"), c, 400)
		return
	}
	enabled := true
	if requestBody.Enabled != nil {
		enabled = *requestBody.Enabled
	}

	rule, err := h.AlertRuleRepository.Add(nil, model.AlertRule{
		UserID:     userID,
		Name:       requestBody.Name,
		Expression: requestBody.Expression,
		Enabled:    enabled,
		Email:      requestBody.Email,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, rule)
}

func (h ApiHandler) evaluateAlerts(c *gin.Context) {
	type evaluateRequest struct {
		UserID string `json:"userID"`
	}
	var requestBody evaluateRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	userID, err := uuid.Parse(requestBody.UserID)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	triggered, err := h.AlertService.EvaluateRules(c, userID, time.Now().UTC())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{"triggered": triggered})
}

func (h ApiHandler) listTriggeredAlerts(c *gin.Context) {
	userID, err := uuid.Parse(c.Query("userID"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid userID: %w", err), c, 400)
		return
	}

	triggered, err := h.AlertRuleRepository.ListTriggered(userID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, triggered)
}
