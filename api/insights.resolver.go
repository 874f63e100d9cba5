package api

import (
	"fmt"
	"time"

	"fintrack/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h ApiHandler) getInsight(c *gin.Context) {
	userID, err := uuid.Parse(c.Query("userID"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid userID: %w", err), c, 400)
		return
	}
	insightType, err := domain.NewInsightType(c.Query("type"))
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	insight, err := h.InsightService.GetInsight(c, userID, *insightType, time.Now().UTC())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, insight)
}
