package api

import (
	"fintrack/internal/repository"

	"github.com/gin-gonic/gin"
)

func (h ApiHandler) usageStats(c *gin.Context) {
	stats, err := repository.GetUsageStats(h.Db)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, stats)
}
