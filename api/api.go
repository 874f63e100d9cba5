package api

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"fintrack/internal/db/models/postgres/public/model"
	"fintrack/internal/domain"
	"fintrack/internal/logger"
	"fintrack/internal/repository"
	"fintrack/internal/service"
	"fintrack/internal/util"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApiHandler struct {
	Db *sql.DB

	TransactionService service.TransactionService
	CurrencyService    service.CurrencyService
	PortfolioService   service.PortfolioService
	BudgetService      service.BudgetService
	AlertService       service.AlertService
	InsightService     service.InsightService

	GoalRepository           repository.GoalRepository
	BudgetRepository         repository.BudgetRepository
	AlertRuleRepository      repository.AlertRuleRepository
	JournalEntryRepository   repository.JournalEntryRepository
	PortfolioAssetRepository repository.PortfolioAssetRepository
	ApiRequestRepository     repository.ApiRequestRepository
}

func (m ApiHandler) StartApi(port int) error {
	router := m.Router()
	return router.Run(fmt.Sprintf(":%d", port))
}

func (m ApiHandler) Router() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())

	lg := logger.New()
	router.Use(func(c *gin.Context) {
		c.Set(logger.ContextKey, lg)
		c.Next()
	})
	router.Use(m.logRequestMiddlware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to fintrack"})
	})

	router.POST("/forecast", m.forecast)
	router.POST("/validateForecastParameters", m.validateForecastParameters)

	router.GET("/transactions", m.listTransactions)
	router.POST("/transactions", m.addTransaction)
	router.DELETE("/transactions/:id", m.deleteTransaction)
	router.POST("/transactions/import", m.importTransactions)

	router.GET("/goals", m.listGoals)
	router.POST("/goals", m.addGoal)
	router.POST("/goals/:id/contributions", m.addGoalContribution)
	router.GET("/goals/:id/projection", m.goalProjection)

	router.GET("/rates", m.getRate)
	router.POST("/convert", m.convert)

	router.GET("/portfolio", m.portfolioSummary)
	router.POST("/portfolio/assets", m.addPortfolioAsset)
	router.DELETE("/portfolio/assets/:id", m.deletePortfolioAsset)

	router.GET("/budgets", m.budgetStatuses)
	router.POST("/budgets", m.addBudget)
	router.DELETE("/budgets/:id", m.deleteBudget)

	router.POST("/alerts", m.addAlertRule)
	router.POST("/alerts/evaluate", m.evaluateAlerts)
	router.GET("/alerts/triggered", m.listTriggeredAlerts)

	router.GET("/journal", m.listJournalEntries)
	router.POST("/journal", m.addJournalEntry)
	router.DELETE("/journal/:id", m.deleteJournalEntry)

	router.GET("/insights", m.getInsight)

	router.GET("/stats", m.usageStats)

	return router
}

func returnErrorJson(err error, c *gin.Context) {
	fmt.Println(err.Error())
	c.AbortWithStatusJSON(500, gin.H{
		"error": err.Error(),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	fmt.Println(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// returnCurrencyError maps an exhausted rate lookup to 502 since the
// failure is upstream, not the caller's.
func returnCurrencyError(err error, c *gin.Context) {
	if errors.Is(err, service.ErrRateUnavailable) {
		returnErrorJsonCode(err, c, 502)
		return
	}
	returnErrorJson(err, c)
}

func returnValidationErrors(result domain.ValidationResult, c *gin.Context) {
	c.AbortWithStatusJSON(400, gin.H{
		"valid":  false,
		"errors": result.Errors,
	})
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (m ApiHandler) logRequestMiddlware(ctx *gin.Context) {
	w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: ctx.Writer}
	ctx.Writer = w

	body, err := ctx.GetRawData()
	if err != nil {
		log.Println(fmt.Errorf("failed to get raw data: %w", err))
	}
	ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

	type userIdBody struct {
		UserID uuid.UUID `json:"userID"`
	}

	reqBody := userIdBody{}
	err = json.Unmarshal(body, &reqBody)
	if err != nil && len(body) > 0 {
		log.Println(fmt.Errorf("failed to get req body: %w", err))
	}
	var userID *uuid.UUID
	if reqBody.UserID != uuid.Nil {
		userID = &reqBody.UserID
	}

	start := time.Now().UTC()
	req, err := m.ApiRequestRepository.Add(m.Db, model.APIRequest{
		UserID:      userID,
		IPAddress:   util.StringPointer(ctx.ClientIP()),
		Method:      ctx.Request.Method,
		Route:       ctx.Request.URL.Path,
		RequestBody: util.StringPointer(string(body)),
		StartTs:     start,
	})
	if err != nil {
		log.Println(err)
	}

	ctx.Next()

	if req != nil {
		req.DurationMs = util.Int64Pointer(time.Since(start).Milliseconds())
		req.StatusCode = util.Int32Pointer(int32(ctx.Writer.Status()))
		req.ResponseBody = util.StringPointer(w.body.String())

		err = m.ApiRequestRepository.Update(m.Db, *req)
		if err != nil {
			log.Println(err)
		}
	}
}
