package cmd

import (
	"database/sql"
	"fintrack/api"
	"fintrack/internal/cache"
	"fintrack/internal/repository"
	"fintrack/internal/service"
	"fintrack/internal/util"
	exchangerate_client "fintrack/pkg/exchangerate"
	"fmt"
	"log"
	"os"
	"strings"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	gptRepository, err := repository.NewGptRepository(secrets.ChatGPTApiKey)
	if err != nil {
		return nil, err
	}

	emailRepository, err := repository.NewEmailRepository(secrets.SES.Region, secrets.SES.FromEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to create email repository: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	ledgerEntryRepository := repository.NewLedgerEntryRepository(dbConn)
	exchangeRateRepository := repository.NewExchangeRateRepository(dbConn)
	goalRepository := repository.NewGoalRepository(dbConn)
	portfolioAssetRepository := repository.NewPortfolioAssetRepository(dbConn)
	budgetRepository := repository.NewBudgetRepository(dbConn)
	alertRuleRepository := repository.NewAlertRuleRepository(dbConn)
	journalEntryRepository := repository.NewJournalEntryRepository(dbConn)

	alpacaRepository := repository.NewAlpacaRepository(secrets.Alpaca.ApiKey, secrets.Alpaca.ApiSecret, secrets.Alpaca.Endpoint)

	var rateFetcher exchangerate_client.Fetcher = exchangerate_client.New()

	if strings.EqualFold(os.Getenv("FINTRACK_ENV"), "test") || UseMockMarketData {
		alpacaRepository = NewMockAlpacaRepository()
		rateFetcher = NewMockRateFetcher()
	}

	insightCache := cache.NewInsightCache(cache.DefaultInsightTtl)

	emailService := service.NewEmailService(emailRepository)

	currencyService := service.NewCurrencyService(exchangeRateRepository, rateFetcher)
	transactionService := service.NewTransactionService(ledgerEntryRepository, insightCache)
	portfolioService := service.NewPortfolioService(portfolioAssetRepository, alpacaRepository, currencyService)
	budgetService := service.NewBudgetService(budgetRepository, ledgerEntryRepository, currencyService)
	alertService := service.NewAlertService(
		alertRuleRepository,
		ledgerEntryRepository,
		budgetRepository,
		goalRepository,
		emailService,
	)
	insightService := service.NewInsightService(ledgerEntryRepository, gptRepository, insightCache)

	apiHandler := &api.ApiHandler{
		Db: dbConn,

		TransactionService: transactionService,
		CurrencyService:    currencyService,
		PortfolioService:   portfolioService,
		BudgetService:      budgetService,
		AlertService:       alertService,
		InsightService:     insightService,

		GoalRepository:           goalRepository,
		BudgetRepository:         budgetRepository,
		AlertRuleRepository:      alertRuleRepository,
		JournalEntryRepository:   journalEntryRepository,
		PortfolioAssetRepository: portfolioAssetRepository,
		ApiRequestRepository:     repository.ApiRequestRepositoryHandler{},
	}

	return apiHandler, nil
}
