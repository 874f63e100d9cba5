package service

import (
	"context"
	"time"

	"fintrack/internal/domain"
	"fintrack/internal/repository"
	"fintrack/internal/util"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ledgerCurrency is the currency ledger amounts are recorded in. Budgets
// may be denominated differently, so spent amounts are converted into the
// budget's currency before comparison.
const ledgerCurrency = domain.Currency_USD

// BudgetService derives the current month's spend against each budget.
type BudgetService interface {
	GetStatuses(ctx context.Context, userID uuid.UUID, now time.Time) ([]domain.BudgetStatus, error)
}

type budgetServiceHandler struct {
	BudgetRepository      repository.BudgetRepository
	LedgerEntryRepository repository.LedgerEntryRepository
	CurrencyService       CurrencyService
}

func NewBudgetService(
	budgetRepository repository.BudgetRepository,
	ledgerEntryRepository repository.LedgerEntryRepository,
	currencyService CurrencyService,
) BudgetService {
	return budgetServiceHandler{
		BudgetRepository:      budgetRepository,
		LedgerEntryRepository: ledgerEntryRepository,
		CurrencyService:       currencyService,
	}
}

func (h budgetServiceHandler) GetStatuses(ctx context.Context, userID uuid.UUID, now time.Time) ([]domain.BudgetStatus, error) {
	budgets, err := h.BudgetRepository.List(userID)
	if err != nil {
		return nil, err
	}
	if len(budgets) == 0 {
		return []domain.BudgetStatus{}, nil
	}

	monthStart := util.StartOfMonth(now)
	monthEnd := monthStart.AddDate(0, 1, 0)
	entries, err := h.LedgerEntryRepository.List(repository.LedgerEntryListFilter{
		UserID:  userID,
		MinDate: &monthStart,
		MaxDate: &monthEnd,
	})
	if err != nil {
		return nil, err
	}

	spentByCategory := map[string]decimal.Decimal{}
	for _, entry := range entries {
		if entry.Kind != domain.EntryKind_Expense {
			continue
		}
		spentByCategory[entry.Category] = spentByCategory[entry.Category].Add(entry.Amount)
	}

	statuses := make([]domain.BudgetStatus, 0, len(budgets))
	for _, budget := range budgets {
		budgetCurrency, err := domain.NewCurrency(budget.Currency)
		if err != nil {
			return nil, err
		}

		spent, err := h.CurrencyService.Convert(ctx, spentByCategory[budget.Category], ledgerCurrency, *budgetCurrency, nil)
		if err != nil {
			return nil, err
		}

		statuses = append(statuses, domain.BudgetStatus{
			BudgetID:  budget.BudgetID,
			Category:  budget.Category,
			Limit:     budget.LimitAmount,
			Spent:     spent,
			Remaining: budget.LimitAmount.Sub(spent),
			Currency:  *budgetCurrency,
		})
	}

	return statuses, nil
}
