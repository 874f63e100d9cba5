package service

import (
	"context"
	"fmt"
	"time"

	"fintrack/internal/calculator"
	"fintrack/internal/db/models/postgres/public/model"
	"fintrack/internal/domain"
	"fintrack/internal/logger"
	"fintrack/internal/repository"

	"github.com/google/uuid"
	"github.com/maja42/goval"
	"github.com/shopspring/decimal"
)

// AlertService evaluates every enabled rule for a user against the
// current state of their ledger, budgets, and goals. Rule conditions are
// goval boolean expressions, e.g.
//
//	monthlySpending > budgetLimit("groceries") * 0.9
//	balance < 500
//	goalProgress("emergency fund") < 50
//
// A rule that errors is skipped with a warning so a bad expression cannot
// block the rest of the sweep.
type AlertService interface {
	EvaluateRules(ctx context.Context, userID uuid.UUID, now time.Time) ([]domain.TriggeredAlert, error)
}

type alertServiceHandler struct {
	AlertRuleRepository   repository.AlertRuleRepository
	LedgerEntryRepository repository.LedgerEntryRepository
	BudgetRepository      repository.BudgetRepository
	GoalRepository        repository.GoalRepository
	EmailService          EmailService
}

func NewAlertService(
	alertRuleRepository repository.AlertRuleRepository,
	ledgerEntryRepository repository.LedgerEntryRepository,
	budgetRepository repository.BudgetRepository,
	goalRepository repository.GoalRepository,
	emailService EmailService,
) AlertService {
	return alertServiceHandler{
		AlertRuleRepository:   alertRuleRepository,
		LedgerEntryRepository: ledgerEntryRepository,
		BudgetRepository:      budgetRepository,
		GoalRepository:        goalRepository,
		EmailService:          emailService,
	}
}

func (h alertServiceHandler) EvaluateRules(ctx context.Context, userID uuid.UUID, now time.Time) ([]domain.TriggeredAlert, error) {
	log := logger.FromContext(ctx)

	rules, err := h.AlertRuleRepository.List(repository.AlertRuleListFilter{
		UserID:      userID,
		EnabledOnly: true,
	})
	if err != nil {
		return nil, err
	}
	if len(rules) == 0 {
		return []domain.TriggeredAlert{}, nil
	}

	entries, err := h.LedgerEntryRepository.List(repository.LedgerEntryListFilter{
		UserID: userID,
	})
	if err != nil {
		return nil, err
	}
	budgets, err := h.BudgetRepository.List(userID)
	if err != nil {
		return nil, err
	}
	goals, err := h.GoalRepository.List(userID)
	if err != nil {
		return nil, err
	}

	variables := constructAlertVariables(entries, now)
	functions := constructAlertFunctionMap(entries, budgets, goals, now)

	eval := goval.NewEvaluator()
	triggered := []domain.TriggeredAlert{}
	for _, rule := range rules {
		result, err := eval.Evaluate(rule.Expression, variables, functions)
		if err != nil {
			log.Warnf("failed to evaluate alert rule %s (%q): %v", rule.ID, rule.Expression, err)
			continue
		}
		fired, ok := result.(bool)
		if !ok {
			log.Warnf("alert rule %s (%q) did not evaluate to a boolean", rule.ID, rule.Expression)
			continue
		}
		if !fired {
			continue
		}

		alert := domain.TriggeredAlert{
			RuleID:      rule.ID,
			RuleName:    rule.Name,
			Expression:  rule.Expression,
			TriggeredAt: now,
			Message:     fmt.Sprintf("alert %q fired: condition %q is true", rule.Name, rule.Expression),
		}
		err = h.AlertRuleRepository.AddTriggered(model.TriggeredAlert{
			AlertRuleID: rule.ID,
			Message:     alert.Message,
			TriggeredAt: now,
		})
		if err != nil {
			return nil, err
		}

		if rule.Email != nil {
			err = h.EmailService.SendAlertEmail(rule, alert)
			if err != nil {
				log.Warnf("failed to send alert email for rule %s: %v", rule.ID, err)
			}
		}

		triggered = append(triggered, alert)
	}

	return triggered, nil
}

func constructAlertVariables(entries []domain.LedgerEntry, now time.Time) map[string]interface{} {
	averages := calculator.ComputeHistoricalAverages(entries)

	currentMonthKey := now.UTC().Format("2006-01")
	monthlySpending := decimal.Zero
	monthlyIncome := decimal.Zero
	balance := decimal.Zero
	for _, entry := range entries {
		switch entry.Kind {
		case domain.EntryKind_Income:
			balance = balance.Add(entry.Amount)
			if entry.MonthKey() == currentMonthKey {
				monthlyIncome = monthlyIncome.Add(entry.Amount)
			}
		case domain.EntryKind_Expense:
			balance = balance.Sub(entry.Amount)
			if entry.MonthKey() == currentMonthKey {
				monthlySpending = monthlySpending.Add(entry.Amount)
			}
		}
	}

	return map[string]interface{}{
		"monthlySpending":    monthlySpending.InexactFloat64(),
		"monthlyIncome":      monthlyIncome.InexactFloat64(),
		"avgMonthlySpending": averages.AvgMonthlyExpenses.InexactFloat64(),
		"avgMonthlyIncome":   averages.AvgMonthlyIncome.InexactFloat64(),
		"balance":            balance.InexactFloat64(),
	}
}

func constructAlertFunctionMap(
	entries []domain.LedgerEntry,
	budgets []model.Budget,
	goals []model.Goal,
	now time.Time,
) map[string]goval.ExpressionFunction {
	return map[string]goval.ExpressionFunction{
		// budgetLimit(category)
		"budgetLimit": func(args ...interface{}) (interface{}, error) {
			if len(args) < 1 {
				return 0, fmt.Errorf("budgetLimit needs 1 arg, got %d", len(args))
			}
			category, ok := args[0].(string)
			if !ok {
				return 0, fmt.Errorf("budgetLimit arg must be a string")
			}
			for _, budget := range budgets {
				if budget.Category == category {
					return budget.LimitAmount.InexactFloat64(), nil
				}
			}
			return 0, fmt.Errorf("no budget for category %q", category)
		},

		// spentOn(category) - current month expenses in the category
		"spentOn": func(args ...interface{}) (interface{}, error) {
			if len(args) < 1 {
				return 0, fmt.Errorf("spentOn needs 1 arg, got %d", len(args))
			}
			category, ok := args[0].(string)
			if !ok {
				return 0, fmt.Errorf("spentOn arg must be a string")
			}
			currentMonthKey := now.UTC().Format("2006-01")
			spent := decimal.Zero
			for _, entry := range entries {
				if entry.Kind == domain.EntryKind_Expense &&
					entry.Category == category &&
					entry.MonthKey() == currentMonthKey {
					spent = spent.Add(entry.Amount)
				}
			}
			return spent.InexactFloat64(), nil
		},

		// goalProgress(name) - percent of the target amount reached
		"goalProgress": func(args ...interface{}) (interface{}, error) {
			if len(args) < 1 {
				return 0, fmt.Errorf("goalProgress needs 1 arg, got %d", len(args))
			}
			name, ok := args[0].(string)
			if !ok {
				return 0, fmt.Errorf("goalProgress arg must be a string")
			}
			for _, goal := range goals {
				if goal.Name == name {
					if !goal.TargetAmount.IsPositive() {
						return 0.0, nil
					}
					progress := goal.CurrentAmount.
						Div(goal.TargetAmount).
						Mul(decimal.NewFromInt(100))
					return progress.InexactFloat64(), nil
				}
			}
			return 0, fmt.Errorf("no goal named %q", name)
		},
	}
}
