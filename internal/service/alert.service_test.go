package service

import (
	"context"
	"testing"
	"time"

	"fintrack/internal/db/models/postgres/public/model"
	"fintrack/internal/domain"
	"fintrack/internal/repository"
	mock_repository "fintrack/internal/repository/mocks"
	mock_service "fintrack/internal/service/mocks"
	"fintrack/internal/util"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type alertServiceMocks struct {
	alertRuleRepository   *mock_repository.MockAlertRuleRepository
	ledgerEntryRepository *mock_repository.MockLedgerEntryRepository
	budgetRepository      *mock_repository.MockBudgetRepository
	goalRepository        *mock_repository.MockGoalRepository
	emailService          *mock_service.MockEmailService
}

func newAlertService(t *testing.T) (AlertService, alertServiceMocks) {
	ctrl := gomock.NewController(t)
	mocks := alertServiceMocks{
		alertRuleRepository:   mock_repository.NewMockAlertRuleRepository(ctrl),
		ledgerEntryRepository: mock_repository.NewMockLedgerEntryRepository(ctrl),
		budgetRepository:      mock_repository.NewMockBudgetRepository(ctrl),
		goalRepository:        mock_repository.NewMockGoalRepository(ctrl),
		emailService:          mock_service.NewMockEmailService(ctrl),
	}
	handler := NewAlertService(
		mocks.alertRuleRepository,
		mocks.ledgerEntryRepository,
		mocks.budgetRepository,
		mocks.goalRepository,
		mocks.emailService,
	)
	return handler, mocks
}

func Test_alertService_EvaluateRules(t *testing.T) {
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	userID := uuid.New()

	t.Run("no enabled rules skips the data fetch", func(t *testing.T) {
		handler, mocks := newAlertService(t)
		mocks.alertRuleRepository.EXPECT().
			List(repository.AlertRuleListFilter{UserID: userID, EnabledOnly: true}).
			Return([]domain.AlertRule{}, nil)

		triggered, err := handler.EvaluateRules(context.Background(), userID, now)
		require.NoError(t, err)
		require.Empty(t, triggered)
	})

	t.Run("spending rule fires, is recorded and emailed", func(t *testing.T) {
		handler, mocks := newAlertService(t)
		ruleID := uuid.New()
		mocks.alertRuleRepository.EXPECT().
			List(gomock.Any()).
			Return([]domain.AlertRule{{
				ID:         ruleID,
				UserID:     userID,
				Name:       "overspending",
				Expression: "monthlySpending > 1000",
				Enabled:    true,
				Email:      util.StringPointer("user@example.com"),
			}}, nil)
		mocks.ledgerEntryRepository.EXPECT().
			List(gomock.Any()).
			Return([]domain.LedgerEntry{
				expenseEntry(userID, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), 1500, "rent"),
			}, nil)
		mocks.budgetRepository.EXPECT().List(userID).Return([]model.Budget{}, nil)
		mocks.goalRepository.EXPECT().List(userID).Return([]model.Goal{}, nil)
		mocks.alertRuleRepository.EXPECT().
			AddTriggered(gomock.Any()).
			DoAndReturn(func(ta model.TriggeredAlert) error {
				require.Equal(t, ruleID, ta.AlertRuleID)
				require.Equal(t, now, ta.TriggeredAt)
				return nil
			})
		mocks.emailService.EXPECT().
			SendAlertEmail(gomock.Any(), gomock.Any()).
			DoAndReturn(func(rule domain.AlertRule, alert domain.TriggeredAlert) error {
				require.Equal(t, "overspending", rule.Name)
				require.Equal(t, "overspending", alert.RuleName)
				return nil
			})

		triggered, err := handler.EvaluateRules(context.Background(), userID, now)
		require.NoError(t, err)
		require.Len(t, triggered, 1)
		require.Equal(t, "overspending", triggered[0].RuleName)
	})

	t.Run("rule that does not fire stays silent", func(t *testing.T) {
		handler, mocks := newAlertService(t)
		mocks.alertRuleRepository.EXPECT().
			List(gomock.Any()).
			Return([]domain.AlertRule{{
				ID:         uuid.New(),
				UserID:     userID,
				Name:       "low balance",
				Expression: "balance < 0",
				Enabled:    true,
			}}, nil)
		mocks.ledgerEntryRepository.EXPECT().
			List(gomock.Any()).
			Return([]domain.LedgerEntry{
				incomeEntry(userID, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), 3000),
			}, nil)
		mocks.budgetRepository.EXPECT().List(userID).Return([]model.Budget{}, nil)
		mocks.goalRepository.EXPECT().List(userID).Return([]model.Goal{}, nil)

		triggered, err := handler.EvaluateRules(context.Background(), userID, now)
		require.NoError(t, err)
		require.Empty(t, triggered)
	})

	t.Run("budget function resolves against the budget table", func(t *testing.T) {
		handler, mocks := newAlertService(t)
		mocks.alertRuleRepository.EXPECT().
			List(gomock.Any()).
			Return([]domain.AlertRule{{
				ID:         uuid.New(),
				UserID:     userID,
				Name:       "groceries near limit",
				Expression: `spentOn("groceries") > budgetLimit("groceries") * 0.9`,
				Enabled:    true,
			}}, nil)
		mocks.ledgerEntryRepository.EXPECT().
			List(gomock.Any()).
			Return([]domain.LedgerEntry{
				expenseEntry(userID, time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC), 280, "groceries"),
			}, nil)
		mocks.budgetRepository.EXPECT().List(userID).Return([]model.Budget{{
			BudgetID:    uuid.New(),
			UserID:      userID,
			Category:    "groceries",
			LimitAmount: decimal.NewFromInt(300),
		}}, nil)
		mocks.goalRepository.EXPECT().List(userID).Return([]model.Goal{}, nil)
		mocks.alertRuleRepository.EXPECT().AddTriggered(gomock.Any()).Return(nil)

		triggered, err := handler.EvaluateRules(context.Background(), userID, now)
		require.NoError(t, err)
		require.Len(t, triggered, 1)
	})

	t.Run("goal progress function", func(t *testing.T) {
		handler, mocks := newAlertService(t)
		mocks.alertRuleRepository.EXPECT().
			List(gomock.Any()).
			Return([]domain.AlertRule{{
				ID:         uuid.New(),
				UserID:     userID,
				Name:       "emergency fund behind",
				Expression: `goalProgress("emergency fund") < 50`,
				Enabled:    true,
			}}, nil)
		mocks.ledgerEntryRepository.EXPECT().List(gomock.Any()).Return([]domain.LedgerEntry{}, nil)
		mocks.budgetRepository.EXPECT().List(userID).Return([]model.Budget{}, nil)
		mocks.goalRepository.EXPECT().List(userID).Return([]model.Goal{{
			GoalID:        uuid.New(),
			UserID:        userID,
			Name:          "emergency fund",
			TargetAmount:  decimal.NewFromInt(10000),
			CurrentAmount: decimal.NewFromInt(2500),
		}}, nil)
		mocks.alertRuleRepository.EXPECT().AddTriggered(gomock.Any()).Return(nil)

		triggered, err := handler.EvaluateRules(context.Background(), userID, now)
		require.NoError(t, err)
		require.Len(t, triggered, 1)
	})

	t.Run("broken expression is skipped without failing the sweep", func(t *testing.T) {
		handler, mocks := newAlertService(t)
		mocks.alertRuleRepository.EXPECT().
			List(gomock.Any()).
			Return([]domain.AlertRule{
				{
					ID:         uuid.New(),
					UserID:     userID,
					Name:       "broken",
					Expression: "monthlySpending >",
					Enabled:    true,
				},
				{
					ID:         uuid.New(),
					UserID:     userID,
					Name:       "works",
					Expression: "monthlySpending > 100",
					Enabled:    true,
				},
			}, nil)
		mocks.ledgerEntryRepository.EXPECT().
			List(gomock.Any()).
			Return([]domain.LedgerEntry{
				expenseEntry(userID, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), 200, "rent"),
			}, nil)
		mocks.budgetRepository.EXPECT().List(userID).Return([]model.Budget{}, nil)
		mocks.goalRepository.EXPECT().List(userID).Return([]model.Goal{}, nil)
		mocks.alertRuleRepository.EXPECT().AddTriggered(gomock.Any()).Return(nil)

		triggered, err := handler.EvaluateRules(context.Background(), userID, now)
		require.NoError(t, err)
		require.Len(t, triggered, 1)
		require.Equal(t, "works", triggered[0].RuleName)
	})
}
