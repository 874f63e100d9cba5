package service

import (
	"testing"
	"time"

	"fintrack/internal/domain"
	mock_repository "fintrack/internal/repository/mocks"
	"fintrack/internal/util"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_emailServiceHandler_GenerateAlertEmail(t *testing.T) {
	handler := &emailServiceHandler{}

	rule := domain.AlertRule{
		ID:         uuid.New(),
		Name:       "overspending",
		Expression: "monthlySpending > 1000",
		Email:      util.StringPointer("user@example.com"),
	}
	alert := domain.TriggeredAlert{
		RuleID:      rule.ID,
		RuleName:    rule.Name,
		Expression:  rule.Expression,
		TriggeredAt: time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC),
		Message:     `alert "overspending" fired: condition "monthlySpending > 1000" is true`,
	}

	subject, body, err := handler.GenerateAlertEmail(rule, alert)
	require.NoError(t, err)
	require.Equal(t, "Alert: overspending", subject)
	require.Contains(t, body, "<strong>overspending</strong>")
	require.Contains(t, body, "Jun 15, 2025")
	require.Contains(t, body, "monthlySpending &gt; 1000")
}

func Test_emailServiceHandler_SendAlertEmail(t *testing.T) {
	t.Run("renders and forwards to the email repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		emailRepository := mock_repository.NewMockEmailRepository(ctrl)
		handler := NewEmailService(emailRepository)

		rule := domain.AlertRule{
			ID:    uuid.New(),
			Name:  "low balance",
			Email: util.StringPointer("user@example.com"),
		}
		emailRepository.EXPECT().
			SendEmail("user@example.com", "Alert: low balance", gomock.Any()).
			Return(nil)

		err := handler.SendAlertEmail(rule, domain.TriggeredAlert{RuleName: rule.Name})
		require.NoError(t, err)
	})

	t.Run("requires a recipient address", func(t *testing.T) {
		handler := &emailServiceHandler{}

		err := handler.SendAlertEmail(domain.AlertRule{ID: uuid.New()}, domain.TriggeredAlert{})
		require.ErrorContains(t, err, "no recipient address")
	})
}
