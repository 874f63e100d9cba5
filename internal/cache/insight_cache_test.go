package cache

import (
	"testing"
	"time"

	"fintrack/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func Test_InsightCache(t *testing.T) {
	t.Run("set then get", func(t *testing.T) {
		c := NewInsightCache(time.Minute)
		userID := uuid.New()
		insight := domain.Insight{
			Type:        domain.InsightType_Spending,
			UserID:      userID,
			Summary:     "groceries dominate your spending",
			GeneratedAt: time.Now().UTC(),
		}

		c.Set(insight)

		got, found := c.Get(userID, domain.InsightType_Spending)
		require.True(t, found)
		require.Equal(t, insight, *got)
	})

	t.Run("miss on unknown key", func(t *testing.T) {
		c := NewInsightCache(time.Minute)

		_, found := c.Get(uuid.New(), domain.InsightType_Savings)
		require.False(t, found)
	})

	t.Run("keys are scoped per type", func(t *testing.T) {
		c := NewInsightCache(time.Minute)
		userID := uuid.New()
		c.Set(domain.Insight{
			Type:    domain.InsightType_Spending,
			UserID:  userID,
			Summary: "spending insight",
		})

		_, found := c.Get(userID, domain.InsightType_Cashflow)
		require.False(t, found)
	})

	t.Run("expires after ttl", func(t *testing.T) {
		c := NewInsightCache(20 * time.Millisecond)
		userID := uuid.New()
		c.Set(domain.Insight{
			Type:    domain.InsightType_Savings,
			UserID:  userID,
			Summary: "save more",
		})

		time.Sleep(40 * time.Millisecond)

		_, found := c.Get(userID, domain.InsightType_Savings)
		require.False(t, found)
	})

	t.Run("invalidate drops all types for the user", func(t *testing.T) {
		c := NewInsightCache(time.Minute)
		userID := uuid.New()
		otherUserID := uuid.New()
		for _, insightType := range []domain.InsightType{
			domain.InsightType_Spending,
			domain.InsightType_Savings,
			domain.InsightType_Cashflow,
		} {
			c.Set(domain.Insight{Type: insightType, UserID: userID, Summary: "x"})
		}
		c.Set(domain.Insight{Type: domain.InsightType_Spending, UserID: otherUserID, Summary: "y"})

		c.Invalidate(userID)

		for _, insightType := range []domain.InsightType{
			domain.InsightType_Spending,
			domain.InsightType_Savings,
			domain.InsightType_Cashflow,
		} {
			_, found := c.Get(userID, insightType)
			require.False(t, found)
		}
		_, found := c.Get(otherUserID, domain.InsightType_Spending)
		require.True(t, found)
	})
}
