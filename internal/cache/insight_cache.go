package cache

import (
	"fmt"
	"time"

	"fintrack/internal/domain"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

const (
	DefaultInsightTtl = 15 * time.Minute

	// expired entries are swept proactively on this interval
	cleanupInterval = 10 * time.Minute
)

// InsightCache holds generated insights per (user, type) so repeated
// requests inside the TTL window skip the gpt call. Constructed once in
// InitializeDependencies and shared across requests.
type InsightCache struct {
	cache *gocache.Cache
}

func NewInsightCache(ttl time.Duration) *InsightCache {
	return &InsightCache{
		cache: gocache.New(ttl, cleanupInterval),
	}
}

func insightKey(userID uuid.UUID, insightType domain.InsightType) string {
	return fmt.Sprintf("insight-%s-%s", userID, insightType)
}

func (c *InsightCache) Get(userID uuid.UUID, insightType domain.InsightType) (*domain.Insight, bool) {
	value, found := c.cache.Get(insightKey(userID, insightType))
	if !found {
		return nil, false
	}
	insight, ok := value.(domain.Insight)
	if !ok {
		return nil, false
	}
	return &insight, true
}

func (c *InsightCache) Set(insight domain.Insight) {
	c.cache.Set(insightKey(insight.UserID, insight.Type), insight, gocache.DefaultExpiration)
}

// Flush drops every cached insight. The periodic sweep of expired
// entries is handled by go-cache's janitor, started in New.
func (c *InsightCache) Flush() {
	c.cache.Flush()
}

// Invalidate drops all cached insights for the user. Called when new
// ledger entries land, since every insight type reads from the ledger.
func (c *InsightCache) Invalidate(userID uuid.UUID) {
	for _, insightType := range []domain.InsightType{
		domain.InsightType_Spending,
		domain.InsightType_Savings,
		domain.InsightType_Cashflow,
	} {
		c.cache.Delete(insightKey(userID, insightType))
	}
}
