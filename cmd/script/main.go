package main

import (
	"context"
	"fintrack/cmd"
	"fintrack/internal/logger"
	"log"
	"time"

	_ "github.com/lib/pq"
)

// Runs the alert evaluation sweep for every user with enabled rules.
// Intended to be invoked on a schedule.
func main() {
	handler, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(handler)

	lg := logger.New()
	ctx := context.WithValue(context.Background(), logger.ContextKey, lg)

	userIDs, err := handler.AlertRuleRepository.ListUsersWithEnabledRules()
	if err != nil {
		log.Fatal(err)
	}

	now := time.Now().UTC()
	for _, userID := range userIDs {
		triggered, err := handler.AlertService.EvaluateRules(ctx, userID, now)
		if err != nil {
			lg.Errorf("failed to evaluate rules for %s: %v", userID, err)
			continue
		}
		lg.Infof("evaluated rules for %s: %d triggered", userID, len(triggered))
	}
}
