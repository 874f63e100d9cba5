package domain

import (
	"time"

	"github.com/google/uuid"
)

// AlertRule holds a boolean condition expression evaluated against the
// user's current figures, e.g. "monthlySpending > budgetLimit * 0.9" or
// "balance < 500". The expression grammar is plain goval arithmetic over
// the variables exposed by the alert service.
type AlertRule struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Name       string
	Expression string
	Enabled    bool
	Email      *string
}

type TriggeredAlert struct {
	RuleID      uuid.UUID `json:"ruleID"`
	RuleName    string    `json:"ruleName"`
	Expression  string    `json:"expression"`
	TriggeredAt time.Time `json:"triggeredAt"`
	Message     string    `json:"message"`
}
