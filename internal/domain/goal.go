package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalSnapshot is the read-only view of a savings goal that the progress
// calculator derives from. Contribution recording mutates the stored goal
// elsewhere; the calculator never writes.
type GoalSnapshot struct {
	ID                          uuid.UUID
	Name                        string
	TargetAmount                decimal.Decimal
	CurrentAmount               decimal.Decimal
	TargetDate                  *time.Time
	MonthlyContribution         *decimal.Decimal
	ExpectedReturnAnnualPercent *decimal.Decimal
	Currency                    Currency
}

// GoalProjection is derived, never persisted. A nil
// ProjectedCompletionDate with a contribution plan present means the goal
// was judged unreachable within the simulation ceiling.
type GoalProjection struct {
	ProgressPercent         decimal.Decimal `json:"progressPercent"`
	RemainingAmount         decimal.Decimal `json:"remainingAmount"`
	ProjectedCompletionDate *time.Time      `json:"projectedCompletionDate,omitempty"`
	MonthsRemaining         *int            `json:"monthsRemaining,omitempty"`
	IsOnTrack               bool            `json:"isOnTrack"`
}
