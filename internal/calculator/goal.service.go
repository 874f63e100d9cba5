package calculator

import (
	"math"
	"time"

	"fintrack/internal/domain"

	"github.com/shopspring/decimal"
)

// hard ceiling on the compounding simulation - a goal that isn't reached
// within 100 years of contributions is reported as unreachable
const maxProjectionMonths = 1200

// the on-track heuristic compares progress against elapsed time on a
// nominal 12 month horizon, scaled by this tolerance
const onTrackToleranceFactor = 0.8

// ComputeGoalProjection derives the read-only progress fields for a
// savings goal snapshot. now is the reference time; nothing here reads the
// wall clock.
func ComputeGoalProjection(goal domain.GoalSnapshot, now time.Time) domain.GoalProjection {
	progressPercent := decimal.Zero
	if goal.TargetAmount.IsPositive() {
		progressPercent = goal.CurrentAmount.Div(goal.TargetAmount).Mul(oneHundred).Round(2)
		if progressPercent.GreaterThan(oneHundred) {
			progressPercent = oneHundred
		}
	}

	remaining := goal.TargetAmount.Sub(goal.CurrentAmount)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	projectedCompletionDate := projectCompletionDate(goal, remaining, now)

	var monthsRemaining *int
	if goal.TargetDate != nil {
		days := goal.TargetDate.Sub(now).Hours() / 24
		// calendar-approximate on purpose: 30-day months
		months := int(math.Ceil(days / 30))
		if months < 0 {
			months = 0
		}
		monthsRemaining = &months
	}

	return domain.GoalProjection{
		ProgressPercent:         progressPercent,
		RemainingAmount:         remaining,
		ProjectedCompletionDate: projectedCompletionDate,
		MonthsRemaining:         monthsRemaining,
		IsOnTrack:               isOnTrack(goal, progressPercent, projectedCompletionDate, monthsRemaining),
	}
}

func projectCompletionDate(goal domain.GoalSnapshot, remaining decimal.Decimal, now time.Time) *time.Time {
	if goal.MonthlyContribution == nil || !goal.MonthlyContribution.IsPositive() {
		return nil
	}
	if !remaining.IsPositive() {
		// already achieved
		t := now
		return &t
	}

	if goal.ExpectedReturnAnnualPercent == nil || goal.ExpectedReturnAnnualPercent.IsZero() {
		months := int(remaining.Div(*goal.MonthlyContribution).Ceil().IntPart())
		if months > maxProjectionMonths {
			return nil
		}
		t := now.AddDate(0, months, 0)
		return &t
	}

	monthlyGrowth := decimal.NewFromInt(1).Add(
		goal.ExpectedReturnAnnualPercent.Div(oneHundred).Div(twelve),
	)

	balance := goal.CurrentAmount
	for month := 1; month <= maxProjectionMonths; month++ {
		balance = balance.Mul(monthlyGrowth).Add(*goal.MonthlyContribution)
		if balance.GreaterThanOrEqual(goal.TargetAmount) {
			t := now.AddDate(0, month, 0)
			return &t
		}
	}

	// unreachable at the current contribution rate - a valid terminal
	// outcome, not an error
	return nil
}

func isOnTrack(
	goal domain.GoalSnapshot,
	progressPercent decimal.Decimal,
	projectedCompletionDate *time.Time,
	monthsRemaining *int,
) bool {
	if goal.TargetDate == nil {
		return goal.CurrentAmount.IsPositive()
	}
	if goal.CurrentAmount.GreaterThanOrEqual(goal.TargetAmount) {
		return true
	}
	if projectedCompletionDate == nil {
		// no completion projection - fall back to comparing progress
		// against elapsed time on a nominal 12 month horizon
		months := 0
		if monthsRemaining != nil {
			months = *monthsRemaining
		}
		expectedProgress := 100 - (float64(months)/12)*100
		threshold := expectedProgress * onTrackToleranceFactor
		return progressPercent.InexactFloat64() >= threshold
	}
	return !projectedCompletionDate.After(*goal.TargetDate)
}
