package calculator

import (
	"testing"

	"fintrack/internal/domain"
	"fintrack/internal/util"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_ComputeGoalProjection(t *testing.T) {
	now := util.NewDate(2024, 3, 15)

	t.Run("already achieved", func(t *testing.T) {
		contribution := decimal.NewFromInt(100)
		out := ComputeGoalProjection(domain.GoalSnapshot{
			TargetAmount:        decimal.NewFromInt(1000),
			CurrentAmount:       decimal.NewFromInt(1200),
			MonthlyContribution: &contribution,
		}, now)

		require.True(t, out.ProgressPercent.Equal(decimal.NewFromInt(100)))
		require.True(t, out.RemainingAmount.IsZero())
		require.True(t, out.IsOnTrack)
		require.NotNil(t, out.ProjectedCompletionDate)
		require.True(t, out.ProjectedCompletionDate.Equal(now))
	})

	t.Run("zero target guards division", func(t *testing.T) {
		out := ComputeGoalProjection(domain.GoalSnapshot{
			TargetAmount:  decimal.Zero,
			CurrentAmount: decimal.NewFromInt(50),
		}, now)
		require.True(t, out.ProgressPercent.IsZero())
	})

	t.Run("progress rounds to two decimals and clamps at 100", func(t *testing.T) {
		out := ComputeGoalProjection(domain.GoalSnapshot{
			TargetAmount:  decimal.NewFromInt(3000),
			CurrentAmount: decimal.NewFromInt(1000),
		}, now)
		require.True(t, out.ProgressPercent.Equal(decimal.RequireFromString("33.33")),
			"got %s", out.ProgressPercent)
	})

	t.Run("no contribution plan means no completion date", func(t *testing.T) {
		out := ComputeGoalProjection(domain.GoalSnapshot{
			TargetAmount:  decimal.NewFromInt(1000),
			CurrentAmount: decimal.NewFromInt(100),
		}, now)
		require.Nil(t, out.ProjectedCompletionDate)
	})

	t.Run("linear projection without return rate", func(t *testing.T) {
		contribution := decimal.NewFromInt(300)
		out := ComputeGoalProjection(domain.GoalSnapshot{
			TargetAmount:        decimal.NewFromInt(1000),
			CurrentAmount:       decimal.NewFromInt(100),
			MonthlyContribution: &contribution,
		}, now)

		// ceil(900 / 300) = 3 months
		require.NotNil(t, out.ProjectedCompletionDate)
		require.True(t, out.ProjectedCompletionDate.Equal(now.AddDate(0, 3, 0)))
	})

	t.Run("compounding projection with return rate", func(t *testing.T) {
		contribution := decimal.NewFromInt(100)
		annualReturn := decimal.NewFromInt(12)
		out := ComputeGoalProjection(domain.GoalSnapshot{
			TargetAmount:                decimal.NewFromInt(1000),
			CurrentAmount:               decimal.Zero,
			MonthlyContribution:         &contribution,
			ExpectedReturnAnnualPercent: &annualReturn,
		}, now)

		// at 1% monthly growth the balance crosses 1000 in month 10
		require.NotNil(t, out.ProjectedCompletionDate)
		require.True(t, out.ProjectedCompletionDate.Equal(now.AddDate(0, 10, 0)),
			"got %s", out.ProjectedCompletionDate)
	})

	t.Run("unreachable goal hits the 100 year ceiling", func(t *testing.T) {
		contribution := decimal.NewFromInt(1)
		out := ComputeGoalProjection(domain.GoalSnapshot{
			TargetAmount:        decimal.New(1, 12), // 10^12
			CurrentAmount:       decimal.Zero,
			MonthlyContribution: &contribution,
		}, now)

		require.Nil(t, out.ProjectedCompletionDate)
	})

	t.Run("months remaining floors at zero for past target dates", func(t *testing.T) {
		past := now.AddDate(0, -2, 0)
		out := ComputeGoalProjection(domain.GoalSnapshot{
			TargetAmount:  decimal.NewFromInt(1000),
			CurrentAmount: decimal.NewFromInt(100),
			TargetDate:    &past,
		}, now)

		require.NotNil(t, out.MonthsRemaining)
		require.Equal(t, 0, *out.MonthsRemaining)
	})

	t.Run("months remaining is ceil of days over 30", func(t *testing.T) {
		target := now.AddDate(0, 0, 31)
		out := ComputeGoalProjection(domain.GoalSnapshot{
			TargetAmount:  decimal.NewFromInt(1000),
			CurrentAmount: decimal.NewFromInt(100),
			TargetDate:    &target,
		}, now)

		require.NotNil(t, out.MonthsRemaining)
		require.Equal(t, 2, *out.MonthsRemaining)
	})
}

func Test_isOnTrack(t *testing.T) {
	now := util.NewDate(2024, 3, 15)

	t.Run("no target date - on track iff any progress", func(t *testing.T) {
		funded := ComputeGoalProjection(domain.GoalSnapshot{
			TargetAmount:  decimal.NewFromInt(1000),
			CurrentAmount: decimal.NewFromInt(1),
		}, now)
		require.True(t, funded.IsOnTrack)

		unfunded := ComputeGoalProjection(domain.GoalSnapshot{
			TargetAmount:  decimal.NewFromInt(1000),
			CurrentAmount: decimal.Zero,
		}, now)
		require.False(t, unfunded.IsOnTrack)
	})

	t.Run("projection before target date is on track", func(t *testing.T) {
		contribution := decimal.NewFromInt(500)
		target := now.AddDate(0, 6, 0)
		out := ComputeGoalProjection(domain.GoalSnapshot{
			TargetAmount:        decimal.NewFromInt(1000),
			CurrentAmount:       decimal.Zero,
			MonthlyContribution: &contribution,
			TargetDate:          &target,
		}, now)

		require.True(t, out.IsOnTrack)
	})

	t.Run("projection after target date is off track", func(t *testing.T) {
		contribution := decimal.NewFromInt(50)
		target := now.AddDate(0, 6, 0)
		out := ComputeGoalProjection(domain.GoalSnapshot{
			TargetAmount:        decimal.NewFromInt(10000),
			CurrentAmount:       decimal.Zero,
			MonthlyContribution: &contribution,
			TargetDate:          &target,
		}, now)

		require.False(t, out.IsOnTrack)
	})

	t.Run("without contribution plan the elapsed-time heuristic applies", func(t *testing.T) {
		// ~6 months out: expected progress = 100 - (6/12)*100 = 50,
		// threshold = 40 with the 0.8 tolerance
		target := now.AddDate(0, 0, 180)

		ahead := ComputeGoalProjection(domain.GoalSnapshot{
			TargetAmount:  decimal.NewFromInt(1000),
			CurrentAmount: decimal.NewFromInt(450),
			TargetDate:    &target,
		}, now)
		require.True(t, ahead.IsOnTrack)

		behind := ComputeGoalProjection(domain.GoalSnapshot{
			TargetAmount:  decimal.NewFromInt(1000),
			CurrentAmount: decimal.NewFromInt(350),
			TargetDate:    &target,
		}, now)
		require.False(t, behind.IsOnTrack)
	})
}
