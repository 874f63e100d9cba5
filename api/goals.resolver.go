package api

import (
	"fmt"
	"time"

	"fintrack/internal/calculator"
	"fintrack/internal/db/models/postgres/public/model"
	"fintrack/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type addGoalRequest struct {
	UserID                      string           `json:"userID"`
	Name                        string           `json:"name"`
	TargetAmount                decimal.Decimal  `json:"targetAmount"`
	CurrentAmount               decimal.Decimal  `json:"currentAmount"`
	TargetDate                  *string          `json:"targetDate,omitempty"`
	MonthlyContribution         *decimal.Decimal `json:"monthlyContribution,omitempty"`
	ExpectedReturnAnnualPercent *decimal.Decimal `json:"expectedReturnAnnualPercent,omitempty"`
	Currency                    string           `json:"currency"`
}

func (h ApiHandler) addGoal(c *gin.Context) {
	var requestBody addGoalRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	userID, err := uuid.Parse(requestBody.UserID)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if requestBody.Name == "" {
		returnErrorJsonCode(fmt.Errorf("goal name must not be empty"), c, 400)
		return
	}
	if !requestBody.TargetAmount.IsPositive() {
		returnErrorJsonCode(fmt.Errorf("targetAmount must be positive"), c, 400)
		return
	}
	currency, err := domain.NewCurrency(requestBody.Currency)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	goal := model.Goal{
		UserID:                      userID,
		Name:                        requestBody.Name,
		TargetAmount:                requestBody.TargetAmount,
		CurrentAmount:               requestBody.CurrentAmount,
		MonthlyContribution:         requestBody.MonthlyContribution,
		ExpectedReturnAnnualPercent: requestBody.ExpectedReturnAnnualPercent,
		Currency:                    string(*currency),
	}
	if requestBody.TargetDate != nil {
		targetDate, err := time.Parse(time.DateOnly, *requestBody.TargetDate)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("unparseable targetDate %q", *requestBody.TargetDate), c, 400)
			return
		}
		goal.TargetDate = &targetDate
	}

	out, err := h.GoalRepository.Add(nil, goal)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, out)
}

func (h ApiHandler) listGoals(c *gin.Context) {
	userID, err := uuid.Parse(c.Query("userID"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid userID: %w", err), c, 400)
		return
	}

	goals, err := h.GoalRepository.List(userID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, goals)
}

type addContributionRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date"`
}

func (h ApiHandler) addGoalContribution(c *gin.Context) {
	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid goal id: %w", err), c, 400)
		return
	}

	var requestBody addContributionRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if !requestBody.Amount.IsPositive() {
		returnErrorJsonCode(fmt.Errorf("contribution amount must be positive"), c, 400)
		return
	}
	date, err := time.Parse(time.DateOnly, requestBody.Date)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("unparseable date %q", requestBody.Date), c, 400)
		return
	}

	tx, err := h.Db.Begin()
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	defer tx.Rollback()

	goal, err := h.GoalRepository.AddContribution(tx, goalID, requestBody.Amount, date.UTC())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	err = tx.Commit()
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to commit transaction: %w", err), c)
		return
	}

	c.JSON(200, goal)
}

func (h ApiHandler) goalProjection(c *gin.Context) {
	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid goal id: %w", err), c, 400)
		return
	}

	goal, err := h.GoalRepository.Get(goalID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	if goal == nil {
		returnErrorJsonCode(fmt.Errorf("goal %s not found", goalID), c, 404)
		return
	}

	projection := calculator.ComputeGoalProjection(goalSnapshotFromModel(*goal), time.Now().UTC())

	c.JSON(200, projection)
}

func goalSnapshotFromModel(goal model.Goal) domain.GoalSnapshot {
	return domain.GoalSnapshot{
		ID:                          goal.GoalID,
		Name:                        goal.Name,
		TargetAmount:                goal.TargetAmount,
		CurrentAmount:               goal.CurrentAmount,
		TargetDate:                  goal.TargetDate,
		MonthlyContribution:         goal.MonthlyContribution,
		ExpectedReturnAnnualPercent: goal.ExpectedReturnAnnualPercent,
		Currency:                    domain.Currency(goal.Currency),
	}
}
