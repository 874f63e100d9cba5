package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fintrack/internal/db/models/postgres/public/model"
	"fintrack/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type GoalRepository interface {
	Add(tx *sql.Tx, g model.Goal) (*model.Goal, error)
	Get(id uuid.UUID) (*model.Goal, error)
	List(userID uuid.UUID) ([]model.Goal, error)
	// AddContribution records the contribution row and bumps the goal's
	// current amount in the same transaction.
	AddContribution(tx *sql.Tx, goalID uuid.UUID, amount decimal.Decimal, date time.Time) (*model.Goal, error)
}

type goalRepositoryHandler struct {
	Db *sql.DB
}

func NewGoalRepository(db *sql.DB) GoalRepository {
	return goalRepositoryHandler{Db: db}
}

func (h goalRepositoryHandler) Add(tx *sql.Tx, g model.Goal) (*model.Goal, error) {
	g.GoalID = uuid.New()
	g.CreatedAt = time.Now().UTC()
	g.ModifiedAt = time.Now().UTC()

	query := table.Goal.
		INSERT(table.Goal.AllColumns).
		MODEL(g).
		RETURNING(table.Goal.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}
	out := model.Goal{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert goal: %w", err)
	}

	return &out, nil
}

func (h goalRepositoryHandler) Get(id uuid.UUID) (*model.Goal, error) {
	query := table.Goal.
		SELECT(table.Goal.AllColumns).
		WHERE(table.Goal.GoalID.EQ(postgres.UUID(id)))

	result := model.Goal{}
	err := query.Query(h.Db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get goal %s: %w", id, err)
	}

	return &result, nil
}

func (h goalRepositoryHandler) List(userID uuid.UUID) ([]model.Goal, error) {
	query := table.Goal.
		SELECT(table.Goal.AllColumns).
		WHERE(table.Goal.UserID.EQ(postgres.UUID(userID))).
		ORDER_BY(table.Goal.CreatedAt.ASC())

	result := []model.Goal{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	return result, nil
}

func (h goalRepositoryHandler) AddContribution(tx *sql.Tx, goalID uuid.UUID, amount decimal.Decimal, date time.Time) (*model.Goal, error) {
	contribution := model.GoalContribution{
		GoalContributionID: uuid.New(),
		GoalID:             goalID,
		Amount:             amount,
		Date:               date,
		CreatedAt:          time.Now().UTC(),
	}
	insertQuery := table.GoalContribution.
		INSERT(table.GoalContribution.AllColumns).
		MODEL(contribution)

	_, err := insertQuery.Exec(tx)
	if err != nil {
		return nil, fmt.Errorf("failed to insert goal contribution: %w", err)
	}

	updateQuery := table.Goal.
		UPDATE().
		SET(
			table.Goal.CurrentAmount.SET(table.Goal.CurrentAmount.ADD(postgres.Float(amount.InexactFloat64()))),
			table.Goal.ModifiedAt.SET(postgres.TimestampzT(time.Now().UTC())),
		).
		WHERE(table.Goal.GoalID.EQ(postgres.UUID(goalID))).
		RETURNING(table.Goal.AllColumns)

	out := model.Goal{}
	err = updateQuery.Query(tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to update goal amount: %w", err)
	}

	return &out, nil
}
