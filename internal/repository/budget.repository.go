package repository

import (
	"database/sql"
	"fmt"
	"time"

	"fintrack/internal/db/models/postgres/public/model"
	"fintrack/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type BudgetRepository interface {
	Add(tx *sql.Tx, b model.Budget) (*model.Budget, error)
	List(userID uuid.UUID) ([]model.Budget, error)
	Delete(tx *sql.Tx, userID, budgetID uuid.UUID) error
}

type budgetRepositoryHandler struct {
	Db *sql.DB
}

func NewBudgetRepository(db *sql.DB) BudgetRepository {
	return budgetRepositoryHandler{Db: db}
}

func (h budgetRepositoryHandler) Add(tx *sql.Tx, b model.Budget) (*model.Budget, error) {
	b.BudgetID = uuid.New()
	b.CreatedAt = time.Now().UTC()

	query := table.Budget.
		INSERT(table.Budget.AllColumns).
		MODEL(b).
		RETURNING(table.Budget.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}
	out := model.Budget{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert budget: %w", err)
	}

	return &out, nil
}

func (h budgetRepositoryHandler) List(userID uuid.UUID) ([]model.Budget, error) {
	query := table.Budget.
		SELECT(table.Budget.AllColumns).
		WHERE(table.Budget.UserID.EQ(postgres.UUID(userID))).
		ORDER_BY(table.Budget.Category.ASC())

	result := []model.Budget{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	return result, nil
}

func (h budgetRepositoryHandler) Delete(tx *sql.Tx, userID, budgetID uuid.UUID) error {
	query := table.Budget.
		DELETE().
		WHERE(postgres.AND(
			table.Budget.BudgetID.EQ(postgres.UUID(budgetID)),
			table.Budget.UserID.EQ(postgres.UUID(userID)),
		))

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}
	result, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("budget %s not found", budgetID)
	}

	return nil
}
