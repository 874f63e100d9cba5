package repository

import (
	"database/sql"
	"fmt"
	"time"

	"fintrack/internal/db/models/postgres/public/model"
	"fintrack/internal/db/models/postgres/public/table"
	"fintrack/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type AlertRuleRepository interface {
	Add(tx *sql.Tx, ar model.AlertRule) (*model.AlertRule, error)
	List(filter AlertRuleListFilter) ([]domain.AlertRule, error)
	ListUsersWithEnabledRules() ([]uuid.UUID, error)
	AddTriggered(ta model.TriggeredAlert) error
	ListTriggered(userID uuid.UUID) ([]model.TriggeredAlert, error)
}

type alertRuleRepositoryHandler struct {
	Db *sql.DB
}

func NewAlertRuleRepository(db *sql.DB) AlertRuleRepository {
	return alertRuleRepositoryHandler{Db: db}
}

func (h alertRuleRepositoryHandler) Add(tx *sql.Tx, ar model.AlertRule) (*model.AlertRule, error) {
	ar.AlertRuleID = uuid.New()
	ar.CreatedAt = time.Now().UTC()

	query := table.AlertRule.
		INSERT(table.AlertRule.AllColumns).
		MODEL(ar).
		RETURNING(table.AlertRule.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}
	out := model.AlertRule{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert alert rule: %w", err)
	}

	return &out, nil
}

type AlertRuleListFilter struct {
	UserID      uuid.UUID
	EnabledOnly bool
}

func (h alertRuleRepositoryHandler) List(filter AlertRuleListFilter) ([]domain.AlertRule, error) {
	whereClauses := []postgres.BoolExpression{
		table.AlertRule.UserID.EQ(postgres.UUID(filter.UserID)),
	}
	if filter.EnabledOnly {
		whereClauses = append(whereClauses, table.AlertRule.Enabled.IS_TRUE())
	}

	query := table.AlertRule.
		SELECT(table.AlertRule.AllColumns).
		WHERE(postgres.AND(whereClauses...)).
		ORDER_BY(table.AlertRule.CreatedAt.ASC())

	result := []model.AlertRule{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list alert rules: %w", err)
	}

	out := []domain.AlertRule{}
	for _, row := range result {
		out = append(out, domain.AlertRule{
			ID:         row.AlertRuleID,
			UserID:     row.UserID,
			Name:       row.Name,
			Expression: row.Expression,
			Enabled:    row.Enabled,
			Email:      row.Email,
		})
	}

	return out, nil
}

// ListUsersWithEnabledRules returns the distinct users with at least one
// enabled rule, for the periodic evaluation sweep.
func (h alertRuleRepositoryHandler) ListUsersWithEnabledRules() ([]uuid.UUID, error) {
	query := postgres.
		SELECT(table.AlertRule.UserID).
		DISTINCT().
		FROM(table.AlertRule).
		WHERE(table.AlertRule.Enabled.IS_TRUE())

	result := []model.AlertRule{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list users with enabled rules: %w", err)
	}

	out := []uuid.UUID{}
	for _, row := range result {
		out = append(out, row.UserID)
	}

	return out, nil
}

func (h alertRuleRepositoryHandler) AddTriggered(ta model.TriggeredAlert) error {
	ta.TriggeredAlertID = uuid.New()

	query := table.TriggeredAlert.
		INSERT(table.TriggeredAlert.AllColumns).
		MODEL(ta)

	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to insert triggered alert: %w", err)
	}

	return nil
}

func (h alertRuleRepositoryHandler) ListTriggered(userID uuid.UUID) ([]model.TriggeredAlert, error) {
	query := table.TriggeredAlert.
		SELECT(table.TriggeredAlert.AllColumns).
		FROM(
			table.TriggeredAlert.
				INNER_JOIN(table.AlertRule, table.TriggeredAlert.AlertRuleID.EQ(table.AlertRule.AlertRuleID)),
		).
		WHERE(table.AlertRule.UserID.EQ(postgres.UUID(userID))).
		ORDER_BY(table.TriggeredAlert.TriggeredAt.DESC())

	result := []model.TriggeredAlert{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list triggered alerts: %w", err)
	}

	return result, nil
}
