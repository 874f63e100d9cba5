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

type LedgerEntryRepository interface {
	Add(tx *sql.Tx, le model.LedgerEntry) (*model.LedgerEntry, error)
	AddMany(tx *sql.Tx, les []model.LedgerEntry) error
	List(filter LedgerEntryListFilter) ([]domain.LedgerEntry, error)
	Delete(tx *sql.Tx, userID, ledgerEntryID uuid.UUID) error
}

type ledgerEntryRepositoryHandler struct {
	Db *sql.DB
}

func NewLedgerEntryRepository(db *sql.DB) LedgerEntryRepository {
	return ledgerEntryRepositoryHandler{Db: db}
}

func (h ledgerEntryRepositoryHandler) Add(tx *sql.Tx, le model.LedgerEntry) (*model.LedgerEntry, error) {
	le.LedgerEntryID = uuid.New()
	le.CreatedAt = time.Now().UTC()

	query := table.LedgerEntry.
		INSERT(table.LedgerEntry.AllColumns).
		MODEL(le).
		RETURNING(table.LedgerEntry.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}
	out := model.LedgerEntry{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert ledger entry: %w", err)
	}

	return &out, nil
}

func (h ledgerEntryRepositoryHandler) AddMany(tx *sql.Tx, les []model.LedgerEntry) error {
	if len(les) == 0 {
		return nil
	}
	now := time.Now().UTC()
	for i := range les {
		les[i].LedgerEntryID = uuid.New()
		les[i].CreatedAt = now
	}

	query := table.LedgerEntry.
		INSERT(table.LedgerEntry.AllColumns).
		MODELS(les)

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}
	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to insert %d ledger entries: %w", len(les), err)
	}

	return nil
}

type LedgerEntryListFilter struct {
	UserID   uuid.UUID
	MinDate  *time.Time
	MaxDate  *time.Time
	Category *string
}

func (h ledgerEntryRepositoryHandler) List(filter LedgerEntryListFilter) ([]domain.LedgerEntry, error) {
	whereClauses := []postgres.BoolExpression{
		table.LedgerEntry.UserID.EQ(postgres.UUID(filter.UserID)),
	}
	if filter.MinDate != nil {
		whereClauses = append(whereClauses, table.LedgerEntry.Date.GT_EQ(postgres.DateT(*filter.MinDate)))
	}
	if filter.MaxDate != nil {
		whereClauses = append(whereClauses, table.LedgerEntry.Date.LT_EQ(postgres.DateT(*filter.MaxDate)))
	}
	if filter.Category != nil {
		whereClauses = append(whereClauses, table.LedgerEntry.Category.EQ(postgres.String(*filter.Category)))
	}

	query := table.LedgerEntry.
		SELECT(table.LedgerEntry.AllColumns).
		WHERE(postgres.AND(whereClauses...)).
		ORDER_BY(table.LedgerEntry.Date.ASC())

	result := []model.LedgerEntry{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}

	out := []domain.LedgerEntry{}
	for _, row := range result {
		entry, err := ledgerEntryFromModel(row)
		if err != nil {
			return nil, err
		}
		out = append(out, *entry)
	}

	return out, nil
}

func (h ledgerEntryRepositoryHandler) Delete(tx *sql.Tx, userID, ledgerEntryID uuid.UUID) error {
	query := table.LedgerEntry.
		DELETE().
		WHERE(postgres.AND(
			table.LedgerEntry.LedgerEntryID.EQ(postgres.UUID(ledgerEntryID)),
			table.LedgerEntry.UserID.EQ(postgres.UUID(userID)),
		))

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}
	result, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to delete ledger entry: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("ledger entry %s not found", ledgerEntryID)
	}

	return nil
}

func ledgerEntryFromModel(m model.LedgerEntry) (*domain.LedgerEntry, error) {
	kind, err := domain.NewEntryKind(m.Kind)
	if err != nil {
		return nil, fmt.Errorf("ledger entry %s: %w", m.LedgerEntryID, err)
	}
	return &domain.LedgerEntry{
		ID:       m.LedgerEntryID,
		UserID:   m.UserID,
		Date:     m.Date,
		Amount:   m.Amount,
		Kind:     *kind,
		Category: m.Category,
		Note:     m.Note,
	}, nil
}
