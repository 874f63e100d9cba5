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

type JournalEntryRepository interface {
	Add(tx *sql.Tx, je model.JournalEntry) (*model.JournalEntry, error)
	List(userID uuid.UUID) ([]model.JournalEntry, error)
	Delete(tx *sql.Tx, userID, journalEntryID uuid.UUID) error
}

type journalEntryRepositoryHandler struct {
	Db *sql.DB
}

func NewJournalEntryRepository(db *sql.DB) JournalEntryRepository {
	return journalEntryRepositoryHandler{Db: db}
}

func (h journalEntryRepositoryHandler) Add(tx *sql.Tx, je model.JournalEntry) (*model.JournalEntry, error) {
	je.JournalEntryID = uuid.New()
	je.CreatedAt = time.Now().UTC()
	je.ModifiedAt = time.Now().UTC()

	query := table.JournalEntry.
		INSERT(table.JournalEntry.AllColumns).
		MODEL(je).
		RETURNING(table.JournalEntry.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}
	out := model.JournalEntry{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert journal entry: %w", err)
	}

	return &out, nil
}

func (h journalEntryRepositoryHandler) List(userID uuid.UUID) ([]model.JournalEntry, error) {
	query := table.JournalEntry.
		SELECT(table.JournalEntry.AllColumns).
		WHERE(table.JournalEntry.UserID.EQ(postgres.UUID(userID))).
		ORDER_BY(table.JournalEntry.Date.DESC())

	result := []model.JournalEntry{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}

	return result, nil
}

func (h journalEntryRepositoryHandler) Delete(tx *sql.Tx, userID, journalEntryID uuid.UUID) error {
	query := table.JournalEntry.
		DELETE().
		WHERE(postgres.AND(
			table.JournalEntry.JournalEntryID.EQ(postgres.UUID(journalEntryID)),
			table.JournalEntry.UserID.EQ(postgres.UUID(userID)),
		))

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}
	result, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to delete journal entry: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("journal entry %s not found", journalEntryID)
	}

	return nil
}
