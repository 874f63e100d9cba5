package domain

import (
	"time"

	"github.com/google/uuid"
)

// JournalEntry is a dated free-text note attached to the user's finances.
type JournalEntry struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Date   time.Time
	Title  string
	Body   string
}
