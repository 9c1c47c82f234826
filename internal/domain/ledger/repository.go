package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EntryFilter holds filtering options for ledger queries
type EntryFilter struct {
	EntryType *EntryType
	FromDate  *time.Time
	ToDate    *time.Time
}

// EntryRepository defines persistence operations for ledger entries
type EntryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Entry, error)
	// FindAllOrdered returns entries in ledger order: entry_date ASC,
	// created_at ASC, id ASC as the final tie-break.
	FindAllOrdered(ctx context.Context, filter EntryFilter) ([]Entry, error)
	Summarize(ctx context.Context, filter EntryFilter) (Summary, error)
	Save(ctx context.Context, entry *Entry) error
	Delete(ctx context.Context, id uuid.UUID) error
}
