package ledger

import (
	"time"

	"github.com/Tecnavis/paycollection/internal/domain/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateEntryRequest represents a request to create a ledger entry
type CreateEntryRequest struct {
	EntryType string          `json:"entry_type" binding:"required,oneof=credit debit"`
	EntryDate *time.Time      `json:"entry_date"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Narration string          `json:"narration" binding:"required,min=1,max=500"`
}

// UpdateEntryRequest represents a partial ledger entry update
type UpdateEntryRequest struct {
	EntryType *string          `json:"entry_type" binding:"omitempty,oneof=credit debit"`
	EntryDate *time.Time       `json:"entry_date"`
	Amount    *decimal.Decimal `json:"amount"`
	Narration *string          `json:"narration" binding:"omitempty,min=1,max=500"`
}

// EntryListFilter represents filter options for the ledger listing
type EntryListFilter struct {
	EntryType string     `form:"entry_type" binding:"omitempty,oneof=credit debit"`
	FromDate  *time.Time `form:"from_date" time_format:"2006-01-02"`
	ToDate    *time.Time `form:"to_date" time_format:"2006-01-02"`
}

// EntryResponse represents a ledger entry with its running balance
type EntryResponse struct {
	ID             uuid.UUID       `json:"id"`
	EntryType      string          `json:"entry_type"`
	EntryDate      time.Time       `json:"entry_date"`
	Amount         decimal.Decimal `json:"amount"`
	Narration      string          `json:"narration"`
	RunningBalance decimal.Decimal `json:"running_balance"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	Version        int             `json:"version"`
}

// SummaryResponse aggregates the ledger. All three totals are concrete
// values; an empty ledger reports 0.00, never null.
type SummaryResponse struct {
	TotalCredit decimal.Decimal `json:"total_credit"`
	TotalDebit  decimal.Decimal `json:"total_debit"`
	Balance     decimal.Decimal `json:"balance"`
}

// ToEntryResponse converts a balanced ledger entry to a response DTO
func ToEntryResponse(entry ledger.EntryWithBalance) EntryResponse {
	return EntryResponse{
		ID:             entry.GetID(),
		EntryType:      string(entry.EntryType),
		EntryDate:      entry.EntryDate,
		Amount:         entry.Amount,
		Narration:      entry.Narration,
		RunningBalance: entry.RunningBalance,
		CreatedAt:      entry.GetCreatedAt(),
		UpdatedAt:      entry.GetUpdatedAt(),
		Version:        entry.GetVersion(),
	}
}
