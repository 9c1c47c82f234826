package ledger

import (
	"strings"
	"time"

	"github.com/Tecnavis/paycollection/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryType is the direction of a ledger entry
type EntryType string

const (
	EntryCredit EntryType = "credit"
	EntryDebit  EntryType = "debit"
)

// IsValid checks if the entry type is a known value
func (t EntryType) IsValid() bool {
	return t == EntryCredit || t == EntryDebit
}

// Entry is a general-ledger line: a dated credit or debit with narration.
type Entry struct {
	shared.AuditedAggregateRoot
	EntryType EntryType
	EntryDate time.Time
	Amount    decimal.Decimal
	Narration string
}

// NewEntry creates a new ledger entry with validation
func NewEntry(entryType EntryType, entryDate time.Time, amount decimal.Decimal, narration string, createdBy uuid.UUID) (*Entry, error) {
	if !entryType.IsValid() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Entry type must be credit or debit")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Amount must be greater than zero")
	}
	if strings.TrimSpace(narration) == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Narration is required")
	}
	if entryDate.IsZero() {
		entryDate = time.Now()
	}
	return &Entry{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(createdBy),
		EntryType:            entryType,
		EntryDate:            entryDate,
		Amount:               amount,
		Narration:            narration,
	}, nil
}

// Signed returns the amount with its direction applied: positive for
// credits, negative for debits.
func (e *Entry) Signed() decimal.Decimal {
	if e.EntryType == EntryDebit {
		return e.Amount.Neg()
	}
	return e.Amount
}

// EntryPatch carries the fields of a partial ledger entry update
type EntryPatch struct {
	EntryType *EntryType
	EntryDate *time.Time
	Amount    *decimal.Decimal
	Narration *string
}

// Apply applies a patch to the entry with validation
func (e *Entry) Apply(patch EntryPatch, updatedBy uuid.UUID) error {
	if patch.EntryType != nil {
		if !patch.EntryType.IsValid() {
			return shared.NewDomainError("VALIDATION_ERROR", "Entry type must be credit or debit")
		}
		e.EntryType = *patch.EntryType
	}
	if patch.EntryDate != nil {
		e.EntryDate = *patch.EntryDate
	}
	if patch.Amount != nil {
		if !patch.Amount.IsPositive() {
			return shared.NewDomainError("VALIDATION_ERROR", "Amount must be greater than zero")
		}
		e.Amount = *patch.Amount
	}
	if patch.Narration != nil {
		if strings.TrimSpace(*patch.Narration) == "" {
			return shared.NewDomainError("VALIDATION_ERROR", "Narration is required")
		}
		e.Narration = *patch.Narration
	}
	e.Touch(updatedBy)
	return nil
}

// EntryWithBalance pairs a ledger entry with its running balance.
type EntryWithBalance struct {
	Entry
	RunningBalance decimal.Decimal
}

// ComputeRunningBalances folds entries into running balances. Input must
// already be in ledger order (entry_date ASC, created_at ASC, id ASC);
// the fold itself is then deterministic for the same data.
func ComputeRunningBalances(entries []Entry) []EntryWithBalance {
	out := make([]EntryWithBalance, len(entries))
	balance := decimal.Zero
	for i, e := range entries {
		balance = balance.Add(e.Signed())
		out[i] = EntryWithBalance{Entry: e, RunningBalance: balance}
	}
	return out
}

// Summary aggregates the ledger. Totals are always concrete values; an
// empty ledger reports 0.00, never null.
type Summary struct {
	TotalCredit decimal.Decimal
	TotalDebit  decimal.Decimal
	Balance     decimal.Decimal
}

// NewSummary builds a summary from credit and debit totals
func NewSummary(totalCredit, totalDebit decimal.Decimal) Summary {
	return Summary{
		TotalCredit: totalCredit,
		TotalDebit:  totalDebit,
		Balance:     totalCredit.Sub(totalDebit),
	}
}
