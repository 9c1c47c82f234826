package models

import (
	"time"

	"github.com/Tecnavis/paycollection/internal/domain/ledger"
	"github.com/shopspring/decimal"
)

// LedgerEntryModel is the persistence model for general ledger entries
type LedgerEntryModel struct {
	AuditedAggregateModel
	EntryType string          `gorm:"type:varchar(10);not null;index"`
	EntryDate time.Time       `gorm:"type:date;not null;index"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Narration string          `gorm:"type:text;not null"`
}

// TableName specifies the table name
func (LedgerEntryModel) TableName() string {
	return "ledger_entries"
}

// ToDomain converts the model to a domain ledger entry
func (m *LedgerEntryModel) ToDomain() *ledger.Entry {
	e := &ledger.Entry{
		EntryType: ledger.EntryType(m.EntryType),
		EntryDate: m.EntryDate,
		Amount:    m.Amount,
		Narration: m.Narration,
	}
	m.PopulateAuditedAggregateRoot(&e.AuditedAggregateRoot)
	return e
}

// LedgerEntryModelFromDomain converts a domain ledger entry to the persistence model
func LedgerEntryModelFromDomain(e *ledger.Entry) *LedgerEntryModel {
	m := &LedgerEntryModel{
		EntryType: string(e.EntryType),
		EntryDate: e.EntryDate,
		Amount:    e.Amount,
		Narration: e.Narration,
	}
	m.FromDomainAuditedAggregateRoot(e.AuditedAggregateRoot)
	return m
}
