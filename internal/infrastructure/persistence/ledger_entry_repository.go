package persistence

import (
	"context"
	"errors"

	"github.com/Tecnavis/paycollection/internal/domain/ledger"
	"github.com/Tecnavis/paycollection/internal/domain/shared"
	"github.com/Tecnavis/paycollection/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormLedgerEntryRepository implements ledger.EntryRepository using GORM
type GormLedgerEntryRepository struct {
	db *gorm.DB
}

// NewGormLedgerEntryRepository creates a new GormLedgerEntryRepository
func NewGormLedgerEntryRepository(db *gorm.DB) *GormLedgerEntryRepository {
	return &GormLedgerEntryRepository{db: db}
}

// FindByID finds a ledger entry by its ID
func (r *GormLedgerEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Entry, error) {
	var model models.LedgerEntryModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllOrdered returns entries in ledger order: entry_date ASC,
// created_at ASC, id ASC. The id tie-break keeps the order (and the
// running balances computed from it) stable when entries share a date
// and creation timestamp.
func (r *GormLedgerEntryRepository) FindAllOrdered(ctx context.Context, filter ledger.EntryFilter) ([]ledger.Entry, error) {
	var entryModels []models.LedgerEntryModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.LedgerEntryModel{}), filter)
	if err := query.
		Order("entry_date ASC, created_at ASC, id ASC").
		Find(&entryModels).Error; err != nil {
		return nil, err
	}
	entries := make([]ledger.Entry, len(entryModels))
	for i, model := range entryModels {
		entries[i] = *model.ToDomain()
	}
	return entries, nil
}

// Summarize aggregates credits and debits in one query. COALESCE keeps an
// empty ledger at explicit zeros rather than nulls.
func (r *GormLedgerEntryRepository) Summarize(ctx context.Context, filter ledger.EntryFilter) (ledger.Summary, error) {
	var result struct {
		TotalCredit decimal.Decimal
		TotalDebit  decimal.Decimal
	}
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.LedgerEntryModel{}), filter)
	if err := query.
		Select("COALESCE(SUM(CASE WHEN entry_type = 'credit' THEN amount ELSE 0 END), 0) as total_credit, " +
			"COALESCE(SUM(CASE WHEN entry_type = 'debit' THEN amount ELSE 0 END), 0) as total_debit").
		Scan(&result).Error; err != nil {
		return ledger.Summary{}, err
	}
	return ledger.NewSummary(result.TotalCredit, result.TotalDebit), nil
}

func (r *GormLedgerEntryRepository) applyFilter(query *gorm.DB, filter ledger.EntryFilter) *gorm.DB {
	if filter.EntryType != nil {
		query = query.Where("entry_type = ?", *filter.EntryType)
	}
	if filter.FromDate != nil {
		query = query.Where("entry_date >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		query = query.Where("entry_date <= ?", *filter.ToDate)
	}
	return query
}

// Save creates or updates a ledger entry
func (r *GormLedgerEntryRepository) Save(ctx context.Context, entry *ledger.Entry) error {
	model := models.LedgerEntryModelFromDomain(entry)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes a ledger entry
func (r *GormLedgerEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.LedgerEntryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
