package persistence

import (
	"context"
	"errors"

	"github.com/Tecnavis/paycollection/internal/domain/collection"
	"github.com/Tecnavis/paycollection/internal/domain/shared"
	"github.com/Tecnavis/paycollection/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCollectionEntryRepository implements collection.EntryRepository using GORM
type GormCollectionEntryRepository struct {
	db *gorm.DB
}

// NewGormCollectionEntryRepository creates a new GormCollectionEntryRepository
func NewGormCollectionEntryRepository(db *gorm.DB) *GormCollectionEntryRepository {
	return &GormCollectionEntryRepository{db: db}
}

// FindByID finds a payment entry by its ID
func (r *GormCollectionEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*collection.Entry, error) {
	var model models.CollectionEntryModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByEnrollment finds all entries of an enrollment, latest payment first
func (r *GormCollectionEntryRepository) FindByEnrollment(ctx context.Context, enrollmentID uuid.UUID) ([]collection.Entry, error) {
	var entryModels []models.CollectionEntryModel
	if err := r.db.WithContext(ctx).
		Where("enrollment_id = ?", enrollmentID).
		Order("payment_date DESC, created_at DESC").
		Find(&entryModels).Error; err != nil {
		return nil, err
	}
	entries := make([]collection.Entry, len(entryModels))
	for i, model := range entryModels {
		entries[i] = *model.ToDomain()
	}
	return entries, nil
}

// SumByEnrollment returns the exact paid total for an enrollment
func (r *GormCollectionEntryRepository) SumByEnrollment(ctx context.Context, enrollmentID uuid.UUID) (decimal.Decimal, error) {
	return sumEntries(r.db.WithContext(ctx), enrollmentID, uuid.Nil)
}

// SumByEnrollmentExcluding returns the paid total excluding one entry,
// used when re-checking the guard for an amendment.
func (r *GormCollectionEntryRepository) SumByEnrollmentExcluding(ctx context.Context, enrollmentID, excludeEntryID uuid.UUID) (decimal.Decimal, error) {
	return sumEntries(r.db.WithContext(ctx), enrollmentID, excludeEntryID)
}

func sumEntries(db *gorm.DB, enrollmentID, excludeEntryID uuid.UUID) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}
	query := db.Model(&models.CollectionEntryModel{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("enrollment_id = ?", enrollmentID)
	if excludeEntryID != uuid.Nil {
		query = query.Where("id <> ?", excludeEntryID)
	}
	if err := query.Scan(&result).Error; err != nil {
		return decimal.Zero, err
	}
	return result.Total, nil
}

// RecordGuarded persists a new payment entry, enforcing the overpayment
// guard in the same transaction. The enrollment row is locked first, so a
// concurrent payment against the same enrollment waits until this one
// commits and then sees its amount in the sum.
func (r *GormCollectionEntryRepository) RecordGuarded(ctx context.Context, entry *collection.Entry, schemeTotal decimal.Decimal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockEnrollment(tx, entry.EnrollmentID); err != nil {
			return err
		}

		alreadyPaid, err := sumEntries(tx, entry.EnrollmentID, uuid.Nil)
		if err != nil {
			return err
		}
		if err := collection.CheckOverpayment(schemeTotal, alreadyPaid, entry.Amount); err != nil {
			return err
		}

		model := models.CollectionEntryModelFromDomain(entry)
		return tx.Create(model).Error
	})
}

// AmendGuarded persists an amended entry. The guard re-check excludes the
// entry itself from the paid sum; the caller applies the amendment rule
// (only increased amounts need the re-check) by passing the already
// patched entry here in either case — a non-increased amount passes the
// check trivially since sum-excluding-self + new ≤ sum-excluding-self + old.
func (r *GormCollectionEntryRepository) AmendGuarded(ctx context.Context, entry *collection.Entry, schemeTotal decimal.Decimal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockEnrollment(tx, entry.EnrollmentID); err != nil {
			return err
		}

		paidExcludingSelf, err := sumEntries(tx, entry.EnrollmentID, entry.GetID())
		if err != nil {
			return err
		}
		if err := collection.CheckOverpayment(schemeTotal, paidExcludingSelf, entry.Amount); err != nil {
			return err
		}

		// Select("*") so zero-valued fields persist through the update
		model := models.CollectionEntryModelFromDomain(entry)
		result := tx.Model(model).
			Where("id = ? AND version = ?", entry.GetID(), entry.GetVersion()-1).
			Select("*").
			Updates(model)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrConcurrencyConflict
		}
		return nil
	})
}

// lockEnrollment takes a FOR UPDATE lock on the enrollment row so guarded
// writes against the same (customer, scheme) serialize. SQLite has no row
// locks but serializes writing transactions anyway, so the clause is
// skipped there.
func lockEnrollment(tx *gorm.DB, enrollmentID uuid.UUID) error {
	query := tx.Model(&models.EnrollmentModel{})
	if tx.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var model models.EnrollmentModel
	if err := query.First(&model, "id = ?", enrollmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shared.ErrNotFound
		}
		return err
	}
	return nil
}

// Delete voids a payment entry
func (r *GormCollectionEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.CollectionEntryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
