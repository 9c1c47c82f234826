package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/Tecnavis/paycollection/internal/domain/collection"
	"github.com/Tecnavis/paycollection/internal/domain/shared"
	"github.com/Tecnavis/paycollection/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSchemeRepository implements collection.SchemeRepository using GORM
type GormSchemeRepository struct {
	db *gorm.DB
}

// NewGormSchemeRepository creates a new GormSchemeRepository
func NewGormSchemeRepository(db *gorm.DB) *GormSchemeRepository {
	return &GormSchemeRepository{db: db}
}

// FindByID finds a scheme by its ID
func (r *GormSchemeRepository) FindByID(ctx context.Context, id uuid.UUID) (*collection.Scheme, error) {
	var model models.SchemeModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindBySchemeNumber finds a scheme by its scheme number
func (r *GormSchemeRepository) FindBySchemeNumber(ctx context.Context, schemeNumber string) (*collection.Scheme, error) {
	var model models.SchemeModel
	if err := r.db.WithContext(ctx).First(&model, "scheme_number = ?", schemeNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds schemes with filtering and pagination
func (r *GormSchemeRepository) FindAll(ctx context.Context, filter collection.SchemeFilter) ([]collection.Scheme, error) {
	var schemeModels []models.SchemeModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.SchemeModel{}), filter)

	sortField := ValidateSortField(filter.OrderBy, SchemeSortFields, "created_at")
	sortOrder := ValidateSortOrder(filter.OrderDir)
	query = query.Order(fmt.Sprintf("%s %s", sortField, sortOrder))

	if filter.PageSize > 0 {
		query = query.Limit(filter.PageSize)
		offset := (filter.Page - 1) * filter.PageSize
		if offset > 0 {
			query = query.Offset(offset)
		}
	}

	if err := query.Find(&schemeModels).Error; err != nil {
		return nil, err
	}
	schemes := make([]collection.Scheme, len(schemeModels))
	for i, model := range schemeModels {
		schemes[i] = *model.ToDomain()
	}
	return schemes, nil
}

// Count counts schemes matching the filter
func (r *GormSchemeRepository) Count(ctx context.Context, filter collection.SchemeFilter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.SchemeModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormSchemeRepository) applyFilter(query *gorm.DB, filter collection.SchemeFilter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("(scheme_number LIKE ? OR name LIKE ?)", pattern, pattern)
	}
	if filter.ActiveOnly {
		query = query.Where("active = ?", true)
	}
	return query
}

// ExistsBySchemeNumber checks if a scheme number is taken
func (r *GormSchemeRepository) ExistsBySchemeNumber(ctx context.Context, schemeNumber string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.SchemeModel{}).
		Where("scheme_number = ?", schemeNumber).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsByName checks if a scheme name is taken, optionally excluding one scheme
func (r *GormSchemeRepository) ExistsByName(ctx context.Context, name string, excludeID uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.SchemeModel{}).Where("name = ?", name)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a scheme
func (r *GormSchemeRepository) Save(ctx context.Context, scheme *collection.Scheme) error {
	model := models.SchemeModelFromDomain(scheme)
	return r.db.WithContext(ctx).Save(model).Error
}

// SaveWithLock saves the scheme with optimistic locking
func (r *GormSchemeRepository) SaveWithLock(ctx context.Context, scheme *collection.Scheme) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.SchemeModel
		if err := tx.Select("version").Where("id = ?", scheme.GetID()).First(&current).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				model := models.SchemeModelFromDomain(scheme)
				return tx.Create(model).Error
			}
			return err
		}

		// Domain model already incremented its version
		expectedVersion := scheme.GetVersion() - 1
		if current.Version != expectedVersion {
			return shared.ErrConcurrencyConflict
		}

		// Select("*") so zero-valued fields (e.g. active=false) persist
		model := models.SchemeModelFromDomain(scheme)
		result := tx.Model(model).
			Where("id = ? AND version = ?", scheme.GetID(), expectedVersion).
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

// Delete removes a scheme
func (r *GormSchemeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.SchemeModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
