package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/Tecnavis/paycollection/internal/domain/collection"
	"github.com/Tecnavis/paycollection/internal/domain/shared"
	"github.com/Tecnavis/paycollection/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormEnrollmentRepository implements collection.EnrollmentRepository using GORM
type GormEnrollmentRepository struct {
	db *gorm.DB
}

// NewGormEnrollmentRepository creates a new GormEnrollmentRepository
func NewGormEnrollmentRepository(db *gorm.DB) *GormEnrollmentRepository {
	return &GormEnrollmentRepository{db: db}
}

// FindByID finds an enrollment by its ID
func (r *GormEnrollmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*collection.Enrollment, error) {
	var model models.EnrollmentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCustomerAndScheme finds the enrollment for a customer/scheme pair
func (r *GormEnrollmentRepository) FindByCustomerAndScheme(ctx context.Context, customerID, schemeID uuid.UUID) (*collection.Enrollment, error) {
	var model models.EnrollmentModel
	if err := r.db.WithContext(ctx).
		Where("customer_id = ? AND scheme_id = ?", customerID, schemeID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByScheme finds all enrollments in a scheme
func (r *GormEnrollmentRepository) FindByScheme(ctx context.Context, schemeID uuid.UUID) ([]collection.Enrollment, error) {
	var enrollmentModels []models.EnrollmentModel
	if err := r.db.WithContext(ctx).
		Where("scheme_id = ?", schemeID).
		Order("enrolled_date ASC, created_at ASC").
		Find(&enrollmentModels).Error; err != nil {
		return nil, err
	}
	enrollments := make([]collection.Enrollment, len(enrollmentModels))
	for i, model := range enrollmentModels {
		enrollments[i] = *model.ToDomain()
	}
	return enrollments, nil
}

// FindByCustomer finds all enrollments of a customer
func (r *GormEnrollmentRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]collection.Enrollment, error) {
	var enrollmentModels []models.EnrollmentModel
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("enrolled_date ASC, created_at ASC").
		Find(&enrollmentModels).Error; err != nil {
		return nil, err
	}
	enrollments := make([]collection.Enrollment, len(enrollmentModels))
	for i, model := range enrollmentModels {
		enrollments[i] = *model.ToDomain()
	}
	return enrollments, nil
}

// Exists checks whether a customer is already enrolled in a scheme
func (r *GormEnrollmentRepository) Exists(ctx context.Context, customerID, schemeID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.EnrollmentModel{}).
		Where("customer_id = ? AND scheme_id = ?", customerID, schemeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates an enrollment. A unique-index violation on the
// (customer_id, scheme_id) pair surfaces as ErrAlreadyExists so a racing
// duplicate enrollment cannot slip past the application-level check.
func (r *GormEnrollmentRepository) Save(ctx context.Context, enrollment *collection.Enrollment) error {
	model := models.EnrollmentModelFromDomain(enrollment)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if isUniqueViolation(err) {
			return shared.NewDomainError("ALREADY_EXISTS", "Customer is already enrolled in this scheme")
		}
		return err
	}
	return nil
}

// Delete removes an enrollment
func (r *GormEnrollmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.EnrollmentModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// isUniqueViolation detects unique-constraint errors from postgres (23505)
// and sqlite without tying the repository to one driver's error type.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "23505") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
