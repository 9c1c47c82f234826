package collection

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SchemeFilter holds filtering options for scheme queries
type SchemeFilter struct {
	Search     string
	ActiveOnly bool
	Page       int
	PageSize   int
	OrderBy    string
	OrderDir   string
}

// SchemeRepository defines persistence operations for schemes
type SchemeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Scheme, error)
	FindBySchemeNumber(ctx context.Context, schemeNumber string) (*Scheme, error)
	FindAll(ctx context.Context, filter SchemeFilter) ([]Scheme, error)
	Count(ctx context.Context, filter SchemeFilter) (int64, error)
	ExistsBySchemeNumber(ctx context.Context, schemeNumber string) (bool, error)
	ExistsByName(ctx context.Context, name string, excludeID uuid.UUID) (bool, error)
	Save(ctx context.Context, scheme *Scheme) error
	SaveWithLock(ctx context.Context, scheme *Scheme) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// EnrollmentRepository defines persistence operations for enrollments
type EnrollmentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Enrollment, error)
	FindByCustomerAndScheme(ctx context.Context, customerID, schemeID uuid.UUID) (*Enrollment, error)
	FindByScheme(ctx context.Context, schemeID uuid.UUID) ([]Enrollment, error)
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]Enrollment, error)
	Exists(ctx context.Context, customerID, schemeID uuid.UUID) (bool, error)
	Save(ctx context.Context, enrollment *Enrollment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// EntryRepository defines persistence operations for payment entries.
// RecordGuarded and AmendGuarded run the overpayment check and the write
// in one transaction holding a lock on the enrollment row, so concurrent
// payments against the same enrollment serialize.
type EntryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Entry, error)
	FindByEnrollment(ctx context.Context, enrollmentID uuid.UUID) ([]Entry, error)
	SumByEnrollment(ctx context.Context, enrollmentID uuid.UUID) (decimal.Decimal, error)
	SumByEnrollmentExcluding(ctx context.Context, enrollmentID, excludeEntryID uuid.UUID) (decimal.Decimal, error)
	RecordGuarded(ctx context.Context, entry *Entry, schemeTotal decimal.Decimal) error
	AmendGuarded(ctx context.Context, entry *Entry, schemeTotal decimal.Decimal) error
	Delete(ctx context.Context, id uuid.UUID) error
}
