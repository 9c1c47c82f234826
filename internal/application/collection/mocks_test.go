package collection

import (
	"context"

	"github.com/Tecnavis/paycollection/internal/domain/collection"
	"github.com/Tecnavis/paycollection/internal/domain/partner"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// =============================================================================
// Mock Repositories
// =============================================================================

// MockSchemeRepository is a mock implementation of collection.SchemeRepository
type MockSchemeRepository struct {
	mock.Mock
}

func (m *MockSchemeRepository) FindByID(ctx context.Context, id uuid.UUID) (*collection.Scheme, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*collection.Scheme), args.Error(1)
}

func (m *MockSchemeRepository) FindBySchemeNumber(ctx context.Context, schemeNumber string) (*collection.Scheme, error) {
	args := m.Called(ctx, schemeNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*collection.Scheme), args.Error(1)
}

func (m *MockSchemeRepository) FindAll(ctx context.Context, filter collection.SchemeFilter) ([]collection.Scheme, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]collection.Scheme), args.Error(1)
}

func (m *MockSchemeRepository) Count(ctx context.Context, filter collection.SchemeFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSchemeRepository) ExistsBySchemeNumber(ctx context.Context, schemeNumber string) (bool, error) {
	args := m.Called(ctx, schemeNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockSchemeRepository) ExistsByName(ctx context.Context, name string, excludeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSchemeRepository) Save(ctx context.Context, scheme *collection.Scheme) error {
	args := m.Called(ctx, scheme)
	return args.Error(0)
}

func (m *MockSchemeRepository) SaveWithLock(ctx context.Context, scheme *collection.Scheme) error {
	args := m.Called(ctx, scheme)
	return args.Error(0)
}

func (m *MockSchemeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEnrollmentRepository is a mock implementation of collection.EnrollmentRepository
type MockEnrollmentRepository struct {
	mock.Mock
}

func (m *MockEnrollmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*collection.Enrollment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*collection.Enrollment), args.Error(1)
}

func (m *MockEnrollmentRepository) FindByCustomerAndScheme(ctx context.Context, customerID, schemeID uuid.UUID) (*collection.Enrollment, error) {
	args := m.Called(ctx, customerID, schemeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*collection.Enrollment), args.Error(1)
}

func (m *MockEnrollmentRepository) FindByScheme(ctx context.Context, schemeID uuid.UUID) ([]collection.Enrollment, error) {
	args := m.Called(ctx, schemeID)
	return args.Get(0).([]collection.Enrollment), args.Error(1)
}

func (m *MockEnrollmentRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]collection.Enrollment, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]collection.Enrollment), args.Error(1)
}

func (m *MockEnrollmentRepository) Exists(ctx context.Context, customerID, schemeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, customerID, schemeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEnrollmentRepository) Save(ctx context.Context, enrollment *collection.Enrollment) error {
	args := m.Called(ctx, enrollment)
	return args.Error(0)
}

func (m *MockEnrollmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEntryRepository is a mock implementation of collection.EntryRepository
type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*collection.Entry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*collection.Entry), args.Error(1)
}

func (m *MockEntryRepository) FindByEnrollment(ctx context.Context, enrollmentID uuid.UUID) ([]collection.Entry, error) {
	args := m.Called(ctx, enrollmentID)
	return args.Get(0).([]collection.Entry), args.Error(1)
}

func (m *MockEntryRepository) SumByEnrollment(ctx context.Context, enrollmentID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, enrollmentID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockEntryRepository) SumByEnrollmentExcluding(ctx context.Context, enrollmentID, excludeEntryID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, enrollmentID, excludeEntryID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockEntryRepository) RecordGuarded(ctx context.Context, entry *collection.Entry, schemeTotal decimal.Decimal) error {
	args := m.Called(ctx, entry, schemeTotal)
	return args.Error(0)
}

func (m *MockEntryRepository) AmendGuarded(ctx context.Context, entry *collection.Entry, schemeTotal decimal.Decimal) error {
	args := m.Called(ctx, entry, schemeTotal)
	return args.Error(0)
}

func (m *MockEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCustomerRepository is a mock implementation of partner.CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByPhone(ctx context.Context, phone string) (*partner.Customer, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context, filter partner.CustomerFilter) ([]partner.Customer, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Count(ctx context.Context, filter partner.CustomerFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) ExistsByPhone(ctx context.Context, phone string, excludeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, phone, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
