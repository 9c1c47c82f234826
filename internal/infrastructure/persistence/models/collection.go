package models

import (
	"time"

	"github.com/Tecnavis/paycollection/internal/domain/collection"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SchemeModel is the persistence model for collection schemes
type SchemeModel struct {
	AuditedAggregateModel
	SchemeNumber      string           `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name              string           `gorm:"type:varchar(255);not null;uniqueIndex"`
	Description       string           `gorm:"type:text"`
	TotalAmount       decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	Frequency         *string          `gorm:"type:varchar(20)"`
	InstallmentAmount *decimal.Decimal `gorm:"type:decimal(10,2)"`
	StartDate         time.Time        `gorm:"type:date;not null"`
	EndDate           *time.Time       `gorm:"type:date"`
	Active            bool             `gorm:"not null"`
}

// TableName specifies the table name
func (SchemeModel) TableName() string {
	return "schemes"
}

// ToDomain converts the model to a domain scheme
func (m *SchemeModel) ToDomain() *collection.Scheme {
	scheme := &collection.Scheme{
		SchemeNumber:      m.SchemeNumber,
		Name:              m.Name,
		Description:       m.Description,
		TotalAmount:       m.TotalAmount,
		InstallmentAmount: m.InstallmentAmount,
		StartDate:         m.StartDate,
		EndDate:           m.EndDate,
		Active:            m.Active,
	}
	if m.Frequency != nil {
		f := collection.CollectionFrequency(*m.Frequency)
		scheme.Frequency = &f
	}
	m.PopulateAuditedAggregateRoot(&scheme.AuditedAggregateRoot)
	return scheme
}

// SchemeModelFromDomain converts a domain scheme to the persistence model
func SchemeModelFromDomain(s *collection.Scheme) *SchemeModel {
	m := &SchemeModel{
		SchemeNumber:      s.SchemeNumber,
		Name:              s.Name,
		Description:       s.Description,
		TotalAmount:       s.TotalAmount,
		InstallmentAmount: s.InstallmentAmount,
		StartDate:         s.StartDate,
		EndDate:           s.EndDate,
		Active:            s.Active,
	}
	if s.Frequency != nil {
		f := string(*s.Frequency)
		m.Frequency = &f
	}
	m.FromDomainAuditedAggregateRoot(s.AuditedAggregateRoot)
	return m
}

// EnrollmentModel is the persistence model for scheme enrollments.
// The composite unique index enforces one enrollment per customer per scheme.
type EnrollmentModel struct {
	AuditedAggregateModel
	CustomerID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_enrollments_customer_scheme"`
	SchemeID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_enrollments_customer_scheme;index"`
	EnrolledDate time.Time `gorm:"type:date;not null"`
	Status       string    `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName specifies the table name
func (EnrollmentModel) TableName() string {
	return "enrollments"
}

// ToDomain converts the model to a domain enrollment
func (m *EnrollmentModel) ToDomain() *collection.Enrollment {
	e := &collection.Enrollment{
		CustomerID:   m.CustomerID,
		SchemeID:     m.SchemeID,
		EnrolledDate: m.EnrolledDate,
		Status:       collection.EnrollmentStatus(m.Status),
	}
	m.PopulateAuditedAggregateRoot(&e.AuditedAggregateRoot)
	return e
}

// EnrollmentModelFromDomain converts a domain enrollment to the persistence model
func EnrollmentModelFromDomain(e *collection.Enrollment) *EnrollmentModel {
	m := &EnrollmentModel{
		CustomerID:   e.CustomerID,
		SchemeID:     e.SchemeID,
		EnrolledDate: e.EnrolledDate,
		Status:       string(e.Status),
	}
	m.FromDomainAuditedAggregateRoot(e.AuditedAggregateRoot)
	return m
}

// CollectionEntryModel is the persistence model for installment payments
type CollectionEntryModel struct {
	AuditedAggregateModel
	EnrollmentID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Method       string          `gorm:"type:varchar(20);not null;default:'cash'"`
	PaymentDate  time.Time       `gorm:"type:date;not null;index"`
	Note         string          `gorm:"type:text"`
	ReceivedBy   uuid.UUID       `gorm:"type:uuid;not null"`
}

// TableName specifies the table name
func (CollectionEntryModel) TableName() string {
	return "collection_entries"
}

// ToDomain converts the model to a domain entry
func (m *CollectionEntryModel) ToDomain() *collection.Entry {
	e := &collection.Entry{
		EnrollmentID: m.EnrollmentID,
		Amount:       m.Amount,
		Method:       collection.PaymentMethod(m.Method),
		PaymentDate:  m.PaymentDate,
		Note:         m.Note,
		ReceivedBy:   m.ReceivedBy,
	}
	m.PopulateAuditedAggregateRoot(&e.AuditedAggregateRoot)
	return e
}

// CollectionEntryModelFromDomain converts a domain entry to the persistence model
func CollectionEntryModelFromDomain(e *collection.Entry) *CollectionEntryModel {
	m := &CollectionEntryModel{
		EnrollmentID: e.EnrollmentID,
		Amount:       e.Amount,
		Method:       string(e.Method),
		PaymentDate:  e.PaymentDate,
		Note:         e.Note,
		ReceivedBy:   e.ReceivedBy,
	}
	m.FromDomainAuditedAggregateRoot(e.AuditedAggregateRoot)
	return m
}
