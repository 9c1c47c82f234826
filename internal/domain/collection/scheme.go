package collection

import (
	"strings"
	"time"

	"github.com/Tecnavis/paycollection/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CollectionFrequency represents how often installments are collected
type CollectionFrequency string

const (
	FrequencyDaily   CollectionFrequency = "daily"
	FrequencyWeekly  CollectionFrequency = "weekly"
	FrequencyMonthly CollectionFrequency = "monthly"
	FrequencyCustom  CollectionFrequency = "custom"
)

// IsValid checks if the frequency is a known value
func (f CollectionFrequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyCustom:
		return true
	}
	return false
}

// Scheme is a fixed-total collection plan customers enroll into.
// The total amount is the hard ceiling the overpayment guard enforces
// across all entries of an enrollment.
type Scheme struct {
	shared.AuditedAggregateRoot
	SchemeNumber      string
	Name              string
	Description       string
	TotalAmount       decimal.Decimal
	Frequency         *CollectionFrequency
	InstallmentAmount *decimal.Decimal
	StartDate         time.Time
	EndDate           *time.Time
	Active            bool
}

// NewScheme creates a new scheme with validation
func NewScheme(schemeNumber, name, description string, totalAmount decimal.Decimal, frequency *CollectionFrequency, installmentAmount *decimal.Decimal, startDate time.Time, endDate *time.Time, createdBy uuid.UUID) (*Scheme, error) {
	schemeNumber = strings.TrimSpace(schemeNumber)
	name = strings.TrimSpace(name)

	if schemeNumber == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Scheme number is required")
	}
	if name == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Scheme name is required")
	}
	if !totalAmount.IsPositive() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Total amount must be greater than zero")
	}
	if frequency != nil && !frequency.IsValid() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Collection frequency must be one of daily, weekly, monthly, custom")
	}
	if installmentAmount != nil && !installmentAmount.IsPositive() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Installment amount must be greater than zero")
	}
	if installmentAmount != nil && installmentAmount.GreaterThan(totalAmount) {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Installment amount cannot exceed the total amount")
	}
	if endDate != nil && endDate.Before(startDate) {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "End date cannot be before start date")
	}

	return &Scheme{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(createdBy),
		SchemeNumber:         schemeNumber,
		Name:                 name,
		Description:          description,
		TotalAmount:          totalAmount,
		Frequency:            frequency,
		InstallmentAmount:    installmentAmount,
		StartDate:            startDate,
		EndDate:              endDate,
		Active:               true,
	}, nil
}

// SchemePatch carries the fields of a partial scheme update. Nil means
// "leave unchanged"; pointers to zero values are applied as-is.
type SchemePatch struct {
	Name              *string
	Description       *string
	TotalAmount       *decimal.Decimal
	Frequency         *CollectionFrequency
	ClearFrequency    bool
	InstallmentAmount *decimal.Decimal
	ClearInstallment  bool
	StartDate         *time.Time
	EndDate           *time.Time
	ClearEndDate      bool
	Active            *bool
}

// Apply applies a patch to the scheme with validation
func (s *Scheme) Apply(patch SchemePatch, updatedBy uuid.UUID) error {
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return shared.NewDomainError("VALIDATION_ERROR", "Scheme name is required")
		}
		s.Name = name
	}
	if patch.Description != nil {
		s.Description = *patch.Description
	}
	if patch.TotalAmount != nil {
		if !patch.TotalAmount.IsPositive() {
			return shared.NewDomainError("VALIDATION_ERROR", "Total amount must be greater than zero")
		}
		s.TotalAmount = *patch.TotalAmount
	}
	if patch.ClearFrequency {
		s.Frequency = nil
	} else if patch.Frequency != nil {
		if !patch.Frequency.IsValid() {
			return shared.NewDomainError("VALIDATION_ERROR", "Collection frequency must be one of daily, weekly, monthly, custom")
		}
		s.Frequency = patch.Frequency
	}
	if patch.ClearInstallment {
		s.InstallmentAmount = nil
	} else if patch.InstallmentAmount != nil {
		if !patch.InstallmentAmount.IsPositive() {
			return shared.NewDomainError("VALIDATION_ERROR", "Installment amount must be greater than zero")
		}
		s.InstallmentAmount = patch.InstallmentAmount
	}
	if patch.StartDate != nil {
		s.StartDate = *patch.StartDate
	}
	if patch.ClearEndDate {
		s.EndDate = nil
	} else if patch.EndDate != nil {
		s.EndDate = patch.EndDate
	}
	if s.InstallmentAmount != nil && s.InstallmentAmount.GreaterThan(s.TotalAmount) {
		return shared.NewDomainError("VALIDATION_ERROR", "Installment amount cannot exceed the total amount")
	}
	if s.EndDate != nil && s.EndDate.Before(s.StartDate) {
		return shared.NewDomainError("VALIDATION_ERROR", "End date cannot be before start date")
	}
	if patch.Active != nil {
		s.Active = *patch.Active
	}

	s.Touch(updatedBy)
	return nil
}

// Deactivate marks the scheme inactive
func (s *Scheme) Deactivate(updatedBy uuid.UUID) {
	s.Active = false
	s.Touch(updatedBy)
}
