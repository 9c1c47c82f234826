package collection

import (
	"time"

	"github.com/Tecnavis/paycollection/internal/domain/collection"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Scheme DTOs
// =============================================================================

// CreateSchemeRequest represents a request to create a new scheme
type CreateSchemeRequest struct {
	SchemeNumber      string           `json:"scheme_number" binding:"required,min=1,max=50"`
	Name              string           `json:"name" binding:"required,min=1,max=200"`
	Description       string           `json:"description" binding:"max=1000"`
	TotalAmount       decimal.Decimal  `json:"total_amount" binding:"required"`
	Frequency         *string          `json:"frequency" binding:"omitempty,oneof=daily weekly monthly custom"`
	InstallmentAmount *decimal.Decimal `json:"installment_amount"`
	StartDate         time.Time        `json:"start_date" binding:"required"`
	EndDate           *time.Time       `json:"end_date"`
}

// UpdateSchemeRequest represents a partial scheme update. Nil fields are
// left unchanged; the Clear flags reset optional fields to empty.
type UpdateSchemeRequest struct {
	Name              *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Description       *string          `json:"description" binding:"omitempty,max=1000"`
	TotalAmount       *decimal.Decimal `json:"total_amount"`
	Frequency         *string          `json:"frequency" binding:"omitempty,oneof=daily weekly monthly custom"`
	ClearFrequency    bool             `json:"clear_frequency"`
	InstallmentAmount *decimal.Decimal `json:"installment_amount"`
	ClearInstallment  bool             `json:"clear_installment"`
	StartDate         *time.Time       `json:"start_date"`
	EndDate           *time.Time       `json:"end_date"`
	ClearEndDate      bool             `json:"clear_end_date"`
	Active            *bool            `json:"active"`
}

// SchemeResponse represents a scheme in API responses
type SchemeResponse struct {
	ID                uuid.UUID        `json:"id"`
	SchemeNumber      string           `json:"scheme_number"`
	Name              string           `json:"name"`
	Description       string           `json:"description"`
	TotalAmount       decimal.Decimal  `json:"total_amount"`
	Frequency         *string          `json:"frequency"`
	InstallmentAmount *decimal.Decimal `json:"installment_amount"`
	StartDate         time.Time        `json:"start_date"`
	EndDate           *time.Time       `json:"end_date"`
	Active            bool             `json:"active"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
	Version           int              `json:"version"`
}

// SchemeListFilter represents filter options for scheme list
type SchemeListFilter struct {
	Search     string `form:"search"`
	ActiveOnly bool   `form:"active_only"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
	PageSize   int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string `form:"order_by"`
	OrderDir   string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToSchemeResponse converts a domain scheme to a response DTO
func ToSchemeResponse(scheme *collection.Scheme) SchemeResponse {
	var frequency *string
	if scheme.Frequency != nil {
		f := string(*scheme.Frequency)
		frequency = &f
	}
	return SchemeResponse{
		ID:                scheme.GetID(),
		SchemeNumber:      scheme.SchemeNumber,
		Name:              scheme.Name,
		Description:       scheme.Description,
		TotalAmount:       scheme.TotalAmount,
		Frequency:         frequency,
		InstallmentAmount: scheme.InstallmentAmount,
		StartDate:         scheme.StartDate,
		EndDate:           scheme.EndDate,
		Active:            scheme.Active,
		CreatedAt:         scheme.GetCreatedAt(),
		UpdatedAt:         scheme.GetUpdatedAt(),
		Version:           scheme.GetVersion(),
	}
}

// =============================================================================
// Enrollment DTOs
// =============================================================================

// EnrollRequest represents a request to enroll a customer in a scheme
type EnrollRequest struct {
	CustomerID   uuid.UUID  `json:"customer_id" binding:"required"`
	SchemeID     uuid.UUID  `json:"scheme_id" binding:"required"`
	EnrolledDate *time.Time `json:"enrolled_date"`
}

// EnrollmentResponse represents an enrollment with its payment progress
type EnrollmentResponse struct {
	ID                    uuid.UUID       `json:"id"`
	CustomerID            uuid.UUID       `json:"customer_id"`
	SchemeID              uuid.UUID       `json:"scheme_id"`
	EnrolledDate          time.Time       `json:"enrolled_date"`
	Status                string          `json:"status"`
	TotalPaid             decimal.Decimal `json:"total_paid"`
	Remaining             decimal.Decimal `json:"remaining"`
	ProgressPercent       decimal.Decimal `json:"progress_percent"`
	InstallmentsPaid      *int64          `json:"installments_paid,omitempty"`
	InstallmentsRemaining *int64          `json:"installments_remaining,omitempty"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

// ToEnrollmentResponse converts a domain enrollment plus derived progress
// to a response DTO
func ToEnrollmentResponse(enrollment *collection.Enrollment, progress collection.PaymentProgress) EnrollmentResponse {
	return EnrollmentResponse{
		ID:                    enrollment.GetID(),
		CustomerID:            enrollment.CustomerID,
		SchemeID:              enrollment.SchemeID,
		EnrolledDate:          enrollment.EnrolledDate,
		Status:                string(enrollment.Status),
		TotalPaid:             progress.TotalPaid,
		Remaining:             progress.Remaining,
		ProgressPercent:       progress.ProgressPercent,
		InstallmentsPaid:      progress.InstallmentsPaid,
		InstallmentsRemaining: progress.InstallmentsRemaining,
		CreatedAt:             enrollment.GetCreatedAt(),
		UpdatedAt:             enrollment.GetUpdatedAt(),
	}
}

// =============================================================================
// Payment entry DTOs
// =============================================================================

// RecordEntryRequest represents a request to record a payment
type RecordEntryRequest struct {
	EnrollmentID uuid.UUID       `json:"enrollment_id" binding:"required"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	Method       string          `json:"method" binding:"omitempty,oneof=cash bank_transfer upi"`
	PaymentDate  *time.Time      `json:"payment_date"`
	Note         string          `json:"note" binding:"max=500"`
	ReceivedBy   *uuid.UUID      `json:"received_by"`
}

// AmendEntryRequest represents a partial amendment of a recorded payment
type AmendEntryRequest struct {
	Amount      *decimal.Decimal `json:"amount"`
	Method      *string          `json:"method" binding:"omitempty,oneof=cash bank_transfer upi"`
	PaymentDate *time.Time       `json:"payment_date"`
	Note        *string          `json:"note" binding:"omitempty,max=500"`
}

// EntryResponse represents a payment entry in API responses
type EntryResponse struct {
	ID           uuid.UUID       `json:"id"`
	EnrollmentID uuid.UUID       `json:"enrollment_id"`
	Amount       decimal.Decimal `json:"amount"`
	Method       string          `json:"method"`
	PaymentDate  time.Time       `json:"payment_date"`
	Note         string          `json:"note"`
	ReceivedBy   uuid.UUID       `json:"received_by"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	Version      int             `json:"version"`
}

// ToEntryResponse converts a domain entry to a response DTO
func ToEntryResponse(entry *collection.Entry) EntryResponse {
	return EntryResponse{
		ID:           entry.GetID(),
		EnrollmentID: entry.EnrollmentID,
		Amount:       entry.Amount,
		Method:       string(entry.Method),
		PaymentDate:  entry.PaymentDate,
		Note:         entry.Note,
		ReceivedBy:   entry.ReceivedBy,
		CreatedAt:    entry.GetCreatedAt(),
		UpdatedAt:    entry.GetUpdatedAt(),
		Version:      entry.GetVersion(),
	}
}
