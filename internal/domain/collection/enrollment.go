package collection

import (
	"time"

	"github.com/Tecnavis/paycollection/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EnrollmentStatus represents the lifecycle state of an enrollment
type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "active"
	EnrollmentCompleted EnrollmentStatus = "completed"
	EnrollmentClosed    EnrollmentStatus = "closed"
)

// Enrollment ties a customer to a scheme. A customer can hold at most one
// enrollment per scheme; the (customer_id, scheme_id) pair is unique at the
// storage layer as well.
type Enrollment struct {
	shared.AuditedAggregateRoot
	CustomerID   uuid.UUID
	SchemeID     uuid.UUID
	EnrolledDate time.Time
	Status       EnrollmentStatus
}

// NewEnrollment creates a new enrollment with validation
func NewEnrollment(customerID, schemeID uuid.UUID, enrolledDate time.Time, createdBy uuid.UUID) (*Enrollment, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Customer is required")
	}
	if schemeID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Scheme is required")
	}
	if enrolledDate.IsZero() {
		enrolledDate = time.Now()
	}
	return &Enrollment{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(createdBy),
		CustomerID:           customerID,
		SchemeID:             schemeID,
		EnrolledDate:         enrolledDate,
		Status:               EnrollmentActive,
	}, nil
}

// Close marks the enrollment closed
func (e *Enrollment) Close(updatedBy uuid.UUID) error {
	if e.Status == EnrollmentClosed {
		return shared.NewDomainError("INVALID_STATE", "Enrollment is already closed")
	}
	e.Status = EnrollmentClosed
	e.Touch(updatedBy)
	return nil
}

// MarkCompleted transitions the enrollment to completed once fully paid
func (e *Enrollment) MarkCompleted(updatedBy uuid.UUID) {
	e.Status = EnrollmentCompleted
	e.Touch(updatedBy)
}

// Reopen returns a completed enrollment to active after a payment was
// amended down or voided
func (e *Enrollment) Reopen(updatedBy uuid.UUID) {
	e.Status = EnrollmentActive
	e.Touch(updatedBy)
}

// PaymentProgress is the derived view of how far an enrollment has paid
// towards its scheme total. It is always computed, never stored.
type PaymentProgress struct {
	TotalPaid             decimal.Decimal
	Remaining             decimal.Decimal
	ProgressPercent       decimal.Decimal
	InstallmentsPaid      *int64
	InstallmentsRemaining *int64
}

// ComputeProgress derives payment progress from the scheme definition and
// the exact sum of recorded entries. A zero-total scheme reports 0%.
func ComputeProgress(scheme *Scheme, totalPaid decimal.Decimal) PaymentProgress {
	remaining := scheme.TotalAmount.Sub(totalPaid)

	progress := decimal.Zero
	if scheme.TotalAmount.IsPositive() {
		progress = totalPaid.Div(scheme.TotalAmount).Mul(decimal.NewFromInt(100)).Round(2)
	}

	p := PaymentProgress{
		TotalPaid:       totalPaid,
		Remaining:       remaining,
		ProgressPercent: progress,
	}

	if scheme.InstallmentAmount != nil && scheme.InstallmentAmount.IsPositive() {
		paid := totalPaid.Div(*scheme.InstallmentAmount).Floor().IntPart()
		// Remaining counts whole installments in the plan, not in the
		// remaining balance: floor(total/installment) - paid
		left := scheme.TotalAmount.Div(*scheme.InstallmentAmount).Floor().IntPart() - paid
		if left < 0 {
			left = 0
		}
		p.InstallmentsPaid = &paid
		p.InstallmentsRemaining = &left
	}

	return p
}
