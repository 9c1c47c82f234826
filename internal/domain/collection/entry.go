package collection

import (
	"fmt"
	"time"

	"github.com/Tecnavis/paycollection/internal/domain/shared"
	"github.com/Tecnavis/paycollection/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod represents how an installment was paid
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentUPI          PaymentMethod = "upi"
)

// IsValid checks if the payment method is a known value
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentBankTransfer, PaymentUPI:
		return true
	}
	return false
}

// Entry is a single installment payment recorded against an enrollment.
type Entry struct {
	shared.AuditedAggregateRoot
	EnrollmentID uuid.UUID
	Amount       decimal.Decimal
	Method       PaymentMethod
	PaymentDate  time.Time
	Note         string
	ReceivedBy   uuid.UUID
}

// NewEntry creates a new payment entry with validation. The overpayment
// guard is applied separately against the enrollment's paid sum, inside
// the same transaction that persists the entry.
func NewEntry(enrollmentID uuid.UUID, amount decimal.Decimal, method PaymentMethod, paymentDate time.Time, note string, receivedBy, createdBy uuid.UUID) (*Entry, error) {
	if enrollmentID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Enrollment is required")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Payment amount must be greater than zero")
	}
	if method == "" {
		method = PaymentCash
	}
	if !method.IsValid() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Payment method must be one of cash, bank_transfer, upi")
	}
	if paymentDate.IsZero() {
		paymentDate = time.Now()
	}
	return &Entry{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(createdBy),
		EnrollmentID:         enrollmentID,
		Amount:               amount,
		Method:               method,
		PaymentDate:          paymentDate,
		Note:                 note,
		ReceivedBy:           receivedBy,
	}, nil
}

// EntryPatch carries the fields of a partial entry amendment
type EntryPatch struct {
	Amount      *decimal.Decimal
	Method      *PaymentMethod
	PaymentDate *time.Time
	Note        *string
}

// Apply applies a patch to the entry with validation. The caller must run
// CheckOverpayment against the paid sum excluding this entry whenever the
// amount increases.
func (e *Entry) Apply(patch EntryPatch, updatedBy uuid.UUID) error {
	if patch.Amount != nil {
		if !patch.Amount.IsPositive() {
			return shared.NewDomainError("VALIDATION_ERROR", "Payment amount must be greater than zero")
		}
		e.Amount = *patch.Amount
	}
	if patch.Method != nil {
		if !patch.Method.IsValid() {
			return shared.NewDomainError("VALIDATION_ERROR", "Payment method must be one of cash, bank_transfer, upi")
		}
		e.Method = *patch.Method
	}
	if patch.PaymentDate != nil {
		e.PaymentDate = *patch.PaymentDate
	}
	if patch.Note != nil {
		e.Note = *patch.Note
	}
	e.Touch(updatedBy)
	return nil
}

// CheckOverpayment enforces the collection ceiling: a payment fails iff
// alreadyPaid + amount strictly exceeds the scheme total. Paying exactly
// up to the total is allowed.
func CheckOverpayment(schemeTotal, alreadyPaid, amount decimal.Decimal) error {
	if alreadyPaid.Add(amount).GreaterThan(schemeTotal) {
		headroom := schemeTotal.Sub(alreadyPaid)
		if headroom.IsNegative() {
			headroom = decimal.Zero
		}
		return shared.NewDomainError("VALIDATION_ERROR", fmt.Sprintf(
			"Overpayment detected. You've already paid %s, so you can only pay up to %s more.",
			valueobject.NewMoney(alreadyPaid).Display(),
			valueobject.NewMoney(headroom).Display()))
	}
	return nil
}
