package collection

import (
	"context"
	"time"

	"github.com/Tecnavis/paycollection/internal/domain/collection"
	"github.com/Tecnavis/paycollection/internal/domain/shared"
	"github.com/google/uuid"
)

// EntryService records, amends, and voids installment payments. Every
// write runs through the guarded repository operations so the scheme
// total is never exceeded, no matter how many collectors post at once.
type EntryService struct {
	entryRepo      collection.EntryRepository
	enrollmentRepo collection.EnrollmentRepository
	schemeRepo     collection.SchemeRepository
}

// NewEntryService creates a new EntryService
func NewEntryService(
	entryRepo collection.EntryRepository,
	enrollmentRepo collection.EnrollmentRepository,
	schemeRepo collection.SchemeRepository,
) *EntryService {
	return &EntryService{
		entryRepo:      entryRepo,
		enrollmentRepo: enrollmentRepo,
		schemeRepo:     schemeRepo,
	}
}

// Record records a payment against an enrollment. If the payment fills
// the scheme exactly, the enrollment is marked completed.
func (s *EntryService) Record(ctx context.Context, req RecordEntryRequest, actor uuid.UUID) (*EntryResponse, error) {
	enrollment, err := s.enrollmentRepo.FindByID(ctx, req.EnrollmentID)
	if err != nil {
		return nil, err
	}
	if enrollment.Status == collection.EnrollmentClosed {
		return nil, shared.NewDomainError("INVALID_STATE", "Enrollment is closed and cannot accept payments")
	}

	scheme, err := s.schemeRepo.FindByID(ctx, enrollment.SchemeID)
	if err != nil {
		return nil, err
	}

	receivedBy := actor
	if req.ReceivedBy != nil {
		receivedBy = *req.ReceivedBy
	}
	var paymentDate time.Time
	if req.PaymentDate != nil {
		paymentDate = *req.PaymentDate
	}

	entry, err := collection.NewEntry(req.EnrollmentID, req.Amount,
		collection.PaymentMethod(req.Method), paymentDate, req.Note, receivedBy, actor)
	if err != nil {
		return nil, err
	}

	if err := s.entryRepo.RecordGuarded(ctx, entry, scheme.TotalAmount); err != nil {
		return nil, err
	}

	if err := s.markCompletedIfFull(ctx, enrollment, scheme, actor); err != nil {
		return nil, err
	}

	response := ToEntryResponse(entry)
	return &response, nil
}

// GetByID retrieves a payment entry
func (s *EntryService) GetByID(ctx context.Context, id uuid.UUID) (*EntryResponse, error) {
	entry, err := s.entryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToEntryResponse(entry)
	return &response, nil
}

// ListByEnrollment retrieves all payments of an enrollment
func (s *EntryService) ListByEnrollment(ctx context.Context, enrollmentID uuid.UUID) ([]EntryResponse, error) {
	if _, err := s.enrollmentRepo.FindByID(ctx, enrollmentID); err != nil {
		return nil, err
	}
	entries, err := s.entryRepo.FindByEnrollment(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}
	responses := make([]EntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToEntryResponse(&entries[i])
	}
	return responses, nil
}

// Amend applies a partial amendment to a recorded payment. The guard is
// re-checked against the paid sum excluding this entry, so a decreased or
// unchanged amount always passes while an increase must still fit under
// the scheme total.
func (s *EntryService) Amend(ctx context.Context, id uuid.UUID, req AmendEntryRequest, actor uuid.UUID) (*EntryResponse, error) {
	entry, err := s.entryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	enrollment, err := s.enrollmentRepo.FindByID(ctx, entry.EnrollmentID)
	if err != nil {
		return nil, err
	}
	scheme, err := s.schemeRepo.FindByID(ctx, enrollment.SchemeID)
	if err != nil {
		return nil, err
	}

	patch := collection.EntryPatch{
		Amount:      req.Amount,
		PaymentDate: req.PaymentDate,
		Note:        req.Note,
	}
	if req.Method != nil {
		m := collection.PaymentMethod(*req.Method)
		patch.Method = &m
	}
	if err := entry.Apply(patch, actor); err != nil {
		return nil, err
	}

	if err := s.entryRepo.AmendGuarded(ctx, entry, scheme.TotalAmount); err != nil {
		return nil, err
	}

	if err := s.reconcileStatus(ctx, enrollment, scheme, actor); err != nil {
		return nil, err
	}

	response := ToEntryResponse(entry)
	return &response, nil
}

// Delete voids a payment entry, restoring its amount as headroom
func (s *EntryService) Delete(ctx context.Context, id uuid.UUID, actor uuid.UUID) error {
	entry, err := s.entryRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.entryRepo.Delete(ctx, id); err != nil {
		return err
	}

	enrollment, err := s.enrollmentRepo.FindByID(ctx, entry.EnrollmentID)
	if err != nil {
		return err
	}
	scheme, err := s.schemeRepo.FindByID(ctx, enrollment.SchemeID)
	if err != nil {
		return err
	}
	return s.reconcileStatus(ctx, enrollment, scheme, actor)
}

// markCompletedIfFull flips an active enrollment to completed once the
// paid sum reaches the scheme total
func (s *EntryService) markCompletedIfFull(ctx context.Context, enrollment *collection.Enrollment, scheme *collection.Scheme, actor uuid.UUID) error {
	if enrollment.Status != collection.EnrollmentActive {
		return nil
	}
	totalPaid, err := s.entryRepo.SumByEnrollment(ctx, enrollment.GetID())
	if err != nil {
		return err
	}
	if totalPaid.Equal(scheme.TotalAmount) {
		enrollment.MarkCompleted(actor)
		return s.enrollmentRepo.Save(ctx, enrollment)
	}
	return nil
}

// reconcileStatus moves the enrollment between active and completed after
// an amendment or deletion changed the paid sum. Closed enrollments are
// left alone.
func (s *EntryService) reconcileStatus(ctx context.Context, enrollment *collection.Enrollment, scheme *collection.Scheme, actor uuid.UUID) error {
	if enrollment.Status == collection.EnrollmentClosed {
		return nil
	}
	totalPaid, err := s.entryRepo.SumByEnrollment(ctx, enrollment.GetID())
	if err != nil {
		return err
	}

	switch {
	case totalPaid.Equal(scheme.TotalAmount) && enrollment.Status == collection.EnrollmentActive:
		enrollment.MarkCompleted(actor)
	case totalPaid.LessThan(scheme.TotalAmount) && enrollment.Status == collection.EnrollmentCompleted:
		enrollment.Reopen(actor)
	default:
		return nil
	}
	return s.enrollmentRepo.Save(ctx, enrollment)
}
