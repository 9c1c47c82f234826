package collection

import (
	"context"
	"time"

	"github.com/Tecnavis/paycollection/internal/domain/collection"
	"github.com/Tecnavis/paycollection/internal/domain/partner"
	"github.com/Tecnavis/paycollection/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EnrollmentService handles enrollment-related business operations
type EnrollmentService struct {
	enrollmentRepo collection.EnrollmentRepository
	schemeRepo     collection.SchemeRepository
	entryRepo      collection.EntryRepository
	customerRepo   partner.CustomerRepository
}

// NewEnrollmentService creates a new EnrollmentService
func NewEnrollmentService(
	enrollmentRepo collection.EnrollmentRepository,
	schemeRepo collection.SchemeRepository,
	entryRepo collection.EntryRepository,
	customerRepo partner.CustomerRepository,
) *EnrollmentService {
	return &EnrollmentService{
		enrollmentRepo: enrollmentRepo,
		schemeRepo:     schemeRepo,
		entryRepo:      entryRepo,
		customerRepo:   customerRepo,
	}
}

// Enroll enrolls a customer in a scheme. The pre-check keeps the common
// duplicate case friendly; the unique index on (customer_id, scheme_id)
// closes the race when two enrollments arrive at once.
func (s *EnrollmentService) Enroll(ctx context.Context, req EnrollRequest, actor uuid.UUID) (*EnrollmentResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if !customer.Active {
		return nil, shared.NewDomainError("INVALID_STATE", "Customer is deactivated and cannot be enrolled")
	}

	scheme, err := s.schemeRepo.FindByID(ctx, req.SchemeID)
	if err != nil {
		return nil, err
	}
	if !scheme.Active {
		return nil, shared.NewDomainError("INVALID_STATE", "Scheme is inactive and cannot accept enrollments")
	}

	exists, err := s.enrollmentRepo.Exists(ctx, req.CustomerID, req.SchemeID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Customer is already enrolled in this scheme")
	}

	enrolledDate := time.Now()
	if req.EnrolledDate != nil {
		enrolledDate = *req.EnrolledDate
	}

	enrollment, err := collection.NewEnrollment(req.CustomerID, req.SchemeID, enrolledDate, actor)
	if err != nil {
		return nil, err
	}
	if err := s.enrollmentRepo.Save(ctx, enrollment); err != nil {
		return nil, err
	}

	response := ToEnrollmentResponse(enrollment, collection.ComputeProgress(scheme, decimal.Zero))
	return &response, nil
}

// GetByID retrieves an enrollment with its payment progress
func (s *EnrollmentService) GetByID(ctx context.Context, id uuid.UUID) (*EnrollmentResponse, error) {
	enrollment, err := s.enrollmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response, err := s.withProgress(ctx, enrollment)
	if err != nil {
		return nil, err
	}
	return response, nil
}

// ListByScheme retrieves all enrollments in a scheme with progress
func (s *EnrollmentService) ListByScheme(ctx context.Context, schemeID uuid.UUID) ([]EnrollmentResponse, error) {
	if _, err := s.schemeRepo.FindByID(ctx, schemeID); err != nil {
		return nil, err
	}
	enrollments, err := s.enrollmentRepo.FindByScheme(ctx, schemeID)
	if err != nil {
		return nil, err
	}
	return s.withProgressAll(ctx, enrollments)
}

// ListByCustomer retrieves all enrollments of a customer with progress
func (s *EnrollmentService) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]EnrollmentResponse, error) {
	if _, err := s.customerRepo.FindByID(ctx, customerID); err != nil {
		return nil, err
	}
	enrollments, err := s.enrollmentRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return s.withProgressAll(ctx, enrollments)
}

// Close closes an enrollment so no further payments can be recorded
func (s *EnrollmentService) Close(ctx context.Context, id uuid.UUID, actor uuid.UUID) (*EnrollmentResponse, error) {
	enrollment, err := s.enrollmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := enrollment.Close(actor); err != nil {
		return nil, err
	}
	if err := s.enrollmentRepo.Save(ctx, enrollment); err != nil {
		return nil, err
	}
	return s.withProgress(ctx, enrollment)
}

// Delete removes an enrollment that has no recorded payments
func (s *EnrollmentService) Delete(ctx context.Context, id uuid.UUID) error {
	entries, err := s.entryRepo.FindByEnrollment(ctx, id)
	if err != nil {
		return err
	}
	if len(entries) > 0 {
		return shared.NewDomainError("INVALID_STATE", "Enrollment has recorded payments and cannot be deleted")
	}
	return s.enrollmentRepo.Delete(ctx, id)
}

func (s *EnrollmentService) withProgress(ctx context.Context, enrollment *collection.Enrollment) (*EnrollmentResponse, error) {
	scheme, err := s.schemeRepo.FindByID(ctx, enrollment.SchemeID)
	if err != nil {
		return nil, err
	}
	totalPaid, err := s.entryRepo.SumByEnrollment(ctx, enrollment.GetID())
	if err != nil {
		return nil, err
	}
	response := ToEnrollmentResponse(enrollment, collection.ComputeProgress(scheme, totalPaid))
	return &response, nil
}

func (s *EnrollmentService) withProgressAll(ctx context.Context, enrollments []collection.Enrollment) ([]EnrollmentResponse, error) {
	responses := make([]EnrollmentResponse, 0, len(enrollments))
	for i := range enrollments {
		response, err := s.withProgress(ctx, &enrollments[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *response)
	}
	return responses, nil
}
