package collection

import (
	"context"

	"github.com/Tecnavis/paycollection/internal/domain/collection"
	"github.com/Tecnavis/paycollection/internal/domain/shared"
	"github.com/google/uuid"
)

// SchemeService handles scheme-related business operations
type SchemeService struct {
	schemeRepo     collection.SchemeRepository
	enrollmentRepo collection.EnrollmentRepository
}

// NewSchemeService creates a new SchemeService
func NewSchemeService(schemeRepo collection.SchemeRepository, enrollmentRepo collection.EnrollmentRepository) *SchemeService {
	return &SchemeService{
		schemeRepo:     schemeRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

// Create creates a new scheme
func (s *SchemeService) Create(ctx context.Context, req CreateSchemeRequest, actor uuid.UUID) (*SchemeResponse, error) {
	exists, err := s.schemeRepo.ExistsBySchemeNumber(ctx, req.SchemeNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A scheme with this number already exists")
	}

	exists, err = s.schemeRepo.ExistsByName(ctx, req.Name, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A scheme with this name already exists")
	}

	var frequency *collection.CollectionFrequency
	if req.Frequency != nil {
		f := collection.CollectionFrequency(*req.Frequency)
		frequency = &f
	}

	scheme, err := collection.NewScheme(req.SchemeNumber, req.Name, req.Description,
		req.TotalAmount, frequency, req.InstallmentAmount, req.StartDate, req.EndDate, actor)
	if err != nil {
		return nil, err
	}

	if err := s.schemeRepo.Save(ctx, scheme); err != nil {
		return nil, err
	}

	response := ToSchemeResponse(scheme)
	return &response, nil
}

// GetByID retrieves a scheme by ID
func (s *SchemeService) GetByID(ctx context.Context, id uuid.UUID) (*SchemeResponse, error) {
	scheme, err := s.schemeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToSchemeResponse(scheme)
	return &response, nil
}

// List retrieves schemes with filtering and pagination
func (s *SchemeService) List(ctx context.Context, filter SchemeListFilter) ([]SchemeResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := collection.SchemeFilter{
		Search:     filter.Search,
		ActiveOnly: filter.ActiveOnly,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		OrderBy:    filter.OrderBy,
		OrderDir:   filter.OrderDir,
	}

	schemes, err := s.schemeRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.schemeRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]SchemeResponse, len(schemes))
	for i := range schemes {
		responses[i] = ToSchemeResponse(&schemes[i])
	}
	return responses, total, nil
}

// Update applies a partial update to a scheme
func (s *SchemeService) Update(ctx context.Context, id uuid.UUID, req UpdateSchemeRequest, actor uuid.UUID) (*SchemeResponse, error) {
	scheme, err := s.schemeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		taken, err := s.schemeRepo.ExistsByName(ctx, *req.Name, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "A scheme with this name already exists")
		}
	}

	patch := collection.SchemePatch{
		Name:              req.Name,
		Description:       req.Description,
		TotalAmount:       req.TotalAmount,
		ClearFrequency:    req.ClearFrequency,
		InstallmentAmount: req.InstallmentAmount,
		ClearInstallment:  req.ClearInstallment,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		ClearEndDate:      req.ClearEndDate,
		Active:            req.Active,
	}
	if req.Frequency != nil {
		f := collection.CollectionFrequency(*req.Frequency)
		patch.Frequency = &f
	}

	if err := scheme.Apply(patch, actor); err != nil {
		return nil, err
	}
	if err := s.schemeRepo.SaveWithLock(ctx, scheme); err != nil {
		return nil, err
	}

	response := ToSchemeResponse(scheme)
	return &response, nil
}

// Deactivate marks a scheme inactive without touching its enrollments
func (s *SchemeService) Deactivate(ctx context.Context, id uuid.UUID, actor uuid.UUID) error {
	scheme, err := s.schemeRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	scheme.Deactivate(actor)
	return s.schemeRepo.SaveWithLock(ctx, scheme)
}

// Delete removes a scheme. A scheme with enrollments cannot be deleted;
// deactivate it instead.
func (s *SchemeService) Delete(ctx context.Context, id uuid.UUID) error {
	enrollments, err := s.enrollmentRepo.FindByScheme(ctx, id)
	if err != nil {
		return err
	}
	if len(enrollments) > 0 {
		return shared.NewDomainError("INVALID_STATE", "Scheme has enrollments and cannot be deleted; deactivate it instead")
	}
	return s.schemeRepo.Delete(ctx, id)
}
