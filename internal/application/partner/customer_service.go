package partner

import (
	"context"

	"github.com/Tecnavis/paycollection/internal/domain/collection"
	"github.com/Tecnavis/paycollection/internal/domain/partner"
	"github.com/Tecnavis/paycollection/internal/domain/shared"
	"github.com/google/uuid"
)

// CustomerService handles customer-related business operations
type CustomerService struct {
	customerRepo   partner.CustomerRepository
	agentRepo      partner.AgentRepository
	enrollmentRepo collection.EnrollmentRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(
	customerRepo partner.CustomerRepository,
	agentRepo partner.AgentRepository,
	enrollmentRepo collection.EnrollmentRepository,
) *CustomerService {
	return &CustomerService{
		customerRepo:   customerRepo,
		agentRepo:      agentRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

// Create creates a new customer
func (s *CustomerService) Create(ctx context.Context, req CreateCustomerRequest, actor uuid.UUID) (*CustomerResponse, error) {
	exists, err := s.customerRepo.ExistsByPhone(ctx, req.Phone, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A customer with this phone number already exists")
	}

	if req.AgentID != nil {
		if _, err := s.agentRepo.FindByID(ctx, *req.AgentID); err != nil {
			return nil, err
		}
	}

	customer, err := partner.NewCustomer(req.FullName, req.Phone, req.Email, req.Address, req.AgentID, actor)
	if err != nil {
		return nil, err
	}
	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// GetByID retrieves a customer by ID
func (s *CustomerService) GetByID(ctx context.Context, id uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToCustomerResponse(customer)
	return &response, nil
}

// List retrieves customers with filtering and pagination
func (s *CustomerService) List(ctx context.Context, filter CustomerListFilter) ([]CustomerResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := partner.CustomerFilter{
		Search:          filter.Search,
		AgentID:         filter.AgentID,
		IncludeInactive: filter.IncludeInactive,
		Page:            filter.Page,
		PageSize:        filter.PageSize,
	}

	customers, err := s.customerRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.customerRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = ToCustomerResponse(&customers[i])
	}
	return responses, total, nil
}

// Update applies a partial update to a customer
func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, req UpdateCustomerRequest, actor uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Phone != nil {
		taken, err := s.customerRepo.ExistsByPhone(ctx, *req.Phone, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "A customer with this phone number already exists")
		}
	}
	if req.AgentID != nil && !req.ClearAgent {
		if _, err := s.agentRepo.FindByID(ctx, *req.AgentID); err != nil {
			return nil, err
		}
	}

	patch := partner.CustomerPatch{
		FullName:   req.FullName,
		Phone:      req.Phone,
		Email:      req.Email,
		Address:    req.Address,
		AgentID:    req.AgentID,
		ClearAgent: req.ClearAgent,
		Active:     req.Active,
	}
	if err := customer.Apply(patch, actor); err != nil {
		return nil, err
	}
	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// Deactivate hides a customer from default listings while keeping their
// enrollments and payment history intact
func (s *CustomerService) Deactivate(ctx context.Context, id uuid.UUID, actor uuid.UUID) error {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	customer.Deactivate(actor)
	return s.customerRepo.Save(ctx, customer)
}

// Delete removes a customer that has no enrollments. Customers with
// history are deactivated, never deleted.
func (s *CustomerService) Delete(ctx context.Context, id uuid.UUID) error {
	enrollments, err := s.enrollmentRepo.FindByCustomer(ctx, id)
	if err != nil {
		return err
	}
	if len(enrollments) > 0 {
		return shared.NewDomainError("INVALID_STATE", "Customer has enrollments and cannot be deleted; deactivate them instead")
	}
	return s.customerRepo.Delete(ctx, id)
}
