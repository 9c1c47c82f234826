package partner

import (
	"context"

	"github.com/Tecnavis/paycollection/internal/domain/partner"
	"github.com/Tecnavis/paycollection/internal/domain/shared"
	"github.com/google/uuid"
)

// AgentService handles agent-related business operations
type AgentService struct {
	agentRepo    partner.AgentRepository
	customerRepo partner.CustomerRepository
}

// NewAgentService creates a new AgentService
func NewAgentService(agentRepo partner.AgentRepository, customerRepo partner.CustomerRepository) *AgentService {
	return &AgentService{
		agentRepo:    agentRepo,
		customerRepo: customerRepo,
	}
}

// Create creates a new agent
func (s *AgentService) Create(ctx context.Context, req CreateAgentRequest, actor uuid.UUID) (*AgentResponse, error) {
	exists, err := s.agentRepo.ExistsByPhone(ctx, req.Phone, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "An agent with this phone number already exists")
	}

	agent, err := partner.NewAgent(req.FullName, req.Phone, req.Email, actor)
	if err != nil {
		return nil, err
	}
	if err := s.agentRepo.Save(ctx, agent); err != nil {
		return nil, err
	}

	response := ToAgentResponse(agent)
	return &response, nil
}

// GetByID retrieves an agent by ID
func (s *AgentService) GetByID(ctx context.Context, id uuid.UUID) (*AgentResponse, error) {
	agent, err := s.agentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToAgentResponse(agent)
	return &response, nil
}

// List retrieves agents, active only unless includeInactive is set
func (s *AgentService) List(ctx context.Context, includeInactive bool) ([]AgentResponse, error) {
	agents, err := s.agentRepo.FindAll(ctx, includeInactive)
	if err != nil {
		return nil, err
	}
	responses := make([]AgentResponse, len(agents))
	for i := range agents {
		responses[i] = ToAgentResponse(&agents[i])
	}
	return responses, nil
}

// Update applies a partial update to an agent
func (s *AgentService) Update(ctx context.Context, id uuid.UUID, req UpdateAgentRequest, actor uuid.UUID) (*AgentResponse, error) {
	agent, err := s.agentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Phone != nil {
		taken, err := s.agentRepo.ExistsByPhone(ctx, *req.Phone, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "An agent with this phone number already exists")
		}
	}

	patch := partner.AgentPatch{
		FullName: req.FullName,
		Phone:    req.Phone,
		Email:    req.Email,
		Active:   req.Active,
	}
	if err := agent.Apply(patch, actor); err != nil {
		return nil, err
	}
	if err := s.agentRepo.Save(ctx, agent); err != nil {
		return nil, err
	}

	response := ToAgentResponse(agent)
	return &response, nil
}

// Delete removes an agent with no assigned customers
func (s *AgentService) Delete(ctx context.Context, id uuid.UUID) error {
	agentID := id
	count, err := s.customerRepo.Count(ctx, partner.CustomerFilter{AgentID: &agentID, IncludeInactive: true})
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.NewDomainError("INVALID_STATE", "Agent has assigned customers and cannot be deleted")
	}
	return s.agentRepo.Delete(ctx, id)
}
