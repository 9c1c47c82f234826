package partner

import (
	"strings"

	"github.com/Tecnavis/paycollection/internal/domain/shared"
	"github.com/google/uuid"
)

// Agent is a field collector who records payments from customers.
type Agent struct {
	shared.AuditedAggregateRoot
	FullName string
	Phone    string
	Email    string
	Active   bool
}

// NewAgent creates a new agent with validation
func NewAgent(fullName, phone, email string, createdBy uuid.UUID) (*Agent, error) {
	fullName = strings.TrimSpace(fullName)
	phone = strings.TrimSpace(phone)

	if fullName == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Agent name is required")
	}
	if phone == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Phone number is required")
	}
	return &Agent{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(createdBy),
		FullName:             fullName,
		Phone:                phone,
		Email:                strings.TrimSpace(email),
		Active:               true,
	}, nil
}

// AgentPatch carries the fields of a partial agent update
type AgentPatch struct {
	FullName *string
	Phone    *string
	Email    *string
	Active   *bool
}

// Apply applies a patch to the agent with validation
func (a *Agent) Apply(patch AgentPatch, updatedBy uuid.UUID) error {
	if patch.FullName != nil {
		name := strings.TrimSpace(*patch.FullName)
		if name == "" {
			return shared.NewDomainError("VALIDATION_ERROR", "Agent name is required")
		}
		a.FullName = name
	}
	if patch.Phone != nil {
		phone := strings.TrimSpace(*patch.Phone)
		if phone == "" {
			return shared.NewDomainError("VALIDATION_ERROR", "Phone number is required")
		}
		a.Phone = phone
	}
	if patch.Email != nil {
		a.Email = strings.TrimSpace(*patch.Email)
	}
	if patch.Active != nil {
		a.Active = *patch.Active
	}
	a.Touch(updatedBy)
	return nil
}
