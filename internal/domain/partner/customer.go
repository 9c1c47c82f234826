package partner

import (
	"strings"

	"github.com/Tecnavis/paycollection/internal/domain/shared"
	"github.com/google/uuid"
)

// Customer is a person enrolled in collection schemes. Deactivated
// customers stay on record but are hidden from default listings.
type Customer struct {
	shared.AuditedAggregateRoot
	FullName string
	Phone    string
	Email    string
	Address  string
	AgentID  *uuid.UUID
	Active   bool
}

// NewCustomer creates a new customer with validation
func NewCustomer(fullName, phone, email, address string, agentID *uuid.UUID, createdBy uuid.UUID) (*Customer, error) {
	fullName = strings.TrimSpace(fullName)
	phone = strings.TrimSpace(phone)

	if fullName == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Customer name is required")
	}
	if phone == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Phone number is required")
	}
	return &Customer{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(createdBy),
		FullName:             fullName,
		Phone:                phone,
		Email:                strings.TrimSpace(email),
		Address:              address,
		AgentID:              agentID,
		Active:               true,
	}, nil
}

// CustomerPatch carries the fields of a partial customer update
type CustomerPatch struct {
	FullName   *string
	Phone      *string
	Email      *string
	Address    *string
	AgentID    *uuid.UUID
	ClearAgent bool
	Active     *bool
}

// Apply applies a patch to the customer with validation
func (c *Customer) Apply(patch CustomerPatch, updatedBy uuid.UUID) error {
	if patch.FullName != nil {
		name := strings.TrimSpace(*patch.FullName)
		if name == "" {
			return shared.NewDomainError("VALIDATION_ERROR", "Customer name is required")
		}
		c.FullName = name
	}
	if patch.Phone != nil {
		phone := strings.TrimSpace(*patch.Phone)
		if phone == "" {
			return shared.NewDomainError("VALIDATION_ERROR", "Phone number is required")
		}
		c.Phone = phone
	}
	if patch.Email != nil {
		c.Email = strings.TrimSpace(*patch.Email)
	}
	if patch.Address != nil {
		c.Address = *patch.Address
	}
	if patch.ClearAgent {
		c.AgentID = nil
	} else if patch.AgentID != nil {
		c.AgentID = patch.AgentID
	}
	if patch.Active != nil {
		c.Active = *patch.Active
	}
	c.Touch(updatedBy)
	return nil
}

// Deactivate hides the customer from default listings
func (c *Customer) Deactivate(updatedBy uuid.UUID) {
	c.Active = false
	c.Touch(updatedBy)
}
