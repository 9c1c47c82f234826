package partner

import (
	"time"

	"github.com/Tecnavis/paycollection/internal/domain/partner"
	"github.com/google/uuid"
)

// =============================================================================
// Customer DTOs
// =============================================================================

// CreateCustomerRequest represents a request to create a new customer
type CreateCustomerRequest struct {
	FullName string     `json:"full_name" binding:"required,min=1,max=200"`
	Phone    string     `json:"phone" binding:"required,min=1,max=20"`
	Email    string     `json:"email" binding:"omitempty,email,max=200"`
	Address  string     `json:"address" binding:"max=500"`
	AgentID  *uuid.UUID `json:"agent_id"`
}

// UpdateCustomerRequest represents a partial customer update
type UpdateCustomerRequest struct {
	FullName   *string    `json:"full_name" binding:"omitempty,min=1,max=200"`
	Phone      *string    `json:"phone" binding:"omitempty,min=1,max=20"`
	Email      *string    `json:"email" binding:"omitempty,email,max=200"`
	Address    *string    `json:"address" binding:"omitempty,max=500"`
	AgentID    *uuid.UUID `json:"agent_id"`
	ClearAgent bool       `json:"clear_agent"`
	Active     *bool      `json:"active"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID        uuid.UUID  `json:"id"`
	FullName  string     `json:"full_name"`
	Phone     string     `json:"phone"`
	Email     string     `json:"email"`
	Address   string     `json:"address"`
	AgentID   *uuid.UUID `json:"agent_id"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Version   int        `json:"version"`
}

// CustomerListFilter represents filter options for customer list
type CustomerListFilter struct {
	Search          string     `form:"search"`
	AgentID         *uuid.UUID `form:"agent_id"`
	IncludeInactive bool       `form:"include_inactive"`
	Page            int        `form:"page" binding:"omitempty,min=1"`
	PageSize        int        `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ToCustomerResponse converts a domain customer to a response DTO
func ToCustomerResponse(customer *partner.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        customer.GetID(),
		FullName:  customer.FullName,
		Phone:     customer.Phone,
		Email:     customer.Email,
		Address:   customer.Address,
		AgentID:   customer.AgentID,
		Active:    customer.Active,
		CreatedAt: customer.GetCreatedAt(),
		UpdatedAt: customer.GetUpdatedAt(),
		Version:   customer.GetVersion(),
	}
}

// =============================================================================
// Agent DTOs
// =============================================================================

// CreateAgentRequest represents a request to create a new agent
type CreateAgentRequest struct {
	FullName string `json:"full_name" binding:"required,min=1,max=200"`
	Phone    string `json:"phone" binding:"required,min=1,max=20"`
	Email    string `json:"email" binding:"omitempty,email,max=200"`
}

// UpdateAgentRequest represents a partial agent update
type UpdateAgentRequest struct {
	FullName *string `json:"full_name" binding:"omitempty,min=1,max=200"`
	Phone    *string `json:"phone" binding:"omitempty,min=1,max=20"`
	Email    *string `json:"email" binding:"omitempty,email,max=200"`
	Active   *bool   `json:"active"`
}

// AgentResponse represents an agent in API responses
type AgentResponse struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Version   int       `json:"version"`
}

// ToAgentResponse converts a domain agent to a response DTO
func ToAgentResponse(agent *partner.Agent) AgentResponse {
	return AgentResponse{
		ID:        agent.GetID(),
		FullName:  agent.FullName,
		Phone:     agent.Phone,
		Email:     agent.Email,
		Active:    agent.Active,
		CreatedAt: agent.GetCreatedAt(),
		UpdatedAt: agent.GetUpdatedAt(),
		Version:   agent.GetVersion(),
	}
}
