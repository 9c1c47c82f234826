package partner

import (
	"context"

	"github.com/google/uuid"
)

// CustomerFilter holds filtering options for customer queries
type CustomerFilter struct {
	Search          string
	AgentID         *uuid.UUID
	IncludeInactive bool
	Page            int
	PageSize        int
}

// CustomerRepository defines persistence operations for customers
type CustomerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	FindByPhone(ctx context.Context, phone string) (*Customer, error)
	FindAll(ctx context.Context, filter CustomerFilter) ([]Customer, error)
	Count(ctx context.Context, filter CustomerFilter) (int64, error)
	ExistsByPhone(ctx context.Context, phone string, excludeID uuid.UUID) (bool, error)
	Save(ctx context.Context, customer *Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// AgentRepository defines persistence operations for agents
type AgentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Agent, error)
	FindAll(ctx context.Context, includeInactive bool) ([]Agent, error)
	ExistsByPhone(ctx context.Context, phone string, excludeID uuid.UUID) (bool, error)
	Save(ctx context.Context, agent *Agent) error
	Delete(ctx context.Context, id uuid.UUID) error
}
