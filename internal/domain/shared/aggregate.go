package shared

import (
	"github.com/google/uuid"
)

// AggregateRoot is the base interface for all aggregate roots
type AggregateRoot interface {
	Entity
	GetVersion() int
	IncrementVersion()
}

// BaseAggregateRoot provides common fields for aggregate roots
type BaseAggregateRoot struct {
	BaseEntity
	Version int `gorm:"not null;default:1"`
}

// GetVersion returns the aggregate version for optimistic locking
func (a *BaseAggregateRoot) GetVersion() int {
	return a.Version
}

// IncrementVersion increments the version number
func (a *BaseAggregateRoot) IncrementVersion() {
	a.Version++
}

// NewBaseAggregateRoot creates a new base aggregate root
func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{
		BaseEntity: NewBaseEntity(),
		Version:    1,
	}
}

// AuditedAggregateRoot extends BaseAggregateRoot with actor tracking.
// The acting user is always passed in explicitly by the caller; there is
// no ambient current-user anywhere in the domain.
type AuditedAggregateRoot struct {
	BaseAggregateRoot
	CreatedBy uuid.UUID `gorm:"type:uuid;not null;index"`
	UpdatedBy uuid.UUID `gorm:"type:uuid;not null"`
}

// NewAuditedAggregateRoot creates a new audited aggregate root
func NewAuditedAggregateRoot(createdBy uuid.UUID) AuditedAggregateRoot {
	return AuditedAggregateRoot{
		BaseAggregateRoot: NewBaseAggregateRoot(),
		CreatedBy:         createdBy,
		UpdatedBy:         createdBy,
	}
}

// Touch records the actor of the latest modification
func (a *AuditedAggregateRoot) Touch(updatedBy uuid.UUID) {
	a.UpdatedBy = updatedBy
	a.IncrementVersion()
}
