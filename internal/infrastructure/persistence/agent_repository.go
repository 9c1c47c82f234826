package persistence

import (
	"context"
	"errors"

	"github.com/Tecnavis/paycollection/internal/domain/partner"
	"github.com/Tecnavis/paycollection/internal/domain/shared"
	"github.com/Tecnavis/paycollection/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAgentRepository implements partner.AgentRepository using GORM
type GormAgentRepository struct {
	db *gorm.DB
}

// NewGormAgentRepository creates a new GormAgentRepository
func NewGormAgentRepository(db *gorm.DB) *GormAgentRepository {
	return &GormAgentRepository{db: db}
}

// FindByID finds an agent by its ID
func (r *GormAgentRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Agent, error) {
	var model models.AgentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all agents, active only unless includeInactive is set
func (r *GormAgentRepository) FindAll(ctx context.Context, includeInactive bool) ([]partner.Agent, error) {
	var agentModels []models.AgentModel
	query := r.db.WithContext(ctx).Order("full_name ASC")
	if !includeInactive {
		query = query.Where("active = ?", true)
	}
	if err := query.Find(&agentModels).Error; err != nil {
		return nil, err
	}
	agents := make([]partner.Agent, len(agentModels))
	for i, model := range agentModels {
		agents[i] = *model.ToDomain()
	}
	return agents, nil
}

// ExistsByPhone checks if a phone number is taken, optionally excluding one agent
func (r *GormAgentRepository) ExistsByPhone(ctx context.Context, phone string, excludeID uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.AgentModel{}).Where("phone = ?", phone)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates an agent
func (r *GormAgentRepository) Save(ctx context.Context, agent *partner.Agent) error {
	model := models.AgentModelFromDomain(agent)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if isUniqueViolation(err) {
			return shared.NewDomainError("ALREADY_EXISTS", "An agent with this phone number already exists")
		}
		return err
	}
	return nil
}

// Delete removes an agent record
func (r *GormAgentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.AgentModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
