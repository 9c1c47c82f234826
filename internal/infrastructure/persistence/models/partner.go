package models

import (
	"github.com/Tecnavis/paycollection/internal/domain/partner"
	"github.com/google/uuid"
)

// CustomerModel is the persistence model for customers
type CustomerModel struct {
	AuditedAggregateModel
	FullName string     `gorm:"type:varchar(255);not null"`
	Phone    string     `gorm:"type:varchar(20);not null;uniqueIndex"`
	Email    string     `gorm:"type:varchar(255)"`
	Address  string     `gorm:"type:text"`
	AgentID  *uuid.UUID `gorm:"type:uuid;index"`
	Active   bool       `gorm:"not null;index"`
}

// TableName specifies the table name
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the model to a domain customer
func (m *CustomerModel) ToDomain() *partner.Customer {
	c := &partner.Customer{
		FullName: m.FullName,
		Phone:    m.Phone,
		Email:    m.Email,
		Address:  m.Address,
		AgentID:  m.AgentID,
		Active:   m.Active,
	}
	m.PopulateAuditedAggregateRoot(&c.AuditedAggregateRoot)
	return c
}

// CustomerModelFromDomain converts a domain customer to the persistence model
func CustomerModelFromDomain(c *partner.Customer) *CustomerModel {
	m := &CustomerModel{
		FullName: c.FullName,
		Phone:    c.Phone,
		Email:    c.Email,
		Address:  c.Address,
		AgentID:  c.AgentID,
		Active:   c.Active,
	}
	m.FromDomainAuditedAggregateRoot(c.AuditedAggregateRoot)
	return m
}

// AgentModel is the persistence model for collection agents
type AgentModel struct {
	AuditedAggregateModel
	FullName string `gorm:"type:varchar(255);not null"`
	Phone    string `gorm:"type:varchar(20);not null;uniqueIndex"`
	Email    string `gorm:"type:varchar(255)"`
	Active   bool   `gorm:"not null"`
}

// TableName specifies the table name
func (AgentModel) TableName() string {
	return "agents"
}

// ToDomain converts the model to a domain agent
func (m *AgentModel) ToDomain() *partner.Agent {
	a := &partner.Agent{
		FullName: m.FullName,
		Phone:    m.Phone,
		Email:    m.Email,
		Active:   m.Active,
	}
	m.PopulateAuditedAggregateRoot(&a.AuditedAggregateRoot)
	return a
}

// AgentModelFromDomain converts a domain agent to the persistence model
func AgentModelFromDomain(a *partner.Agent) *AgentModel {
	m := &AgentModel{
		FullName: a.FullName,
		Phone:    a.Phone,
		Email:    a.Email,
		Active:   a.Active,
	}
	m.FromDomainAuditedAggregateRoot(a.AuditedAggregateRoot)
	return m
}
