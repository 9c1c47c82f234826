package models

import (
	"github.com/Tecnavis/paycollection/internal/domain/identity"
)

// UserModel is the persistence model for back-office users
type UserModel struct {
	AggregateModel
	FullName     string `gorm:"type:varchar(255);not null"`
	Phone        string `gorm:"type:varchar(20);uniqueIndex"`
	Email        string `gorm:"type:varchar(255);uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Role         string `gorm:"type:varchar(20);not null"`
	Active       bool   `gorm:"not null"`
}

// TableName specifies the table name
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the model to a domain user
func (m *UserModel) ToDomain() *identity.User {
	u := &identity.User{
		FullName:     m.FullName,
		Phone:        m.Phone,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         identity.Role(m.Role),
		Active:       m.Active,
	}
	m.PopulateAggregateRoot(&u.BaseAggregateRoot)
	return u
}

// UserModelFromDomain converts a domain user to the persistence model
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{
		FullName:     u.FullName,
		Phone:        u.Phone,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		Active:       u.Active,
	}
	m.FromDomainAggregateRoot(u.BaseAggregateRoot)
	return m
}
