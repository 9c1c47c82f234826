package identity

import (
	"strings"

	"github.com/Tecnavis/paycollection/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Role is the authorization role of a back-office user
type Role string

const (
	RoleAdmin Role = "admin"
	RoleAgent Role = "agent"
)

// IsValid checks if the role is a known value
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleAgent
}

// User is a back-office account. Login accepts either phone or email.
type User struct {
	shared.BaseAggregateRoot
	FullName     string
	Phone        string
	Email        string
	PasswordHash string
	Role         Role
	Active       bool
}

// NewUser creates a new user with a bcrypt-hashed password
func NewUser(fullName, phone, email, password string, role Role) (*User, error) {
	fullName = strings.TrimSpace(fullName)
	phone = strings.TrimSpace(phone)
	email = strings.TrimSpace(email)

	if fullName == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Full name is required")
	}
	if phone == "" && email == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Either phone or email is required")
	}
	if len(password) < 8 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Password must be at least 8 characters")
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Role must be admin or agent")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		FullName:          fullName,
		Phone:             phone,
		Email:             email,
		PasswordHash:      string(hash),
		Role:              role,
		Active:            true,
	}, nil
}

// CheckPassword verifies a plaintext password against the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// SetPassword replaces the stored password hash
func (u *User) SetPassword(password string) error {
	if len(password) < 8 {
		return shared.NewDomainError("VALIDATION_ERROR", "Password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	u.IncrementVersion()
	return nil
}
