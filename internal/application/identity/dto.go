package identity

import (
	"time"

	"github.com/Tecnavis/paycollection/internal/domain/identity"
	"github.com/Tecnavis/paycollection/internal/infrastructure/auth"
	"github.com/google/uuid"
)

// LoginRequest represents a login request. Login accepts either the
// phone number or the email of the account.
type LoginRequest struct {
	Login    string `json:"login" binding:"required,min=1,max=200"`
	Password string `json:"password" binding:"required,min=8"`
}

// RefreshRequest represents a token refresh request
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ChangePasswordRequest represents a password change request
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

// CreateUserRequest represents a request to create a back-office user
type CreateUserRequest struct {
	FullName string `json:"full_name" binding:"required,min=1,max=200"`
	Phone    string `json:"phone" binding:"omitempty,max=20"`
	Email    string `json:"email" binding:"omitempty,email,max=200"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=admin agent"`
}

// UserResponse represents a user in API responses. The password hash
// never leaves the domain.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	User   UserResponse    `json:"user"`
	Tokens *auth.TokenPair `json:"tokens"`
}

// ToUserResponse converts a domain user to a response DTO
func ToUserResponse(user *identity.User) UserResponse {
	return UserResponse{
		ID:        user.GetID(),
		FullName:  user.FullName,
		Phone:     user.Phone,
		Email:     user.Email,
		Role:      string(user.Role),
		Active:    user.Active,
		CreatedAt: user.GetCreatedAt(),
		UpdatedAt: user.GetUpdatedAt(),
	}
}
