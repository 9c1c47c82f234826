package identity

import (
	"context"
	"errors"

	"github.com/Tecnavis/paycollection/internal/domain/identity"
	"github.com/Tecnavis/paycollection/internal/domain/shared"
	"github.com/Tecnavis/paycollection/internal/infrastructure/auth"
	"github.com/google/uuid"
)

// AuthService handles authentication and account management
type AuthService struct {
	userRepo   identity.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo identity.UserRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login authenticates by phone or email and issues a token pair. The
// same error covers an unknown login and a wrong password so the
// endpoint does not leak which accounts exist.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.userRepo.FindByLogin(ctx, req.Login)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid login or password")
		}
		return nil, err
	}
	if !user.Active {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Account is deactivated")
	}
	if !user.CheckPassword(req.Password) {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid login or password")
	}

	tokens, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:   user.GetID(),
		FullName: user.FullName,
		Role:     string(user.Role),
	})
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		User:   ToUserResponse(user),
		Tokens: tokens,
	}, nil
}

// Refresh rotates a refresh token into a fresh token pair
func (s *AuthService) Refresh(ctx context.Context, req RefreshRequest) (*auth.TokenPair, error) {
	claims, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid or expired refresh token")
	}

	userID, err := claims.GetUserUUID()
	if err != nil {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid refresh token claims")
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("UNAUTHORIZED", "Account no longer exists")
		}
		return nil, err
	}
	if !user.Active {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Account is deactivated")
	}

	tokens, err := s.jwtService.RefreshTokenPair(req.RefreshToken, user.FullName)
	if err != nil {
		if errors.Is(err, auth.ErrMaxRefreshExceeded) {
			return nil, shared.NewDomainError("UNAUTHORIZED", "Session expired, please log in again")
		}
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid or expired refresh token")
	}
	return tokens, nil
}

// GetProfile retrieves the account behind a user ID
func (s *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	response := ToUserResponse(user)
	return &response, nil
}

// ChangePassword verifies the current password and replaces it
func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, req ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if !user.CheckPassword(req.CurrentPassword) {
		return shared.NewDomainError("UNAUTHORIZED", "Current password is incorrect")
	}
	if err := user.SetPassword(req.NewPassword); err != nil {
		return err
	}
	return s.userRepo.Save(ctx, user)
}

// CreateUser creates a back-office account. Only admins reach this
// operation; the route is role-guarded.
func (s *AuthService) CreateUser(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	user, err := identity.NewUser(req.FullName, req.Phone, req.Email, req.Password, identity.Role(req.Role))
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	response := ToUserResponse(user)
	return &response, nil
}
