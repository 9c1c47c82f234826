package identity

import (
	"context"
	"testing"
	"time"

	"github.com/Tecnavis/paycollection/internal/domain/identity"
	"github.com/Tecnavis/paycollection/internal/domain/shared"
	"github.com/Tecnavis/paycollection/internal/infrastructure/auth"
	"github.com/Tecnavis/paycollection/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByLogin(ctx context.Context, login string) (*identity.User, error) {
	args := m.Called(ctx, login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-at-least-32-characters-long",
		Issuer:                 "paycollection-test",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		MaxRefreshCount:        5,
	})
}

func newTestUser(t *testing.T) *identity.User {
	t.Helper()
	user, err := identity.NewUser("Maya Joseph", "9400000010", "maya@example.com", "s3cretpass", identity.RoleAdmin)
	require.NoError(t, err)
	return user
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("issues tokens for valid credentials", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := NewAuthService(repo, newTestJWTService())

		user := newTestUser(t)
		repo.On("FindByLogin", ctx, "maya@example.com").Return(user, nil)

		response, err := service.Login(ctx, LoginRequest{
			Login:    "maya@example.com",
			Password: "s3cretpass",
		})

		require.NoError(t, err)
		assert.Equal(t, user.GetID(), response.User.ID)
		assert.Equal(t, "admin", response.User.Role)
		assert.NotEmpty(t, response.Tokens.AccessToken)
		assert.NotEmpty(t, response.Tokens.RefreshToken)
		assert.Equal(t, "Bearer", response.Tokens.TokenType)
	})

	t.Run("wrong password and unknown login fail identically", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := NewAuthService(repo, newTestJWTService())

		user := newTestUser(t)
		repo.On("FindByLogin", ctx, "maya@example.com").Return(user, nil)
		repo.On("FindByLogin", ctx, "nobody@example.com").Return(nil, shared.ErrNotFound)

		_, wrongPassword := service.Login(ctx, LoginRequest{Login: "maya@example.com", Password: "wrongpassword"})
		_, unknownLogin := service.Login(ctx, LoginRequest{Login: "nobody@example.com", Password: "s3cretpass"})

		require.Error(t, wrongPassword)
		require.Error(t, unknownLogin)
		assert.Equal(t, wrongPassword.Error(), unknownLogin.Error())
	})

	t.Run("deactivated account cannot log in", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := NewAuthService(repo, newTestJWTService())

		user := newTestUser(t)
		user.Active = false
		repo.On("FindByLogin", ctx, "maya@example.com").Return(user, nil)

		_, err := service.Login(ctx, LoginRequest{Login: "maya@example.com", Password: "s3cretpass"})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("rotates a valid refresh token", func(t *testing.T) {
		repo := new(MockUserRepository)
		jwtService := newTestJWTService()
		service := NewAuthService(repo, jwtService)

		user := newTestUser(t)
		repo.On("FindByLogin", ctx, "maya@example.com").Return(user, nil)
		repo.On("FindByID", ctx, user.GetID()).Return(user, nil)

		login, err := service.Login(ctx, LoginRequest{Login: "maya@example.com", Password: "s3cretpass"})
		require.NoError(t, err)

		tokens, err := service.Refresh(ctx, RefreshRequest{RefreshToken: login.Tokens.RefreshToken})

		require.NoError(t, err)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEmpty(t, tokens.RefreshToken)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		service := NewAuthService(new(MockUserRepository), newTestJWTService())

		_, err := service.Refresh(ctx, RefreshRequest{RefreshToken: "not-a-token"})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
	})

	t.Run("access token cannot be used as refresh token", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := NewAuthService(repo, newTestJWTService())

		user := newTestUser(t)
		repo.On("FindByLogin", ctx, "maya@example.com").Return(user, nil)

		login, err := service.Login(ctx, LoginRequest{Login: "maya@example.com", Password: "s3cretpass"})
		require.NoError(t, err)

		_, err = service.Refresh(ctx, RefreshRequest{RefreshToken: login.Tokens.AccessToken})
		assert.Error(t, err)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces the password after verifying the current one", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := NewAuthService(repo, newTestJWTService())

		user := newTestUser(t)
		repo.On("FindByID", ctx, user.GetID()).Return(user, nil)
		repo.On("Save", ctx, user).Return(nil)

		err := service.ChangePassword(ctx, user.GetID(), ChangePasswordRequest{
			CurrentPassword: "s3cretpass",
			NewPassword:     "evenm0resecret",
		})

		require.NoError(t, err)
		assert.True(t, user.CheckPassword("evenm0resecret"))
		assert.False(t, user.CheckPassword("s3cretpass"))
	})

	t.Run("wrong current password is rejected", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := NewAuthService(repo, newTestJWTService())

		user := newTestUser(t)
		repo.On("FindByID", ctx, user.GetID()).Return(user, nil)

		err := service.ChangePassword(ctx, user.GetID(), ChangePasswordRequest{
			CurrentPassword: "wrongpassword",
			NewPassword:     "evenm0resecret",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestAuthService_CreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("creates an agent account", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := NewAuthService(repo, newTestJWTService())

		repo.On("Save", ctx, mock.AnythingOfType("*identity.User")).Return(nil)

		response, err := service.CreateUser(ctx, CreateUserRequest{
			FullName: "Ravi Kumar",
			Phone:    "9400000020",
			Password: "collect0r!",
			Role:     "agent",
		})

		require.NoError(t, err)
		assert.Equal(t, "agent", response.Role)
		assert.True(t, response.Active)
	})

	t.Run("requires phone or email", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := NewAuthService(repo, newTestJWTService())

		_, err := service.CreateUser(ctx, CreateUserRequest{
			FullName: "Ravi Kumar",
			Password: "collect0r!",
			Role:     "agent",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
	})
}
