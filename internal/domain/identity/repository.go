package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines persistence operations for users
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	// FindByLogin resolves a user by phone or email, whichever matches.
	FindByLogin(ctx context.Context, login string) (*User, error)
	Save(ctx context.Context, user *User) error
}
