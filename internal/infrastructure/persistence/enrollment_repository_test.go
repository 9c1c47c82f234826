package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/Tecnavis/paycollection/internal/domain/collection"
	"github.com/Tecnavis/paycollection/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrollmentRepository_Save(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormEnrollmentRepository(db)
	actor := uuid.New()

	scheme, err := collection.NewScheme("SCH-001", "Gold Plan", "",
		decimal.NewFromInt(5000), nil, nil, time.Now(), nil, actor)
	require.NoError(t, err)
	require.NoError(t, NewGormSchemeRepository(db).Save(ctx, scheme))

	customerID := uuid.New()

	first, err := collection.NewEnrollment(customerID, scheme.GetID(), time.Now(), actor)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, first))

	t.Run("duplicate pair is rejected by the unique index", func(t *testing.T) {
		dup, err := collection.NewEnrollment(customerID, scheme.GetID(), time.Now(), actor)
		require.NoError(t, err)

		err = repo.Save(ctx, dup)
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		assert.Equal(t, "Customer is already enrolled in this scheme", domainErr.Message)
	})

	t.Run("same customer may join a different scheme", func(t *testing.T) {
		other, err := collection.NewScheme("SCH-002", "Silver Plan", "",
			decimal.NewFromInt(2000), nil, nil, time.Now(), nil, actor)
		require.NoError(t, err)
		require.NoError(t, NewGormSchemeRepository(db).Save(ctx, other))

		enrollment, err := collection.NewEnrollment(customerID, other.GetID(), time.Now(), actor)
		require.NoError(t, err)
		assert.NoError(t, repo.Save(ctx, enrollment))
	})

	t.Run("updating the existing enrollment is not a duplicate", func(t *testing.T) {
		require.NoError(t, first.Close(actor))
		require.NoError(t, repo.Save(ctx, first))

		got, err := repo.FindByID(ctx, first.GetID())
		require.NoError(t, err)
		assert.Equal(t, collection.EnrollmentClosed, got.Status)
	})
}

func TestEnrollmentRepository_Lookup(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormEnrollmentRepository(db)
	actor := uuid.New()

	scheme, err := collection.NewScheme("SCH-010", "Daily Plan", "",
		decimal.NewFromInt(3000), nil, nil, time.Now(), nil, actor)
	require.NoError(t, err)
	require.NoError(t, NewGormSchemeRepository(db).Save(ctx, scheme))

	customerID := uuid.New()
	enrollment, err := collection.NewEnrollment(customerID, scheme.GetID(), time.Now(), actor)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, enrollment))

	t.Run("find by customer and scheme", func(t *testing.T) {
		got, err := repo.FindByCustomerAndScheme(ctx, customerID, scheme.GetID())
		require.NoError(t, err)
		assert.Equal(t, enrollment.GetID(), got.GetID())
	})

	t.Run("missing pair returns not found", func(t *testing.T) {
		_, err := repo.FindByCustomerAndScheme(ctx, uuid.New(), scheme.GetID())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("exists", func(t *testing.T) {
		ok, err := repo.Exists(ctx, customerID, scheme.GetID())
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.Exists(ctx, customerID, uuid.New())
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
