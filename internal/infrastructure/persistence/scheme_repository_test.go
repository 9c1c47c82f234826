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

func TestSchemeRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormSchemeRepository(db)
	actor := uuid.New()

	monthly := collection.FrequencyMonthly
	installment := decimal.NewFromInt(100)
	scheme, err := collection.NewScheme("SCH-100", "Monthly Gold", "Monthly savings plan",
		decimal.NewFromInt(1200), &monthly, &installment, time.Now(), nil, actor)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, scheme))

	t.Run("round trip preserves fields", func(t *testing.T) {
		got, err := repo.FindByID(ctx, scheme.GetID())
		require.NoError(t, err)
		assert.Equal(t, "SCH-100", got.SchemeNumber)
		assert.Equal(t, "Monthly Gold", got.Name)
		assert.Equal(t, "1200.00", got.TotalAmount.StringFixed(2))
		require.NotNil(t, got.Frequency)
		assert.Equal(t, collection.FrequencyMonthly, *got.Frequency)
		require.NotNil(t, got.InstallmentAmount)
		assert.Equal(t, "100.00", got.InstallmentAmount.StringFixed(2))
		assert.True(t, got.Active)
	})

	t.Run("find by scheme number", func(t *testing.T) {
		got, err := repo.FindBySchemeNumber(ctx, "SCH-100")
		require.NoError(t, err)
		assert.Equal(t, scheme.GetID(), got.GetID())

		_, err = repo.FindBySchemeNumber(ctx, "SCH-999")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("uniqueness probes", func(t *testing.T) {
		taken, err := repo.ExistsBySchemeNumber(ctx, "SCH-100")
		require.NoError(t, err)
		assert.True(t, taken)

		taken, err = repo.ExistsByName(ctx, "Monthly Gold", scheme.GetID())
		require.NoError(t, err)
		assert.False(t, taken, "self is excluded from the name check")

		taken, err = repo.ExistsByName(ctx, "Monthly Gold", uuid.Nil)
		require.NoError(t, err)
		assert.True(t, taken)
	})

	t.Run("patched scheme persists", func(t *testing.T) {
		total := decimal.NewFromInt(2400)
		require.NoError(t, scheme.Apply(collection.SchemePatch{TotalAmount: &total}, actor))
		require.NoError(t, repo.Save(ctx, scheme))

		got, err := repo.FindByID(ctx, scheme.GetID())
		require.NoError(t, err)
		assert.Equal(t, "2400.00", got.TotalAmount.StringFixed(2))
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, scheme.GetID()))
		_, err := repo.FindByID(ctx, scheme.GetID())
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, scheme.GetID()), shared.ErrNotFound)
	})
}

func TestSchemeRepository_FindAll(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormSchemeRepository(db)
	actor := uuid.New()

	seed := func(number, name string, total int64, active bool) {
		scheme, err := collection.NewScheme(number, name, "",
			decimal.NewFromInt(total), nil, nil, time.Now(), nil, actor)
		require.NoError(t, err)
		if !active {
			scheme.Deactivate(actor)
		}
		require.NoError(t, repo.Save(ctx, scheme))
	}
	seed("SCH-201", "Daily Silver", 500, true)
	seed("SCH-202", "Weekly Gold", 2000, true)
	seed("SCH-203", "Retired Plan", 900, false)

	t.Run("active only", func(t *testing.T) {
		schemes, err := repo.FindAll(ctx, collection.SchemeFilter{ActiveOnly: true})
		require.NoError(t, err)
		assert.Len(t, schemes, 2)
	})

	t.Run("search matches number and name", func(t *testing.T) {
		schemes, err := repo.FindAll(ctx, collection.SchemeFilter{Search: "Gold"})
		require.NoError(t, err)
		require.Len(t, schemes, 1)
		assert.Equal(t, "SCH-202", schemes[0].SchemeNumber)
	})

	t.Run("whitelisted ordering", func(t *testing.T) {
		schemes, err := repo.FindAll(ctx, collection.SchemeFilter{OrderBy: "total_amount", OrderDir: "asc"})
		require.NoError(t, err)
		require.Len(t, schemes, 3)
		assert.Equal(t, "SCH-201", schemes[0].SchemeNumber)
		assert.Equal(t, "SCH-202", schemes[2].SchemeNumber)
	})

	t.Run("unknown sort field falls back", func(t *testing.T) {
		_, err := repo.FindAll(ctx, collection.SchemeFilter{OrderBy: "amount; DROP TABLE schemes"})
		assert.NoError(t, err)
	})

	t.Run("pagination", func(t *testing.T) {
		schemes, err := repo.FindAll(ctx, collection.SchemeFilter{
			OrderBy: "scheme_number", OrderDir: "asc", Page: 2, PageSize: 2,
		})
		require.NoError(t, err)
		require.Len(t, schemes, 1)
		assert.Equal(t, "SCH-203", schemes[0].SchemeNumber)

		count, err := repo.Count(ctx, collection.SchemeFilter{})
		require.NoError(t, err)
		assert.EqualValues(t, 3, count)
	})
}

func TestSchemeRepository_SaveWithLock(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormSchemeRepository(db)
	actor := uuid.New()

	scheme, err := collection.NewScheme("SCH-300", "Locked Plan", "",
		decimal.NewFromInt(1000), nil, nil, time.Now(), nil, actor)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, scheme))

	stale := *scheme

	total := decimal.NewFromInt(1500)
	require.NoError(t, scheme.Apply(collection.SchemePatch{TotalAmount: &total}, actor))
	require.NoError(t, repo.SaveWithLock(ctx, scheme))

	other := decimal.NewFromInt(1800)
	require.NoError(t, stale.Apply(collection.SchemePatch{TotalAmount: &other}, actor))
	assert.ErrorIs(t, repo.SaveWithLock(ctx, &stale), shared.ErrConcurrencyConflict)
}

func TestSchemeRepository_SaveWithLockPersistsDeactivation(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormSchemeRepository(db)
	actor := uuid.New()

	scheme, err := collection.NewScheme("SCH-301", "Sunset Plan", "",
		decimal.NewFromInt(1000), nil, nil, time.Now(), nil, actor)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, scheme))

	scheme.Deactivate(actor)
	require.NoError(t, repo.SaveWithLock(ctx, scheme))

	// The zero-valued active flag must survive the conditional update
	reloaded, err := repo.FindByID(ctx, scheme.GetID())
	require.NoError(t, err)
	assert.False(t, reloaded.Active)
	assert.Equal(t, scheme.GetVersion(), reloaded.GetVersion())

	schemes, err := repo.FindAll(ctx, collection.SchemeFilter{ActiveOnly: true})
	require.NoError(t, err)
	assert.Empty(t, schemes)
}
