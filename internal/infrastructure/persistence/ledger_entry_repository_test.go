package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/Tecnavis/paycollection/internal/domain/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedLedgerEntry(t *testing.T, repo *GormLedgerEntryRepository, entryType ledger.EntryType, date time.Time, amount int64, narration string) *ledger.Entry {
	t.Helper()
	entry, err := ledger.NewEntry(entryType, date, decimal.NewFromInt(amount), narration, uuid.New())
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), entry))
	return entry
}

func TestLedgerEntryRepository_FindAllOrdered(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormLedgerEntryRepository(db)

	jan := func(day int) time.Time { return time.Date(2026, 1, day, 0, 0, 0, 0, time.UTC) }

	// Inserted out of date order on purpose
	seedLedgerEntry(t, repo, ledger.EntryDebit, jan(15), 30, "Fuel")
	seedLedgerEntry(t, repo, ledger.EntryCredit, jan(5), 100, "Opening collection")
	seedLedgerEntry(t, repo, ledger.EntryCredit, jan(10), 50, "Daily collection")

	entries, err := repo.FindAllOrdered(ctx, ledger.EntryFilter{})
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "Opening collection", entries[0].Narration)
	assert.Equal(t, "Daily collection", entries[1].Narration)
	assert.Equal(t, "Fuel", entries[2].Narration)

	withBalances := ledger.ComputeRunningBalances(entries)
	assert.Equal(t, "100.00", withBalances[0].RunningBalance.StringFixed(2))
	assert.Equal(t, "150.00", withBalances[1].RunningBalance.StringFixed(2))
	assert.Equal(t, "120.00", withBalances[2].RunningBalance.StringFixed(2))

	t.Run("entry type filter", func(t *testing.T) {
		credit := ledger.EntryCredit
		entries, err := repo.FindAllOrdered(ctx, ledger.EntryFilter{EntryType: &credit})
		require.NoError(t, err)
		require.Len(t, entries, 2)
		for _, e := range entries {
			assert.Equal(t, ledger.EntryCredit, e.EntryType)
		}
	})

	t.Run("date range filter", func(t *testing.T) {
		from, to := jan(6), jan(15)
		entries, err := repo.FindAllOrdered(ctx, ledger.EntryFilter{FromDate: &from, ToDate: &to})
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "Daily collection", entries[0].Narration)
	})
}

func TestLedgerEntryRepository_Summarize(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormLedgerEntryRepository(db)

	t.Run("empty ledger reports explicit zeros", func(t *testing.T) {
		summary, err := repo.Summarize(ctx, ledger.EntryFilter{})
		require.NoError(t, err)
		assert.Equal(t, "0.00", summary.TotalCredit.StringFixed(2))
		assert.Equal(t, "0.00", summary.TotalDebit.StringFixed(2))
		assert.Equal(t, "0.00", summary.Balance.StringFixed(2))
	})

	t.Run("totals and balance", func(t *testing.T) {
		day := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		seedLedgerEntry(t, repo, ledger.EntryCredit, day, 500, "Collections")
		seedLedgerEntry(t, repo, ledger.EntryCredit, day, 250, "Collections")
		seedLedgerEntry(t, repo, ledger.EntryDebit, day, 100, "Commission payout")

		summary, err := repo.Summarize(ctx, ledger.EntryFilter{})
		require.NoError(t, err)
		assert.Equal(t, "750.00", summary.TotalCredit.StringFixed(2))
		assert.Equal(t, "100.00", summary.TotalDebit.StringFixed(2))
		assert.Equal(t, "650.00", summary.Balance.StringFixed(2))
	})

	t.Run("filtered summary", func(t *testing.T) {
		debit := ledger.EntryDebit
		summary, err := repo.Summarize(ctx, ledger.EntryFilter{EntryType: &debit})
		require.NoError(t, err)
		assert.Equal(t, "0.00", summary.TotalCredit.StringFixed(2))
		assert.Equal(t, "100.00", summary.TotalDebit.StringFixed(2))
	})
}
