package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/Tecnavis/paycollection/internal/domain/ledger"
	"github.com/Tecnavis/paycollection/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockEntryRepository is a mock implementation of ledger.EntryRepository
type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Entry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Entry), args.Error(1)
}

func (m *MockEntryRepository) FindAllOrdered(ctx context.Context, filter ledger.EntryFilter) ([]ledger.Entry, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]ledger.Entry), args.Error(1)
}

func (m *MockEntryRepository) Summarize(ctx context.Context, filter ledger.EntryFilter) (ledger.Summary, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(ledger.Summary), args.Error(1)
}

func (m *MockEntryRepository) Save(ctx context.Context, entry *ledger.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func mustLedgerEntry(t *testing.T, entryType ledger.EntryType, day int, amount int64, narration string) ledger.Entry {
	t.Helper()
	entry, err := ledger.NewEntry(entryType,
		time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC),
		decimal.NewFromInt(amount), narration, uuid.New())
	require.NoError(t, err)
	return *entry
}

func TestLedgerService_Create(t *testing.T) {
	ctx := context.Background()
	actor := uuid.New()

	t.Run("creates a credit entry", func(t *testing.T) {
		repo := new(MockEntryRepository)
		service := NewLedgerService(repo)

		repo.On("Save", ctx, mock.AnythingOfType("*ledger.Entry")).Return(nil)

		response, err := service.Create(ctx, CreateEntryRequest{
			EntryType: "credit",
			Amount:    decimal.NewFromInt(500),
			Narration: "Daily collections deposit",
		}, actor)

		require.NoError(t, err)
		assert.Equal(t, "credit", response.EntryType)
		assert.Equal(t, "500", response.RunningBalance.String())
		repo.AssertExpectations(t)
	})

	t.Run("rejects a blank narration", func(t *testing.T) {
		repo := new(MockEntryRepository)
		service := NewLedgerService(repo)

		_, err := service.Create(ctx, CreateEntryRequest{
			EntryType: "debit",
			Amount:    decimal.NewFromInt(100),
			Narration: "   ",
		}, actor)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestLedgerService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("running balances accumulate in ledger order", func(t *testing.T) {
		repo := new(MockEntryRepository)
		service := NewLedgerService(repo)

		entries := []ledger.Entry{
			mustLedgerEntry(t, ledger.EntryCredit, 1, 100, "Collections"),
			mustLedgerEntry(t, ledger.EntryDebit, 2, 30, "Fuel"),
			mustLedgerEntry(t, ledger.EntryCredit, 3, 50, "Collections"),
		}
		repo.On("FindAllOrdered", ctx, ledger.EntryFilter{}).Return(entries, nil)

		responses, err := service.List(ctx, EntryListFilter{})

		require.NoError(t, err)
		require.Len(t, responses, 3)
		assert.Equal(t, "100", responses[0].RunningBalance.String())
		assert.Equal(t, "70", responses[1].RunningBalance.String())
		assert.Equal(t, "120", responses[2].RunningBalance.String())
	})

	t.Run("entry type filter reaches the repository", func(t *testing.T) {
		repo := new(MockEntryRepository)
		service := NewLedgerService(repo)

		credit := ledger.EntryCredit
		repo.On("FindAllOrdered", ctx, ledger.EntryFilter{EntryType: &credit}).
			Return([]ledger.Entry{}, nil)

		responses, err := service.List(ctx, EntryListFilter{EntryType: "credit"})

		require.NoError(t, err)
		assert.Empty(t, responses)
		repo.AssertExpectations(t)
	})
}

func TestLedgerService_Summarize(t *testing.T) {
	ctx := context.Background()
	repo := new(MockEntryRepository)
	service := NewLedgerService(repo)

	repo.On("Summarize", ctx, ledger.EntryFilter{}).
		Return(ledger.NewSummary(decimal.NewFromInt(750), decimal.NewFromInt(100)), nil)

	summary, err := service.Summarize(ctx, EntryListFilter{})

	require.NoError(t, err)
	assert.Equal(t, "750", summary.TotalCredit.String())
	assert.Equal(t, "100", summary.TotalDebit.String())
	assert.Equal(t, "650", summary.Balance.String())
}

func TestLedgerService_Update(t *testing.T) {
	ctx := context.Background()
	actor := uuid.New()

	t.Run("flips direction and amount", func(t *testing.T) {
		repo := new(MockEntryRepository)
		service := NewLedgerService(repo)

		entry := mustLedgerEntry(t, ledger.EntryCredit, 1, 100, "Collections")
		repo.On("FindByID", ctx, entry.GetID()).Return(&entry, nil)
		repo.On("Save", ctx, &entry).Return(nil)

		entryType := "debit"
		amount := decimal.NewFromInt(80)
		response, err := service.Update(ctx, entry.GetID(), UpdateEntryRequest{
			EntryType: &entryType,
			Amount:    &amount,
		}, actor)

		require.NoError(t, err)
		assert.Equal(t, "debit", response.EntryType)
		assert.Equal(t, "-80", response.RunningBalance.String())
	})

	t.Run("unknown entry returns not found", func(t *testing.T) {
		repo := new(MockEntryRepository)
		service := NewLedgerService(repo)

		id := uuid.New()
		repo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := service.Update(ctx, id, UpdateEntryRequest{}, actor)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
