package ledger

import (
	"context"
	"time"

	"github.com/Tecnavis/paycollection/internal/domain/ledger"
	"github.com/google/uuid"
)

// LedgerService handles the office's general ledger of credits and debits
type LedgerService struct {
	entryRepo ledger.EntryRepository
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(entryRepo ledger.EntryRepository) *LedgerService {
	return &LedgerService{entryRepo: entryRepo}
}

// Create creates a new ledger entry
func (s *LedgerService) Create(ctx context.Context, req CreateEntryRequest, actor uuid.UUID) (*EntryResponse, error) {
	var entryDate time.Time
	if req.EntryDate != nil {
		entryDate = *req.EntryDate
	}

	entry, err := ledger.NewEntry(ledger.EntryType(req.EntryType), entryDate, req.Amount, req.Narration, actor)
	if err != nil {
		return nil, err
	}
	if err := s.entryRepo.Save(ctx, entry); err != nil {
		return nil, err
	}

	response := ToEntryResponse(ledger.EntryWithBalance{Entry: *entry, RunningBalance: entry.Signed()})
	return &response, nil
}

// GetByID retrieves a single ledger entry. The running balance is only
// meaningful within a listing, so it is reported as the entry's own
// signed amount here.
func (s *LedgerService) GetByID(ctx context.Context, id uuid.UUID) (*EntryResponse, error) {
	entry, err := s.entryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToEntryResponse(ledger.EntryWithBalance{Entry: *entry, RunningBalance: entry.Signed()})
	return &response, nil
}

// List retrieves ledger entries in ledger order with running balances.
// The balance accumulates within the filtered window, so the same filter
// always yields the same balances.
func (s *LedgerService) List(ctx context.Context, filter EntryListFilter) ([]EntryResponse, error) {
	entries, err := s.entryRepo.FindAllOrdered(ctx, s.toDomainFilter(filter))
	if err != nil {
		return nil, err
	}

	balanced := ledger.ComputeRunningBalances(entries)
	responses := make([]EntryResponse, len(balanced))
	for i, entry := range balanced {
		responses[i] = ToEntryResponse(entry)
	}
	return responses, nil
}

// Summarize aggregates the filtered ledger into credit, debit, and balance
func (s *LedgerService) Summarize(ctx context.Context, filter EntryListFilter) (*SummaryResponse, error) {
	summary, err := s.entryRepo.Summarize(ctx, s.toDomainFilter(filter))
	if err != nil {
		return nil, err
	}
	return &SummaryResponse{
		TotalCredit: summary.TotalCredit,
		TotalDebit:  summary.TotalDebit,
		Balance:     summary.Balance,
	}, nil
}

// Update applies a partial update to a ledger entry
func (s *LedgerService) Update(ctx context.Context, id uuid.UUID, req UpdateEntryRequest, actor uuid.UUID) (*EntryResponse, error) {
	entry, err := s.entryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch := ledger.EntryPatch{
		EntryDate: req.EntryDate,
		Amount:    req.Amount,
		Narration: req.Narration,
	}
	if req.EntryType != nil {
		t := ledger.EntryType(*req.EntryType)
		patch.EntryType = &t
	}
	if err := entry.Apply(patch, actor); err != nil {
		return nil, err
	}
	if err := s.entryRepo.Save(ctx, entry); err != nil {
		return nil, err
	}

	response := ToEntryResponse(ledger.EntryWithBalance{Entry: *entry, RunningBalance: entry.Signed()})
	return &response, nil
}

// Delete removes a ledger entry
func (s *LedgerService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.entryRepo.Delete(ctx, id)
}

func (s *LedgerService) toDomainFilter(filter EntryListFilter) ledger.EntryFilter {
	domainFilter := ledger.EntryFilter{
		FromDate: filter.FromDate,
		ToDate:   filter.ToDate,
	}
	if filter.EntryType != "" {
		t := ledger.EntryType(filter.EntryType)
		domainFilter.EntryType = &t
	}
	return domainFilter
}
