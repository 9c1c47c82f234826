package handler

import (
	ledgerapp "github.com/Tecnavis/paycollection/internal/application/ledger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LedgerHandler handles office ledger API endpoints
type LedgerHandler struct {
	BaseHandler
	ledgerService *ledgerapp.LedgerService
}

// NewLedgerHandler creates a new LedgerHandler
func NewLedgerHandler(ledgerService *ledgerapp.LedgerService) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
	}
}

// Create creates a ledger entry
func (h *LedgerHandler) Create(c *gin.Context) {
	actor, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req ledgerapp.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	entry, err := h.ledgerService.Create(c.Request.Context(), req, actor)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, entry)
}

// GetByID retrieves a ledger entry by its ID
func (h *LedgerHandler) GetByID(c *gin.Context) {
	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid entry ID format")
		return
	}

	entry, err := h.ledgerService.GetByID(c.Request.Context(), entryID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, entry)
}

// List retrieves ledger entries in ledger order with running balances
func (h *LedgerHandler) List(c *gin.Context) {
	var filter ledgerapp.EntryListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	entries, err := h.ledgerService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, entries)
}

// Summarize aggregates the ledger into credit, debit and balance totals
func (h *LedgerHandler) Summarize(c *gin.Context) {
	var filter ledgerapp.EntryListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	summary, err := h.ledgerService.Summarize(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, summary)
}

// Update applies a partial update to a ledger entry
func (h *LedgerHandler) Update(c *gin.Context) {
	actor, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid entry ID format")
		return
	}

	var req ledgerapp.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	entry, err := h.ledgerService.Update(c.Request.Context(), entryID, req, actor)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, entry)
}

// Delete removes a ledger entry
func (h *LedgerHandler) Delete(c *gin.Context) {
	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid entry ID format")
		return
	}

	if err := h.ledgerService.Delete(c.Request.Context(), entryID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
