package handler

import (
	collectionapp "github.com/Tecnavis/paycollection/internal/application/collection"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EntryHandler handles payment entry API endpoints
type EntryHandler struct {
	BaseHandler
	entryService *collectionapp.EntryService
}

// NewEntryHandler creates a new EntryHandler
func NewEntryHandler(entryService *collectionapp.EntryService) *EntryHandler {
	return &EntryHandler{
		entryService: entryService,
	}
}

// Record records a payment against an enrollment. Payments that would
// push the enrollment past the scheme total are rejected.
func (h *EntryHandler) Record(c *gin.Context) {
	actor, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req collectionapp.RecordEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	entry, err := h.entryService.Record(c.Request.Context(), req, actor)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, entry)
}

// GetByID retrieves a payment entry by its ID
func (h *EntryHandler) GetByID(c *gin.Context) {
	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid entry ID format")
		return
	}

	entry, err := h.entryService.GetByID(c.Request.Context(), entryID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, entry)
}

// ListByEnrollment lists the payments of an enrollment, newest first
func (h *EntryHandler) ListByEnrollment(c *gin.Context) {
	enrollmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid enrollment ID format")
		return
	}

	entries, err := h.entryService.ListByEnrollment(c.Request.Context(), enrollmentID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, entries)
}

// Amend applies a partial amendment to a recorded payment
func (h *EntryHandler) Amend(c *gin.Context) {
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

	var req collectionapp.AmendEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	entry, err := h.entryService.Amend(c.Request.Context(), entryID, req, actor)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, entry)
}

// Delete voids a recorded payment
func (h *EntryHandler) Delete(c *gin.Context) {
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

	if err := h.entryService.Delete(c.Request.Context(), entryID, actor); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
