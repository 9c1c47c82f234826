package handler

import (
	collectionapp "github.com/Tecnavis/paycollection/internal/application/collection"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SchemeHandler handles collection scheme API endpoints
type SchemeHandler struct {
	BaseHandler
	schemeService *collectionapp.SchemeService
}

// NewSchemeHandler creates a new SchemeHandler
func NewSchemeHandler(schemeService *collectionapp.SchemeService) *SchemeHandler {
	return &SchemeHandler{
		schemeService: schemeService,
	}
}

// Create creates a new collection scheme
func (h *SchemeHandler) Create(c *gin.Context) {
	actor, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req collectionapp.CreateSchemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	scheme, err := h.schemeService.Create(c.Request.Context(), req, actor)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, scheme)
}

// GetByID retrieves a scheme by its ID
func (h *SchemeHandler) GetByID(c *gin.Context) {
	schemeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid scheme ID format")
		return
	}

	scheme, err := h.schemeService.GetByID(c.Request.Context(), schemeID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, scheme)
}

// List retrieves a paginated list of schemes
func (h *SchemeHandler) List(c *gin.Context) {
	var filter collectionapp.SchemeListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	schemes, total, err := h.schemeService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	h.SuccessWithMeta(c, schemes, total, page, pageSize)
}

// Update applies a partial update to a scheme
func (h *SchemeHandler) Update(c *gin.Context) {
	actor, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	schemeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid scheme ID format")
		return
	}

	var req collectionapp.UpdateSchemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	scheme, err := h.schemeService.Update(c.Request.Context(), schemeID, req, actor)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, scheme)
}

// Deactivate retires a scheme from new enrollments
func (h *SchemeHandler) Deactivate(c *gin.Context) {
	actor, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	schemeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid scheme ID format")
		return
	}

	if err := h.schemeService.Deactivate(c.Request.Context(), schemeID, actor); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Scheme deactivated"})
}

// Delete removes a scheme without enrollments
func (h *SchemeHandler) Delete(c *gin.Context) {
	schemeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid scheme ID format")
		return
	}

	if err := h.schemeService.Delete(c.Request.Context(), schemeID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
