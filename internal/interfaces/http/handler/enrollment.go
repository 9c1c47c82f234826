package handler

import (
	collectionapp "github.com/Tecnavis/paycollection/internal/application/collection"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EnrollmentHandler handles enrollment API endpoints
type EnrollmentHandler struct {
	BaseHandler
	enrollmentService *collectionapp.EnrollmentService
}

// NewEnrollmentHandler creates a new EnrollmentHandler
func NewEnrollmentHandler(enrollmentService *collectionapp.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{
		enrollmentService: enrollmentService,
	}
}

// Enroll enrolls a customer into a scheme
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	actor, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req collectionapp.EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	enrollment, err := h.enrollmentService.Enroll(c.Request.Context(), req, actor)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, enrollment)
}

// GetByID retrieves an enrollment with its payment progress
func (h *EnrollmentHandler) GetByID(c *gin.Context) {
	enrollmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid enrollment ID format")
		return
	}

	enrollment, err := h.enrollmentService.GetByID(c.Request.Context(), enrollmentID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, enrollment)
}

// ListByScheme lists all enrollments of a scheme
func (h *EnrollmentHandler) ListByScheme(c *gin.Context) {
	schemeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid scheme ID format")
		return
	}

	enrollments, err := h.enrollmentService.ListByScheme(c.Request.Context(), schemeID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, enrollments)
}

// ListByCustomer lists all enrollments of a customer
func (h *EnrollmentHandler) ListByCustomer(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid customer ID format")
		return
	}

	enrollments, err := h.enrollmentService.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, enrollments)
}

// Close closes an enrollment so it accepts no further payments
func (h *EnrollmentHandler) Close(c *gin.Context) {
	actor, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	enrollmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid enrollment ID format")
		return
	}

	enrollment, err := h.enrollmentService.Close(c.Request.Context(), enrollmentID, actor)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, enrollment)
}

// Delete removes an enrollment without payments
func (h *EnrollmentHandler) Delete(c *gin.Context) {
	enrollmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid enrollment ID format")
		return
	}

	if err := h.enrollmentService.Delete(c.Request.Context(), enrollmentID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
