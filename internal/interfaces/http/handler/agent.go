package handler

import (
	partnerapp "github.com/Tecnavis/paycollection/internal/application/partner"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AgentHandler handles collection agent API endpoints
type AgentHandler struct {
	BaseHandler
	agentService *partnerapp.AgentService
}

// NewAgentHandler creates a new AgentHandler
func NewAgentHandler(agentService *partnerapp.AgentService) *AgentHandler {
	return &AgentHandler{
		agentService: agentService,
	}
}

// Create creates a new agent
func (h *AgentHandler) Create(c *gin.Context) {
	actor, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req partnerapp.CreateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	agent, err := h.agentService.Create(c.Request.Context(), req, actor)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, agent)
}

// GetByID retrieves an agent by ID
func (h *AgentHandler) GetByID(c *gin.Context) {
	agentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid agent ID format")
		return
	}

	agent, err := h.agentService.GetByID(c.Request.Context(), agentID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, agent)
}

// List retrieves all agents
func (h *AgentHandler) List(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"

	agents, err := h.agentService.List(c.Request.Context(), includeInactive)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, agents)
}

// Update applies a partial update to an agent
func (h *AgentHandler) Update(c *gin.Context) {
	actor, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	agentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid agent ID format")
		return
	}

	var req partnerapp.UpdateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	agent, err := h.agentService.Update(c.Request.Context(), agentID, req, actor)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, agent)
}

// Delete removes an agent with no assigned customers
func (h *AgentHandler) Delete(c *gin.Context) {
	agentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid agent ID format")
		return
	}

	if err := h.agentService.Delete(c.Request.Context(), agentID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
