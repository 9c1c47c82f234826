package handler

import (
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
)

// SystemHandler handles system-level endpoints
type SystemHandler struct {
	BaseHandler
	startedAt time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{
		startedAt: time.Now(),
	}
}

// Ping responds with pong for liveness checks
func (h *SystemHandler) Ping(c *gin.Context) {
	h.Success(c, gin.H{"message": "pong"})
}

// GetSystemInfo returns basic runtime information
func (h *SystemHandler) GetSystemInfo(c *gin.Context) {
	h.Success(c, gin.H{
		"go_version": runtime.Version(),
		"uptime":     time.Since(h.startedAt).String(),
		"time":       time.Now().Format(time.RFC3339),
	})
}
