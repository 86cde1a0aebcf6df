package handler

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bizrecords/backend/internal/interfaces/http/dto"
)

// SystemHandler serves health and liveness endpoints
type SystemHandler struct {
	BaseHandler
	startTime time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{startTime: time.Now()}
}

// Health reports service liveness
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{
		"status":     "ok",
		"go_version": runtime.Version(),
		"uptime":     time.Since(h.startTime).String(),
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	}))
}

// RegisterRoutes registers system routes
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
}
