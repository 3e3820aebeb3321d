package handlers

import (
	"net/http"

	"github.com/Rajan16703/gitcompare/internal/services"
	"github.com/gin-gonic/gin"
)

type StatusHandler struct {
	rateLimitService *services.RateLimitService
}

func NewStatusHandler(rateLimitService *services.RateLimitService) *StatusHandler {
	return &StatusHandler{
		rateLimitService: rateLimitService,
	}
}

// HealthCheck is the liveness endpoint
func (h *StatusHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// RateLimit reports the remaining unauthenticated GitHub quota
func (h *StatusHandler) RateLimit(c *gin.Context) {
	status, err := h.rateLimitService.Status(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, status)
}
