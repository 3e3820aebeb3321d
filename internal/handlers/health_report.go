package handlers

import (
	"net/http"

	"github.com/Rajan16703/gitcompare/internal/services"
	"github.com/gin-gonic/gin"
)

type HealthReportHandler struct {
	healthService *services.HealthService
}

func NewHealthReportHandler(healthService *services.HealthService) *HealthReportHandler {
	return &HealthReportHandler{
		healthService: healthService,
	}
}

// AnalyzeRepository returns the health report for owner/repo path params
func (h *HealthReportHandler) AnalyzeRepository(c *gin.Context) {
	owner := c.Param("owner")
	repo := c.Param("repo")

	report, err := h.healthService.AnalyzeRepositoryHealth(c.Request.Context(), owner, repo)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// AnalyzeReference resolves a free-text repository reference (bare
// owner/repo or a github.com URL) and returns its health report. This is
// the entry point the chat layer uses.
func (h *HealthReportHandler) AnalyzeReference(c *gin.Context) {
	ref := c.Query("ref")

	owner, repo, ok := services.ParseRepoReference(ref)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no repository reference found in ref"})
		return
	}

	report, err := h.healthService.AnalyzeRepositoryHealth(c.Request.Context(), owner, repo)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
