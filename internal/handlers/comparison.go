package handlers

import (
	"net/http"
	"strings"

	"github.com/Rajan16703/gitcompare/internal/middleware"
	"github.com/Rajan16703/gitcompare/internal/services"
	"github.com/gin-gonic/gin"
)

type ComparisonHandler struct {
	profileService    *services.ProfileService
	comparisonService *services.ComparisonService
	exportService     *services.ExportService
}

func NewComparisonHandler(profileService *services.ProfileService, comparisonService *services.ComparisonService, exportService *services.ExportService) *ComparisonHandler {
	return &ComparisonHandler{
		profileService:    profileService,
		comparisonService: comparisonService,
		exportService:     exportService,
	}
}

// SaveComparison runs a comparison and persists it, owner-scoped when a
// session is present and anonymous otherwise
func (h *ComparisonHandler) SaveComparison(c *gin.Context) {
	var req compareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	usernames := make([]string, 0, len(req.Usernames))
	for _, username := range req.Usernames {
		if trimmed := strings.TrimSpace(username); trimmed != "" {
			usernames = append(usernames, trimmed)
		}
	}

	if len(usernames) == 0 || len(usernames) > maxCompareProfiles {
		c.JSON(http.StatusBadRequest, gin.H{"error": "between 1 and 10 usernames are required"})
		return
	}

	profiles, err := h.profileService.CompareProfiles(c.Request.Context(), usernames)
	if err != nil {
		respondError(c, err)
		return
	}

	var ownerID *string
	if session := middleware.GetSession(c); session != nil {
		ownerID = &session.UserID
	}

	comparison, err := h.comparisonService.SaveComparison(ownerID, profiles)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comparison)
}

// ListComparisons returns the caller's saved comparisons
func (h *ComparisonHandler) ListComparisons(c *gin.Context) {
	session := middleware.GetSession(c)

	comparisons, err := h.comparisonService.ListComparisons(session.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comparisons": comparisons})
}

// GetComparison returns one of the caller's saved comparisons
func (h *ComparisonHandler) GetComparison(c *gin.Context) {
	session := middleware.GetSession(c)

	comparison, err := h.comparisonService.GetComparison(c.Param("id"), session.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, comparison)
}

// DeleteComparison removes one of the caller's saved comparisons
func (h *ComparisonHandler) DeleteComparison(c *gin.Context) {
	session := middleware.GetSession(c)

	if err := h.comparisonService.DeleteComparison(c.Param("id"), session.UserID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateShareLink mints a public token for one of the caller's saved
// comparisons
func (h *ComparisonHandler) CreateShareLink(c *gin.Context) {
	session := middleware.GetSession(c)

	link, err := h.comparisonService.CreateShareLink(c.Param("id"), session.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, link)
}

// ResolveShareLink is the public read behind a share token
func (h *ComparisonHandler) ResolveShareLink(c *gin.Context) {
	comparison, link, err := h.comparisonService.ResolveShareLink(c.Param("token"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"comparison": comparison,
		"view_count": link.ViewCount,
	})
}

// ExportComparison streams one of the caller's saved comparisons as an xlsx
// download
func (h *ComparisonHandler) ExportComparison(c *gin.Context) {
	session := middleware.GetSession(c)

	comparison, err := h.comparisonService.GetComparison(c.Param("id"), session.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	file, err := h.exportService.ExportComparison(comparison)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+h.exportService.ExportFilename(comparison))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := file.Write(c.Writer); err != nil {
		respondError(c, err)
	}
}
