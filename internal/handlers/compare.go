package handlers

import (
	"net/http"
	"strings"

	"github.com/Rajan16703/gitcompare/internal/services"
	"github.com/gin-gonic/gin"
)

// maxCompareProfiles caps how many profiles one request may fan out to
const maxCompareProfiles = 10

type CompareHandler struct {
	profileService *services.ProfileService
}

func NewCompareHandler(profileService *services.ProfileService) *CompareHandler {
	return &CompareHandler{
		profileService: profileService,
	}
}

type compareRequest struct {
	Usernames []string `json:"usernames"`
}

// Compare fetches and ranks the requested profiles
func (h *CompareHandler) Compare(c *gin.Context) {
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

	if len(usernames) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one username is required"})
		return
	}
	if len(usernames) > maxCompareProfiles {
		c.JSON(http.StatusBadRequest, gin.H{"error": "too many usernames"})
		return
	}

	profiles, err := h.profileService.CompareProfiles(c.Request.Context(), usernames)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profiles": profiles})
}

// GetProfile fetches a single profile with metrics
func (h *CompareHandler) GetProfile(c *gin.Context) {
	username := c.Param("username")

	profile, err := h.profileService.FetchCompleteProfile(c.Request.Context(), username)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
