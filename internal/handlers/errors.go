package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/Rajan16703/gitcompare/internal/github"
	"github.com/Rajan16703/gitcompare/internal/services"
	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto HTTP statuses: upstream 404s and
// missing rows become 404, any other upstream failure 502, ownership
// violations 403, everything else 500
func respondError(c *gin.Context, err error) {
	var notFound *github.NotFoundError
	var upstream *github.UpstreamError

	switch {
	case errors.As(err, &notFound), errors.Is(err, sql.ErrNoRows):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.As(err, &upstream):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
