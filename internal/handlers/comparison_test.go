package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Rajan16703/gitcompare/internal/middleware"
	"github.com/Rajan16703/gitcompare/internal/services"
	"github.com/Rajan16703/gitcompare/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newComparisonRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewComparisonHandler(nil, services.NewComparisonService(nil, nil), services.NewExportService())

	router := gin.New()
	router.Use(middleware.SessionMiddleware())

	owned := router.Group("/api")
	owned.Use(middleware.AuthRequired())
	{
		owned.GET("/comparisons", handler.ListComparisons)
		owned.GET("/comparisons/:id", handler.GetComparison)
		owned.DELETE("/comparisons/:id", handler.DeleteComparison)
		owned.POST("/comparisons/:id/share", handler.CreateShareLink)
		owned.GET("/comparisons/:id/export", handler.ExportComparison)
	}

	return router
}

// Saved comparisons are owner-scoped: without a session, knowing an ID must
// not be enough to read, share, or export one.
func TestComparisonRoutesRejectAnonymousCallers(t *testing.T) {
	config.Load()
	router := newComparisonRouter()

	requests := []struct {
		method string
		path   string
	}{
		{"GET", "/api/comparisons"},
		{"GET", "/api/comparisons/6a7c9f3e-0000-0000-0000-000000000000"},
		{"DELETE", "/api/comparisons/6a7c9f3e-0000-0000-0000-000000000000"},
		{"POST", "/api/comparisons/6a7c9f3e-0000-0000-0000-000000000000/share"},
		{"GET", "/api/comparisons/6a7c9f3e-0000-0000-0000-000000000000/export"},
	}

	for _, tc := range requests {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req, _ := http.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}
