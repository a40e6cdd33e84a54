package webserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleListNews returns the news feed, newest first.
func (s *Server) handleListNews(c *gin.Context) {
	items, err := s.store.ListNews(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"news": items, "total": len(items), "syncing": s.refresher.Busy()})
}
