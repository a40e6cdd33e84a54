// Package webserver exposes the dashboard HTTP API: login gate, document
// upload and profile calibration, the combined refresh action, filtered
// lead and news feeds, and per-lead status/outreach operations.
package webserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/biocapital/intel/internal/intel"
	"github.com/biocapital/intel/internal/store"
)

// Server holds the handler dependencies.
type Server struct {
	store     *store.Store
	gateway   intel.Intelligence
	refresher *intel.Refresher
	sessions  *sessionStore
}

// New creates the dashboard server.
func New(st *store.Store, gw intel.Intelligence, rf *intel.Refresher) *Server {
	return &Server{
		store:     st,
		gateway:   gw,
		refresher: rf,
		sessions:  newSessionStore(),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/metrics", func(c *gin.Context) {
		c.String(http.StatusOK, intel.FormatMetrics())
	})
	r.POST("/api/login", s.handleLogin)

	api := r.Group("/api", s.requireSession)
	{
		api.GET("/profile", s.handleGetProfile)
		api.POST("/profile/analyze", s.handleAnalyzeProfile)
		api.POST("/profile/keywords/:index/adjust", s.handleAdjustKeyword)
		api.POST("/refresh", s.handleRefresh)
		api.GET("/leads", s.handleListLeads)
		api.GET("/leads/all", s.handleListAllLeads)
		api.PATCH("/leads/:id/status", s.handleUpdateStatus)
		api.POST("/leads/:id/outreach", s.handleGenerateOutreach)
		api.GET("/news", s.handleListNews)
		api.GET("/stats", s.handleStats)
	}

	return r
}
