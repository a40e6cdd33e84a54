package webserver

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/biocapital/intel/internal/intel"
	"github.com/biocapital/intel/internal/store"
)

// handleRefresh triggers the combined lead + news sync.
func (s *Server) handleRefresh(c *gin.Context) {
	result, err := s.refresher.Refresh(c.Request.Context())
	switch {
	case errors.Is(err, intel.ErrSyncInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": "sync already in progress"})
	case errors.Is(err, intel.ErrNoProfile):
		c.JSON(http.StatusPreconditionFailed, gin.H{"error": "upload a profile first"})
	case err != nil:
		// All failure detail stays in the log; the user sees one generic message.
		c.JSON(http.StatusBadGateway, gin.H{"error": "sync failed"})
	default:
		c.JSON(http.StatusOK, result)
	}
}

// parseFilter builds the lead filter from query params.
func parseFilter(c *gin.Context) intel.LeadFilter {
	f := intel.LeadFilter{
		Stage:      c.Query("stage"),
		Investor:   c.Query("investor"),
		RoleOrName: c.Query("role_or_name"),
	}
	if v := c.Query("min_amount_millions"); v != "" {
		if m, err := strconv.ParseFloat(v, 64); err == nil {
			f.MinAmountMillions = m
		}
	}
	return f
}

// handleListLeads returns the filtered lead feed, newest first.
// Archived leads never appear here regardless of filters.
func (s *Server) handleListLeads(c *gin.Context) {
	leads, err := s.store.ListLeads(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	filtered := intel.FilterLeads(leads, parseFilter(c))
	c.JSON(http.StatusOK, gin.H{"leads": filtered, "total": len(filtered), "syncing": s.refresher.Busy()})
}

// handleListAllLeads returns every lead including archived ones, for the
// pipeline CRM view.
func (s *Server) handleListAllLeads(c *gin.Context) {
	leads, err := s.store.ListLeads(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"leads": leads, "total": len(leads)})
}

type statusRequest struct {
	Status string `json:"status"`
}

// handleUpdateStatus applies a manual pipeline transition.
func (s *Server) handleUpdateStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	next := intel.LeadStatus(req.Status)
	if !next.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
		return
	}

	err := s.store.UpdateLeadStatus(c.Request.Context(), c.Param("id"), next)
	var bad *intel.ErrBadTransition
	switch {
	case errors.Is(err, store.ErrLeadNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "lead not found"})
	case errors.As(err, &bad):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": bad.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
	default:
		c.Status(http.StatusNoContent)
	}
}

// handleGenerateOutreach drafts both outreach messages for a lead and
// patches them onto the record. Regeneration overwrites existing drafts.
func (s *Server) handleGenerateOutreach(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	lead, err := s.store.GetLead(ctx, id)
	if errors.Is(err, store.ErrLeadNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "lead not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	profile, err := s.store.LatestProfile(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	if profile == nil {
		c.JSON(http.StatusPreconditionFailed, gin.H{"error": "upload a profile first"})
		return
	}

	drafts, err := s.gateway.GenerateOutreach(ctx, *lead, profile)
	if err != nil {
		slog.Warn("outreach generation failed", slog.String("lead", id), slog.Any("error", err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "draft generation failed"})
		return
	}
	if err := s.store.SetOutreach(ctx, id, drafts); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save drafts"})
		return
	}
	c.JSON(http.StatusOK, drafts)
}

// handleStats returns pipeline velocity counters for the dashboard.
func (s *Server) handleStats(c *gin.Context) {
	counts, err := s.store.CountLeadsByStatus(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	inProgress := counts[intel.StatusContacted] + counts[intel.StatusMeetingScheduled] + counts[intel.StatusSolutionDiscussed]
	c.JSON(http.StatusOK, gin.H{
		"new_leads":   counts[intel.StatusNewLead],
		"in_progress": inProgress,
		"archived":    counts[intel.StatusArchived],
	})
}
