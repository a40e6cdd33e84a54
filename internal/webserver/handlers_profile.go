package webserver

import (
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/biocapital/intel/internal/intel"
)

// Accepted upload media types, keyed by file extension.
var acceptedMIMETypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".txt":  "text/plain",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

const maxUploadBytes = 20 << 20 // per file

// profileView is a Profile with derived effective scores attached.
type profileView struct {
	*intel.Profile
	EffectiveScores []float64 `json:"effectiveScores"`
}

func viewOf(p *intel.Profile) profileView {
	scores := make([]float64, len(p.RankedKeywords))
	for i, k := range p.RankedKeywords {
		scores[i] = intel.EffectiveScore(k)
	}
	return profileView{Profile: p, EffectiveScores: scores}
}

// handleGetProfile returns the current profile, 404 if none exists.
func (s *Server) handleGetProfile(c *gin.Context) {
	p, err := s.store.LatestProfile(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no profile yet"})
		return
	}
	c.JSON(http.StatusOK, viewOf(p))
}

// handleAnalyzeProfile accepts a multipart upload, runs multimodal
// analysis, replaces the stored profile, and then kicks off a refresh so
// a fresh profile immediately yields a fresh feed. A refresh failure
// does not undo the profile replacement.
func (s *Server) handleAnalyzeProfile(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart form required"})
		return
	}
	uploads := form.File["documents"]
	if len(uploads) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one document is required"})
		return
	}

	files := make([]intel.FileInput, 0, len(uploads))
	for _, fh := range uploads {
		f, err := readUpload(fh)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		files = append(files, f)
	}

	ctx := c.Request.Context()
	profile, err := s.gateway.AnalyzeProfile(ctx, files)
	if err != nil {
		slog.Warn("profile analysis failed", slog.Any("error", err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "analysis failed"})
		return
	}
	if err := s.store.ReplaceProfile(ctx, profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save profile"})
		return
	}

	resp := gin.H{"profile": viewOf(profile)}
	if result, err := s.refresher.Refresh(ctx); err != nil {
		resp["refresh_error"] = "sync failed"
	} else {
		resp["refresh"] = result
	}
	c.JSON(http.StatusOK, resp)
}

func readUpload(fh *multipart.FileHeader) (intel.FileInput, error) {
	if fh.Size > maxUploadBytes {
		return intel.FileInput{}, errors.New("file too large: " + fh.Filename)
	}
	mimeType, ok := acceptedMIMETypes[strings.ToLower(filepath.Ext(fh.Filename))]
	if !ok {
		return intel.FileInput{}, errors.New("unsupported file type: " + fh.Filename)
	}
	f, err := fh.Open()
	if err != nil {
		return intel.FileInput{}, errors.New("cannot read " + fh.Filename)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return intel.FileInput{}, errors.New("cannot read " + fh.Filename)
	}
	return intel.FileInput{Name: fh.Filename, MIMEType: mimeType, Data: data}, nil
}

type adjustRequest struct {
	Delta float64 `json:"delta"`
}

// handleAdjustKeyword applies a ±5 calibration to one keyword and
// rewrites the whole profile record.
func (s *Server) handleAdjustKeyword(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid keyword index"})
		return
	}
	var req adjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Delta != 5 && req.Delta != -5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "delta must be +5 or -5"})
		return
	}

	ctx := c.Request.Context()
	p, err := s.store.LatestProfile(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no profile yet"})
		return
	}

	adjusted, err := intel.Adjust(p.RankedKeywords, index, req.Delta)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid keyword index"})
		return
	}
	p.RankedKeywords = adjusted
	if err := s.store.ReplaceProfile(ctx, p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save profile"})
		return
	}
	c.JSON(http.StatusOK, viewOf(p))
}
