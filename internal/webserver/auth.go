package webserver

import (
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// sessionStore holds issued session tokens in memory. The login gate is
// deliberately credential-free: any email-shaped string gets a token, so
// sessions exist only to keep the API surface stateless-client friendly.
type sessionStore struct {
	mu     sync.RWMutex
	tokens map[string]string // token -> email
}

func newSessionStore() *sessionStore {
	return &sessionStore{tokens: make(map[string]string)}
}

func (ss *sessionStore) issue(email string) string {
	token := uuid.NewString()
	ss.mu.Lock()
	ss.tokens[token] = email
	ss.mu.Unlock()
	return token
}

func (ss *sessionStore) valid(token string) bool {
	ss.mu.RLock()
	_, ok := ss.tokens[token]
	ss.mu.RUnlock()
	return ok
}

type loginRequest struct {
	Email string `json:"email"`
}

// handleLogin issues a session token for a non-empty email-shaped string.
// No server-side verification happens, matching the single-user design.
func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	email := strings.TrimSpace(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a valid email is required"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": s.sessions.issue(email)})
}

// requireSession guards the API group with a bearer token check.
func (s *Server) requireSession(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if token == "" || !s.sessions.valid(token) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	c.Next()
}
