package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/quickinvoice/internal/auth"
	"go.uber.org/zap"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	username := strings.TrimSpace(req.Username)
	if !s.verifier.Verify(username, req.Password) {
		// Every rejection looks the same: no username probing.
		s.log.Info("login rejected", zap.String("username", username))
		AbortWithError(c, auth.ErrInvalidCredentials)
		return
	}

	sess := s.sessions.Issue(username)
	s.cookies.Set(c, sess.Token, sess.ExpiresAt)

	c.JSON(http.StatusOK, sess)
}

func (s *Server) Logout(c *gin.Context) {
	if token, ok := s.cookies.ReadToken(c); ok {
		s.sessions.Revoke(token)
	}
	s.cookies.Clear(c)

	c.JSON(http.StatusOK, gin.H{"status": "logged_out"})
}

func (s *Server) Me(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}
	c.JSON(http.StatusOK, sess)
}
