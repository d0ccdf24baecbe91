package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/storefront/core/internal/application/session"
	"github.com/storefront/core/internal/infrastructure/api"
	"github.com/storefront/core/internal/infrastructure/logger"
)

// AuthHandler signs users in and out against the storefront backend and
// keeps the result in the local session store
type AuthHandler struct {
	BaseHandler
	sessions *session.SessionStore
	users    *api.Client
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(sessions *session.SessionStore, users *api.Client) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
		users:    users,
	}
}

// RegisterRoutes registers auth routes
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
		auth.GET("/me", h.Me)
	}
}

// Login authenticates against the backend and persists the session
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	record, err := h.users.Login(c.Request.Context(), api.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	user := session.User{
		ID:      record.ID,
		Name:    record.Name,
		Email:   record.Email,
		IsAdmin: record.IsAdmin,
		Token:   record.Token,
	}
	if err := h.sessions.Set(c.Request.Context(), user); err != nil {
		logger.GetGinLogger(c).Error("Failed to persist session", zap.Error(err))
		h.InternalError(c, "Failed to save session")
		return
	}

	h.Success(c, newUserView(user))
}

// Logout tells the backend to drop the session and clears the local one.
// The local session is cleared even when the backend call fails.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token := h.sessions.Token(); token != "" {
		if err := h.users.Logout(c.Request.Context(), token); err != nil {
			logger.GetGinLogger(c).Warn("Backend logout failed", zap.Error(err))
		}
	}

	if err := h.sessions.Clear(c.Request.Context()); err != nil {
		logger.GetGinLogger(c).Error("Failed to clear session", zap.Error(err))
		h.InternalError(c, "Failed to clear session")
		return
	}
	h.NoContent(c)
}

// Me returns the currently signed-in user
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := h.sessions.Current()
	if !ok {
		h.Unauthorized(c, "No user is signed in")
		return
	}
	h.Success(c, newUserView(user))
}
