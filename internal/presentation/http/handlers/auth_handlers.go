package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/royalacademy/academy-go/internal/application/services"
	"github.com/royalacademy/academy-go/internal/infrastructure/observability/logging"
	"github.com/royalacademy/academy-go/internal/infrastructure/observability/performance"
)

// LoginRequest defines the structure of the admin login body.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// AuthHandlers contains the admin authentication HTTP handlers.
type AuthHandlers struct {
	authService *services.AuthService
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewAuthHandlers creates auth handlers with injected dependencies.
func NewAuthHandlers(authService *services.AuthService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *AuthHandlers {
	return &AuthHandlers{
		authService: authService,
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandlers) Login(c *gin.Context) {
	marker := h.perfTracker.StartOperation("admin_login_request", "auth")
	defer marker.Complete()

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	token, err := h.authService.Login(req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	marker.SetSuccess(true)
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Status handles GET /api/v1/auth/status - reports whether the presented
// token is a valid admin session.
func (h *AuthHandlers) Status(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	authenticated := found && token != "" && h.authService.Validate(token)

	c.JSON(http.StatusOK, gin.H{"authenticated": authenticated})
}
