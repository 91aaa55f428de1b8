package handler

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/campus-security-backend-go/internal/config"
	"github.com/jengzang/campus-security-backend-go/internal/middleware"
	"github.com/jengzang/campus-security-backend-go/pkg/response"
)

// AuthHandler issues operator tokens for the protected routes
type AuthHandler struct {
	cfg *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// Token handles POST /api/v1/auth/token
func (h *AuthHandler) Token(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "username and password are required")
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.cfg.OperatorUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.cfg.OperatorPass)) == 1
	if !userOK || !passOK {
		response.Error(c, 401, "Invalid credentials")
		return
	}

	token, err := middleware.GenerateToken(h.cfg.JWTSecret, req.Username, "operator", h.cfg.TokenTTL)
	if err != nil {
		response.InternalError(c, "Failed to issue token")
		return
	}

	response.Success(c, gin.H{
		"token":      token,
		"expires_in": int(h.cfg.TokenTTL.Seconds()),
	})
}
