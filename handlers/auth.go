package handlers

import (
	"net/http"

	"koon/services/auth"
	"koon/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes operator sign-in and sign-out.
type AuthHandler struct {
	Service auth.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc auth.AuthService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

// SignInHandler handles POST /api/auth/login.
func (h *AuthHandler) SignInHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	resp, err := h.Service.SignIn(c.Request.Context(), req.Email, req.Password, getContextIP(c))
	if err != nil {
		utils.GetLogger().Warn("SignInHandler: sign-in rejected", zap.String("email", req.Email))
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SignOutHandler handles POST /api/auth/logout.
func (h *AuthHandler) SignOutHandler(c *gin.Context) {
	adminID := c.GetString("adminID")
	if adminID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not signed in"})
		return
	}
	if err := h.Service.SignOut(c.Request.Context(), adminID); err != nil {
		utils.GetLogger().Error("SignOutHandler: failed to sign out", zap.String("adminID", adminID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign out"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}
