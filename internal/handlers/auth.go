// internal/handlers/auth.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vastra/admin-backend/internal/services"
	"github.com/vastra/admin-backend/internal/utils"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login authenticates an admin and returns a token pair.
// POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", nil)
		return
	}

	admin, tokens, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"admin":  admin,
		"tokens": tokens,
	})
}

// Refresh exchanges a refresh token for a new token pair.
// POST /v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", nil)
		return
	}

	tokens, err := h.auth.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, tokens)
}

// Me returns the authenticated admin's profile.
// GET /v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	adminID, ok := utils.GetAdminIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(adminID)
	if err != nil {
		utils.UnauthorizedResponse(c, "Invalid token subject")
		return
	}

	admin, err := h.auth.GetAdmin(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, admin)
}
