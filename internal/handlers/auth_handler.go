package handlers

import (
	"net/http"

	"github.com/aithreya/learning-service/internal/middleware"
	"github.com/aithreya/learning-service/internal/services"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	BaseHandler
	auth services.AuthService
}

func NewAuthHandler(auth services.AuthService, base BaseHandler) *AuthHandler {
	return &AuthHandler{BaseHandler: base, auth: auth}
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithBadRequest(c, "Invalid request body")
		return
	}

	resp, err := h.auth.Register(c.Request.Context(), &req)
	if err != nil {
		h.RespondWithError(c, err, "")
		return
	}

	h.RespondWithSuccess(c, http.StatusCreated, resp)
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithBadRequest(c, "Invalid request body")
		return
	}

	resp, err := h.auth.Login(c.Request.Context(), &req)
	if err != nil {
		h.RespondWithError(c, err, "")
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, resp)
}

// Refresh handles POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithBadRequest(c, "Refresh token is required")
		return
	}

	resp, err := h.auth.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.RespondWithError(c, err, "")
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, resp)
}

// Logout handles POST /api/v1/auth/logout. Tokens are stateless so there is
// nothing to revoke server-side; clients discard their tokens.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.RespondWithSuccess(c, http.StatusOK, gin.H{"message": "Logged out"})
}

// Me handles GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		h.RespondWithError(c, services.ErrUnauthorized, "")
		return
	}
	h.RespondWithSuccess(c, http.StatusOK, user)
}

// UpdateProfile handles PUT /api/v1/auth/profile
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		h.RespondWithError(c, services.ErrUnauthorized, "")
		return
	}

	var req services.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithBadRequest(c, "Invalid request body")
		return
	}

	user, err := h.auth.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		h.RespondWithError(c, err, "")
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, user)
}

// UpdatePreferences handles PUT /api/v1/auth/preferences
func (h *AuthHandler) UpdatePreferences(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		h.RespondWithError(c, services.ErrUnauthorized, "")
		return
	}

	var req services.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithBadRequest(c, "Invalid request body")
		return
	}

	user, err := h.auth.UpdatePreferences(c.Request.Context(), userID, &req)
	if err != nil {
		h.RespondWithError(c, err, "")
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, user)
}

// ChangePassword handles PUT /api/v1/auth/password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		h.RespondWithError(c, services.ErrUnauthorized, "")
		return
	}

	var req services.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithBadRequest(c, "Invalid request body")
		return
	}

	if err := h.auth.ChangePassword(c.Request.Context(), userID, &req); err != nil {
		h.RespondWithError(c, err, "")
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, gin.H{"message": "Password updated"})
}

// Deactivate handles DELETE /api/v1/auth/account
func (h *AuthHandler) Deactivate(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		h.RespondWithError(c, services.ErrUnauthorized, "")
		return
	}

	if err := h.auth.Deactivate(c.Request.Context(), userID); err != nil {
		h.RespondWithError(c, err, "")
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, gin.H{"message": "Account deactivated"})
}
