package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kamalkharel2002/trackship/domain"
	"github.com/kamalkharel2002/trackship/internal/http/middleware"
)

// UserHandlers handles profile HTTP requests
type UserHandlers struct {
	authSvc domain.AuthService
}

// NewUserHandlers creates new user handlers
func NewUserHandlers(authSvc domain.AuthService) *UserHandlers {
	return &UserHandlers{authSvc: authSvc}
}

// UpdateMeRequest represents a profile update
type UpdateMeRequest struct {
	UserName *string `json:"user_name,omitempty" binding:"omitempty,min=1,max=255"`
	Phone    *string `json:"phone,omitempty" binding:"omitempty,max=20"`
}

// GetMe returns the authenticated user's profile
func (h *UserHandlers) GetMe(c *gin.Context) {
	userID, exists := c.Get(middleware.ContextUserID)
	if !exists {
		respondError(c, http.StatusUnauthorized, "No token provided")
		return
	}

	user, err := h.authSvc.GetProfile(c.Request.Context(), userID.(string))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, "User not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to get user profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    userPayload(user),
	})
}

// UpdateMe updates the authenticated user's mutable profile fields
func (h *UserHandlers) UpdateMe(c *gin.Context) {
	userID, exists := c.Get(middleware.ContextUserID)
	if !exists {
		respondError(c, http.StatusUnauthorized, "No token provided")
		return
	}

	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}
	if req.UserName == nil && req.Phone == nil {
		respondError(c, http.StatusBadRequest, "No fields to update")
		return
	}

	user, err := h.authSvc.UpdateProfile(c.Request.Context(), userID.(string), domain.ProfileUpdate{
		Name:  req.UserName,
		Phone: req.Phone,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, "User not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to update user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User updated successfully",
		"data":    userPayload(user),
	})
}
