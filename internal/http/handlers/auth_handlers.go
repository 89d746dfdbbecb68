package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kamalkharel2002/trackship/domain"
	"github.com/kamalkharel2002/trackship/internal/http/middleware"
)

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc domain.AuthService
	otpSvc  domain.OTPService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService, otpSvc domain.OTPService) *AuthHandlers {
	return &AuthHandlers{
		authSvc: authSvc,
		otpSvc:  otpSvc,
	}
}

// RequestOTPRequest represents an OTP issuance request
type RequestOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// VerifyOTPRequest represents OTP verification plus registration fields
type VerifyOTPRequest struct {
	Email    string `json:"email" binding:"required,email"`
	OTP      string `json:"otp" binding:"required,len=4,numeric"`
	UserName string `json:"user_name,omitempty" binding:"omitempty,max=255"`
	Phone    string `json:"phone,omitempty" binding:"omitempty,max=20"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest represents a token refresh request
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LogoutRequest represents an optional targeted logout. Without a token the
// call logs the user out everywhere.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token,omitempty"`
}

// RequestOTP handles OTP generation and delivery
func (h *AuthHandlers) RequestOTP(c *gin.Context) {
	var req RequestOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	delivery, err := h.otpSvc.Request(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrOTPDelivery) {
			respondError(c, http.StatusInternalServerError, "Failed to send OTP email")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to request OTP")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    delivery.Message,
		"expires_in": delivery.ExpiresIn,
	})
}

// VerifyOTP handles OTP verification and registration
func (h *AuthHandlers) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	user, err := h.authSvc.Register(c.Request.Context(), req.Email, req.OTP, domain.Registration{
		Name:     req.UserName,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOTPNotFound):
			respondError(c, http.StatusBadRequest, "OTP not found or expired")
		case errors.Is(err, domain.ErrOTPExpired):
			respondError(c, http.StatusBadRequest, "OTP expired")
		case errors.Is(err, domain.ErrOTPMismatch):
			respondError(c, http.StatusBadRequest, "Invalid OTP")
		case errors.Is(err, domain.ErrUserAlreadyExists):
			respondError(c, http.StatusBadRequest, "User already exists. Please login instead.")
		case errors.Is(err, domain.ErrPasswordRequired):
			respondError(c, http.StatusBadRequest, "Password is required for registration")
		default:
			respondError(c, http.StatusInternalServerError, "OTP verification failed")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "OTP verified successfully. User registered. Please login to get tokens.",
		"data": gin.H{
			"user": userPayload(user),
		},
	})
}

// Login handles password login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		respondError(c, http.StatusInternalServerError, "Login failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"data": gin.H{
			"user":          userPayload(result.User),
			"access_token":  result.AccessToken,
			"refresh_token": result.RefreshToken,
		},
	})
}

// Refresh handles access-token renewal
func (h *AuthHandlers) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	accessToken, err := h.authSvc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTokenInvalid),
			errors.Is(err, domain.ErrTokenExpired),
			errors.Is(err, domain.ErrUserNotFound):
			respondError(c, http.StatusUnauthorized, "Invalid refresh token")
		default:
			respondError(c, http.StatusInternalServerError, "Token refresh failed")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"access_token": accessToken,
		},
	})
}

// Logout handles session termination. The response is 200 regardless of
// whether a matching session existed.
func (h *AuthHandlers) Logout(c *gin.Context) {
	userID, exists := c.Get(middleware.ContextUserID)
	if !exists {
		respondError(c, http.StatusUnauthorized, "No token provided")
		return
	}

	// Body is optional; a missing or malformed body means logout everywhere.
	var req LogoutRequest
	_ = c.ShouldBindJSON(&req)

	h.authSvc.Logout(c.Request.Context(), userID.(string), req.RefreshToken)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged out successfully",
	})
}
