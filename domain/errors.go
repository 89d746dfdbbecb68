package domain

import "errors"

// Registration and credential errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrPasswordRequired   = errors.New("password is required for registration")
)

// OTP lifecycle errors
var (
	ErrOTPNotFound = errors.New("otp not found or expired")
	ErrOTPExpired  = errors.New("otp expired")
	ErrOTPMismatch = errors.New("invalid otp")
	ErrOTPDelivery = errors.New("failed to send otp email")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)
