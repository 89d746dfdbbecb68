package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		expectedMsg string
	}{
		{"ErrUserNotFound", ErrUserNotFound, "user not found"},
		{"ErrInvalidCredentials", ErrInvalidCredentials, "invalid email or password"},
		{"ErrUserAlreadyExists", ErrUserAlreadyExists, "user already exists"},
		{"ErrPasswordRequired", ErrPasswordRequired, "password is required for registration"},
		{"ErrOTPNotFound", ErrOTPNotFound, "otp not found or expired"},
		{"ErrOTPExpired", ErrOTPExpired, "otp expired"},
		{"ErrOTPMismatch", ErrOTPMismatch, "invalid otp"},
		{"ErrOTPDelivery", ErrOTPDelivery, "failed to send otp email"},
		{"ErrTokenInvalid", ErrTokenInvalid, "invalid token"},
		{"ErrTokenExpired", ErrTokenExpired, "token has expired"},
		{"ErrTokenMalformed", ErrTokenMalformed, "malformed token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.expectedMsg {
				t.Errorf("expected error message %q, got %q", tt.expectedMsg, tt.err.Error())
			}

			// Sentinels must only match themselves.
			for _, other := range tests {
				if other.name != tt.name && errors.Is(tt.err, other.err) {
					t.Errorf("error %s should not match %s", tt.name, other.name)
				}
			}
		})
	}
}

func TestSentinelErrorsSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("%w: smtp dial tcp: connection refused", ErrOTPDelivery)

	if !errors.Is(wrapped, ErrOTPDelivery) {
		t.Error("wrapped delivery error should still match the sentinel")
	}
	if !strings.Contains(wrapped.Error(), "connection refused") {
		t.Error("wrapping should preserve the underlying detail")
	}
}

func TestErrorMessagesDoNotLeakSensitiveDetail(t *testing.T) {
	allErrors := []error{
		ErrUserNotFound, ErrInvalidCredentials, ErrUserAlreadyExists, ErrPasswordRequired,
		ErrOTPNotFound, ErrOTPExpired, ErrOTPMismatch, ErrOTPDelivery,
		ErrTokenInvalid, ErrTokenExpired, ErrTokenMalformed,
	}

	for _, err := range allErrors {
		msg := err.Error()
		if msg == "" {
			t.Errorf("sentinel should have a message: %v", err)
			continue
		}
		if strings.Contains(msg, "hash") || strings.Contains(msg, "database") {
			t.Errorf("error message should not reveal internals: %s", msg)
		}
		if msg[0] >= 'A' && msg[0] <= 'Z' {
			t.Errorf("error message should start with a lowercase letter: %s", msg)
		}
	}
}
