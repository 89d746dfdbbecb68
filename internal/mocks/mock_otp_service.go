package mocks

import (
	"context"
	"time"

	"github.com/kamalkharel2002/trackship/domain"
)

// MockOTPService implements domain.OTPService for testing
type MockOTPService struct {
	RequestFunc func(ctx context.Context, email string) (*domain.OTPDelivery, error)
	VerifyFunc  func(ctx context.Context, email, code string) error
	TTLFunc     func() time.Duration
}

// NewMockOTPService creates a new MockOTPService with default behaviors
func NewMockOTPService() *MockOTPService {
	return &MockOTPService{}
}

// Request issues and delivers a code
func (m *MockOTPService) Request(ctx context.Context, email string) (*domain.OTPDelivery, error) {
	if m.RequestFunc != nil {
		return m.RequestFunc(ctx, email)
	}
	// Default behavior: success
	return &domain.OTPDelivery{Message: "OTP sent to email", ExpiresIn: 300}, nil
}

// Verify checks a presented code
func (m *MockOTPService) Verify(ctx context.Context, email, code string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, email, code)
	}
	// Default behavior: success
	return nil
}

// TTL returns the configured code lifetime
func (m *MockOTPService) TTL() time.Duration {
	if m.TTLFunc != nil {
		return m.TTLFunc()
	}
	return 5 * time.Minute
}
