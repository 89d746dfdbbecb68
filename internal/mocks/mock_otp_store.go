package mocks

import (
	"context"

	"github.com/kamalkharel2002/trackship/domain"
)

// MockOTPStore implements domain.OTPStore for testing
type MockOTPStore struct {
	PutFunc    func(ctx context.Context, email string, entry *domain.OTPEntry) error
	GetFunc    func(ctx context.Context, email string) (*domain.OTPEntry, error)
	DeleteFunc func(ctx context.Context, email string) error
}

// NewMockOTPStore creates a new MockOTPStore with default behaviors
func NewMockOTPStore() *MockOTPStore {
	return &MockOTPStore{}
}

// Put stores an OTP entry
func (m *MockOTPStore) Put(ctx context.Context, email string, entry *domain.OTPEntry) error {
	if m.PutFunc != nil {
		return m.PutFunc(ctx, email, entry)
	}
	// Default behavior: success
	return nil
}

// Get retrieves an OTP entry
func (m *MockOTPStore) Get(ctx context.Context, email string) (*domain.OTPEntry, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, email)
	}
	// Default behavior: not found
	return nil, domain.ErrOTPNotFound
}

// Delete removes an OTP entry
func (m *MockOTPStore) Delete(ctx context.Context, email string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, email)
	}
	// Default behavior: success
	return nil
}
