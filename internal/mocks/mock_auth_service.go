package mocks

import (
	"context"

	"github.com/kamalkharel2002/trackship/domain"
)

// MockAuthService implements domain.AuthService for testing
type MockAuthService struct {
	RegisterFunc      func(ctx context.Context, email, code string, reg domain.Registration) (*domain.User, error)
	LoginFunc         func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	RefreshFunc       func(ctx context.Context, refreshToken string) (string, error)
	LogoutFunc        func(ctx context.Context, userID, refreshToken string)
	GetProfileFunc    func(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfileFunc func(ctx context.Context, userID string, update domain.ProfileUpdate) (*domain.User, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Register verifies an OTP and creates the account
func (m *MockAuthService) Register(ctx context.Context, email, code string, reg domain.Registration) (*domain.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, email, code, reg)
	}
	// Default behavior: minimal created user
	return &domain.User{ID: "user-1", Email: email, Role: domain.RoleCustomer}, nil
}

// Login authenticates a user
func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	// Default behavior: invalid credentials
	return nil, domain.ErrInvalidCredentials
}

// Refresh exchanges a refresh token for a new access token
func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, refreshToken)
	}
	// Default behavior: invalid
	return "", domain.ErrTokenInvalid
}

// Logout revokes one or all sessions
func (m *MockAuthService) Logout(ctx context.Context, userID, refreshToken string) {
	if m.LogoutFunc != nil {
		m.LogoutFunc(ctx, userID, refreshToken)
	}
}

// GetProfile returns a user's profile
func (m *MockAuthService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, userID)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// UpdateProfile mutates a user's profile
func (m *MockAuthService) UpdateProfile(ctx context.Context, userID string, update domain.ProfileUpdate) (*domain.User, error) {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, userID, update)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}
