package mocks

import (
	"context"

	"github.com/kamalkharel2002/trackship/domain"
)

// MockRefreshTokenRepository implements domain.RefreshTokenRepository for testing
type MockRefreshTokenRepository struct {
	CreateFunc           func(ctx context.Context, token *domain.RefreshToken) error
	FindActiveByUserFunc func(ctx context.Context, userID string) ([]*domain.RefreshToken, error)
	DeleteByIDFunc       func(ctx context.Context, id string) error
	DeleteByUserFunc     func(ctx context.Context, userID string) error
}

// NewMockRefreshTokenRepository creates a new MockRefreshTokenRepository with default behaviors
func NewMockRefreshTokenRepository() *MockRefreshTokenRepository {
	return &MockRefreshTokenRepository{}
}

// Create persists a refresh token record
func (m *MockRefreshTokenRepository) Create(ctx context.Context, token *domain.RefreshToken) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, token)
	}
	// Default behavior: success
	return nil
}

// FindActiveByUser returns the user's non-expired token records
func (m *MockRefreshTokenRepository) FindActiveByUser(ctx context.Context, userID string) ([]*domain.RefreshToken, error) {
	if m.FindActiveByUserFunc != nil {
		return m.FindActiveByUserFunc(ctx, userID)
	}
	// Default behavior: no active tokens
	return nil, nil
}

// DeleteByID deletes one token record
func (m *MockRefreshTokenRepository) DeleteByID(ctx context.Context, id string) error {
	if m.DeleteByIDFunc != nil {
		return m.DeleteByIDFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

// DeleteByUser deletes all token records for a user
func (m *MockRefreshTokenRepository) DeleteByUser(ctx context.Context, userID string) error {
	if m.DeleteByUserFunc != nil {
		return m.DeleteByUserFunc(ctx, userID)
	}
	// Default behavior: success
	return nil
}
