package domain

import (
	"context"
	"time"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	Update(ctx context.Context, user *User) error
}

// RefreshTokenRepository defines refresh-token data access operations.
// FindActiveByUser returns only rows with expires_at in the future, newest
// first; stale rows are never swept, just filtered out here.
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *RefreshToken) error
	FindActiveByUser(ctx context.Context, userID string) ([]*RefreshToken, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID string) error
}

// OTPStore is the keyed ephemeral cache backing OTP issuance. Put overwrites
// any prior entry for the email. Get returns ErrOTPNotFound for missing
// entries but does not interpret expiry; that is the caller's job.
type OTPStore interface {
	Put(ctx context.Context, email string, entry *OTPEntry) error
	Get(ctx context.Context, email string) (*OTPEntry, error)
	Delete(ctx context.Context, email string) error
}

// OTPService defines OTP code lifecycle operations
type OTPService interface {
	Request(ctx context.Context, email string) (*OTPDelivery, error)
	Verify(ctx context.Context, email, code string) error
	TTL() time.Duration
}

// AuthService defines the session-lifecycle business logic
type AuthService interface {
	Register(ctx context.Context, email, code string, reg Registration) (*User, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Logout(ctx context.Context, userID, refreshToken string)
	GetProfile(ctx context.Context, userID string) (*User, error)
	UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*User, error)
}

// PasswordService defines password hashing operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines token mint/verify operations. Access and refresh
// tokens are signed with independent secrets.
type TokenService interface {
	GenerateAccessToken(user *User) (string, error)
	GenerateRefreshToken(user *User) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
	ValidateRefreshToken(token string) (*TokenClaims, error)
	AccessTTL() time.Duration
	RefreshTTL() time.Duration
}

// TokenHasher produces the one-way hashes under which refresh tokens are
// persisted. Hashing is not keyed lookup material: finding a stored token
// requires comparing the presented string against each candidate hash.
type TokenHasher interface {
	Hash(token string) (string, error)
	Compare(hash, token string) bool
}

// NotificationService defines outbound notification operations
type NotificationService interface {
	SendEmail(to, subject, body string) error
}
