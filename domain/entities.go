package domain

import "time"

// Roles assignable to a user. Registration always produces RoleCustomer;
// the other roles are provisioned out of band.
const (
	RoleCustomer    = "customer"
	RoleTransporter = "transporter"
	RoleCoordinator = "coordinator"
)

// User represents an account in the system. PasswordHash may be empty for
// legacy accounts created before password login existed; such accounts
// cannot log in until a password is set.
type User struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RefreshToken is the persisted record of an issued refresh token. Only a
// hash of the token string is stored; the plaintext lives with the client.
// One row per issued token, so a user may hold several concurrent sessions.
type RefreshToken struct {
	ID        string
	UserID    string
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// OTPEntry is a short-lived passcode keyed by email. Entries are ephemeral:
// created on request, consumed on successful verification, lazily dropped
// once expired.
type OTPEntry struct {
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Registration carries the profile fields supplied alongside OTP
// verification. Password is mandatory; Name defaults to the email local part.
type Registration struct {
	Name     string
	Phone    string
	Password string
}

// OTPDelivery is the outcome of a successful OTP request.
type OTPDelivery struct {
	Message   string
	ExpiresIn int64
}

// AuthResult represents a successful login outcome.
type AuthResult struct {
	User         *User
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// TokenClaims represents the decoded claims of a signed token. TokenType is
// "refresh" on refresh tokens and empty on access tokens.
type TokenClaims struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	TokenType string `json:"type,omitempty"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// ProfileUpdate carries the mutable profile fields. Nil means "leave as is".
type ProfileUpdate struct {
	Name  *string
	Phone *string
}
