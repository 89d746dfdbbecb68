package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/kamalkharel2002/trackship/domain"
)

func newJWTServiceForTest(t *testing.T) domain.TokenService {
	t.Helper()
	return NewJWTService("access-secret", "refresh-secret", "trackship-test", 15*time.Minute, 7*24*time.Hour)
}

func testUser() *domain.User {
	return &domain.User{
		ID:    "user-1",
		Email: "a@x.com",
		Role:  domain.RoleCustomer,
	}
}

func TestJWTServiceImpl_AccessToken(t *testing.T) {
	svc := newJWTServiceForTest(t)

	token, err := svc.GenerateAccessToken(testUser())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := svc.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("expected user_id user-1, got %s", claims.UserID)
	}
	if claims.Email != "a@x.com" {
		t.Errorf("expected email a@x.com, got %s", claims.Email)
	}
	if claims.Role != domain.RoleCustomer {
		t.Errorf("expected role customer, got %s", claims.Role)
	}
	if claims.TokenType != "" {
		t.Errorf("expected no type marker on access token, got %s", claims.TokenType)
	}
}

func TestJWTServiceImpl_RefreshToken(t *testing.T) {
	svc := newJWTServiceForTest(t)

	token, err := svc.GenerateRefreshToken(testUser())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := svc.ValidateRefreshToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.TokenType != "refresh" {
		t.Errorf("expected type refresh, got %s", claims.TokenType)
	}
}

func TestJWTServiceImpl_SecretsAreIndependent(t *testing.T) {
	svc := newJWTServiceForTest(t)

	accessToken, err := svc.GenerateAccessToken(testUser())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	refreshToken, err := svc.GenerateRefreshToken(testUser())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// An access token must never pass refresh validation and vice versa.
	if _, err := svc.ValidateRefreshToken(accessToken); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid for access token on refresh path, got %v", err)
	}
	if _, err := svc.ValidateAccessToken(refreshToken); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid for refresh token on access path, got %v", err)
	}
}

func TestJWTServiceImpl_WrongSecret(t *testing.T) {
	svc := newJWTServiceForTest(t)
	other := NewJWTService("other-access", "other-refresh", "trackship-test", 15*time.Minute, 7*24*time.Hour)

	token, err := other.GenerateRefreshToken(testUser())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.ValidateRefreshToken(token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid for foreign signature, got %v", err)
	}
}

func TestJWTServiceImpl_Expired(t *testing.T) {
	svc := NewJWTService("access-secret", "refresh-secret", "trackship-test", -time.Minute, -time.Minute)

	token, err := svc.GenerateAccessToken(testUser())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := newJWTServiceForTest(t).ValidateAccessToken(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestJWTServiceImpl_TypeMarkerEnforced(t *testing.T) {
	// A token signed with the refresh secret but missing the refresh type
	// marker must be rejected. Build one by signing "access style" claims
	// with a service whose access secret equals the refresh secret.
	crossed := NewJWTService("refresh-secret", "refresh-secret", "trackship-test", time.Hour, time.Hour)
	token, err := crossed.GenerateAccessToken(testUser())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	svc := newJWTServiceForTest(t)
	if _, err := svc.ValidateRefreshToken(token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid for missing type marker, got %v", err)
	}
}

func TestJWTServiceImpl_Malformed(t *testing.T) {
	svc := newJWTServiceForTest(t)

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := svc.ValidateAccessToken(token); err == nil {
			t.Errorf("expected error for token %q", token)
		}
	}
}
