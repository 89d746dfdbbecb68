package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/kamalkharel2002/trackship/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	tokenRepo   domain.RefreshTokenRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	tokenHasher domain.TokenHasher
	otpSvc      domain.OTPService
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	tokenRepo domain.RefreshTokenRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	tokenHasher domain.TokenHasher,
	otpSvc domain.OTPService,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		tokenRepo:   tokenRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		tokenHasher: tokenHasher,
		otpSvc:      otpSvc,
	}
}

// Register implements domain.AuthService. Verifying the OTP proves email
// ownership; it is strictly a registration path, so an already-registered
// email fails even with a correct code. Registration never issues tokens;
// the caller logs in separately.
func (s *AuthServiceImpl) Register(ctx context.Context, email, code string, reg domain.Registration) (*domain.User, error) {
	if err := s.otpSvc.Verify(ctx, email, code); err != nil {
		return nil, err
	}

	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existingUser != nil {
		return nil, domain.ErrUserAlreadyExists
	}

	if reg.Password == "" {
		return nil, domain.ErrPasswordRequired
	}

	hashedPassword, err := s.passwordSvc.Hash(reg.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	name := reg.Name
	if name == "" {
		name = emailLocalPart(email)
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		Phone:        reg.Phone,
		PasswordHash: hashedPassword,
		Role:         domain.RoleCustomer,
	}

	// Two concurrent registrations can both pass the existence check; the
	// unique index on email resolves the race inside Create.
	if err := s.userRepo.Create(ctx, user); err != nil {
		if err == domain.ErrUserAlreadyExists {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login implements domain.AuthService. Unknown email, a legacy account with
// no password set, and a wrong password all return the same error so the
// response cannot be used to enumerate accounts.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if user.PasswordHash == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	accessToken, err := s.tokenSvc.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.tokenSvc.GenerateRefreshToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	tokenHash, err := s.tokenHasher.Hash(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to hash refresh token: %w", err)
	}

	record := &domain.RefreshToken{
		UserID:    user.ID,
		TokenHash: tokenHash,
		ExpiresAt: time.Now().Add(s.tokenSvc.RefreshTTL()),
	}
	if err := s.tokenRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to persist refresh token: %w", err)
	}

	return &domain.AuthResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.tokenSvc.AccessTTL().Seconds()),
	}, nil
}

// Refresh implements domain.AuthService. The presented token must both
// verify against the refresh secret and match one of the user's stored
// hashes; since the hashes are one-way the lookup is a linear scan over the
// user's live rows. The refresh token itself is not rotated.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokenSvc.ValidateRefreshToken(refreshToken)
	if err != nil {
		return "", domain.ErrTokenInvalid
	}

	tokens, err := s.tokenRepo.FindActiveByUser(ctx, claims.UserID)
	if err != nil {
		return "", fmt.Errorf("failed to load refresh tokens: %w", err)
	}

	found := false
	for _, record := range tokens {
		if s.tokenHasher.Compare(record.TokenHash, refreshToken) {
			found = true
			break
		}
	}
	if !found {
		return "", domain.ErrTokenInvalid
	}

	// The account may have been deleted since the token was issued.
	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return "", domain.ErrUserNotFound
	}

	accessToken, err := s.tokenSvc.GenerateAccessToken(user)
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}
	return accessToken, nil
}

// Logout implements domain.AuthService. With a token it revokes exactly the
// matching session; without one it revokes every session for the user.
// Failures are logged and swallowed: logout always succeeds for the caller.
func (s *AuthServiceImpl) Logout(ctx context.Context, userID, refreshToken string) {
	if refreshToken == "" {
		if err := s.tokenRepo.DeleteByUser(ctx, userID); err != nil {
			log.Printf("logout: failed to delete refresh tokens for user %s: %v", userID, err)
		}
		return
	}

	tokens, err := s.tokenRepo.FindActiveByUser(ctx, userID)
	if err != nil {
		log.Printf("logout: failed to load refresh tokens for user %s: %v", userID, err)
		return
	}

	for _, record := range tokens {
		if s.tokenHasher.Compare(record.TokenHash, refreshToken) {
			if err := s.tokenRepo.DeleteByID(ctx, record.ID); err != nil {
				log.Printf("logout: failed to delete refresh token %s: %v", record.ID, err)
			}
			return
		}
	}
	// No matching row: already logged out, treat as a no-op.
}

// GetProfile implements domain.AuthService
func (s *AuthServiceImpl) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

// UpdateProfile implements domain.AuthService
func (s *AuthServiceImpl) UpdateProfile(ctx context.Context, userID string, update domain.ProfileUpdate) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Phone != nil {
		user.Phone = *update.Phone
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// emailLocalPart derives a default display name from the address
func emailLocalPart(email string) string {
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return email
}
