package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/kamalkharel2002/trackship/domain"
)

// OTPServiceImpl implements domain.OTPService on top of an injected store
type OTPServiceImpl struct {
	store           domain.OTPStore
	notificationSvc domain.NotificationService
	config          OTPConfig
}

type OTPConfig struct {
	TTL time.Duration
}

// NewOTPService creates a new OTP service
func NewOTPService(store domain.OTPStore, notificationSvc domain.NotificationService, config OTPConfig) domain.OTPService {
	return &OTPServiceImpl{
		store:           store,
		notificationSvc: notificationSvc,
		config:          config,
	}
}

// Request implements domain.OTPService. A new code overwrites any live code
// for the same email. The entry is stored before delivery is attempted and
// is kept on delivery failure, so a retried request reissues cleanly.
func (s *OTPServiceImpl) Request(ctx context.Context, email string) (*domain.OTPDelivery, error) {
	code, err := s.generateCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate otp code: %w", err)
	}

	entry := &domain.OTPEntry{
		Code:      code,
		ExpiresAt: time.Now().Add(s.config.TTL),
	}
	if err := s.store.Put(ctx, email, entry); err != nil {
		return nil, fmt.Errorf("failed to store otp: %w", err)
	}

	subject := "TrackShip - Your OTP Code"
	body := fmt.Sprintf(
		"<p>Your OTP code is:</p><h1>%s</h1><p>This code will expire in %d minutes.</p>"+
			"<p>If you did not request this code, please ignore this email.</p>",
		code, int(s.config.TTL.Minutes()),
	)
	if err := s.notificationSvc.SendEmail(email, subject, body); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrOTPDelivery, err)
	}

	return &domain.OTPDelivery{
		Message:   "OTP sent to email",
		ExpiresIn: int64(s.config.TTL.Seconds()),
	}, nil
}

// Verify implements domain.OTPService. A correct code consumes the entry;
// a wrong code leaves it in place for another attempt within the TTL.
func (s *OTPServiceImpl) Verify(ctx context.Context, email, code string) error {
	entry, err := s.store.Get(ctx, email)
	if err != nil {
		return err
	}

	if time.Now().After(entry.ExpiresAt) {
		if err := s.store.Delete(ctx, email); err != nil {
			return fmt.Errorf("failed to drop expired otp: %w", err)
		}
		return domain.ErrOTPExpired
	}

	if entry.Code != code {
		return domain.ErrOTPMismatch
	}

	if err := s.store.Delete(ctx, email); err != nil {
		return fmt.Errorf("failed to consume otp: %w", err)
	}
	return nil
}

// TTL implements domain.OTPService
func (s *OTPServiceImpl) TTL() time.Duration {
	return s.config.TTL
}

// generateCode draws a 4-digit code uniformly from [1000, 9999]
func (s *OTPServiceImpl) generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", 1000+n.Int64()), nil
}
