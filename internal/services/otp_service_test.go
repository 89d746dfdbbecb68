package services

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/kamalkharel2002/trackship/domain"
	"github.com/kamalkharel2002/trackship/internal/infrastructure/otpstore"
	"github.com/kamalkharel2002/trackship/internal/mocks"
)

// newOTPServiceForTest wires the service against the real in-process store
// so the full request/verify lifecycle is exercised.
func newOTPServiceForTest(t *testing.T, ttl time.Duration) (domain.OTPService, *otpstore.MemoryStore, *mocks.MockNotificationService) {
	t.Helper()

	store := otpstore.NewMemoryStore()
	notificationSvc := mocks.NewMockNotificationService()
	svc := NewOTPService(store, notificationSvc, OTPConfig{TTL: ttl})
	return svc, store, notificationSvc
}

func TestOTPServiceImpl_Request(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a 4 digit code and reports the TTL", func(t *testing.T) {
		svc, store, notificationSvc := newOTPServiceForTest(t, 5*time.Minute)

		var sentTo, sentBody string
		notificationSvc.SendEmailFunc = func(to, subject, body string) error {
			sentTo = to
			sentBody = body
			return nil
		}

		delivery, err := svc.Request(ctx, "a@x.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if delivery.Message != "OTP sent to email" {
			t.Errorf("expected message %q, got %q", "OTP sent to email", delivery.Message)
		}
		if delivery.ExpiresIn != 300 {
			t.Errorf("expected expires_in 300, got %d", delivery.ExpiresIn)
		}
		if sentTo != "a@x.com" {
			t.Errorf("expected delivery to a@x.com, got %q", sentTo)
		}

		entry, err := store.Get(ctx, "a@x.com")
		if err != nil {
			t.Fatalf("expected stored entry: %v", err)
		}
		if len(entry.Code) != 4 {
			t.Errorf("expected 4 digit code, got %q", entry.Code)
		}
		n, err := strconv.Atoi(entry.Code)
		if err != nil || n < 1000 || n > 9999 {
			t.Errorf("expected code in [1000, 9999], got %q", entry.Code)
		}
		if !strings.Contains(sentBody, entry.Code) {
			t.Errorf("expected email body to carry the code %q", entry.Code)
		}
	})

	t.Run("a new request overwrites the previous code", func(t *testing.T) {
		svc, store, _ := newOTPServiceForTest(t, 5*time.Minute)

		if _, err := svc.Request(ctx, "a@x.com"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		first, _ := store.Get(ctx, "a@x.com")

		// Codes can collide; overwrite until they differ to observe the swap.
		var second *domain.OTPEntry
		for i := 0; i < 50; i++ {
			if _, err := svc.Request(ctx, "a@x.com"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			second, _ = store.Get(ctx, "a@x.com")
			if second.Code != first.Code {
				break
			}
		}
		if second.Code == first.Code {
			t.Skip("could not draw a distinct code in 50 attempts")
		}
		if err := svc.Verify(ctx, "a@x.com", first.Code); !errors.Is(err, domain.ErrOTPMismatch) {
			t.Errorf("expected overwritten code to mismatch, got %v", err)
		}
	})

	t.Run("delivery failure surfaces ErrOTPDelivery and retains the entry", func(t *testing.T) {
		svc, store, notificationSvc := newOTPServiceForTest(t, 5*time.Minute)

		notificationSvc.SendEmailFunc = func(to, subject, body string) error {
			return errors.New("smtp unreachable")
		}

		_, err := svc.Request(ctx, "a@x.com")
		if !errors.Is(err, domain.ErrOTPDelivery) {
			t.Fatalf("expected ErrOTPDelivery, got %v", err)
		}
		if _, err := store.Get(ctx, "a@x.com"); err != nil {
			t.Errorf("expected entry to be retained after delivery failure, got %v", err)
		}
	})

	t.Run("store failure aborts the request", func(t *testing.T) {
		store := mocks.NewMockOTPStore()
		store.PutFunc = func(ctx context.Context, email string, entry *domain.OTPEntry) error {
			return errors.New("backend down")
		}
		notified := false
		notificationSvc := mocks.NewMockNotificationService()
		notificationSvc.SendEmailFunc = func(to, subject, body string) error {
			notified = true
			return nil
		}

		svc := NewOTPService(store, notificationSvc, OTPConfig{TTL: 5 * time.Minute})
		if _, err := svc.Request(ctx, "a@x.com"); err == nil {
			t.Fatal("expected error when store fails")
		}
		if notified {
			t.Error("expected no delivery attempt when storage fails")
		}
	})
}

func TestOTPServiceImpl_Verify(t *testing.T) {
	ctx := context.Background()

	t.Run("correct code succeeds exactly once", func(t *testing.T) {
		svc, store, _ := newOTPServiceForTest(t, 5*time.Minute)

		if _, err := svc.Request(ctx, "a@x.com"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		entry, _ := store.Get(ctx, "a@x.com")

		if err := svc.Verify(ctx, "a@x.com", entry.Code); err != nil {
			t.Fatalf("expected verification to succeed: %v", err)
		}
		// Single use: the consumed code is gone.
		if err := svc.Verify(ctx, "a@x.com", entry.Code); !errors.Is(err, domain.ErrOTPNotFound) {
			t.Errorf("expected ErrOTPNotFound on reuse, got %v", err)
		}
	})

	t.Run("unknown email fails with not found", func(t *testing.T) {
		svc, _, _ := newOTPServiceForTest(t, 5*time.Minute)

		if err := svc.Verify(ctx, "nobody@x.com", "1234"); !errors.Is(err, domain.ErrOTPNotFound) {
			t.Errorf("expected ErrOTPNotFound, got %v", err)
		}
	})

	t.Run("expired code fails and is dropped regardless of correctness", func(t *testing.T) {
		svc, store, _ := newOTPServiceForTest(t, 5*time.Minute)

		entry := &domain.OTPEntry{Code: "4321", ExpiresAt: time.Now().Add(-time.Second)}
		if err := store.Put(ctx, "a@x.com", entry); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := svc.Verify(ctx, "a@x.com", "4321"); !errors.Is(err, domain.ErrOTPExpired) {
			t.Fatalf("expected ErrOTPExpired, got %v", err)
		}
		// Lazy deletion: the expired entry is consumed by the check.
		if err := svc.Verify(ctx, "a@x.com", "4321"); !errors.Is(err, domain.ErrOTPNotFound) {
			t.Errorf("expected ErrOTPNotFound after expiry cleanup, got %v", err)
		}
	})

	t.Run("wrong code fails and keeps the entry usable", func(t *testing.T) {
		svc, store, _ := newOTPServiceForTest(t, 5*time.Minute)

		if _, err := svc.Request(ctx, "a@x.com"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		entry, _ := store.Get(ctx, "a@x.com")

		wrong := "0000"
		if wrong == entry.Code {
			wrong = "0001"
		}
		if err := svc.Verify(ctx, "a@x.com", wrong); !errors.Is(err, domain.ErrOTPMismatch) {
			t.Fatalf("expected ErrOTPMismatch, got %v", err)
		}
		// The correct code still verifies within the TTL.
		if err := svc.Verify(ctx, "a@x.com", entry.Code); err != nil {
			t.Errorf("expected retry with correct code to succeed, got %v", err)
		}
	})
}
