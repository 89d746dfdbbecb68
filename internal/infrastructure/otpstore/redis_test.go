package otpstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/kamalkharel2002/trackship/domain"
	"github.com/redis/go-redis/v9"
)

func newRedisStoreForTest(t *testing.T) *RedisStore {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisStore(client)
}

func TestRedisStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store := newRedisStoreForTest(t)

	if _, err := store.Get(ctx, "a@x.com"); !errors.Is(err, domain.ErrOTPNotFound) {
		t.Fatalf("expected ErrOTPNotFound on empty store, got %v", err)
	}

	entry := &domain.OTPEntry{Code: "1234", ExpiresAt: time.Now().Add(5 * time.Minute).UTC()}
	if err := store.Put(ctx, "a@x.com", entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.Get(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Code != "1234" {
		t.Errorf("expected code 1234, got %s", got.Code)
	}
	if !got.ExpiresAt.Equal(entry.ExpiresAt) {
		t.Errorf("expected expiry %v, got %v", entry.ExpiresAt, got.ExpiresAt)
	}

	if err := store.Delete(ctx, "a@x.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Get(ctx, "a@x.com"); !errors.Is(err, domain.ErrOTPNotFound) {
		t.Errorf("expected ErrOTPNotFound after delete, got %v", err)
	}
}

func TestRedisStore_PutOverwrites(t *testing.T) {
	ctx := context.Background()
	store := newRedisStoreForTest(t)

	store.Put(ctx, "a@x.com", &domain.OTPEntry{Code: "1111", ExpiresAt: time.Now().Add(time.Minute).UTC()})
	store.Put(ctx, "a@x.com", &domain.OTPEntry{Code: "2222", ExpiresAt: time.Now().Add(time.Minute).UTC()})

	got, err := store.Get(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Code != "2222" {
		t.Errorf("expected the later code to win, got %s", got.Code)
	}
}

func TestRedisStore_ExpiredEntriesStillReportExpired(t *testing.T) {
	ctx := context.Background()
	store := newRedisStoreForTest(t)

	// An entry past its OTP expiry but within the retention window must
	// come back (so the caller can distinguish expired from missing),
	// matching the memory store.
	expired := &domain.OTPEntry{Code: "1234", ExpiresAt: time.Now().Add(-time.Minute).UTC()}
	if err := store.Put(ctx, "a@x.com", expired); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.Get(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("expected expired entry to be returned, got %v", err)
	}
	if !got.ExpiresAt.Before(time.Now()) {
		t.Error("expected the stored expiry to be preserved")
	}
}

func TestRedisStore_KeysAreScopedByEmail(t *testing.T) {
	ctx := context.Background()
	store := newRedisStoreForTest(t)

	store.Put(ctx, "a@x.com", &domain.OTPEntry{Code: "1111", ExpiresAt: time.Now().Add(time.Minute).UTC()})
	store.Put(ctx, "b@x.com", &domain.OTPEntry{Code: "2222", ExpiresAt: time.Now().Add(time.Minute).UTC()})

	if err := store.Delete(ctx, "a@x.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Get(ctx, "b@x.com"); err != nil {
		t.Errorf("expected b@x.com entry to survive, got %v", err)
	}
}
