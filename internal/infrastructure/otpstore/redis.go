package otpstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/kamalkharel2002/trackship/domain"
	"github.com/redis/go-redis/v9"
)

// retention bounds how long an entry survives in Redis. It is garbage
// collection only: the authoritative expiry lives inside the stored entry,
// so an entry past its OTP TTL but still within retention reports expired
// rather than missing, matching the memory store.
const retention = 24 * time.Hour

// RedisStore implements domain.OTPStore on a shared Redis instance so
// multiple service replicas see the same codes.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a new Redis-backed OTP store
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, prefix: "otp:"}
}

// Put implements domain.OTPStore
func (s *RedisStore) Put(ctx context.Context, email string, entry *domain.OTPEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal otp entry: %w", err)
	}
	return s.client.Set(ctx, s.prefix+email, data, retention).Err()
}

// Get implements domain.OTPStore
func (s *RedisStore) Get(ctx context.Context, email string) (*domain.OTPEntry, error) {
	data, err := s.client.Get(ctx, s.prefix+email).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrOTPNotFound
		}
		return nil, err
	}

	var entry domain.OTPEntry
	if err := json.Unmarshal([]byte(data), &entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal otp entry: %w", err)
	}
	return &entry, nil
}

// Delete implements domain.OTPStore
func (s *RedisStore) Delete(ctx context.Context, email string) error {
	return s.client.Del(ctx, s.prefix+email).Err()
}
