// Package otp issues and verifies short-lived numeric verification codes
// backed by Redis. Codes expire on their own through key TTLs, and each
// code tracks a verify-attempt counter so brute forcing is cut off.
package otp

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kaamsetu/kaamsetu-backend-go/internal/config"
)

var (
	ErrCodeMismatch    = errors.New("otp: code mismatch")
	ErrCodeExpired     = errors.New("otp: code expired or not issued")
	ErrTooManyAttempts = errors.New("otp: too many attempts")
)

const codeDigits = 6

// Store issues and verifies one-time codes keyed by email.
type Store interface {
	Issue(ctx context.Context, email string) (code string, ttl time.Duration, err error)
	Verify(ctx context.Context, email, code string) error
}

type redisStore struct {
	client      *redis.Client
	ttl         time.Duration
	maxAttempts int
}

// NewRedisClient connects to Redis using a redis:// URL and verifies the
// connection with a ping.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}

// NewRedisStore creates an OTP store on top of an existing Redis client.
func NewRedisStore(client *redis.Client, cfg config.OTPConfig) Store {
	return &redisStore{
		client:      client,
		ttl:         time.Duration(cfg.TTLMinutes) * time.Minute,
		maxAttempts: cfg.MaxAttempts,
	}
}

func codeKey(email string) string {
	return "otp:code:" + email
}

func attemptsKey(email string) string {
	return "otp:attempts:" + email
}

// Issue generates a fresh code for the email and stores it with the
// configured TTL. Re-issuing replaces any previous code and resets the
// attempt counter.
func (s *redisStore) Issue(ctx context.Context, email string) (string, time.Duration, error) {
	code, err := generateCode()
	if err != nil {
		return "", 0, err
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, codeKey(email), code, s.ttl)
	pipe.Del(ctx, attemptsKey(email))
	if _, err := pipe.Exec(ctx); err != nil {
		return "", 0, fmt.Errorf("failed to store otp: %w", err)
	}

	return code, s.ttl, nil
}

// Verify checks the supplied code against the stored one. A successful
// verification consumes the code. Exceeding the attempt limit invalidates
// the code entirely.
func (s *redisStore) Verify(ctx context.Context, email, code string) error {
	stored, err := s.client.Get(ctx, codeKey(email)).Result()
	if errors.Is(err, redis.Nil) {
		return ErrCodeExpired
	}
	if err != nil {
		return fmt.Errorf("failed to read otp: %w", err)
	}

	attempts, err := s.client.Incr(ctx, attemptsKey(email)).Result()
	if err != nil {
		return fmt.Errorf("failed to count otp attempt: %w", err)
	}
	if attempts == 1 {
		// Counter lives as long as the code itself.
		s.client.Expire(ctx, attemptsKey(email), s.ttl)
	}
	if int(attempts) > s.maxAttempts {
		s.client.Del(ctx, codeKey(email), attemptsKey(email))
		return ErrTooManyAttempts
	}

	if stored != code {
		return ErrCodeMismatch
	}

	s.client.Del(ctx, codeKey(email), attemptsKey(email))
	return nil
}

func generateCode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < codeDigits; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to generate otp: %w", err)
	}
	return fmt.Sprintf("%0*d", codeDigits, n), nil
}
