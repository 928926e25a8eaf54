package redisinfra

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/uni-match-api/internal/config"
	"github.com/uni-match-api/internal/domain"
)

const keyPrefix = "otp:"

// expiryGrace keeps the key alive past the logical expiry. The first verify
// after the window must still read the record so it can fail as expired and
// delete it; only later attempts see a missing record.
const expiryGrace = time.Hour

// decrScript atomically decrements attempts_left, but only while the record
// still exists — a plain HINCRBY would resurrect a just-deleted key.
var decrScript = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 0 then
  return false
end
return redis.call("HINCRBY", KEYS[1], "attempts_left", -1)
`)

// OTPStore keeps one hash per email under a TTL of the code expiry plus a
// grace window, so expiry is reported by the record, not by key eviction.
// All operations are single commands or scripts, so concurrent requests for
// the same email serialize inside Redis.
type OTPStore struct {
	client *redis.Client
}

// NewClient creates a Redis client from config.
func NewClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
}

func NewOTPStore(client *redis.Client) *OTPStore {
	return &OTPStore{client: client}
}

func (s *OTPStore) Put(ctx context.Context, email string, rec *domain.OTPRecord) error {
	key := keyPrefix + email
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key,
		"code", rec.Code,
		"attempts_left", rec.AttemptsLeft,
		"expires_at", rec.ExpiresAt.Unix(),
		"issued_at", rec.IssuedAt.Unix(),
	)
	pipe.ExpireAt(ctx, key, rec.ExpiresAt.Add(expiryGrace))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store otp record: %w", err)
	}
	return nil
}

func (s *OTPStore) Get(ctx context.Context, email string) (*domain.OTPRecord, error) {
	fields, err := s.client.HGetAll(ctx, keyPrefix+email).Result()
	if err != nil {
		return nil, fmt.Errorf("load otp record: %w", err)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("otp record missing: %w", domain.ErrNotFound)
	}

	attempts, err := strconv.Atoi(fields["attempts_left"])
	if err != nil {
		return nil, fmt.Errorf("corrupt otp record for %s: %w", email, err)
	}
	expiresAt, err := strconv.ParseInt(fields["expires_at"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt otp record for %s: %w", email, err)
	}
	issuedAt, _ := strconv.ParseInt(fields["issued_at"], 10, 64)

	return &domain.OTPRecord{
		Code:         fields["code"],
		AttemptsLeft: attempts,
		ExpiresAt:    time.Unix(expiresAt, 0),
		IssuedAt:     time.Unix(issuedAt, 0),
	}, nil
}

func (s *OTPStore) Decrement(ctx context.Context, email string) (int, error) {
	n, err := decrScript.Run(ctx, s.client, []string{keyPrefix + email}).Int()
	if errors.Is(err, redis.Nil) {
		return 0, fmt.Errorf("otp record missing: %w", domain.ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("decrement otp attempts: %w", err)
	}
	return n, nil
}

func (s *OTPStore) Delete(ctx context.Context, email string) error {
	if err := s.client.Del(ctx, keyPrefix+email).Err(); err != nil {
		return fmt.Errorf("delete otp record: %w", err)
	}
	return nil
}
