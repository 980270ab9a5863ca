package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/you/twofasvc/domain"
)

// PendingAuthRepositoryImpl implements domain.PendingAuthRepository using
// Redis. Each entry maps an opaque token to the user whose password was
// verified; the Redis TTL bounds how long the second factor may be supplied.
type PendingAuthRepositoryImpl struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewPendingAuthRepository creates a new pending auth repository
func NewPendingAuthRepository(client *redis.Client, ttl time.Duration) domain.PendingAuthRepository {
	return &PendingAuthRepositoryImpl{
		client: client,
		prefix: "pending2fa:",
		ttl:    ttl,
	}
}

// Create implements domain.PendingAuthRepository
func (r *PendingAuthRepositoryImpl) Create(ctx context.Context, pending *domain.PendingAuth) error {
	key := r.prefix + pending.Token
	data, err := json.Marshal(pending)
	if err != nil {
		return fmt.Errorf("failed to marshal pending auth: %w", err)
	}

	return r.client.Set(ctx, key, data, r.ttl).Err()
}

// Find implements domain.PendingAuthRepository. The entry is left in place,
// which is what the retry-after-wrong-code path needs.
func (r *PendingAuthRepositoryImpl) Find(ctx context.Context, token string) (*domain.PendingAuth, error) {
	data, err := r.client.Get(ctx, r.prefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrPendingAuthExpired
		}
		return nil, err
	}
	return r.unmarshal(data)
}

// Consume implements domain.PendingAuthRepository. GETDEL makes the
// fetch-and-delete atomic, so a pending attempt promotes at most once even
// under concurrent submissions of the same token.
func (r *PendingAuthRepositoryImpl) Consume(ctx context.Context, token string) (*domain.PendingAuth, error) {
	data, err := r.client.GetDel(ctx, r.prefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrPendingAuthExpired
		}
		return nil, err
	}
	return r.unmarshal(data)
}

// Delete implements domain.PendingAuthRepository
func (r *PendingAuthRepositoryImpl) Delete(ctx context.Context, token string) error {
	return r.client.Del(ctx, r.prefix+token).Err()
}

func (r *PendingAuthRepositoryImpl) unmarshal(data string) (*domain.PendingAuth, error) {
	var pending domain.PendingAuth
	if err := json.Unmarshal([]byte(data), &pending); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pending auth: %w", err)
	}
	if pending.ExpiresAt.Before(time.Now()) {
		return nil, domain.ErrPendingAuthExpired
	}
	return &pending, nil
}
