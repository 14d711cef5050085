package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/crustcraft/crustcraft-backend/pkg/redis"
)

// Store persists cart snapshots between requests, keyed by the opaque
// session token minted for each browser.
type Store interface {
	Load(ctx context.Context, sessionID string) (Snapshot, bool, error)
	Save(ctx context.Context, sessionID string, snap Snapshot) error
	Delete(ctx context.Context, sessionID string) error
}

type sessionKeyer interface {
	CartSessionKey(sessionID string) string
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
}

// RedisStore keeps snapshots as JSON blobs with a rolling TTL, so abandoned
// carts expire on their own.
type RedisStore struct {
	client sessionKeyer
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) (*RedisStore, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	if ttl <= 0 {
		ttl = 72 * time.Hour
	}
	return &RedisStore{client: client, ttl: ttl}, nil
}

func (s *RedisStore) Load(ctx context.Context, sessionID string) (Snapshot, bool, error) {
	raw, err := s.client.Get(ctx, s.client.CartSessionKey(sessionID))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Snapshot{}, false, nil
		}
		return Snapshot{}, false, fmt.Errorf("loading cart snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		// A corrupt snapshot behaves like an absent one; the session starts over.
		return Snapshot{}, false, nil
	}
	return snap, true, nil
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, snap Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encoding cart snapshot: %w", err)
	}
	if err := s.client.Set(ctx, s.client.CartSessionKey(sessionID), payload, s.ttl); err != nil {
		return fmt.Errorf("saving cart snapshot: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.client.CartSessionKey(sessionID)); err != nil {
		return fmt.Errorf("deleting cart snapshot: %w", err)
	}
	return nil
}
