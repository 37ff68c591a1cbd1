package presence

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// LastSeenStore records when an identity was last online. The session table
// is in-memory, but last-seen must survive a restart to keep answering
// "when was X last online", so production uses Redis.
type LastSeenStore interface {
	Touch(ctx context.Context, userID string, at time.Time) error
	Get(ctx context.Context, userID string) (*time.Time, error)
}

const lastSeenKey = "presence:last_seen"

type redisLastSeen struct {
	client *redis.Client
}

func NewRedisLastSeen(client *redis.Client) LastSeenStore {
	return &redisLastSeen{client: client}
}

func (s *redisLastSeen) Touch(ctx context.Context, userID string, at time.Time) error {
	return s.client.HSet(ctx, lastSeenKey, userID, at.UTC().Format(time.RFC3339Nano)).Err()
}

func (s *redisLastSeen) Get(ctx context.Context, userID string) (*time.Time, error) {
	val, err := s.client.HGet(ctx, lastSeenKey, userID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	at, err := time.Parse(time.RFC3339Nano, val)
	if err != nil {
		return nil, err
	}
	return &at, nil
}

type memoryLastSeen struct {
	mu   sync.RWMutex
	seen map[string]time.Time
}

// NewMemoryLastSeen is the fallback store for tests and Redis-less deployments.
func NewMemoryLastSeen() LastSeenStore {
	return &memoryLastSeen{seen: make(map[string]time.Time)}
}

func (s *memoryLastSeen) Touch(_ context.Context, userID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seen[userID] = at.UTC()
	return nil
}

func (s *memoryLastSeen) Get(_ context.Context, userID string) (*time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	at, ok := s.seen[userID]
	if !ok {
		return nil, nil
	}
	return &at, nil
}
