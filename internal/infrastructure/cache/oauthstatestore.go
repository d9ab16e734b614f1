package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"subtrack/internal/shared/biztime"
)

// StateInfo stores state-related information for the OAuth flow
type StateInfo struct {
	CodeVerifier string    `json:"code_verifier"`
	CreatedAt    time.Time `json:"created_at"`
}

// StateStore keeps OAuth state tokens between the authorize redirect and the
// provider callback. States are one-time use.
type StateStore interface {
	Set(ctx context.Context, state string, codeVerifier string) error
	VerifyAndGet(ctx context.Context, state string) (*StateInfo, error)
}

// RedisStateStore provides Redis-based state storage for OAuth flows
type RedisStateStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisStateStore(client *redis.Client, prefix string, ttl time.Duration) *RedisStateStore {
	return &RedisStateStore{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// Set stores state and code_verifier in Redis with TTL
func (s *RedisStateStore) Set(ctx context.Context, state string, codeVerifier string) error {
	if state == "" {
		return errors.New("state cannot be empty")
	}
	if codeVerifier == "" {
		return errors.New("code_verifier cannot be empty")
	}

	stateInfo := StateInfo{
		CodeVerifier: codeVerifier,
		CreatedAt:    biztime.NowUTC(),
	}

	data, err := json.Marshal(stateInfo)
	if err != nil {
		return fmt.Errorf("failed to marshal state info: %w", err)
	}

	key := s.buildKey(state)
	if err := s.client.Set(ctx, key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store state in redis: %w", err)
	}

	return nil
}

// VerifyAndGet retrieves the code_verifier for a state (one-time use).
// GETDEL is atomic, so a state can never be replayed.
func (s *RedisStateStore) VerifyAndGet(ctx context.Context, state string) (*StateInfo, error) {
	if state == "" {
		return nil, errors.New("state cannot be empty")
	}

	key := s.buildKey(state)

	data, err := s.client.GetDel(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errors.New("state not found or expired")
		}
		return nil, fmt.Errorf("failed to get state from redis: %w", err)
	}

	var stateInfo StateInfo
	if err := json.Unmarshal([]byte(data), &stateInfo); err != nil {
		return nil, fmt.Errorf("failed to unmarshal state info: %w", err)
	}

	return &stateInfo, nil
}

func (s *RedisStateStore) buildKey(state string) string {
	return s.prefix + state
}

// MemoryStateStore is the fallback when Redis is not configured. Entries
// expire lazily on read.
type MemoryStateStore struct {
	mu      sync.Mutex
	entries map[string]memoryStateEntry
	ttl     time.Duration
}

type memoryStateEntry struct {
	info      StateInfo
	expiresAt time.Time
}

func NewMemoryStateStore(ttl time.Duration) *MemoryStateStore {
	return &MemoryStateStore{
		entries: make(map[string]memoryStateEntry),
		ttl:     ttl,
	}
}

func (s *MemoryStateStore) Set(ctx context.Context, state string, codeVerifier string) error {
	if state == "" {
		return errors.New("state cannot be empty")
	}
	if codeVerifier == "" {
		return errors.New("code_verifier cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := biztime.NowUTC()
	s.entries[state] = memoryStateEntry{
		info:      StateInfo{CodeVerifier: codeVerifier, CreatedAt: now},
		expiresAt: now.Add(s.ttl),
	}
	return nil
}

func (s *MemoryStateStore) VerifyAndGet(ctx context.Context, state string) (*StateInfo, error) {
	if state == "" {
		return nil, errors.New("state cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[state]
	if !ok {
		return nil, errors.New("state not found or expired")
	}
	delete(s.entries, state)

	if biztime.NowUTC().After(entry.expiresAt) {
		return nil, errors.New("state not found or expired")
	}

	info := entry.info
	return &info, nil
}
