package sessions

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"resume-builder/internal/resume"
)

const redisKeyPrefix = "resume:snapshot:"

// RedisStore keeps snapshots in Redis with a per-session TTL, so abandoned
// sessions age out on their own.
type RedisStore struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisStore constructs a RedisStore. A zero ttl means keys never expire.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{Client: client, TTL: ttl}
}

// Load returns the snapshot for a session, if any.
func (s *RedisStore) Load(ctx context.Context, sessionID string) (resume.ResumeData, bool, error) {
	raw, err := s.Client.Get(ctx, redisKeyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return resume.Default(), false, nil
		}
		return resume.ResumeData{}, false, err
	}
	data, ok := decodeSnapshot(sessionID, raw)
	return data, ok, nil
}

// Save overwrites the snapshot and refreshes the TTL.
func (s *RedisStore) Save(ctx context.Context, sessionID string, data resume.ResumeData) error {
	raw, err := encodeSnapshot(data)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, redisKeyPrefix+sessionID, raw, s.TTL).Err()
}

// Clear deletes the snapshot.
func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	return s.Client.Del(ctx, redisKeyPrefix+sessionID).Err()
}
