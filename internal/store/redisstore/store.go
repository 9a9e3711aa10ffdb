package redisstore

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store caches AI answers keyed by task kind and prompt hash. It is
// optional infrastructure: callers treat every failure here as a miss.
type Store struct {
	rdb *redis.Client
}

func New(addr, password string, db int) *Store {
	return &Store{rdb: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}

func (s *Store) Close() error {
	return s.rdb.Close()
}

// AnswerKey derives the cache key for a rendered prompt.
func AnswerKey(kind, prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return fmt.Sprintf("ai:%s:%s", kind, hex.EncodeToString(sum[:]))
}

func (s *Store) GetAnswer(ctx context.Context, key string) (string, bool, error) {
	v, err := s.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *Store) SetAnswer(ctx context.Context, key, answer string, ttl time.Duration) error {
	return s.rdb.Set(ctx, key, answer, ttl).Err()
}
