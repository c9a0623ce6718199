package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/0xAnupam/Mental-Health-ChatBot/internal/conversation"
)

const (
	ctxKeyPrefix = "chat:ctx:"
	ctxTTL       = 5 * time.Minute
)

// Store caches the recent-context window per user. The database stays the
// source of truth; entries are short lived and dropped on every append.
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

func (s *Store) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

func (s *Store) Close() error {
	return s.rdb.Close()
}

func (s *Store) GetRecent(ctx context.Context, userID string) ([]conversation.Turn, bool, error) {
	val, err := s.rdb.Get(ctx, ctxKeyPrefix+userID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var turns []conversation.Turn
	if err := json.Unmarshal([]byte(val), &turns); err != nil {
		return nil, false, err
	}
	return turns, true, nil
}

func (s *Store) SetRecent(ctx context.Context, userID string, turns []conversation.Turn) error {
	b, err := json.Marshal(turns)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, ctxKeyPrefix+userID, b, ctxTTL).Err()
}

func (s *Store) Invalidate(ctx context.Context, userID string) error {
	return s.rdb.Del(ctx, ctxKeyPrefix+userID).Err()
}
