// Package status persists user online/offline visibility in Redis so
// that sibling services (and other gateway instances) can read it.
package status

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Rafael2sf/ft-transcendence-sub001/domain"
)

const keyPrefix = "user:status:"

type Store struct {
	rdb *redis.Client
	log *slog.Logger
	// ttl guards against a crashed gateway leaving users online forever.
	ttl time.Duration
}

func NewStore(rdb *redis.Client, log *slog.Logger, ttl time.Duration) *Store {
	return &Store{rdb: rdb, log: log, ttl: ttl}
}

func key(userID domain.UserID) string {
	return keyPrefix + string(userID)
}

func (s *Store) SetOnline(ctx context.Context, userID domain.UserID) error {
	if err := s.rdb.Set(ctx, key(userID), "online", s.ttl).Err(); err != nil {
		return fmt.Errorf("set online %s: %w", userID, err)
	}
	return nil
}

func (s *Store) SetOffline(ctx context.Context, userID domain.UserID) error {
	if err := s.rdb.Del(ctx, key(userID)).Err(); err != nil {
		return fmt.Errorf("set offline %s: %w", userID, err)
	}
	return nil
}

func (s *Store) IsOnline(ctx context.Context, userID domain.UserID) (bool, error) {
	n, err := s.rdb.Exists(ctx, key(userID)).Result()
	if err != nil {
		return false, fmt.Errorf("read status %s: %w", userID, err)
	}
	return n > 0, nil
}
