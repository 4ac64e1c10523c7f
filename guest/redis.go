package guest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps guest state in Redis with a TTL so abandoned guests expire.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func cartKey(guestID string) string        { return "guest:cart:" + guestID }
func wishlistKey(guestID string) string    { return "guest:wishlist:" + guestID }
func attributionKey(guestID string) string { return "guest:referral:" + guestID }

func (s *RedisStore) getJSON(ctx context.Context, key string, out interface{}) (bool, error) {
	raw, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (s *RedisStore) setJSON(ctx context.Context, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, key, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Cart(ctx context.Context, guestID string) ([]CartLine, error) {
	var lines []CartLine
	if _, err := s.getJSON(ctx, cartKey(guestID), &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *RedisStore) SaveCart(ctx context.Context, guestID string, lines []CartLine) error {
	return s.setJSON(ctx, cartKey(guestID), lines)
}

func (s *RedisStore) ClearCart(ctx context.Context, guestID string) error {
	return s.rdb.Del(ctx, cartKey(guestID)).Err()
}

func (s *RedisStore) Wishlist(ctx context.Context, guestID string) ([]uint, error) {
	var ids []uint
	if _, err := s.getJSON(ctx, wishlistKey(guestID), &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *RedisStore) SaveWishlist(ctx context.Context, guestID string, productIDs []uint) error {
	return s.setJSON(ctx, wishlistKey(guestID), productIDs)
}

func (s *RedisStore) ClearWishlist(ctx context.Context, guestID string) error {
	return s.rdb.Del(ctx, wishlistKey(guestID)).Err()
}

func (s *RedisStore) Attribution(ctx context.Context, guestID string) (*Attribution, error) {
	var a Attribution
	found, err := s.getJSON(ctx, attributionKey(guestID), &a)
	if err != nil || !found {
		return nil, err
	}
	return &a, nil
}

func (s *RedisStore) SaveAttribution(ctx context.Context, guestID string, a Attribution) error {
	return s.setJSON(ctx, attributionKey(guestID), a)
}

func (s *RedisStore) ClearAttribution(ctx context.Context, guestID string) error {
	return s.rdb.Del(ctx, attributionKey(guestID)).Err()
}
