package repositories

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

type RedisRepository struct {
	rdb *redis.Client
}

func NewRedisRepository(rdb *redis.Client) *RedisRepository {
	return &RedisRepository{rdb: rdb}
}

func (r *RedisRepository) StoreSession(ctx context.Context, jti string, userID int64, ttl time.Duration) error {
	key := sessionKeyPrefix + jti
	return r.rdb.Set(ctx, key, strconv.FormatInt(userID, 10), ttl).Err()
}

// SessionUser returns the user bound to jti. ok is false when the session
// expired or was deleted.
func (r *RedisRepository) SessionUser(ctx context.Context, jti string) (userID int64, ok bool, err error) {
	key := sessionKeyPrefix + jti
	val, err := r.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, err
	}

	userID, err = strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, err
	}
	return userID, true, nil
}

func (r *RedisRepository) DeleteSession(ctx context.Context, jti string) error {
	key := sessionKeyPrefix + jti
	return r.rdb.Del(ctx, key).Err()
}

func (r *RedisRepository) Ping(ctx context.Context) error {
	return r.rdb.Ping(ctx).Err()
}
