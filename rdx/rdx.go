// Package rdx wraps the Redis client used for the product-list cache and
// the event channel. The cache is best-effort: when Redis is not configured
// every helper degrades to a miss and the gateway stays authoritative.
package rdx

import (
	"errors"
	"time"

	"dokan/globals"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

var ErrUnavailable = errors.New("redis not configured")

func Init(url, password string) error {
	if url == "" {
		return ErrUnavailable
	}
	Conn = redis.NewClient(&redis.Options{
		Addr:     url,
		Password: password,
		DB:       0,
	})
	return Conn.Ping(globals.Ctx).Err()
}

func RdxGet(key string) (string, error) {
	if Conn == nil {
		return "", ErrUnavailable
	}
	return Conn.Get(globals.Ctx, key).Result()
}

func RdxSet(key, value string) error {
	if Conn == nil {
		return ErrUnavailable
	}
	return Conn.Set(globals.Ctx, key, value, 10*time.Minute).Err()
}

func RdxDel(key string) error {
	if Conn == nil {
		return ErrUnavailable
	}
	return Conn.Del(globals.Ctx, key).Err()
}
