package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	AccountKey = "ACCOUNT:"

	defaultTTL = 15 * time.Minute
)

var rdb *redis.Client

/*
* Redis is optional; with no address configured every call is a no-op
* and reads behave as misses
 */
func Init(addr string) {
	if addr == "" {
		log.Println("Redis not configured, entity cache disabled")
		return
	}
	rdb = redis.NewClient(&redis.Options{Addr: addr})
}

// InitWithClient swaps in a prepared client (tests run against miniredis).
func InitWithClient(c *redis.Client) {
	rdb = c
}

func Set(ctx context.Context, key string, value interface{}) error {
	if rdb == nil {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, key, raw, defaultTTL).Err()
}

// Get reports whether the key was present; absence is not an error.
func Get(ctx context.Context, key string, out interface{}) (bool, error) {
	if rdb == nil {
		return false, nil
	}
	raw, err := rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, err
	}
	return true, nil
}

func Delete(ctx context.Context, key string) error {
	if rdb == nil {
		return nil
	}
	return rdb.Del(ctx, key).Err()
}
