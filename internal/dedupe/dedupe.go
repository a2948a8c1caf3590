// Package dedupe flags repeat submissions of the same message within a
// time window, backed by Redis. Detection is best-effort and advisory:
// a repeat is still fully processed, the notification just says so.
package dedupe

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "leadgate:seen:"

// Checker marks message hashes in Redis with a TTL.
type Checker struct {
	client *redis.Client
	window time.Duration
}

// NewClient creates a Redis client and verifies the connection.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}

	return client, nil
}

// New creates a checker with the given duplicate window.
func New(client *redis.Client, window time.Duration) *Checker {
	return &Checker{
		client: client,
		window: window,
	}
}

// Seen marks the message and reports whether it was already marked
// within the window. The first caller for a given message gets false.
func (c *Checker) Seen(ctx context.Context, message string) (bool, error) {
	sum := sha256.Sum256([]byte(message))
	key := keyPrefix + hex.EncodeToString(sum[:])

	set, err := c.client.SetNX(ctx, key, 1, c.window).Result()
	if err != nil {
		return false, fmt.Errorf("mark message hash: %w", err)
	}

	return !set, nil
}
