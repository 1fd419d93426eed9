// Package views deduplicates video view counting with Redis.
package views

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Counter marks (viewer, video) pairs in Redis so repeated plays inside the
// dedupe window count once.
type Counter struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCounter creates a view counter with the given dedupe window.
func NewCounter(client *redis.Client, ttl time.Duration) *Counter {
	return &Counter{client: client, ttl: ttl}
}

// MarkViewed records that viewerID watched videoID and reports whether this
// is the first view inside the window. SET NX makes the check and the mark
// one atomic operation, so concurrent plays count once.
func (c *Counter) MarkViewed(ctx context.Context, videoID, viewerID string) (bool, error) {
	key := fmt.Sprintf("views:%s:%s", videoID, viewerID)

	first, err := c.client.SetNX(ctx, key, 1, c.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("mark viewed: %w", err)
	}

	return first, nil
}
