package views

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestCounter(t *testing.T) (*Counter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewCounter(client, 6*time.Hour), mr
}

func TestCounter_FirstViewCounts(t *testing.T) {
	counter, _ := setupTestCounter(t)

	first, err := counter.MarkViewed(context.Background(), "v-1", "u-1")
	require.NoError(t, err)
	assert.True(t, first)
}

func TestCounter_RepeatViewInsideWindowIsDeduped(t *testing.T) {
	counter, _ := setupTestCounter(t)

	_, err := counter.MarkViewed(context.Background(), "v-1", "u-1")
	require.NoError(t, err)

	first, err := counter.MarkViewed(context.Background(), "v-1", "u-1")
	require.NoError(t, err)
	assert.False(t, first)
}

func TestCounter_DistinctViewersCountSeparately(t *testing.T) {
	counter, _ := setupTestCounter(t)

	first, err := counter.MarkViewed(context.Background(), "v-1", "u-1")
	require.NoError(t, err)
	assert.True(t, first)

	first, err = counter.MarkViewed(context.Background(), "v-1", "u-2")
	require.NoError(t, err)
	assert.True(t, first)
}

func TestCounter_ViewCountsAgainAfterWindow(t *testing.T) {
	counter, mr := setupTestCounter(t)

	_, err := counter.MarkViewed(context.Background(), "v-1", "u-1")
	require.NoError(t, err)

	mr.FastForward(6*time.Hour + time.Minute)

	first, err := counter.MarkViewed(context.Background(), "v-1", "u-1")
	require.NoError(t, err)
	assert.True(t, first)
}
