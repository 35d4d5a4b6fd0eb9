package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryIdempotencyStore(t *testing.T) {
	ctx := context.Background()

	t.Run("first mark wins, replay is rejected", func(t *testing.T) {
		store := NewInMemoryIdempotencyStore()
		defer store.Close()

		marked, err := store.MarkProcessed(ctx, "key-1", "order-a", time.Minute)
		require.NoError(t, err)
		assert.True(t, marked)

		marked, err = store.MarkProcessed(ctx, "key-1", "order-b", time.Minute)
		require.NoError(t, err)
		assert.False(t, marked)

		value, found, err := store.Lookup(ctx, "key-1")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "order-a", value)
	})

	t.Run("unknown key is not found", func(t *testing.T) {
		store := NewInMemoryIdempotencyStore()
		defer store.Close()

		_, found, err := store.Lookup(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("expired key can be reused", func(t *testing.T) {
		store := NewInMemoryIdempotencyStore()
		defer store.Close()

		_, err := store.MarkProcessed(ctx, "key-2", "order-a", time.Millisecond)
		require.NoError(t, err)

		time.Sleep(5 * time.Millisecond)

		_, found, err := store.Lookup(ctx, "key-2")
		require.NoError(t, err)
		assert.False(t, found)

		marked, err := store.MarkProcessed(ctx, "key-2", "order-b", time.Minute)
		require.NoError(t, err)
		assert.True(t, marked)
	})
}
