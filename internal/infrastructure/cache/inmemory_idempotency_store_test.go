package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryIdempotencyStore_RememberAndLookup(t *testing.T) {
	store := NewInMemoryIdempotencyStore()
	defer store.Close()

	ctx := context.Background()

	got, err := store.Lookup(ctx, "key-1")
	require.NoError(t, err)
	assert.Equal(t, "", got, "unknown key yields empty result")

	ok, err := store.Remember(ctx, "key-1", "order-abc", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err = store.Lookup(ctx, "key-1")
	require.NoError(t, err)
	assert.Equal(t, "order-abc", got)
}

func TestInMemoryIdempotencyStore_FirstWriterWins(t *testing.T) {
	store := NewInMemoryIdempotencyStore()
	defer store.Close()

	ctx := context.Background()

	ok, err := store.Remember(ctx, "key-1", "order-first", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Remember(ctx, "key-1", "order-second", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := store.Lookup(ctx, "key-1")
	require.NoError(t, err)
	assert.Equal(t, "order-first", got)
}

func TestInMemoryIdempotencyStore_Expiry(t *testing.T) {
	store := NewInMemoryIdempotencyStore()
	defer store.Close()

	ctx := context.Background()

	ok, err := store.Remember(ctx, "key-1", "order-abc", 10*time.Millisecond)
	require.NoError(t, err)
	assert.True(t, ok)

	time.Sleep(20 * time.Millisecond)

	got, err := store.Lookup(ctx, "key-1")
	require.NoError(t, err)
	assert.Equal(t, "", got, "expired entries are invisible")

	ok, err = store.Remember(ctx, "key-1", "order-new", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "expired keys can be re-remembered")
}

func TestInMemoryIdempotencyStore_Cleanup(t *testing.T) {
	store := NewInMemoryIdempotencyStore()
	defer store.Close()

	ctx := context.Background()
	_, err := store.Remember(ctx, "a", "1", 5*time.Millisecond)
	require.NoError(t, err)
	_, err = store.Remember(ctx, "b", "2", time.Hour)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	store.cleanup()

	assert.Equal(t, 1, store.Size())
}

func TestInMemoryIdempotencyStore_CloseIsIdempotent(t *testing.T) {
	store := NewInMemoryIdempotencyStore()
	require.NoError(t, store.Close())
	require.NoError(t, store.Close())
}
