package announcement

import (
	"context"
	"path"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCache is an in-memory Cache with glob pattern deletion, enough
// to observe which entries survive an invalidation.
type fakeCache struct {
	entries map[string]interface{}
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]interface{})}
}

func (f *fakeCache) Get(_ context.Context, key string, _ interface{}) (bool, error) {
	_, ok := f.entries[key]
	return ok, nil
}

func (f *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	f.entries[key] = value
	return nil
}

func (f *fakeCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.entries, k)
	}
	return nil
}

func (f *fakeCache) DeletePattern(_ context.Context, pattern string) error {
	for k := range f.entries {
		if ok, _ := path.Match(pattern, k); ok {
			delete(f.entries, k)
		}
	}
	return nil
}

func (f *fakeCache) Ping(context.Context) error { return nil }

func TestInvalidateCaches(t *testing.T) {
	ctx := context.Background()
	c := newFakeCache()

	id := uuid.New()
	require.NoError(t, c.Set(ctx, CacheKeyPrefix+id.String(), `{"id":"x"}`, time.Minute))
	require.NoError(t, c.Set(ctx, ListCacheKeyPrefix+"1:20:all", `[]`, time.Minute))
	require.NoError(t, c.Set(ctx, "heading:"+id.String(), `{"name":"cars"}`, time.Minute))

	InvalidateCaches(ctx, c)

	// Cached rows deleted by a cascade must not be served afterwards
	found, err := c.Get(ctx, CacheKeyPrefix+id.String(), nil)
	require.NoError(t, err)
	assert.False(t, found, "single lookup entry should be gone")

	found, err = c.Get(ctx, ListCacheKeyPrefix+"1:20:all", nil)
	require.NoError(t, err)
	assert.False(t, found, "list page entry should be gone")

	// Entries of other domains stay untouched
	found, err = c.Get(ctx, "heading:"+id.String(), nil)
	require.NoError(t, err)
	assert.True(t, found)
}
