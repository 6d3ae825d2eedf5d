package announcement

import (
	"context"

	"adboard-backend/pkg/cache"
)

// Cache key prefixes for announcement entries. Exported because
// cascade deletes in the heading and author repositories also remove
// announcement rows and must drop the same keys.
const (
	CacheKeyPrefix     = "announcement:"
	ListCacheKeyPrefix = "announcements:list:"
)

// InvalidateCaches drops every cached announcement entry, single
// lookups and list pages alike. Call it after any write that can
// touch rows beyond one known id.
func InvalidateCaches(ctx context.Context, c cache.Cache) {
	c.DeletePattern(ctx, CacheKeyPrefix+"*")
	c.DeletePattern(ctx, ListCacheKeyPrefix+"*")
}
