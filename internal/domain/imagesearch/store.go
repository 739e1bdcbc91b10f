package imagesearch

import (
	"context"
	"time"
)

// Store caches successful lookups by normalized query.
type Store interface {
	Get(ctx context.Context, query string) ([]Image, bool, error)
	Save(ctx context.Context, query string, images []Image, ttl time.Duration) error
}
