package imagestore

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/yanqian/sunside/internal/domain/imagesearch"
)

type entry struct {
	images    []imagesearch.Image
	expiresAt time.Time
}

// MemoryStore is a bounded in-process image cache.
type MemoryStore struct {
	cache *expirable.LRU[string, entry]
}

// NewMemoryStore keeps at most size queries, each for no longer than maxTTL.
func NewMemoryStore(size int, maxTTL time.Duration) *MemoryStore {
	if size <= 0 {
		size = 256
	}
	return &MemoryStore{cache: expirable.NewLRU[string, entry](size, nil, maxTTL)}
}

// Get implements imagesearch.Store.
func (s *MemoryStore) Get(_ context.Context, query string) ([]imagesearch.Image, bool, error) {
	e, ok := s.cache.Get(query)
	if !ok {
		return nil, false, nil
	}
	if !e.expiresAt.IsZero() && e.expiresAt.Before(time.Now()) {
		s.cache.Remove(query)
		return nil, false, nil
	}
	out := make([]imagesearch.Image, len(e.images))
	copy(out, e.images)
	return out, true, nil
}

// Save implements imagesearch.Store. A non-positive ttl falls back to the cache bound.
func (s *MemoryStore) Save(_ context.Context, query string, images []imagesearch.Image, ttl time.Duration) error {
	e := entry{images: make([]imagesearch.Image, len(images))}
	copy(e.images, images)
	if ttl > 0 {
		e.expiresAt = time.Now().Add(ttl)
	}
	s.cache.Add(query, e)
	return nil
}

var _ imagesearch.Store = (*MemoryStore)(nil)
