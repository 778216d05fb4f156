package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// EmbeddingCache holds document embeddings keyed by document id so batch
// checks do not re-embed unchanged documents. Entries are invalidated when
// the document is deleted; expiry is a safety net on top of that.
type EmbeddingCache struct {
	cache *cache.Cache
}

func NewEmbeddingCache() *EmbeddingCache {
	// Default expiration of 1 hour, expired items purged every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &EmbeddingCache{
		cache: c,
	}
}

func (c *EmbeddingCache) Set(id uuid.UUID, values []float32) {
	c.cache.Set(id.String(), values, cache.DefaultExpiration)
}

func (c *EmbeddingCache) Get(id uuid.UUID) ([]float32, bool) {
	if x, found := c.cache.Get(id.String()); found {
		return x.([]float32), true
	}
	return nil, false
}

func (c *EmbeddingCache) Delete(id uuid.UUID) {
	c.cache.Delete(id.String())
}
