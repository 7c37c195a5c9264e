package memory

import (
	"fmt"
	"time"

	"matchfeed-be/internal/entity"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// CompatibilityCache keeps hot pair summaries in process memory so
// repeated profile views skip the database.
type CompatibilityCache struct {
	cache *cache.Cache
}

func NewCompatibilityCache() *CompatibilityCache {
	// Default expiration 5 minutes, purge sweep every 10 minutes
	c := cache.New(5*time.Minute, 10*time.Minute)
	return &CompatibilityCache{
		cache: c,
	}
}

func pairKey(viewerId, targetId uuid.UUID) string {
	return fmt.Sprintf("%s:%s", viewerId, targetId)
}

func (r *CompatibilityCache) Save(summary *entity.CompatibilitySummary) {
	r.cache.Set(pairKey(summary.ViewerId, summary.TargetId), summary, cache.DefaultExpiration)
}

func (r *CompatibilityCache) Get(viewerId, targetId uuid.UUID) (*entity.CompatibilitySummary, bool) {
	if x, found := r.cache.Get(pairKey(viewerId, targetId)); found {
		return x.(*entity.CompatibilitySummary), true
	}
	return nil, false
}

func (r *CompatibilityCache) Invalidate(viewerId, targetId uuid.UUID) {
	r.cache.Delete(pairKey(viewerId, targetId))
}

func (r *CompatibilityCache) InvalidateAllFor(userId uuid.UUID) {
	for key := range r.cache.Items() {
		if len(key) >= 36 && (key[:36] == userId.String() || key[37:] == userId.String()) {
			r.cache.Delete(key)
		}
	}
}
