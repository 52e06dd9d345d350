package memory

import (
	"context"
	"sync"

	"storefront-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

// PreferenceRepository is the in-process store used when Redis is not
// reachable. Entries never expire.
type PreferenceRepository struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func NewPreferenceRepository() contract.PreferenceRepository {
	return &PreferenceRepository{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (r *PreferenceRepository) Load(ctx context.Context, owner string) (map[string]bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prefs := map[string]bool{}
	if x, found := r.cache.Get(owner); found {
		for k, v := range x.(map[string]bool) {
			prefs[k] = v
		}
	}
	return prefs, nil
}

func (r *PreferenceRepository) Set(ctx context.Context, owner, key string, value bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prefs := map[string]bool{}
	if x, found := r.cache.Get(owner); found {
		prefs = x.(map[string]bool)
	}
	prefs[key] = value
	r.cache.Set(owner, prefs, cache.NoExpiration)
	return nil
}
