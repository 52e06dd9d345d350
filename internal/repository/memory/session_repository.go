package memory

import (
	"time"

	"storefront-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps bundle views for ttl after their last write,
// purging expired ones every ttl/6.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	if ttl <= 0 {
		ttl = time.Hour
	}
	c := cache.New(ttl, ttl/6)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *store.BundleSession) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*store.BundleSession, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.BundleSession), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
