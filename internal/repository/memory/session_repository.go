package memory

import (
	"time"

	"giftshop-chatbot-be/internal/constant"
	"giftshop-chatbot-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps active conversation sessions in memory. Sessions
// idle out after the TTL; expired items are purged periodically.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	c := cache.New(constant.SessionTTL, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *store.Session) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*store.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.Session), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
