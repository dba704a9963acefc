package session

import (
	"context"
	"sync"
	"time"

	"github.com/nattakit-w/shop-recommender-backend/internal/recommendation"
)

// Recommender produces category recommendations for a free-text interest.
// The verified API client satisfies this; tests substitute stubs.
type Recommender interface {
	Recommend(ctx context.Context, interest string) ([]recommendation.CategoryRecommendation, error)
}

// Session binds one verified client handle to one user session. The raw
// credential lives only inside the client and is dropped with the session.
type Session struct {
	ID        string
	Client    Recommender
	CreatedAt time.Time
}

// Store holds live sessions.
type Store interface {
	Put(s Session)
	Get(id string) (Session, bool)
	Delete(id string)
}

// InMemoryStore keeps sessions in process memory. Nothing survives a
// restart; clients simply open a new session.
type InMemoryStore struct {
	mu      sync.RWMutex
	storage map[string]Session
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{storage: make(map[string]Session)}
}

func (s *InMemoryStore) Put(sess Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.storage[sess.ID] = sess
}

func (s *InMemoryStore) Get(id string) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.storage[id]
	return sess, ok
}

func (s *InMemoryStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.storage, id)
}
