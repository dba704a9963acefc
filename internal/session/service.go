package session

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/nattakit-w/shop-recommender-backend/internal/openai"
)

var (
	// ErrInvalidKeyFormat is returned before any network call when the
	// credential fails the superficial format check.
	ErrInvalidKeyFormat = errors.New("invalid API key format")
)

// ConnectFunc verifies a credential against the model API and returns a
// usable client handle.
type ConnectFunc func(apiKey string) (Recommender, error)

// Service manages the session lifecycle: validate the credential format,
// verify it with one round-trip, then keep the resulting handle until the
// session is cleared.
type Service struct {
	store   Store
	connect ConnectFunc
}

func NewService(store Store, connect ConnectFunc) *Service {
	return &Service{store: store, connect: connect}
}

// Create opens a session for the given credential. A repeated Create simply
// stores a new session; last write wins on the handle.
func (s *Service) Create(apiKey string) (Session, error) {
	if !openai.ValidateAPIKey(apiKey) {
		return Session{}, ErrInvalidKeyFormat
	}

	client, err := s.connect(apiKey)
	if err != nil {
		return Session{}, err
	}

	sess := Session{
		ID:        uuid.NewString(),
		Client:    client,
		CreatedAt: time.Now().UTC(),
	}
	s.store.Put(sess)
	return sess, nil
}

// Get returns a live session by ID.
func (s *Service) Get(id string) (Session, bool) {
	return s.store.Get(id)
}

// Clear drops the session and its credential.
func (s *Service) Clear(id string) {
	s.store.Delete(id)
}
