package service

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/Aayush01055/File-tracking-system/internal/core/domain"
	"github.com/Aayush01055/File-tracking-system/internal/core/ports"
)

// Durable storage keys mirroring the session. No other component reads or
// writes these.
const (
	keyUserID   = "userId"
	keyUsername = "username"
	keyRole     = "role"
)

var sessionKeys = []string{keyUserID, keyUsername, keyRole}

// SessionService implements ports.SessionStore over a durable key-value
// store. Storage failures are swallowed: the in-memory session stays
// authoritative for the current process, and on a partial persist the store
// is cleared so a later Restore can never observe a mixed identity.
type SessionService struct {
	store  ports.KeyValueStore
	logger zerolog.Logger

	mu       sync.Mutex
	current  domain.Session
	gen      uint64
	onChange func()
}

func NewSessionService(store ports.KeyValueStore, logger zerolog.Logger) *SessionService {
	return &SessionService{store: store, logger: logger}
}

// OnChange registers the single subscription point invoked after every
// Login and Logout. Intended for the shell controller.
func (s *SessionService) OnChange(fn func()) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// Restore reads the three mirrored keys. Only a complete mirror yields a
// session; one or two stray keys are treated as no session at all.
func (s *SessionService) Restore() domain.Session {
	var sess domain.Session
	fields := map[string]*string{
		keyUserID:   &sess.UserID,
		keyUsername: &sess.Username,
		keyRole:     &sess.Role,
	}
	for key, dst := range fields {
		val, ok, err := s.store.Get(key)
		if err != nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("session restore read failed")
			return domain.Session{}
		}
		if !ok {
			return domain.Session{}
		}
		*dst = val
	}
	if !sess.Complete() {
		return domain.Session{}
	}

	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()
	return sess
}

// Login replaces the current session with identity and mirrors it into
// storage. If the mirror write fails the three keys are cleared so storage
// holds either the full new identity or nothing.
func (s *SessionService) Login(identity domain.Session) {
	s.mu.Lock()
	s.current = identity
	s.gen++
	fn := s.onChange
	s.mu.Unlock()

	if err := s.store.SetAll(map[string]string{
		keyUserID:   identity.UserID,
		keyUsername: identity.Username,
		keyRole:     identity.Role,
	}); err != nil {
		s.logger.Warn().Err(err).Msg("session persist failed; clearing stored keys")
		if derr := s.store.DeleteAll(sessionKeys...); derr != nil {
			s.logger.Warn().Err(derr).Msg("clearing stored session keys failed")
		}
	}

	if fn != nil {
		fn()
	}
}

// Logout resets the session to empty and clears the mirror. Succeeds even
// when the keys are already absent.
func (s *SessionService) Logout() {
	s.mu.Lock()
	s.current = domain.Session{}
	s.gen++
	fn := s.onChange
	s.mu.Unlock()

	if err := s.store.DeleteAll(sessionKeys...); err != nil {
		s.logger.Warn().Err(err).Msg("clearing stored session keys failed")
	}

	if fn != nil {
		fn()
	}
}

func (s *SessionService) Current() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *SessionService) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}
