package service

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Aayush01055/File-tracking-system/internal/core/domain"
)

type stubKV struct {
	data     map[string]string
	getErr   error
	setErr   error
	delErr   error
	delCalls int
}

func newStubKV() *stubKV {
	return &stubKV{data: make(map[string]string)}
}

func (s *stubKV) Get(key string) (string, bool, error) {
	if s.getErr != nil {
		return "", false, s.getErr
	}
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *stubKV) SetAll(values map[string]string) error {
	if s.setErr != nil {
		return s.setErr
	}
	for k, v := range values {
		s.data[k] = v
	}
	return nil
}

func (s *stubKV) DeleteAll(keys ...string) error {
	s.delCalls++
	if s.delErr != nil {
		return s.delErr
	}
	for _, k := range keys {
		delete(s.data, k)
	}
	return nil
}

func testIdentity() domain.Session {
	return domain.Session{UserID: "u-1", Username: "alice", Role: domain.RoleOfficer}
}

func TestSessionService_LoginThenRestore(t *testing.T) {
	kv := newStubKV()
	svc := NewSessionService(kv, zerolog.Nop())

	svc.Login(testIdentity())

	// Simulate a process restart: a fresh service over the same storage.
	restored := NewSessionService(kv, zerolog.Nop()).Restore()
	if restored != testIdentity() {
		t.Fatalf("restored session %+v, want %+v", restored, testIdentity())
	}
}

func TestSessionService_RestorePartialMirror(t *testing.T) {
	partials := []map[string]string{
		{},
		{"userId": "u-1"},
		{"username": "alice"},
		{"role": "officer"},
		{"userId": "u-1", "username": "alice"},
		{"userId": "u-1", "role": "officer"},
		{"username": "alice", "role": "officer"},
	}
	for _, keys := range partials {
		kv := newStubKV()
		kv.data = keys
		svc := NewSessionService(kv, zerolog.Nop())
		if got := svc.Restore(); !got.IsZero() {
			t.Fatalf("restore with keys %v returned %+v, want empty", keys, got)
		}
		if !svc.Current().IsZero() {
			t.Fatalf("current session populated after partial restore %v", keys)
		}
	}
}

func TestSessionService_RestoreReadError(t *testing.T) {
	kv := newStubKV()
	kv.data = map[string]string{"userId": "u-1", "username": "alice", "role": "admin"}
	kv.getErr = errors.New("storage unavailable")
	svc := NewSessionService(kv, zerolog.Nop())

	if got := svc.Restore(); !got.IsZero() {
		t.Fatalf("restore with failing storage returned %+v, want empty", got)
	}
}

func TestSessionService_LogoutClearsEverything(t *testing.T) {
	kv := newStubKV()
	svc := NewSessionService(kv, zerolog.Nop())

	svc.Login(testIdentity())
	svc.Logout()

	if !svc.Current().IsZero() {
		t.Fatalf("current session not empty after logout: %+v", svc.Current())
	}
	if len(kv.data) != 0 {
		t.Fatalf("stored keys survived logout: %v", kv.data)
	}
	if got := svc.Restore(); !got.IsZero() {
		t.Fatalf("restore after logout returned %+v, want empty", got)
	}
}

func TestSessionService_LogoutWithAbsentKeys(t *testing.T) {
	svc := NewSessionService(newStubKV(), zerolog.Nop())
	svc.Logout() // must not fail with nothing stored
	if !svc.Current().IsZero() {
		t.Fatalf("expected empty session")
	}
}

func TestSessionService_PersistFailureKeepsMemoryAuthoritative(t *testing.T) {
	kv := newStubKV()
	kv.setErr = errors.New("quota exceeded")
	svc := NewSessionService(kv, zerolog.Nop())

	svc.Login(testIdentity())

	if svc.Current() != testIdentity() {
		t.Fatalf("in-memory session lost on persist failure: %+v", svc.Current())
	}
	if kv.delCalls == 0 {
		t.Fatalf("expected stored keys to be cleared after failed persist")
	}
	if len(kv.data) != 0 {
		t.Fatalf("stored keys left behind after failed persist: %v", kv.data)
	}
}

func TestSessionService_PersistAndClearFailure(t *testing.T) {
	kv := newStubKV()
	kv.setErr = errors.New("quota exceeded")
	kv.delErr = errors.New("still broken")
	svc := NewSessionService(kv, zerolog.Nop())

	svc.Login(testIdentity()) // both failures are swallowed
	if svc.Current() != testIdentity() {
		t.Fatalf("in-memory session lost: %+v", svc.Current())
	}
}

func TestSessionService_GenerationAdvances(t *testing.T) {
	svc := NewSessionService(newStubKV(), zerolog.Nop())

	g0 := svc.Generation()
	svc.Login(testIdentity())
	g1 := svc.Generation()
	svc.Logout()
	g2 := svc.Generation()

	if g1 <= g0 || g2 <= g1 {
		t.Fatalf("generation did not advance: %d %d %d", g0, g1, g2)
	}
}

func TestSessionService_OnChange(t *testing.T) {
	svc := NewSessionService(newStubKV(), zerolog.Nop())

	var calls int
	svc.OnChange(func() { calls++ })

	svc.Login(testIdentity())
	svc.Logout()

	if calls != 2 {
		t.Fatalf("expected 2 change callbacks, got %d", calls)
	}
}
