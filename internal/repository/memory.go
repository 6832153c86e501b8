package repository

import (
	"context"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
)

type memorySession struct {
	session   entity.Session
	expiresAt time.Time
}

type memSession struct {
	mu       sync.Mutex
	sessions map[string]memorySession
	ttl      time.Duration
	now      func() time.Time
}

// NewMemorySessionRepository keeps sessions in process memory. Expired
// sessions are dropped lazily on read and on write.
func NewMemorySessionRepository(ttl time.Duration) SessionRepository {
	return &memSession{
		sessions: make(map[string]memorySession),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (that *memSession) CreateOrUpdate(_ context.Context, session *entity.Session) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	now := that.now()
	that.evictLocked(now)

	stored := memorySession{session: cloneSession(session)}
	if that.ttl > 0 {
		stored.expiresAt = now.Add(that.ttl)
	}
	that.sessions[session.ID] = stored

	return nil
}

func (that *memSession) GetByID(_ context.Context, id string) (*entity.Session, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	stored, ok := that.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	if that.isExpired(stored, that.now()) {
		delete(that.sessions, id)
		return nil, ErrSessionNotFound
	}

	session := cloneSession(&stored.session)

	return &session, nil
}

func (that *memSession) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.sessions[id]; !ok {
		return ErrSessionNotFound
	}

	delete(that.sessions, id)

	return nil
}

func (that *memSession) evictLocked(now time.Time) {
	for id, stored := range that.sessions {
		if that.isExpired(stored, now) {
			delete(that.sessions, id)
		}
	}
}

func (that *memSession) isExpired(stored memorySession, now time.Time) bool {
	return !stored.expiresAt.IsZero() && !now.Before(stored.expiresAt)
}

// cloneSession copies the history so callers never share snapshots with the store.
func cloneSession(session *entity.Session) entity.Session {
	clone := *session
	clone.History = append([]entity.Board(nil), session.History...)

	return clone
}
