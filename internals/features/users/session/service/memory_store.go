package service

import (
	"context"
	"sync"
	"time"

	"laporkampus_backend/internals/features/users/session/model"
)

// MemoryStore dipakai kalau DB tidak dikonfigurasi. Isinya hilang saat proses restart.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*model.UserSessionModel
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*model.UserSessionModel)}
}

func (m *MemoryStore) Load(_ context.Context, sid string) (*model.UserSessionModel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sid]
	if !ok {
		return nil, ErrNotFound
	}
	return clone(s), nil
}

func (m *MemoryStore) Save(_ context.Context, s *model.UserSessionModel) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := clone(s)
	now := time.Now()
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = now
	}
	cp.UpdatedAt = now
	m.sessions[s.SessionID] = cp
	return nil
}

func (m *MemoryStore) Update(_ context.Context, sid string, fn func(s *model.UserSessionModel) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.sessions[sid]
	if !ok {
		return ErrNotFound
	}
	next := clone(cur)
	if err := fn(next); err != nil {
		return err
	}
	next.SessionID = sid
	next.UpdatedAt = time.Now()
	m.sessions[sid] = next
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, sid string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sid)
	return nil
}

func (m *MemoryStore) DeleteExpired(_ context.Context, before time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for sid, s := range m.sessions {
		if s.TokenExpiration.Before(before) {
			delete(m.sessions, sid)
			n++
		}
	}
	return n, nil
}
