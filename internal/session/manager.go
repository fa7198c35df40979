package session

import (
	"sync"

	"app/internal/engine"
	repo "app/internal/repository"
)

// Manager はユーザーごとのエンジンを束ねる。
// ストアは起動時に1回だけ注入し、エンジン側からの取り直しはしない。
type Manager struct {
	store repo.RemoteCartStore

	mu      sync.Mutex
	engines map[string]*engine.Engine
}

// DI
func NewManager(store repo.RemoteCartStore) *Manager {
	return &Manager{
		store:   store,
		engines: make(map[string]*engine.Engine),
	}
}

// Engine は該当ユーザーのエンジンを返す。無ければ作る。
func (m *Manager) Engine(userID string) (*engine.Engine, error) {
	if userID == "" {
		return nil, engine.ErrUnauthenticated
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.engines[userID]
	if !ok {
		e = engine.New(userID, m.store)
		m.engines[userID] = e
	}
	return e, nil
}

// Drop はセッション破棄。ログアウトで呼ばれる。
func (m *Manager) Drop(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.engines, userID)
}
