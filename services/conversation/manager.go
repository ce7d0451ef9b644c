package conversation

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Manager is the in-process registry of live conversations. Each session ID
// maps to exactly one Conversation; idle sessions are swept after the TTL.
type Manager struct {
	deps Deps
	ttl  time.Duration

	mu       sync.RWMutex
	sessions map[string]*Conversation

	stop chan struct{}
	once sync.Once
}

// NewManager returns a Manager sweeping idle sessions in the background.
func NewManager(deps Deps, ttl time.Duration) *Manager {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	m := &Manager{
		deps:     deps,
		ttl:      ttl,
		sessions: make(map[string]*Conversation),
		stop:     make(chan struct{}),
	}
	go m.sweep()
	return m
}

// Create starts a new conversation, runs its initialization, and registers
// it. A fatal initialization failure leaves nothing registered.
func (m *Manager) Create(ctx context.Context) (*Conversation, error) {
	conv := New(m.deps)
	if err := conv.Start(ctx); err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.sessions[conv.ID] = conv
	m.mu.Unlock()
	return conv, nil
}

// Get returns the conversation for a session ID.
func (m *Manager) Get(id string) (*Conversation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	conv, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return conv, nil
}

// Delete drops a session.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Count reports the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Stop terminates the background sweeper.
func (m *Manager) Stop() {
	m.once.Do(func() { close(m.stop) })
}

func (m *Manager) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-m.ttl)
			m.mu.Lock()
			for id, conv := range m.sessions {
				if conv.LastActive().Before(cutoff) {
					delete(m.sessions, id)
					m.deps.Logger.Debug("swept idle conversation session",
						zap.String("sessionId", id))
				}
			}
			m.mu.Unlock()
		}
	}
}
