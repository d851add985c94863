package session

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-CarWash/internal/domain"
)

// MemoryStore хранит сессии в памяти процесса.
// Истекшие записи удаляются лениво при чтении и при вызове Cleanup.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
	now      Clock
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore создает пустое хранилище
func NewMemoryStore() *MemoryStore {
	return NewMemoryStoreWithClock(time.Now)
}

// NewMemoryStoreWithClock создает хранилище с заданным источником времени
func NewMemoryStoreWithClock(now Clock) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]domain.Session),
		now:      now,
	}
}

func (m *MemoryStore) Get(_ context.Context, id string) (*domain.Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}
	if s.IsExpired(m.now()) {
		m.mu.Lock()
		delete(m.sessions, id)
		m.mu.Unlock()
		return nil, ErrSessionNotFound
	}

	return &s, nil
}

// Save сохраняет копию сессии. ttl <= 0 означает сессию без срока.
func (m *MemoryStore) Save(_ context.Context, s *domain.Session, ttl time.Duration) error {
	stored := *s
	if ttl > 0 {
		stored.ExpiresAt = m.now().Add(ttl)
	}

	m.mu.Lock()
	m.sessions[s.ID] = stored
	m.mu.Unlock()

	s.ExpiresAt = stored.ExpiresAt
	return nil
}

// Delete удаляет сессию; отсутствие сессии не ошибка
func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
	return nil
}

// Cleanup удаляет все истекшие сессии и возвращает их количество
func (m *MemoryStore) Cleanup() int {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, s := range m.sessions {
		if s.IsExpired(now) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// RunCleanup периодически вызывает Cleanup, пока не закрыт stop
func (m *MemoryStore) RunCleanup(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.Cleanup()
		case <-stop:
			return
		}
	}
}
