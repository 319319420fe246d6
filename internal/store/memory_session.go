package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-recovery-companion/models"
)

type memorySessionRepository struct {
	mu      sync.RWMutex
	session models.Session
	user    *models.User
}

// NewMemorySessionRepository returns a [SessionRepository] that keeps the
// session in process memory. Nothing survives a restart.
func NewMemorySessionRepository() SessionRepository {
	return &memorySessionRepository{}
}

func (m *memorySessionRepository) LoadTokens(context.Context) (models.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.session.IsEmpty() {
		return models.Session{}, ErrSessionNotFound
	}
	return m.session, nil
}

func (m *memorySessionRepository) SaveTokens(_ context.Context, session models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.session = session
	return nil
}

func (m *memorySessionRepository) ClearTokens(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.session = models.Session{}
	return nil
}

func (m *memorySessionRepository) LoadUser(context.Context) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.user == nil {
		return models.User{}, ErrSessionNotFound
	}
	return *m.user, nil
}

func (m *memorySessionRepository) SaveUser(_ context.Context, user models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.user = &user
	return nil
}

func (m *memorySessionRepository) ClearUser(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.user = nil
	return nil
}
