package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sells-group/mandate-cli/internal/model"
)

// MemoryStore keeps scenarios for the lifetime of the process.
type MemoryStore struct {
	mu    sync.RWMutex
	items []model.StoredScenario
}

// NewMemory returns an empty MemoryStore.
func NewMemory() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Ping(context.Context) error { return nil }

func (m *MemoryStore) Migrate(context.Context) error { return nil }

func (m *MemoryStore) Close() error { return nil }

func (m *MemoryStore) Save(_ context.Context, s model.Scenario) (*model.StoredScenario, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := len(m.items) + 1
	stored := model.StoredScenario{
		Scenario: copyScenario(s),
		ID:       uuid.New().String(),
		Seq:      n,
		Name:     model.ScenarioName(n),
		SavedAt:  time.Now().UTC(),
	}
	m.items = append(m.items, stored)

	out := stored
	out.Scenario = copyScenario(stored.Scenario)
	return &out, nil
}

func (m *MemoryStore) List(context.Context) ([]model.StoredScenario, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.StoredScenario, len(m.items))
	for i, s := range m.items {
		s.Scenario = copyScenario(s.Scenario)
		out[i] = s
	}
	return out, nil
}

func (m *MemoryStore) Count(context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items), nil
}

func (m *MemoryStore) Clear(context.Context) error {
	m.mu.Lock()
	m.items = nil
	m.mu.Unlock()
	return nil
}
