// Package storage persists the best score across sessions.
package storage

import (
	"errors"
	"sync"
)

var ErrCorrupt = errors.New("best score record is corrupt")

// Store holds a single best-score entry.
type Store interface {
	Load() (int, error)
	Save(best int) error
}

// LoadBest reads the best score and falls back to zero on any failure. The
// error is returned so callers can log it.
func LoadBest(s Store) (int, error) {
	if s == nil {
		return 0, nil
	}
	best, err := s.Load()
	if err != nil || best < 0 {
		return 0, err
	}
	return best, nil
}

type MemoryStore struct {
	best  int
	saves int
	mu    sync.Mutex
}

func NewMemoryStore(best int) *MemoryStore {
	return &MemoryStore{best: best}
}

func (m *MemoryStore) Load() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.best, nil
}

func (m *MemoryStore) Save(best int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.best = best
	m.saves++
	return nil
}

func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
