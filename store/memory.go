// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"slices"
	"sync"

	"github.com/danielhkuo/secret-santa/models"
)

// MemoryStore keeps participants in memory. Ids start at 1 and are
// never reused.
type MemoryStore struct {
	mu           sync.RWMutex
	nextID       int64
	participants []models.Participant
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

func (m *MemoryStore) ListParticipants(ctx context.Context) ([]models.Participant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Participant, len(m.participants))
	copy(out, m.participants)
	return out, nil
}

func (m *MemoryStore) AddParticipant(ctx context.Context, name string) (models.Participant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := models.Participant{ID: m.nextID, Name: name}
	m.nextID++
	m.participants = append(m.participants, p)
	return p, nil
}

func (m *MemoryStore) DeleteParticipant(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := slices.IndexFunc(m.participants, func(p models.Participant) bool {
		return p.ID == id
	})
	if i < 0 {
		return ErrNotFound
	}
	m.participants = slices.Delete(m.participants, i, i+1)
	return nil
}
