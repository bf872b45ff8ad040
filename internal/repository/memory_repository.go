package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/tabebui/internal/error_values"
	"github.com/limbo/tabebui/pkg/entity"
)

// MemoryRepository keeps encoded blobs in a map, so callers never share
// slices with what is stored.
type MemoryRepository struct {
	mu     sync.RWMutex
	states map[uuid.UUID][]byte
}

func NewMemoryRepo() *MemoryRepository {
	return &MemoryRepository{
		states: make(map[uuid.UUID][]byte),
	}
}

func (mr *MemoryRepository) Load(_ context.Context, userID uuid.UUID) (*entity.ProgressState, error) {
	mr.mu.RLock()
	raw, ok := mr.states[userID]
	mr.mu.RUnlock()
	if !ok {
		return nil, errorvalues.ErrStateNotFound
	}
	return decodeState(raw)
}

func (mr *MemoryRepository) Save(_ context.Context, userID uuid.UUID, state *entity.ProgressState) error {
	raw, err := encodeState(state)
	if err != nil {
		return err
	}
	mr.mu.Lock()
	mr.states[userID] = raw
	mr.mu.Unlock()
	return nil
}
