package preferences

import (
	"context"
	"encoding/json"
	"slices"
	"sync"

	"github.com/KirkDiggler/atlas-api/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage.
// Values are lost on restart; used when no Redis address is configured.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]json.RawMessage
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]json.RawMessage),
	}
}

// Load reads a stored preference
func (r *InMemoryRepository) Load(_ context.Context, input LoadInput) (*LoadOutput, error) {
	if err := validateSlot(input.ClientID, input.Key); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	value, exists := r.store[GetKey(input.ClientID, input.Key)]
	if !exists {
		return nil, errors.NotFoundf("preference %s for client %s not found", input.Key, input.ClientID)
	}

	// Return a copy to prevent external modification
	return &LoadOutput{Value: slices.Clone(value)}, nil
}

// Save stores a preference
func (r *InMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSlot(input.ClientID, input.Key); err != nil {
		return nil, err
	}
	if err := validateValue(input.Value); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[GetKey(input.ClientID, input.Key)] = slices.Clone(input.Value)

	return &SaveOutput{}, nil
}

// Delete removes a preference
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateSlot(input.ClientID, input.Key); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.store, GetKey(input.ClientID, input.Key))

	return &DeleteOutput{}, nil
}
