// Package preferences keeps per-client UI state: marked map markers, used
// codes, sidebar layout and the selected map.
//
// Values live in a Repository as JSON documents; every read goes to the
// repository, so writes from other processes and expiry are always visible.
// The Store serializes read-modify-write operations per client. A failed write
// is logged, a failed or malformed plain read falls back to the preference
// default, and a failed read inside a toggle aborts the toggle.
package preferences

import (
	"context"
	"encoding/json"
	"hash/fnv"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/atlas-api/internal/errors"
	prefrepo "github.com/KirkDiggler/atlas-api/internal/repositories/preferences"
)

// StoreConfig configures a Store
type StoreConfig struct {
	Repository prefrepo.Repository
}

// Validate validates the StoreConfig
func (cfg *StoreConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if cfg.Repository == nil {
		vb.RequiredField("Repository")
	}
	return vb.Build()
}

// lockStripes bounds the number of client locks
const lockStripes = 64

// Store reads and writes preferences through a Repository and serializes
// read-modify-write updates per client
type Store struct {
	repo  prefrepo.Repository
	locks [lockStripes]sync.Mutex
}

// NewStore creates a Store
func NewStore(cfg *StoreConfig) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Store{
		repo: cfg.Repository,
	}, nil
}

// Load returns the raw value for a preference and whether one is stored.
// A missing value is not an error; any other storage failure is returned.
func (s *Store) Load(ctx context.Context, clientID, key string) (json.RawMessage, bool, error) {
	output, err := s.repo.Load(ctx, prefrepo.LoadInput{ClientID: clientID, Key: key})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, false, nil
		}
		return nil, false, errors.WrapWithCode(err, errors.CodeInternal, "failed to load preference "+key)
	}

	return output.Value, true, nil
}

// Save persists value. Persistence failures are logged, never returned.
func (s *Store) Save(ctx context.Context, clientID, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		slog.ErrorContext(ctx, "failed to encode preference",
			"client_id", clientID,
			"key", key,
			"error", err)
		return
	}

	if _, err := s.repo.Save(ctx, prefrepo.SaveInput{ClientID: clientID, Key: key, Value: data}); err != nil {
		slog.WarnContext(ctx, "failed to persist preference",
			"client_id", clientID,
			"key", key,
			"error", err)
	}
}

// Delete drops a preference so reads return its default again
func (s *Store) Delete(ctx context.Context, clientID, key string) {
	if _, err := s.repo.Delete(ctx, prefrepo.DeleteInput{ClientID: clientID, Key: key}); err != nil {
		slog.WarnContext(ctx, "failed to delete preference",
			"client_id", clientID,
			"key", key,
			"error", err)
	}
}

// Locked runs fn while holding the client's lock. Read-modify-write updates
// for one client never interleave within a process.
func (s *Store) Locked(clientID string, fn func()) {
	h := fnv.New32a()
	_, _ = h.Write([]byte(clientID))
	lock := &s.locks[h.Sum32()%lockStripes]

	lock.Lock()
	defer lock.Unlock()
	fn()
}
