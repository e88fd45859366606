// Package preferences provides the storage interface for client preferences.
// Each preference is one JSON document addressed by (client id, key).
package preferences

//go:generate mockgen -destination=mock/mock_repository.go -package=preferencesmock github.com/KirkDiggler/atlas-api/internal/repositories/preferences Repository

import (
	"context"
	"encoding/json"

	"github.com/KirkDiggler/atlas-api/internal/errors"
)

const (
	errClientIDEmpty = "client ID cannot be empty"
	errKeyEmpty      = "preference key cannot be empty"
)

// Repository defines the storage interface for preference values
type Repository interface {
	// Load reads the stored value for a preference
	// Returns errors.InvalidArgument for empty ids
	// Returns errors.NotFound if nothing is stored
	// Returns errors.Internal for storage failures
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)

	// Save replaces the stored value for a preference
	// Returns errors.InvalidArgument for empty ids or a value that is not JSON
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete removes a stored preference. Deleting a missing key succeeds.
	// Returns errors.InvalidArgument for empty ids
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// LoadInput defines the request for loading a preference
type LoadInput struct {
	ClientID string
	Key      string
}

// LoadOutput defines the response for loading a preference
type LoadOutput struct {
	Value json.RawMessage
}

// SaveInput defines the request for saving a preference
type SaveInput struct {
	ClientID string
	Key      string
	Value    json.RawMessage
}

// SaveOutput defines the response for saving a preference
type SaveOutput struct{}

// DeleteInput defines the request for deleting a preference
type DeleteInput struct {
	ClientID string
	Key      string
}

// DeleteOutput defines the response for deleting a preference
type DeleteOutput struct{}

func validateSlot(clientID, key string) error {
	if clientID == "" {
		return errors.InvalidArgument(errClientIDEmpty)
	}
	if key == "" {
		return errors.InvalidArgument(errKeyEmpty)
	}
	return nil
}

func validateValue(value json.RawMessage) error {
	if !json.Valid(value) {
		return errors.InvalidArgument("preference value must be valid JSON")
	}
	return nil
}
