// Copyright (c) 2025 Kpacaychuk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Kpacaychuk/type-quiz-bot/models"
)

// Store persists the whole application state as one document.
// Load on an empty backend returns an empty state, never an error.
type Store interface {
	Load(ctx context.Context) (*models.State, error)
	Save(ctx context.Context, state *models.State) error
	Close() error
}

// encodeState serializes the state document
func encodeState(state *models.State) ([]byte, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("failed to encode state: %w", err)
	}
	return data, nil
}

// decodeState parses a state document, accepting the legacy flat layout too
func decodeState(data []byte) (*models.State, error) {
	if len(data) == 0 {
		return models.NewState(), nil
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("failed to decode state: %w", err)
	}
	if isLegacy(probe) {
		return decodeLegacy(probe)
	}

	state := models.NewState()
	if err := json.Unmarshal(data, state); err != nil {
		return nil, fmt.Errorf("failed to decode state: %w", err)
	}
	state.Normalize()
	return state, nil
}
