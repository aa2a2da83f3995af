package viewstate

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/mrz1836/opsdeck/internal/constants"
	"github.com/mrz1836/opsdeck/internal/errors"
)

// PrefsStore persists the ViewState itself (sort, grouping, active tab)
// write-through, the same way CollapseStore persists the collapse set.
type PrefsStore struct {
	kv     KV
	key    string
	logger zerolog.Logger
}

// NewPrefsStore creates a store backed by kv under the standard
// namespaced key.
func NewPrefsStore(kv KV, logger zerolog.Logger) *PrefsStore {
	return &PrefsStore{
		kv:     kv,
		key:    constants.ViewPrefsKey,
		logger: logger.With().Str("component", "viewstate").Logger(),
	}
}

// Load returns the persisted view state, normalized. A missing entry or
// unparseable payload yields the defaults; only backend I/O failures are
// returned.
func (s *PrefsStore) Load(ctx context.Context) (ViewState, error) {
	raw, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return Default(), errors.Wrap(err, "failed to load view state")
	}
	if !ok || raw == "" {
		return Default(), nil
	}

	var state ViewState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		s.logger.Warn().Err(err).Msg("view state unparseable, using defaults")
		return Default(), nil
	}
	return state.Normalize(), nil
}

// Save writes the view state through to the durable entry.
func (s *PrefsStore) Save(ctx context.Context, state ViewState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return errors.Wrap(err, "failed to encode view state")
	}
	if err := s.kv.Set(ctx, s.key, string(data)); err != nil {
		return errors.Wrap(err, "failed to save view state")
	}
	return nil
}
