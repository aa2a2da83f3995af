package viewstate

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/rs/zerolog"

	"github.com/mrz1836/opsdeck/internal/constants"
	"github.com/mrz1836/opsdeck/internal/errors"
)

// CollapseStore tracks which group labels the user has collapsed and
// persists the set write-through on every toggle. Keys are raw group
// labels, so a status label and an assignee name that happen to coincide
// share collapse state. That collision is accepted; the labels are
// display strings, not identifiers.
type CollapseStore struct {
	kv        KV
	key       string
	collapsed map[string]bool
	logger    zerolog.Logger
}

// NewCollapseStore creates a store backed by kv under the standard
// namespaced key. Call Load before first use.
func NewCollapseStore(kv KV, logger zerolog.Logger) *CollapseStore {
	return &CollapseStore{
		kv:        kv,
		key:       constants.CollapsedGroupsKey,
		collapsed: make(map[string]bool),
		logger:    logger.With().Str("component", "viewstate").Logger(),
	}
}

// Load seeds the in-memory set from the durable entry. A missing entry or
// unparseable payload leaves the set empty: rendering must never be
// blocked by bad persisted state, so parse failures are logged and
// swallowed. Only backend I/O failures are returned.
func (s *CollapseStore) Load(ctx context.Context) error {
	raw, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return errors.Wrap(err, "failed to load collapse state")
	}
	s.collapsed = make(map[string]bool)
	if !ok || raw == "" {
		return nil
	}

	var labels []string
	if err := json.Unmarshal([]byte(raw), &labels); err != nil {
		s.logger.Warn().Err(err).Msg("collapse state unparseable, resetting to empty")
		return nil
	}
	for _, label := range labels {
		s.collapsed[label] = true
	}
	return nil
}

// IsCollapsed reports whether the group label is currently collapsed.
func (s *CollapseStore) IsCollapsed(label string) bool {
	return s.collapsed[label]
}

// Toggle flips the collapse state for the label and immediately writes
// the full set back to the durable entry. Returns the new state.
func (s *CollapseStore) Toggle(ctx context.Context, label string) (bool, error) {
	if s.collapsed[label] {
		delete(s.collapsed, label)
	} else {
		s.collapsed[label] = true
	}
	if err := s.save(ctx); err != nil {
		return s.collapsed[label], err
	}
	return s.collapsed[label], nil
}

// Labels returns the collapsed labels in deterministic order.
func (s *CollapseStore) Labels() []string {
	out := make([]string, 0, len(s.collapsed))
	for label := range s.collapsed {
		out = append(out, label)
	}
	sort.Strings(out)
	return out
}

// save serializes the full set to the durable entry (write-through,
// no batching).
func (s *CollapseStore) save(ctx context.Context) error {
	data, err := json.Marshal(s.Labels())
	if err != nil {
		return errors.Wrap(err, "failed to encode collapse state")
	}
	if err := s.kv.Set(ctx, s.key, string(data)); err != nil {
		return errors.Wrap(err, "failed to save collapse state")
	}
	return nil
}
