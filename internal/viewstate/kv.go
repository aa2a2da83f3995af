package viewstate

import "context"

// KV is the durable key/value backend collapse state persists through.
// Implementations must be safe for use from a single logical session;
// writes are last-write-wins with no conflict detection.
type KV interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores the value for key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error
}

// MemoryKV is an in-process KV used by tests and as a fallback when no
// durable backend is available. Not persisted anywhere.
type MemoryKV struct {
	values map[string]string
}

// NewMemoryKV creates an empty in-memory KV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string]string)}
}

// Get returns the stored value for key.
func (m *MemoryKV) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

// Set stores the value for key.
func (m *MemoryKV) Set(_ context.Context, key, value string) error {
	m.values[key] = value
	return nil
}

// Ensure MemoryKV implements KV.
var _ KV = (*MemoryKV)(nil)
