// Package config provides configuration management for opsdeck with layered
// precedence.
//
// Configuration sources are loaded in the following order (highest precedence first):
//  1. CLI flags (passed via LoadWithOverrides)
//  2. Environment variables (OPSDECK_* prefix)
//  3. Project config (.opsdeck/config.yaml)
//  4. Global config (~/.opsdeck/config.yaml)
//  5. Built-in defaults
//
// Each higher level completely overrides the lower level for the same key.
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import internal/domain or other internal packages.
package config

// Config is the root configuration structure for opsdeck.
type Config struct {
	// Store contains settings for the task database.
	Store StoreConfig `yaml:"store" mapstructure:"store"`

	// ViewState contains settings for durable view state (collapse sets
	// and the saved sort and grouping).
	ViewState ViewStateConfig `yaml:"viewstate" mapstructure:"viewstate"`

	// Display contains the default board view settings.
	Display DisplayConfig `yaml:"display" mapstructure:"display"`
}

// StoreConfig contains settings for the task database.
type StoreConfig struct {
	// Path is the SQLite database file. Empty means the default
	// ~/.opsdeck/tasks.db location.
	Path string `yaml:"path" mapstructure:"path"`
}

// ViewState backend names.
const (
	// ViewStateBackendFile persists view state to a JSON file under the
	// opsdeck home directory.
	ViewStateBackendFile = "file"

	// ViewStateBackendRedis persists view state to Redis so several
	// terminals share one collapse set.
	ViewStateBackendRedis = "redis"
)

// ViewStateConfig contains settings for durable view state.
type ViewStateConfig struct {
	// Backend selects the key/value store: "file" or "redis".
	// Default: "file"
	Backend string `yaml:"backend" mapstructure:"backend"`

	// Path is the state file location for the file backend. Empty means
	// the default ~/.opsdeck/viewstate.json location.
	Path string `yaml:"path" mapstructure:"path"`

	// RedisURL is the connection URL for the redis backend, e.g.
	// redis://localhost:6379. Required when Backend is "redis".
	// The URL may carry credentials; it is redacted before logging.
	RedisURL string `yaml:"redis_url" mapstructure:"redis_url"`
}

// DisplayConfig contains the default board view settings. Each value is
// validated against the closed view enums; the persisted view state can
// override all of them per user.
type DisplayConfig struct {
	// Tab is the tab shown when the board opens.
	// Default: "todo"
	Tab string `yaml:"tab" mapstructure:"tab"`

	// SortField is the initial sort column.
	// Default: "due_date"
	SortField string `yaml:"sort_field" mapstructure:"sort_field"`

	// SortDirection is the initial sort direction.
	// Default: "asc"
	SortDirection string `yaml:"sort_direction" mapstructure:"sort_direction"`

	// GroupBy is the initial grouping mode.
	// Default: "none"
	GroupBy string `yaml:"group_by" mapstructure:"group_by"`

	// Width caps table rendering width in columns. Zero means use the
	// terminal width.
	Width int `yaml:"width" mapstructure:"width"`
}
