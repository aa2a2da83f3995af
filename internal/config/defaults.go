package config

import (
	"github.com/spf13/viper"

	"github.com/mrz1836/opsdeck/internal/constants"
)

// DefaultConfig returns a Config populated with built-in defaults.
// These values match the defaults registered on the Viper instance.
func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Path: "",
		},
		ViewState: ViewStateConfig{
			Backend: ViewStateBackendFile,
			Path:    "",
		},
		Display: DisplayConfig{
			Tab:           constants.TabTodo.String(),
			SortField:     constants.SortFieldDueDate.String(),
			SortDirection: constants.SortAsc.String(),
			GroupBy:       constants.GroupNone.String(),
			Width:         0,
		},
	}
}

// setDefaults configures all default values on the Viper instance.
// IMPORTANT: Keys must match the YAML tag names exactly for proper mapping.
func setDefaults(v *viper.Viper) {
	// Store defaults
	v.SetDefault("store.path", "")

	// ViewState defaults
	v.SetDefault("viewstate.backend", ViewStateBackendFile)
	v.SetDefault("viewstate.path", "")
	v.SetDefault("viewstate.redis_url", "")

	// Display defaults
	v.SetDefault("display.tab", constants.TabTodo.String())
	v.SetDefault("display.sort_field", constants.SortFieldDueDate.String())
	v.SetDefault("display.sort_direction", constants.SortAsc.String())
	v.SetDefault("display.group_by", constants.GroupNone.String())
	v.SetDefault("display.width", 0)
}
