package config

import (
	"github.com/mrz1836/opsdeck/internal/constants"
	"github.com/mrz1836/opsdeck/internal/errors"
)

// Validate checks the configuration for invalid or inconsistent values.
// It returns an error describing the first validation failure found.
//
// Validation rules:
//   - ViewState backend must be "file" or "redis"
//   - Redis backend requires a redis_url
//   - Display tab, sort field, sort direction, and group key must be
//     valid view enum values
//   - Display width must not be negative
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}

	if err := validateViewStateConfig(&cfg.ViewState); err != nil {
		return err
	}

	return validateDisplayConfig(&cfg.Display)
}

// validateViewStateConfig checks view state persistence settings.
func validateViewStateConfig(cfg *ViewStateConfig) error {
	switch cfg.Backend {
	case ViewStateBackendFile:
		return nil
	case ViewStateBackendRedis:
		if cfg.RedisURL == "" {
			return errors.Wrap(errors.ErrConfigInvalidViewState,
				"viewstate.redis_url is required for the redis backend")
		}
		return nil
	default:
		return errors.Wrapf(errors.ErrConfigInvalidViewState,
			"viewstate.backend must be %q or %q, got %q",
			ViewStateBackendFile, ViewStateBackendRedis, cfg.Backend)
	}
}

// validateDisplayConfig checks default view settings against the closed
// view enums.
func validateDisplayConfig(cfg *DisplayConfig) error {
	if !constants.Tab(cfg.Tab).IsValid() {
		return errors.Wrapf(errors.ErrConfigInvalidDisplay,
			"display.tab %q is not a valid tab", cfg.Tab)
	}
	if !constants.SortField(cfg.SortField).IsValid() {
		return errors.Wrapf(errors.ErrConfigInvalidDisplay,
			"display.sort_field %q is not a valid sort field", cfg.SortField)
	}
	if !constants.SortDirection(cfg.SortDirection).IsValid() {
		return errors.Wrapf(errors.ErrConfigInvalidDisplay,
			"display.sort_direction %q is not a valid sort direction", cfg.SortDirection)
	}
	if !constants.GroupKey(cfg.GroupBy).IsValid() {
		return errors.Wrapf(errors.ErrConfigInvalidDisplay,
			"display.group_by %q is not a valid group key", cfg.GroupBy)
	}
	if cfg.Width < 0 {
		return errors.Wrapf(errors.ErrConfigInvalidDisplay,
			"display.width must not be negative, got %d", cfg.Width)
	}
	return nil
}
