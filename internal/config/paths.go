package config

import (
	"os"
	"path/filepath"

	"github.com/mrz1836/opsdeck/internal/constants"
	"github.com/mrz1836/opsdeck/internal/errors"
)

// HomeDir returns the opsdeck home directory, typically ~/.opsdeck.
// The OPSDECK_HOME environment variable overrides the default.
func HomeDir() (string, error) {
	if home := os.Getenv("OPSDECK_HOME"); home != "" {
		return home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}
	return filepath.Join(home, constants.OpsdeckHome), nil
}

// GlobalConfigPath returns the full path to the global configuration file,
// typically ~/.opsdeck/config.yaml.
func GlobalConfigPath() (string, error) {
	dir, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, constants.GlobalConfigName), nil
}

// ProjectConfigPath returns the relative path to the project configuration
// file. This is always .opsdeck/config.yaml relative to the working
// directory.
func ProjectConfigPath() string {
	return filepath.Join(constants.ProjectConfigDir, constants.GlobalConfigName)
}

// DatabasePath resolves the task database location: the configured path if
// set, otherwise ~/.opsdeck/tasks.db.
func (c *Config) DatabasePath() (string, error) {
	if c.Store.Path != "" {
		return c.Store.Path, nil
	}
	dir, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, constants.TaskDBFileName), nil
}

// ViewStatePath resolves the view state file location for the file backend:
// the configured path if set, otherwise ~/.opsdeck/viewstate.json.
func (c *Config) ViewStatePath() (string, error) {
	if c.ViewState.Path != "" {
		return c.ViewState.Path, nil
	}
	dir, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, constants.ViewStateFileName), nil
}
