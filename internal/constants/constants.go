// Package constants provides centralized constant values used throughout opsdeck.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

// Directory and file names used by opsdeck for local state.
const (
	// OpsdeckHome is the hidden directory name where opsdeck stores all its data.
	// This directory is created in the user's home directory.
	OpsdeckHome = ".opsdeck"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"

	// CLILogFileName is the name of the global CLI log file.
	// This file is located in ~/.opsdeck/logs/opsdeck.log
	CLILogFileName = "opsdeck.log"

	// TaskDBFileName is the name of the SQLite database holding tasks and users.
	TaskDBFileName = "tasks.db"

	// ViewStateFileName is the name of the JSON file holding persisted view state
	// when the file-backed key/value store is in use.
	ViewStateFileName = "viewstate.json"
)

// Configuration file names.
const (
	// GlobalConfigName is the name of the global opsdeck configuration file.
	// This file is located in the opsdeck home directory.
	GlobalConfigName = "config.yaml"

	// ProjectConfigDir is the per-project configuration directory.
	ProjectConfigDir = ".opsdeck"
)

// Log rotation settings for the global CLI log file.
const (
	// LogMaxSizeMB is the maximum size of a log file before rotation, in megabytes.
	LogMaxSizeMB = 10

	// LogMaxBackups is the number of rotated log files to keep.
	LogMaxBackups = 3

	// LogMaxAgeDays is the maximum age of a rotated log file, in days.
	LogMaxAgeDays = 30

	// LogCompress controls whether rotated log files are gzip compressed.
	LogCompress = true
)

// Collapse-state persistence keys.
const (
	// CollapsedGroupsKey is the durable key/value entry that stores the set of
	// collapsed group labels. The key is namespaced so it never collides with
	// other opsdeck state stored in the same backend.
	CollapsedGroupsKey = "opsdeck:view:collapsed"

	// ViewPrefsKey is the durable key/value entry that stores the user's
	// sort, grouping, and active tab choices.
	ViewPrefsKey = "opsdeck:view:state"
)

// MissingDisplayID is the sort ordinal assigned to tasks that have no numeric
// display identifier. It sorts after any real display id in ascending order.
const MissingDisplayID = 999999
