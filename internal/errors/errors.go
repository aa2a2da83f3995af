// Package errors provides centralized error handling for opsdeck.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrTaskNotFound indicates that the referenced task does not exist
	// in the task store.
	ErrTaskNotFound = errors.New("task not found")

	// ErrUserNotFound indicates that the referenced user does not exist
	// in the assignee directory.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmptyValue indicates that a required value was empty.
	ErrEmptyValue = errors.New("value cannot be empty")

	// ErrInvalidArgument indicates that a provided argument failed validation.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidStatus indicates an unrecognized task status value.
	ErrInvalidStatus = errors.New("invalid task status")

	// ErrInvalidPriority indicates an unrecognized task priority value.
	ErrInvalidPriority = errors.New("invalid task priority")

	// ErrInvalidTab indicates an unrecognized view tab value.
	ErrInvalidTab = errors.New("invalid tab")

	// ErrInvalidSortField indicates an unrecognized sort field value.
	ErrInvalidSortField = errors.New("invalid sort field")

	// ErrInvalidGroupKey indicates an unrecognized group key value.
	ErrInvalidGroupKey = errors.New("invalid group key")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrInvalidExportFormat indicates an unsupported export format was specified.
	ErrInvalidExportFormat = errors.New("invalid export format")

	// ErrInvalidDateRange indicates a malformed due-date filter value.
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrStoreUnavailable indicates the task store could not be opened or reached.
	ErrStoreUnavailable = errors.New("task store unavailable")

	// ErrViewStateUnavailable indicates the durable view-state backend could
	// not be opened or reached. View rendering must continue without it.
	ErrViewStateUnavailable = errors.New("view state store unavailable")

	// ErrViewStateLocked indicates another process holds the view-state
	// write lock.
	ErrViewStateLocked = errors.New("view state file is locked by another process")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalidStore indicates an invalid store configuration value.
	ErrConfigInvalidStore = errors.New("invalid store configuration")

	// ErrConfigInvalidViewState indicates an invalid view-state configuration value.
	ErrConfigInvalidViewState = errors.New("invalid view state configuration")

	// ErrConfigInvalidDisplay indicates an invalid display configuration value.
	ErrConfigInvalidDisplay = errors.New("invalid display configuration")

	// ErrNoFieldsToUpdate indicates an update patch carried no fields.
	ErrNoFieldsToUpdate = errors.New("no fields to update")

	// ErrPromptCanceled indicates the user aborted an interactive prompt.
	ErrPromptCanceled = errors.New("prompt canceled")

	// ErrNoPromptOptions indicates a selection prompt was built with no options.
	ErrNoPromptOptions = errors.New("no prompt options provided")
)
