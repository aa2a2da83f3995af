// Package viewstate owns the user's durable view choices: sort key and
// direction, grouping mode, active tab, and the set of collapsed groups.
// Task data is never persisted here; only how the user looks at it.
//
// Collapse state survives across sessions through a narrow key/value
// interface so tests run against an in-memory map while production uses
// the file-backed or Redis-backed store.
package viewstate

import (
	"github.com/mrz1836/opsdeck/internal/constants"
)

// ViewState is the user's current view configuration. It is created with
// defaults on first load and mutated by user interaction; it has no expiry.
type ViewState struct {
	// SortField orders the task list.
	SortField constants.SortField `json:"sort_field"`

	// SortDirection is asc or desc.
	SortDirection constants.SortDirection `json:"sort_direction"`

	// GroupBy buckets top-level tasks for display.
	GroupBy constants.GroupKey `json:"group_by"`

	// ActiveTab is the coarse status-based view filter, independent of
	// GroupBy.
	ActiveTab constants.Tab `json:"active_tab"`
}

// Default returns the view state used before the user has made any choice.
func Default() ViewState {
	return ViewState{
		SortField:     constants.SortFieldDueDate,
		SortDirection: constants.SortAsc,
		GroupBy:       constants.GroupNone,
		ActiveTab:     constants.TabTodo,
	}
}

// Normalize replaces unrecognized values with defaults so a stale or
// hand-edited persisted state never breaks rendering.
func (v ViewState) Normalize() ViewState {
	d := Default()
	if !v.SortField.IsValid() {
		v.SortField = d.SortField
	}
	if !v.SortDirection.IsValid() {
		v.SortDirection = d.SortDirection
	}
	if !v.GroupBy.IsValid() {
		v.GroupBy = d.GroupBy
	}
	if !v.ActiveTab.IsValid() {
		v.ActiveTab = d.ActiveTab
	}
	return v
}
