// Package domain provides shared domain types for the opsdeck console.
// These types are used across all internal packages to ensure consistent data structures.
//
// This package follows strict import rules:
//   - CAN import: internal/constants, internal/errors, standard library
//   - MUST NOT import: any other internal packages
//
// All JSON field names use snake_case to match the backend's wire format.
package domain

import (
	"time"

	"github.com/mrz1836/opsdeck/internal/constants"
)

// Task represents a single unit of work on the board. Tasks form a
// hierarchy through ParentTaskID: the subtask relationship is reconstructed
// by the view engine from the flat collection, never stored as a list.
//
// Example JSON representation:
//
//	{
//	    "id": "0b7f9a2c-6f31-4a8e-9a9f-2d1c5e8b7a40",
//	    "display_id": 42,
//	    "title": "Reconcile courier invoices",
//	    "status": "in_progress",
//	    "priority": "high",
//	    "task_type": "one-off",
//	    "assigned_to": "u-amy",
//	    "due_date": "2026-03-15T00:00:00Z",
//	    "task_order": 0,
//	    "completion_percentage": 40
//	}
type Task struct {
	// ID is the opaque unique identifier for the task.
	ID string `json:"id"`

	// DisplayID is the short numeric identifier shown to users.
	// Zero means the task has no display id yet.
	DisplayID int `json:"display_id,omitempty"`

	// ParentTaskID references another task's ID when this task is a
	// subtask. Empty means top-level. A value that does not resolve to a
	// task in the same collection is treated as top-level by the view
	// engine rather than dropped.
	ParentTaskID string `json:"parent_task_id,omitempty"`

	// Title is the short human-readable name of the task.
	Title string `json:"title"`

	// Description holds the longer markdown body of the task.
	Description string `json:"description,omitempty"`

	// Status is the current lifecycle state.
	// Uses constants.TaskStatus values (pending, in_progress, etc.).
	Status constants.TaskStatus `json:"status"`

	// Priority is the task's priority level (low, medium, high).
	Priority constants.TaskPriority `json:"priority"`

	// Type classifies the task (daily, one-off). The set is open:
	// unknown types pass through the view pipeline unchanged.
	Type constants.TaskType `json:"task_type"`

	// AssignedTo is the user ID of the assignee. Empty means unassigned.
	AssignedTo string `json:"assigned_to,omitempty"`

	// DueDate is when the task is due (nil if no due date).
	DueDate *time.Time `json:"due_date,omitempty"`

	// TaskOrder orders this task among its siblings. Unique within a
	// sibling set but not globally; ties break by collection order.
	TaskOrder int `json:"task_order"`

	// CompletionPercentage is a derived display value, not authoritative.
	CompletionPercentage int `json:"completion_percentage"`

	// CreatedAt is when the task was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the task was last modified.
	UpdatedAt time.Time `json:"updated_at"`
}

// IsTopLevel reports whether the task declares no parent at all.
// Whether a declared parent actually resolves is the view engine's call.
func (t *Task) IsTopLevel() bool {
	return t.ParentTaskID == ""
}

// IsOverdue reports whether the task's due date has passed relative to
// midnight of the given reference day. Tasks without a due date are
// never overdue.
func (t *Task) IsOverdue(now time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return t.DueDate.Before(midnight)
}
