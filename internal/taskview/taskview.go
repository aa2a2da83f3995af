// Package taskview implements the task board view engine: filtering,
// stable sorting, parent/child hierarchy reconstruction, and ordered
// grouping of a flat task collection into the structure the console renders.
//
// Every function in this package is a pure, total function of its inputs:
// no I/O, no panics for well-typed input, and deterministic output.
// Re-running the pipeline on an unchanged input yields an identical result,
// which the caller relies on when it recomputes the view after every change.
package taskview

import (
	"strings"

	"github.com/mrz1836/opsdeck/internal/domain"
)

// Directory resolves assignee user IDs to display names for sorting and
// grouping. A nil Directory is valid and resolves nothing.
type Directory struct {
	users map[string]*domain.User
}

// NewDirectory builds a Directory from the assignee list.
func NewDirectory(users []*domain.User) *Directory {
	d := &Directory{users: make(map[string]*domain.User, len(users))}
	for _, u := range users {
		if u == nil || u.ID == "" {
			continue
		}
		d.users[u.ID] = u
	}
	return d
}

// User returns the directory entry for the given ID.
func (d *Directory) User(id string) (*domain.User, bool) {
	if d == nil || id == "" {
		return nil, false
	}
	u, ok := d.users[id]
	return u, ok
}

// DisplayName returns the full name for the given user ID, or "" when the
// ID is empty or unknown. Missing names sort first ascending, matching the
// empty-string rule for all string sort keys.
func (d *Directory) DisplayName(id string) string {
	u, ok := d.User(id)
	if !ok {
		return ""
	}
	return u.FullName
}

// Node is a task with its reconstructed subtasks attached. The hierarchy
// is rebuilt from ParentTaskID references on every pipeline run; it is
// never stored.
type Node struct {
	*domain.Task

	// Subtasks are the tasks whose ParentTaskID equals this task's ID,
	// ascending by TaskOrder with ties in collection order.
	Subtasks []*Node `json:"subtasks"`
}

// compareFold compares two strings case-insensitively, empty first.
func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
