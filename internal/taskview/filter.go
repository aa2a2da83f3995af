package taskview

import (
	"time"

	"github.com/mrz1836/opsdeck/internal/constants"
	"github.com/mrz1836/opsdeck/internal/domain"
)

// Criteria holds the advanced filter settings. Every set predicate must
// pass (conjunction); zero-value fields are inactive. Free-text search is
// pushed down to the task store, not re-matched here.
type Criteria struct {
	// DueDate keeps tasks due on exactly this day.
	DueDate *time.Time

	// DueFrom and DueTo keep tasks due within [DueFrom, DueTo] inclusive.
	// Tasks without a due date fail an active date filter.
	DueFrom *time.Time
	DueTo   *time.Time

	// Statuses keeps tasks whose status is a member, when non-empty.
	Statuses []constants.TaskStatus

	// Priorities keeps tasks whose priority is a member, when non-empty.
	Priorities []constants.TaskPriority

	// Types keeps tasks whose type is a member, when non-empty.
	Types []constants.TaskType

	// Assignees keeps tasks whose assignee ID is a member, when non-empty.
	Assignees []string

	// OverdueOnly keeps tasks due before today at local midnight.
	// Tasks without a due date are excluded.
	OverdueOnly bool

	// UnassignedOnly keeps tasks with no assignee.
	UnassignedOnly bool

	// ShowArchived includes archived (done_auto_approved) tasks in the
	// "all" tab. Other tabs ignore it.
	ShowArchived bool
}

// Filter returns the tasks that pass the active tab and every active
// criterion. The input slice is not modified; an empty result is valid.
func Filter(tasks []*domain.Task, tab constants.Tab, c Criteria, now time.Time) []*domain.Task {
	out := make([]*domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if t == nil {
			continue
		}
		if !matchesTab(t, tab, c.ShowArchived) {
			continue
		}
		if !matchesCriteria(t, c, now) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// matchesTab applies the coarse status filter for the active tab.
func matchesTab(t *domain.Task, tab constants.Tab, showArchived bool) bool {
	switch tab {
	case constants.TabArchived:
		return t.Status == constants.TaskStatusDoneAutoApproved
	case constants.TabCompleted:
		return t.Status == constants.TaskStatusApproved
	case constants.TabUnderReview:
		return t.Status == constants.TaskStatusSubmittedForReview
	case constants.TabIncomplete:
		return t.Status == constants.TaskStatusIncomplete
	case constants.TabTodo:
		return t.Status == constants.TaskStatusPending || t.Status == constants.TaskStatusInProgress
	case constants.TabAll:
		if t.Status == constants.TaskStatusDoneAutoApproved {
			return showArchived
		}
		return true
	default:
		// Unknown tab behaves like "all" so a stale persisted view state
		// never blanks the board.
		return t.Status != constants.TaskStatusDoneAutoApproved || showArchived
	}
}

// matchesCriteria applies the advanced filters as a conjunction.
func matchesCriteria(t *domain.Task, c Criteria, now time.Time) bool {
	if !matchesDueDate(t, c) {
		return false
	}
	if len(c.Statuses) > 0 && !containsStatus(c.Statuses, t.Status) {
		return false
	}
	if len(c.Priorities) > 0 && !containsPriority(c.Priorities, t.Priority) {
		return false
	}
	if len(c.Types) > 0 && !containsType(c.Types, t.Type) {
		return false
	}
	if len(c.Assignees) > 0 && !containsString(c.Assignees, t.AssignedTo) {
		return false
	}
	if c.OverdueOnly && !t.IsOverdue(now) {
		return false
	}
	if c.UnassignedOnly && t.AssignedTo != "" {
		return false
	}
	return true
}

// matchesDueDate applies the single-day or range due-date filter.
// Undated tasks fail an active date filter but pass when none is set.
func matchesDueDate(t *domain.Task, c Criteria) bool {
	if c.DueDate == nil && c.DueFrom == nil && c.DueTo == nil {
		return true
	}
	if t.DueDate == nil {
		return false
	}
	due := dayOf(*t.DueDate)
	if c.DueDate != nil && !due.Equal(dayOf(*c.DueDate)) {
		return false
	}
	if c.DueFrom != nil && due.Before(dayOf(*c.DueFrom)) {
		return false
	}
	if c.DueTo != nil && due.After(dayOf(*c.DueTo)) {
		return false
	}
	return true
}

// dayOf truncates a time to midnight in its own location, so date filters
// compare calendar days rather than instants.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func containsStatus(set []constants.TaskStatus, v constants.TaskStatus) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsPriority(set []constants.TaskPriority, v constants.TaskPriority) bool {
	for _, p := range set {
		if p == v {
			return true
		}
	}
	return false
}

func containsType(set []constants.TaskType, v constants.TaskType) bool {
	for _, t := range set {
		if t == v {
			return true
		}
	}
	return false
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
