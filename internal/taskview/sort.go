package taskview

import (
	"sort"

	"github.com/mrz1836/opsdeck/internal/constants"
	"github.com/mrz1836/opsdeck/internal/domain"
)

// Sort returns a new slice ordered by the given field and direction.
// The sort is stable: tasks that compare equal keep their relative input
// order, which the hierarchy builder depends on for determinism.
func Sort(tasks []*domain.Task, field constants.SortField, direction constants.SortDirection, dir *Directory) []*domain.Task {
	out := make([]*domain.Task, len(tasks))
	copy(out, tasks)

	cmp := comparator(field, dir)
	desc := direction == constants.SortDesc

	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(out[i], out[j])
		if desc {
			c = -c
		}
		return c < 0
	})
	return out
}

// comparator returns the three-way compare function for the sort field.
// Unrecognized fields compare everything equal, leaving input order intact.
func comparator(field constants.SortField, dir *Directory) func(a, b *domain.Task) int {
	switch field {
	case constants.SortFieldTitle:
		return func(a, b *domain.Task) int {
			return compareFold(a.Title, b.Title)
		}
	case constants.SortFieldAssignee:
		return func(a, b *domain.Task) int {
			return compareFold(dir.DisplayName(a.AssignedTo), dir.DisplayName(b.AssignedTo))
		}
	case constants.SortFieldStatus:
		return func(a, b *domain.Task) int {
			return compareFold(string(a.Status), string(b.Status))
		}
	case constants.SortFieldType:
		return func(a, b *domain.Task) int {
			return compareFold(string(a.Type), string(b.Type))
		}
	case constants.SortFieldPriority:
		return func(a, b *domain.Task) int {
			return compareInt(a.Priority.Ordinal(), b.Priority.Ordinal())
		}
	case constants.SortFieldDueDate:
		// A missing due date keys as the Unix epoch and therefore sorts
		// before any real date ascending. The backend shipped with this
		// rule and exports depend on it, so it is preserved as-is.
		return func(a, b *domain.Task) int {
			return compareInt64(dueKey(a), dueKey(b))
		}
	case constants.SortFieldTaskID:
		return func(a, b *domain.Task) int {
			return compareInt(displayIDKey(a), displayIDKey(b))
		}
	default:
		return func(_, _ *domain.Task) int { return 0 }
	}
}

// dueKey returns the due date as a Unix timestamp, 0 when unset.
func dueKey(t *domain.Task) int64 {
	if t.DueDate == nil {
		return 0
	}
	return t.DueDate.Unix()
}

// displayIDKey returns the numeric display id, pushing tasks without one
// to the end of an ascending sort.
func displayIDKey(t *domain.Task) int {
	if t.DisplayID == 0 {
		return constants.MissingDisplayID
	}
	return t.DisplayID
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
