package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mrz1836/opsdeck/internal/constants"
)

// TestTabLabel verifies tab values humanize into title-cased labels.
func TestTabLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Todo", TabLabel(constants.TabTodo))
	assert.Equal(t, "Under Review", TabLabel(constants.TabUnderReview))
	assert.Equal(t, "All", TabLabel(constants.TabAll))
}

// TestSortLabel verifies sort fields humanize into title-cased labels.
func TestSortLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Due Date", SortLabel(constants.SortFieldDueDate))
	assert.Equal(t, "Task Id", SortLabel(constants.SortFieldTaskID))
	assert.Equal(t, "Priority", SortLabel(constants.SortFieldPriority))
}

// TestGroupLabel verifies group keys humanize into title-cased labels.
func TestGroupLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "None", GroupLabel(constants.GroupNone))
	assert.Equal(t, "Assignee", GroupLabel(constants.GroupAssignee))
}

// TestRelativeDue covers the dash, today, future, and overdue arms.
func TestRelativeDue(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	day := func(d int) *time.Time {
		v := time.Date(2026, 3, d, 9, 0, 0, 0, time.UTC)
		return &v
	}

	assert.Equal(t, "—", RelativeDue(nil, now))
	assert.Equal(t, "today", RelativeDue(day(10), now))
	assert.Equal(t, "in 3d", RelativeDue(day(13), now))
	assert.Equal(t, "2d overdue", RelativeDue(day(8), now))
}
