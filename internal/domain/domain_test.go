package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/opsdeck/internal/constants"
)

func TestTask_IsTopLevel(t *testing.T) {
	t.Parallel()

	assert.True(t, (&Task{ID: "a"}).IsTopLevel())
	assert.False(t, (&Task{ID: "b", ParentTaskID: "a"}).IsTopLevel())
}

func TestTask_IsOverdue(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 14, 30, 0, 0, time.Local)

	t.Run("no due date is never overdue", func(t *testing.T) {
		task := &Task{ID: "a"}
		assert.False(t, task.IsOverdue(now))
	})

	t.Run("due yesterday is overdue", func(t *testing.T) {
		due := time.Date(2026, 3, 9, 23, 59, 0, 0, time.Local)
		task := &Task{ID: "a", DueDate: &due}
		assert.True(t, task.IsOverdue(now))
	})

	t.Run("due earlier today is not overdue", func(t *testing.T) {
		// Overdue means strictly before local midnight of the current day,
		// so anything due today still counts as on time.
		due := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
		task := &Task{ID: "a", DueDate: &due}
		assert.False(t, task.IsOverdue(now))
	})

	t.Run("due tomorrow is not overdue", func(t *testing.T) {
		due := time.Date(2026, 3, 11, 0, 0, 0, 0, time.Local)
		task := &Task{ID: "a", DueDate: &due}
		assert.False(t, task.IsOverdue(now))
	})
}

func TestTask_JSONRoundTrip(t *testing.T) {
	t.Parallel()

	due := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	task := &Task{
		ID:                   "0b7f9a2c",
		DisplayID:            42,
		ParentTaskID:         "parent-1",
		Title:                "Reconcile courier invoices",
		Status:               constants.TaskStatusInProgress,
		Priority:             constants.TaskPriorityHigh,
		Type:                 constants.TaskTypeOneOff,
		AssignedTo:           "u-amy",
		DueDate:              &due,
		TaskOrder:            3,
		CompletionPercentage: 40,
	}

	data, err := json.Marshal(task)
	require.NoError(t, err)

	// Wire format uses snake_case field names.
	assert.Contains(t, string(data), `"parent_task_id"`)
	assert.Contains(t, string(data), `"task_type"`)
	assert.Contains(t, string(data), `"assigned_to"`)

	var decoded Task
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, task.ID, decoded.ID)
	assert.Equal(t, task.Status, decoded.Status)
	assert.Equal(t, task.DueDate.Unix(), decoded.DueDate.Unix())
}
