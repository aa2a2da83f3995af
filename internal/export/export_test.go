package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/opsdeck/internal/constants"
	"github.com/mrz1836/opsdeck/internal/domain"
	"github.com/mrz1836/opsdeck/internal/errors"
	"github.com/mrz1836/opsdeck/internal/taskview"
)

func exportFixture() ([]taskview.Bucket, *taskview.Directory) {
	due := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	parent := &taskview.Node{Task: &domain.Task{
		ID: "t-1", DisplayID: 7, Title: "Reconcile invoices",
		Status: constants.TaskStatusInProgress, Priority: constants.TaskPriorityHigh,
		Type: constants.TaskTypeOneOff, AssignedTo: "u-amy",
		DueDate: &due, CompletionPercentage: 40,
	}}
	parent.Subtasks = []*taskview.Node{{Task: &domain.Task{
		ID: "t-2", DisplayID: 8, Title: "Pull courier statements",
		Status: constants.TaskStatusPending, Priority: constants.TaskPriorityMedium,
	}}}
	loose := &taskview.Node{Task: &domain.Task{
		ID: "t-3", Title: "Untracked chore",
		Status: constants.TaskStatusPending,
	}}

	buckets := []taskview.Bucket{
		{Label: "High Priority", Tasks: []*taskview.Node{parent}},
		{Label: "Unknown Priority", Tasks: []*taskview.Node{loose}},
	}
	dir := taskview.NewDirectory([]*domain.User{
		{ID: "u-amy", FullName: "Amy Okafor"},
	})
	return buckets, dir
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()
	buckets, dir := exportFixture()

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, buckets, dir))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, []string{
		"High Priority", "7", "Reconcile invoices", "In Progress",
		"High Priority", "one-off", "Amy Okafor", "2026-03-15", "40%",
	}, rows[1])

	// Subtask row stays in the parent's group, indented one level.
	assert.Equal(t, "High Priority", rows[2][0])
	assert.Equal(t, "  Pull courier statements", rows[2][2])

	// No display id and no assignee degrade to blank and Unassigned.
	assert.Equal(t, "", rows[3][1])
	assert.Equal(t, "Unassigned", rows[3][6])
	assert.Equal(t, "", rows[3][7])
}

func TestMarkdown(t *testing.T) {
	t.Parallel()
	buckets, dir := exportFixture()

	md := Markdown(buckets, dir)

	assert.Contains(t, md, "## High Priority")
	assert.Contains(t, md, "## Unknown Priority")
	assert.Contains(t, md, "- **#7** Reconcile invoices (In Progress, High Priority, Amy Okafor, due 2026-03-15)")
	assert.Contains(t, md, "  - **#8** Pull courier statements")

	// Section order follows bucket order.
	assert.Less(t, strings.Index(md, "High Priority"), strings.Index(md, "Unknown Priority"))
}

func TestWrite_FormatDispatch(t *testing.T) {
	t.Parallel()
	buckets, dir := exportFixture()

	t.Run("csv", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, FormatCSV, buckets, dir))
		assert.True(t, strings.HasPrefix(buf.String(), "group,"))
	})

	t.Run("markdown", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, FormatMarkdown, buckets, dir))
		assert.Contains(t, buf.String(), "## High Priority")
	})

	t.Run("unknown format rejected", func(t *testing.T) {
		var buf bytes.Buffer
		err := Write(&buf, Format("pdf"), buckets, dir)
		assert.ErrorIs(t, err, errors.ErrInvalidExportFormat)
	})
}

func TestFormat_IsValid(t *testing.T) {
	t.Parallel()
	assert.True(t, FormatCSV.IsValid())
	assert.True(t, FormatMarkdown.IsValid())
	assert.False(t, Format("xlsx").IsValid())
}

func TestWriteCSV_EmptyBuckets(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil, nil))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1) // header only
}
