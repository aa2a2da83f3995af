package taskview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/opsdeck/internal/constants"
	"github.com/mrz1836/opsdeck/internal/domain"
)

func pipelineFixture() []*domain.Task {
	return []*domain.Task{
		{ID: "t1", Title: "Restock shelves", Status: constants.TaskStatusPending, Priority: constants.TaskPriorityHigh, AssignedTo: "u-amy"},
		{ID: "t2", Title: "Courier handover", Status: constants.TaskStatusInProgress, Priority: constants.TaskPriorityLow, AssignedTo: "u-bob"},
		{ID: "t3", Title: "Count register", Status: constants.TaskStatusPending, Priority: constants.TaskPriorityMedium},
		{ID: "t4", Title: "Check fridge temps", Status: constants.TaskStatusApproved, Priority: constants.TaskPriorityHigh},
		{ID: "t5", Title: "Wipe counters", Status: constants.TaskStatusPending, Priority: constants.TaskPriorityHigh, ParentTaskID: "t1", TaskOrder: 1},
		{ID: "t6", Title: "Sweep floor", Status: constants.TaskStatusDoneAutoApproved, Priority: constants.TaskPriorityHigh, ParentTaskID: "t1", TaskOrder: 0},
	}
}

func TestPipeline_EndToEnd(t *testing.T) {
	t.Parallel()

	opts := Options{
		Tab:           constants.TabTodo,
		SortField:     constants.SortFieldPriority,
		SortDirection: constants.SortDesc,
		GroupBy:       constants.GroupPriority,
	}

	got := Pipeline(pipelineFixture(), opts, Criteria{}, testDirectory(), testNow)

	// t4 fails the todo tab; t5/t6 are subtasks of t1 and never top-level.
	// t6 fails the tab filter individually but still rides under t1.
	require.Equal(t, []string{"High Priority", "Medium Priority", "Low Priority"}, labels(got))
	require.Equal(t, []string{"t1"}, nodeIDs(got[0].Tasks))
	assert.Equal(t, []string{"t6", "t5"}, nodeIDs(got[0].Tasks[0].Subtasks))
	assert.Equal(t, []string{"t3"}, nodeIDs(got[1].Tasks))
	assert.Equal(t, []string{"t2"}, nodeIDs(got[2].Tasks))
}

func TestPipeline_Idempotent(t *testing.T) {
	t.Parallel()

	tasks := pipelineFixture()
	opts := Options{
		Tab:           constants.TabAll,
		SortField:     constants.SortFieldTitle,
		SortDirection: constants.SortAsc,
		GroupBy:       constants.GroupAssignee,
	}
	dir := testDirectory()

	first := Pipeline(tasks, opts, Criteria{}, dir, testNow)
	second := Pipeline(tasks, opts, Criteria{}, dir, testNow)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Label, second[i].Label)
		assert.Equal(t, nodeIDs(first[i].Tasks), nodeIDs(second[i].Tasks))
	}
}

func TestPipeline_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	tasks := pipelineFixture()
	before := ids(tasks)

	_ = Pipeline(tasks, Options{
		Tab:           constants.TabAll,
		SortField:     constants.SortFieldTitle,
		SortDirection: constants.SortDesc,
		GroupBy:       constants.GroupStatus,
	}, Criteria{}, testDirectory(), testNow)

	assert.Equal(t, before, ids(tasks))
}

func TestPipeline_ZeroOptions(t *testing.T) {
	t.Parallel()

	// A zero Options (e.g. first run before any view state exists) still
	// renders: everything non-archived, input order, one bucket.
	got := Pipeline(pipelineFixture(), Options{}, Criteria{}, testDirectory(), testNow)

	require.Len(t, got, 1)
	assert.Equal(t, "All Tasks", got[0].Label)
	assert.Equal(t, []string{"t2", "t3", "t4"}, nodeIDs(got[0].Tasks)[1:])
}

func TestPipeline_EmptyInput(t *testing.T) {
	t.Parallel()

	got := Pipeline(nil, Options{Tab: constants.TabAll, GroupBy: constants.GroupStatus}, Criteria{}, nil, testNow)
	assert.Empty(t, got)
}
