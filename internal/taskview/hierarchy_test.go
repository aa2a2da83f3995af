package taskview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/opsdeck/internal/domain"
)

func nodeIDs(nodes []*Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.ID)
	}
	return out
}

func TestBuildHierarchy_SubtasksOrderedByTaskOrder(t *testing.T) {
	t.Parallel()

	// Spec scenario: subtasks attach under the parent ascending by
	// task_order, not collection order.
	all := []*domain.Task{
		{ID: "1"},
		{ID: "2", ParentTaskID: "1", TaskOrder: 1},
		{ID: "3", ParentTaskID: "1", TaskOrder: 0},
	}

	got := BuildHierarchy(all, all)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, []string{"3", "2"}, nodeIDs(got[0].Subtasks))
}

func TestBuildHierarchy_DanglingParentBecomesTopLevel(t *testing.T) {
	t.Parallel()

	all := []*domain.Task{
		{ID: "1"},
		{ID: "2", ParentTaskID: "missing"},
	}

	got := BuildHierarchy(all, all)
	assert.Equal(t, []string{"1", "2"}, nodeIDs(got))
}

func TestBuildHierarchy_SubtasksNotRefiltered(t *testing.T) {
	t.Parallel()

	// Subtasks resolve from the full collection: a subtask that fails the
	// active filter still renders under its visible parent.
	all := []*domain.Task{
		{ID: "parent"},
		{ID: "hidden-child", ParentTaskID: "parent"},
	}
	visible := []*domain.Task{all[0]}

	got := BuildHierarchy(visible, all)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"hidden-child"}, nodeIDs(got[0].Subtasks))
}

func TestBuildHierarchy_FilteredChildNotTopLevel(t *testing.T) {
	t.Parallel()

	// A visible task with a resolvable parent renders under the parent,
	// never as its own top-level row.
	all := []*domain.Task{
		{ID: "parent"},
		{ID: "child", ParentTaskID: "parent"},
	}

	got := BuildHierarchy(all, all)
	assert.Equal(t, []string{"parent"}, nodeIDs(got))
}

func TestBuildHierarchy_DeepNesting(t *testing.T) {
	t.Parallel()

	all := []*domain.Task{
		{ID: "a"},
		{ID: "b", ParentTaskID: "a"},
		{ID: "c", ParentTaskID: "b"},
		{ID: "d", ParentTaskID: "c"},
	}

	got := BuildHierarchy(all, all)
	require.Len(t, got, 1)
	require.Len(t, got[0].Subtasks, 1)
	require.Len(t, got[0].Subtasks[0].Subtasks, 1)
	assert.Equal(t, "d", got[0].Subtasks[0].Subtasks[0].Subtasks[0].ID)
}

func TestBuildHierarchy_CyclicChainDemotedToTopLevel(t *testing.T) {
	t.Parallel()

	// a and b reference each other. The backend cannot prevent this, so
	// the builder breaks the loop: both render top-level, neither renders
	// as the other's subtask, and nothing recurses forever.
	all := []*domain.Task{
		{ID: "a", ParentTaskID: "b"},
		{ID: "b", ParentTaskID: "a"},
		{ID: "c"},
	}

	got := BuildHierarchy(all, all)
	assert.Equal(t, []string{"a", "b", "c"}, nodeIDs(got))
	for _, n := range got {
		assert.Empty(t, n.Subtasks, "cyclic task %s must not carry subtasks", n.ID)
	}
}

func TestBuildHierarchy_SelfReferenceDemotedToTopLevel(t *testing.T) {
	t.Parallel()

	all := []*domain.Task{
		{ID: "a", ParentTaskID: "a"},
	}

	got := BuildHierarchy(all, all)
	require.Equal(t, []string{"a"}, nodeIDs(got))
	assert.Empty(t, got[0].Subtasks)
}

func TestBuildHierarchy_CompletenessProperty(t *testing.T) {
	t.Parallel()

	// Every task with a resolvable parent appears in exactly one parent's
	// subtasks; every other task appears top-level exactly once.
	all := []*domain.Task{
		{ID: "r1"},
		{ID: "r2", ParentTaskID: "ghost"},
		{ID: "c1", ParentTaskID: "r1", TaskOrder: 0},
		{ID: "c2", ParentTaskID: "r1", TaskOrder: 1},
		{ID: "g1", ParentTaskID: "c1"},
	}

	got := BuildHierarchy(all, all)

	seen := map[string]int{}
	var walk func(nodes []*Node)
	walk = func(nodes []*Node) {
		for _, n := range nodes {
			seen[n.ID]++
			walk(n.Subtasks)
		}
	}
	walk(got)

	require.Len(t, seen, len(all))
	for _, task := range all {
		assert.Equal(t, 1, seen[task.ID], "task %s must appear exactly once", task.ID)
	}
	assert.Equal(t, []string{"r1", "r2"}, nodeIDs(got))
}

func TestBuildHierarchy_PreservesVisibleOrder(t *testing.T) {
	t.Parallel()

	all := []*domain.Task{
		{ID: "z"},
		{ID: "a"},
		{ID: "m"},
	}
	// The builder never reorders top-level tasks; the sort stage owns
	// that.
	got := BuildHierarchy(all, all)
	assert.Equal(t, []string{"z", "a", "m"}, nodeIDs(got))
}
