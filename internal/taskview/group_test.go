package taskview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/opsdeck/internal/constants"
	"github.com/mrz1836/opsdeck/internal/domain"
)

func nodes(tasks ...*domain.Task) []*Node {
	out := make([]*Node, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, &Node{Task: t})
	}
	return out
}

func labels(buckets []Bucket) []string {
	out := make([]string, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, b.Label)
	}
	return out
}

func TestGroup_None(t *testing.T) {
	t.Parallel()

	input := nodes(&domain.Task{ID: "1"}, &domain.Task{ID: "2"})
	got := Group(input, constants.GroupNone, nil)

	require.Len(t, got, 1)
	assert.Equal(t, "All Tasks", got[0].Label)
	assert.Len(t, got[0].Tasks, 2)
}

func TestGroup_Priority(t *testing.T) {
	t.Parallel()

	input := nodes(
		&domain.Task{ID: "1", Priority: constants.TaskPriorityLow},
		&domain.Task{ID: "2", Priority: constants.TaskPriorityHigh},
		&domain.Task{ID: "3", Priority: constants.TaskPriority("p0")},
		&domain.Task{ID: "4", Priority: constants.TaskPriorityHigh},
	)

	got := Group(input, constants.GroupPriority, nil)
	// Fixed order High, Medium, Low, Unknown; the empty Medium bucket is
	// omitted.
	assert.Equal(t, []string{"High Priority", "Low Priority", "Unknown Priority"}, labels(got))
	assert.Equal(t, []string{"2", "4"}, nodeIDs(got[0].Tasks))
}

func TestGroup_Assignee(t *testing.T) {
	t.Parallel()

	// Spec scenario: Amy, Bob, and one unassigned task group into
	// ["Amy...", "Bob...", "Unassigned"].
	input := nodes(
		&domain.Task{ID: "1", AssignedTo: "u-bob"},
		&domain.Task{ID: "2", AssignedTo: "u-amy"},
		&domain.Task{ID: "3"},
	)

	got := Group(input, constants.GroupAssignee, testDirectory())
	assert.Equal(t, []string{"Amy Okafor", "Bob Tran", "Unassigned"}, labels(got))
}

func TestGroup_Assignee_UnassignedForcedLast(t *testing.T) {
	t.Parallel()

	// "zed lowercase" sorts after "Unassigned" alphabetically, but the
	// Unassigned bucket still comes last.
	input := nodes(
		&domain.Task{ID: "1", AssignedTo: "u-zed"},
		&domain.Task{ID: "2"},
	)

	got := Group(input, constants.GroupAssignee, testDirectory())
	assert.Equal(t, []string{"zed lowercase", "Unassigned"}, labels(got))
}

func TestGroup_Assignee_UnknownIDFallsBackToUnassigned(t *testing.T) {
	t.Parallel()

	input := nodes(&domain.Task{ID: "1", AssignedTo: "u-ghost"})
	got := Group(input, constants.GroupAssignee, testDirectory())
	assert.Equal(t, []string{"Unassigned"}, labels(got))
}

func TestGroup_Status(t *testing.T) {
	t.Parallel()

	input := nodes(
		&domain.Task{ID: "1", Status: constants.TaskStatusPending},
		&domain.Task{ID: "2", Status: constants.TaskStatusDoneAutoApproved},
		&domain.Task{ID: "3", Status: constants.TaskStatus("weird")},
		&domain.Task{ID: "4", Status: constants.TaskStatusInProgress},
	)

	got := Group(input, constants.GroupStatus, nil)
	// Alphabetical by display label, unknown statuses bucketed together.
	assert.Equal(t, []string{"Done", "In Progress", "Pending", "Unknown Status"}, labels(got))
}

func TestGroup_UnknownKeyDegradesToNone(t *testing.T) {
	t.Parallel()

	input := nodes(&domain.Task{ID: "1"})
	got := Group(input, constants.GroupKey("tag"), nil)

	require.Len(t, got, 1)
	assert.Equal(t, "All Tasks", got[0].Label)
}

func TestGroup_ExhaustivenessProperty(t *testing.T) {
	t.Parallel()

	input := nodes(
		&domain.Task{ID: "1", Status: constants.TaskStatusPending},
		&domain.Task{ID: "2", Status: constants.TaskStatusApproved},
		&domain.Task{ID: "3", Status: constants.TaskStatusPending},
		&domain.Task{ID: "4", Status: constants.TaskStatus("weird")},
	)

	for _, key := range constants.ValidGroupKeys() {
		got := Group(input, key, testDirectory())

		seen := map[string]int{}
		for _, bucket := range got {
			for _, n := range bucket.Tasks {
				seen[n.ID]++
			}
		}
		require.Len(t, seen, len(input), "group key %s lost tasks", key)
		for _, n := range input {
			assert.Equal(t, 1, seen[n.ID], "group key %s duplicated or dropped task %s", key, n.ID)
		}
	}
}

func TestGroup_PreservesPipelineOrderWithinBucket(t *testing.T) {
	t.Parallel()

	input := nodes(
		&domain.Task{ID: "first", Priority: constants.TaskPriorityHigh},
		&domain.Task{ID: "second", Priority: constants.TaskPriorityHigh},
	)

	got := Group(input, constants.GroupPriority, nil)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"first", "second"}, nodeIDs(got[0].Tasks))
}
