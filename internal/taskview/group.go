package taskview

import (
	"sort"

	"github.com/mrz1836/opsdeck/internal/constants"
)

// Bucket is a named, ordered group of top-level tasks. Bucket order is
// display order, so Group returns a slice rather than a map.
type Bucket struct {
	// Label is the display name of the group and the key collapse state
	// is stored under.
	Label string `json:"label"`

	// Tasks are the top-level nodes in the group, in pipeline order.
	// Subtasks render beneath their parent regardless of their own
	// group-key value; they are never grouped independently.
	Tasks []*Node `json:"tasks"`
}

// Group buckets the top-level nodes by the given key. Bucket order:
//   - none: a single "All Tasks" bucket
//   - priority: High, Medium, Low, then Unknown; empty buckets omitted
//   - assignee: alphabetical by display name, "Unassigned" always last
//   - status: alphabetical by status label
func Group(nodes []*Node, key constants.GroupKey, dir *Directory) []Bucket {
	switch key {
	case constants.GroupPriority:
		return groupByPriority(nodes)
	case constants.GroupAssignee:
		return groupByAssignee(nodes, dir)
	case constants.GroupStatus:
		return groupByStatus(nodes)
	case constants.GroupNone:
		return []Bucket{{Label: constants.LabelAllTasks, Tasks: nodes}}
	default:
		// Unknown group keys from stale view state degrade to no grouping.
		return []Bucket{{Label: constants.LabelAllTasks, Tasks: nodes}}
	}
}

// groupByPriority buckets in the fixed High, Medium, Low, Unknown order.
func groupByPriority(nodes []*Node) []Bucket {
	order := []string{
		constants.TaskPriorityHigh.Label(),
		constants.TaskPriorityMedium.Label(),
		constants.TaskPriorityLow.Label(),
		constants.TaskPriority("").Label(),
	}
	byLabel := make(map[string][]*Node)
	for _, n := range nodes {
		label := n.Priority.Label()
		byLabel[label] = append(byLabel[label], n)
	}

	buckets := make([]Bucket, 0, len(order))
	for _, label := range order {
		if tasks := byLabel[label]; len(tasks) > 0 {
			buckets = append(buckets, Bucket{Label: label, Tasks: tasks})
		}
	}
	return buckets
}

// groupByAssignee buckets by resolved display name, alphabetical, with
// the "Unassigned" bucket forced last.
func groupByAssignee(nodes []*Node, dir *Directory) []Bucket {
	byLabel := make(map[string][]*Node)
	for _, n := range nodes {
		label := dir.DisplayName(n.AssignedTo)
		if label == "" {
			label = constants.LabelUnassigned
		}
		byLabel[label] = append(byLabel[label], n)
	}
	return sortedBuckets(byLabel, constants.LabelUnassigned)
}

// groupByStatus buckets by status display label, alphabetical.
func groupByStatus(nodes []*Node) []Bucket {
	byLabel := make(map[string][]*Node)
	for _, n := range nodes {
		label := n.Status.Label()
		byLabel[label] = append(byLabel[label], n)
	}
	return sortedBuckets(byLabel, "")
}

// sortedBuckets orders the label map alphabetically (case-insensitive),
// forcing the named label to the end when present.
func sortedBuckets(byLabel map[string][]*Node, last string) []Bucket {
	labels := make([]string, 0, len(byLabel))
	for label := range byLabel {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		if last != "" {
			if labels[i] == last {
				return false
			}
			if labels[j] == last {
				return true
			}
		}
		return compareFold(labels[i], labels[j]) < 0
	})

	buckets := make([]Bucket, 0, len(labels))
	for _, label := range labels {
		buckets = append(buckets, Bucket{Label: label, Tasks: byLabel[label]})
	}
	return buckets
}
