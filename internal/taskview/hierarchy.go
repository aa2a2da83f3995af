package taskview

import (
	"sort"

	"github.com/mrz1836/opsdeck/internal/domain"
)

// BuildHierarchy reconstructs the parent/child tree from the flat
// collection. visible carries the filtered, sorted tasks that may appear
// at the top level; all is the full unfiltered collection that subtasks
// are resolved from, so a subtask still renders under its parent even
// when it individually fails the active filter.
//
// A task is top-level when it declares no parent, when its declared parent
// does not resolve to any task in the collection, or when its parent chain
// loops back onto itself. Unresolvable and cyclic references are demoted
// to top-level rather than dropped: keeping the task visible beats strict
// hierarchy correctness.
func BuildHierarchy(visible, all []*domain.Task) []*Node {
	byID := make(map[string]*domain.Task, len(all))
	for _, t := range all {
		if t == nil || t.ID == "" {
			continue
		}
		byID[t.ID] = t
	}

	children := childIndex(all, byID)

	roots := make([]*Node, 0, len(visible))
	for _, t := range visible {
		if t == nil {
			continue
		}
		if !isTopLevel(t, byID) {
			continue
		}
		roots = append(roots, attach(t, children, map[string]bool{}))
	}
	return roots
}

// childIndex groups tasks by their resolvable parent ID, each sibling set
// ascending by TaskOrder with ties in collection order. Tasks on a cyclic
// parent chain are demoted to top-level elsewhere, so they are excluded
// here to keep every task in exactly one place.
func childIndex(all []*domain.Task, byID map[string]*domain.Task) map[string][]*domain.Task {
	children := make(map[string][]*domain.Task)
	for _, t := range all {
		if t == nil || t.ParentTaskID == "" {
			continue
		}
		if _, ok := byID[t.ParentTaskID]; !ok {
			continue
		}
		if parentChainCyclic(t, byID) {
			continue
		}
		children[t.ParentTaskID] = append(children[t.ParentTaskID], t)
	}
	for parent := range children {
		sibs := children[parent]
		sort.SliceStable(sibs, func(i, j int) bool {
			return sibs[i].TaskOrder < sibs[j].TaskOrder
		})
	}
	return children
}

// isTopLevel reports whether the task renders at the top level: no parent,
// a dangling parent reference, or a cyclic parent chain.
func isTopLevel(t *domain.Task, byID map[string]*domain.Task) bool {
	if t.ParentTaskID == "" {
		return true
	}
	if _, ok := byID[t.ParentTaskID]; !ok {
		return true
	}
	return parentChainCyclic(t, byID)
}

// parentChainCyclic walks the parent references from t and reports whether
// the chain revisits a task. The backend does not prevent cyclic
// parent_task_id values, so the builder has to.
func parentChainCyclic(t *domain.Task, byID map[string]*domain.Task) bool {
	visited := map[string]bool{t.ID: true}
	cur := t
	for cur.ParentTaskID != "" {
		parent, ok := byID[cur.ParentTaskID]
		if !ok {
			return false
		}
		if visited[parent.ID] {
			return true
		}
		visited[parent.ID] = true
		cur = parent
	}
	return false
}

// attach builds the node for t and recursively attaches its subtasks.
// visited caps the recursion so a cyclic chain that slipped past the
// top-level check cannot recurse forever.
func attach(t *domain.Task, children map[string][]*domain.Task, visited map[string]bool) *Node {
	node := &Node{Task: t}
	if visited[t.ID] {
		return node
	}
	visited[t.ID] = true
	for _, sub := range children[t.ID] {
		if visited[sub.ID] {
			continue
		}
		node.Subtasks = append(node.Subtasks, attach(sub, children, visited))
	}
	return node
}
