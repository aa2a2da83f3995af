package taskview

import (
	"time"

	"github.com/mrz1836/opsdeck/internal/constants"
	"github.com/mrz1836/opsdeck/internal/domain"
)

// Options carries the user's view choices into the pipeline. Zero values
// fall back to sensible defaults, so a partially persisted view state
// still renders.
type Options struct {
	// Tab is the coarse status filter. Zero value behaves like "all".
	Tab constants.Tab

	// SortField orders the view. Unrecognized fields leave input order.
	SortField constants.SortField

	// SortDirection is ascending unless set to SortDesc.
	SortDirection constants.SortDirection

	// GroupBy buckets the top-level tasks. Zero value means no grouping.
	GroupBy constants.GroupKey
}

// Pipeline runs filter, stable sort, hierarchy reconstruction, and
// grouping in order and returns the display-ready buckets. It is a pure
// function of its inputs: deterministic and idempotent, so the caller can
// re-run it on every input change and discard superseded results.
func Pipeline(tasks []*domain.Task, opts Options, c Criteria, dir *Directory, now time.Time) []Bucket {
	visible := Filter(tasks, opts.Tab, c, now)
	sorted := Sort(visible, opts.SortField, opts.SortDirection, dir)
	nodes := BuildHierarchy(sorted, tasks)
	return Group(nodes, opts.GroupBy, dir)
}
