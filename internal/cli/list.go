package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrz1836/opsdeck/internal/constants"
	"github.com/mrz1836/opsdeck/internal/store"
	"github.com/mrz1836/opsdeck/internal/taskview"
	"github.com/mrz1836/opsdeck/internal/tui"
	"github.com/mrz1836/opsdeck/internal/viewstate"
)

// listFlags holds the flag values for the list command.
type listFlags struct {
	tab          string
	sort         string
	direction    string
	group        string
	search       string
	statuses     []string
	priorities   []string
	types        []string
	assignees    []string
	unassigned   bool
	overdue      bool
	due          string
	dueFrom      string
	dueTo        string
	showArchived bool
	limit        int
	offset       int
	save         bool
}

// AddListCommand adds the list command to the parent command.
func AddListCommand(parent *cobra.Command, flags *GlobalFlags) {
	lf := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks through the board view pipeline",
		Long: `List runs the full view pipeline: the active tab and any advanced
filters narrow the collection, the sort orders it, subtasks are folded
beneath their parents, and grouping buckets the result.

View options default to the persisted board state; flags override them
for a single run, or durably with --save.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, flags, lf)
		},
	}

	cmd.Flags().StringVar(&lf.tab, "tab", "", "tab to view (todo|under_review|incomplete|completed|archived|all)")
	cmd.Flags().StringVar(&lf.sort, "sort", "", "sort field (title|assignee|type|priority|status|due_date|task_id)")
	cmd.Flags().StringVar(&lf.direction, "direction", "", "sort direction (asc|desc)")
	cmd.Flags().StringVar(&lf.group, "group", "", "grouping (none|priority|assignee|status)")
	cmd.Flags().StringVar(&lf.search, "search", "", "free-text search over title, description, and assignee name")
	cmd.Flags().StringSliceVar(&lf.statuses, "status", nil, "only tasks with these statuses (repeatable)")
	cmd.Flags().StringSliceVar(&lf.priorities, "priority", nil, "only tasks with these priorities (repeatable)")
	cmd.Flags().StringSliceVar(&lf.types, "type", nil, "only tasks with these types (repeatable)")
	cmd.Flags().StringSliceVar(&lf.assignees, "assignee", nil, "only tasks assigned to these user IDs (repeatable)")
	cmd.Flags().BoolVar(&lf.unassigned, "unassigned", false, "only tasks with no assignee")
	cmd.Flags().BoolVar(&lf.overdue, "overdue", false, "only tasks due before today")
	cmd.Flags().StringVar(&lf.due, "due", "", "only tasks due on this day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&lf.dueFrom, "due-from", "", "only tasks due on or after this day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&lf.dueTo, "due-to", "", "only tasks due on or before this day (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&lf.showArchived, "show-archived", false, "include archived tasks in the all tab")
	cmd.Flags().IntVar(&lf.limit, "limit", 0, "maximum number of tasks to fetch (0 = no limit)")
	cmd.Flags().IntVar(&lf.offset, "offset", 0, "number of tasks to skip")
	cmd.Flags().BoolVar(&lf.save, "save", false, "persist tab, sort, and grouping choices for future runs")

	parent.AddCommand(cmd)
}

func runList(cmd *cobra.Command, flags *GlobalFlags, lf *listFlags) error {
	ctx := cmd.Context()
	logger := GetLogger()

	d, err := openDeps(cmd, flags)
	if err != nil {
		return err
	}
	defer d.Close()

	state, err := resolveViewState(cmd, d, lf)
	if err != nil {
		return err
	}

	criteria, err := buildCriteria(lf)
	if err != nil {
		return err
	}

	// Free-text search and pagination are pushed down to the store; every
	// other predicate runs in the pipeline so subtask resolution still sees
	// the full collection.
	tasks, users, err := d.loadBoardData(ctx, store.Query{
		Search: lf.search,
		Limit:  lf.limit,
		Offset: lf.offset,
	})
	if err != nil {
		return err
	}

	dir := taskview.NewDirectory(users)
	buckets := taskview.Pipeline(tasks, taskview.Options{
		Tab:           state.ActiveTab,
		SortField:     state.SortField,
		SortDirection: state.SortDirection,
		GroupBy:       state.GroupBy,
	}, criteria, dir, d.clk.Now())

	logger.Debug().
		Int("tasks", len(tasks)).
		Int("buckets", len(buckets)).
		Str("tab", state.ActiveTab.String()).
		Msg("list pipeline complete")

	if flags.Output == OutputJSON {
		return d.out.JSON(buckets)
	}

	table := tui.NewBoardTable(buckets, dir,
		tui.WithWidth(d.cfg.Display.Width),
		tui.WithCollapsed(d.collapse.IsCollapsed),
		tui.WithNow(d.clk.Now()))
	return table.Render(cmd.OutOrStdout())
}

// resolveViewState merges the persisted board state with explicit flags and
// optionally persists the result.
func resolveViewState(cmd *cobra.Command, d *deps, lf *listFlags) (viewstate.ViewState, error) {
	logger := GetLogger()

	state, err := d.prefs.Load(cmd.Context())
	if err != nil {
		logger.Warn().Err(err).Msg("failed to load view state, using defaults")
	}

	if lf.tab != "" {
		if state.ActiveTab, err = parseTab(lf.tab); err != nil {
			return state, err
		}
	}
	if lf.sort != "" {
		if state.SortField, err = parseSortField(lf.sort); err != nil {
			return state, err
		}
	}
	if lf.direction != "" {
		if state.SortDirection, err = parseSortDirection(lf.direction); err != nil {
			return state, err
		}
	}
	if lf.group != "" {
		if state.GroupBy, err = parseGroupKey(lf.group); err != nil {
			return state, err
		}
	}

	if lf.save {
		if err := d.prefs.Save(cmd.Context(), state); err != nil {
			logger.Warn().Err(err).Msg("failed to persist view state")
		}
	}
	return state, nil
}

// buildCriteria converts filter flags into pipeline criteria.
func buildCriteria(lf *listFlags) (taskview.Criteria, error) {
	c := taskview.Criteria{
		Assignees:      lf.assignees,
		UnassignedOnly: lf.unassigned,
		OverdueOnly:    lf.overdue,
		ShowArchived:   lf.showArchived,
	}

	var err error
	if c.Statuses, err = parseStatuses(lf.statuses); err != nil {
		return c, err
	}
	for _, p := range lf.priorities {
		priority, err := parsePriority(p)
		if err != nil {
			return c, err
		}
		c.Priorities = append(c.Priorities, priority)
	}
	for _, t := range lf.types {
		c.Types = append(c.Types, constants.TaskType(t))
	}

	if c.DueDate, err = parseDate(lf.due); err != nil {
		return c, err
	}
	if c.DueFrom, err = parseDate(lf.dueFrom); err != nil {
		return c, err
	}
	if c.DueTo, err = parseDate(lf.dueTo); err != nil {
		return c, err
	}
	return c, nil
}
