package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mrz1836/opsdeck/internal/domain"
	"github.com/mrz1836/opsdeck/internal/store"
	"github.com/mrz1836/opsdeck/internal/tui"
)

// AddBoardCommand adds the interactive board command to the parent command.
func AddBoardCommand(parent *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the interactive task board",
		Long: `Board opens a full-screen interactive view of the task list.

Keys: tab/shift+tab switch tabs, s cycles the sort field, d flips the
direction, g cycles grouping, up/down move between groups, enter
collapses or expands the selected group, r refreshes, q quits.

Tab, sort, grouping, and collapse choices persist between sessions.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBoard(cmd, flags)
		},
	}

	parent.AddCommand(cmd)
}

func runBoard(cmd *cobra.Command, flags *GlobalFlags) error {
	ctx := cmd.Context()

	d, err := openDeps(cmd, flags)
	if err != nil {
		return err
	}
	defer d.Close()

	state, err := d.prefs.Load(ctx)
	if err != nil {
		logger := GetLogger()
		logger.Warn().Err(err).Msg("failed to load view state, using defaults")
	}

	load := func(ctx context.Context) ([]*domain.Task, []*domain.User, error) {
		return d.loadBoardData(ctx, store.Query{})
	}

	return tui.RunBoard(ctx, load, d.collapse, d.prefs, state, d.clk)
}
