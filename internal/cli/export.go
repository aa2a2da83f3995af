package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrz1836/opsdeck/internal/errors"
	"github.com/mrz1836/opsdeck/internal/export"
	"github.com/mrz1836/opsdeck/internal/store"
	"github.com/mrz1836/opsdeck/internal/taskview"
)

// exportFlags holds the flag values for the export command.
type exportFlags struct {
	format string
	file   string
	pretty bool
	listFlags
}

// AddExportCommand adds the export command to the parent command.
func AddExportCommand(parent *cobra.Command, flags *GlobalFlags) {
	ef := &exportFlags{format: string(export.FormatCSV)}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the board view to CSV or Markdown",
		Long: `Export runs the same view pipeline as list and writes the grouped
result as CSV or Markdown. The view flags work like they do on list;
unset options fall back to the persisted board state.

With --pretty and the markdown format the output is rendered for the
terminal instead of written raw.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, flags, ef)
		},
	}

	cmd.Flags().StringVarP(&ef.format, "format", "f", string(export.FormatCSV), "export format (csv|markdown)")
	cmd.Flags().StringVar(&ef.file, "file", "", "write to this file instead of stdout")
	cmd.Flags().BoolVar(&ef.pretty, "pretty", false, "render markdown for the terminal")
	cmd.Flags().StringVar(&ef.tab, "tab", "", "tab to export")
	cmd.Flags().StringVar(&ef.sort, "sort", "", "sort field")
	cmd.Flags().StringVar(&ef.direction, "direction", "", "sort direction (asc|desc)")
	cmd.Flags().StringVar(&ef.group, "group", "", "grouping")
	cmd.Flags().StringVar(&ef.search, "search", "", "free-text search")
	cmd.Flags().StringSliceVar(&ef.statuses, "status", nil, "only tasks with these statuses (repeatable)")
	cmd.Flags().BoolVar(&ef.showArchived, "show-archived", false, "include archived tasks in the all tab")

	parent.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, flags *GlobalFlags, ef *exportFlags) error {
	ctx := cmd.Context()

	format := export.Format(ef.format)
	if !format.IsValid() {
		return errors.Wrapf(errors.ErrInvalidExportFormat, "%q must be csv or markdown", ef.format)
	}

	d, err := openDeps(cmd, flags)
	if err != nil {
		return err
	}
	defer d.Close()

	state, err := resolveViewState(cmd, d, &ef.listFlags)
	if err != nil {
		return err
	}
	criteria, err := buildCriteria(&ef.listFlags)
	if err != nil {
		return err
	}

	tasks, users, err := d.loadBoardData(ctx, store.Query{Search: ef.search})
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

	var w io.Writer = cmd.OutOrStdout()
	if ef.file != "" {
		f, err := os.Create(ef.file)
		if err != nil {
			return errors.Wrapf(err, "failed to create %s", ef.file)
		}
		defer func() { _ = f.Close() }()
		w = f
	}

	if format == export.FormatMarkdown && ef.pretty && ef.file == "" {
		err = export.WriteTerminalMarkdown(w, buckets, dir)
	} else {
		err = export.Write(w, format, buckets, dir)
	}
	if err != nil {
		return err
	}

	if ef.file != "" {
		d.out.Success(fmt.Sprintf("Exported %d groups to %s", len(buckets), ef.file))
	}
	return nil
}
