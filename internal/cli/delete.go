package cli

import (
	stderrors "errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrz1836/opsdeck/internal/errors"
	"github.com/mrz1836/opsdeck/internal/tui"
)

// AddDeleteCommand adds the delete command to the parent command.
func AddDeleteCommand(parent *cobra.Command, flags *GlobalFlags) {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <task>",
		Short: "Delete a task",
		Long: `Delete removes a task from the store after confirmation. Subtasks of
a deleted parent are kept and promoted to top level by the board. Use
--yes to skip the prompt in scripts.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd, flags, args[0], yes)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	parent.AddCommand(cmd)
}

func runDelete(cmd *cobra.Command, flags *GlobalFlags, ref string, yes bool) error {
	ctx := cmd.Context()

	d, err := openDeps(cmd, flags)
	if err != nil {
		return err
	}
	defer d.Close()

	task, err := d.resolveTask(ctx, ref)
	if err != nil {
		return err
	}

	if !yes {
		confirmed, err := tui.ConfirmAction(fmt.Sprintf("Delete task #%d: %s?", task.DisplayID, task.Title), false)
		if err != nil {
			if stderrors.Is(err, errors.ErrPromptCanceled) {
				d.out.Info("Delete canceled")
				return nil
			}
			return err
		}
		if !confirmed {
			d.out.Info("Delete canceled")
			return nil
		}
	}

	if err := d.store.Delete(ctx, task.ID); err != nil {
		return err
	}

	logger := GetLogger()
	logger.Info().Str("task_id", task.ID).Msg("task deleted")
	d.out.Success(fmt.Sprintf("Deleted task #%d: %s", task.DisplayID, task.Title))
	return nil
}
